package app

import (
	"math/rand"
	"testing"

	"hextest/internal/config"
)

func TestNewGame(t *testing.T) {
	s, err := config.Defaults()
	if err != nil {
		t.Fatalf("config.Defaults() err=%v", err)
	}
	g, err := NewGame(s, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("NewGame err=%v", err)
	}
	if n := len(g.Animation.Cluster()); n < 1 || n > s.Cluster.MaxIterations {
		t.Fatalf("cluster len=%d; want in [1, %d]", n, s.Cluster.MaxIterations)
	}

	g.Update(0.25)
	g.Update(0.25)
	if got := g.Animation.Clock(); got != 0.5 {
		t.Fatalf("Clock()=%v; want 0.5", got)
	}
}

func TestNewGame_UnknownEasing(t *testing.T) {
	s, err := config.Defaults()
	if err != nil {
		t.Fatalf("config.Defaults() err=%v", err)
	}
	s.Animation.Easing = "nope"
	if _, err := NewGame(s, rand.New(rand.NewSource(1))); err == nil {
		t.Fatalf("NewGame err=nil; want unknown easing error")
	}
}
