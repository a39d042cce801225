package config

import (
	"math"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	s, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults() err=%v", err)
	}
	if s.Cluster.MaxIterations != 100 || s.Cluster.AcceptProbability != 0.7 {
		t.Fatalf("cluster=%+v; want {100 0.7}", s.Cluster)
	}
	a := s.Animation
	if a.Duration != 1.0 || a.Arc != math.Pi || a.StartScale != 0.2 || a.Easing != "linear" {
		t.Fatalf("animation=%+v; want {1 pi 0.2 linear}", a)
	}
}

func TestParse_Invalid(t *testing.T) {
	tcs := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "malformed",
			doc:  "cluster: [",
			want: "defaults.yaml",
		},
		{
			name: "zero iterations",
			doc:  "cluster: {max_iterations: 0, accept_probability: 0.5}\nanimation: {duration: 1, arc: 1, start_scale: 0.2, easing: linear}",
			want: "max_iterations",
		},
		{
			name: "probability out of range",
			doc:  "cluster: {max_iterations: 10, accept_probability: 1.5}\nanimation: {duration: 1, arc: 1, start_scale: 0.2, easing: linear}",
			want: "accept_probability",
		},
		{
			name: "zero duration",
			doc:  "cluster: {max_iterations: 10, accept_probability: 0.5}\nanimation: {duration: 0, arc: 1, start_scale: 0.2, easing: linear}",
			want: "duration",
		},
		{
			name: "no easing",
			doc:  "cluster: {max_iterations: 10, accept_probability: 0.5}\nanimation: {duration: 1, arc: 1, start_scale: 0.2}",
			want: "easing",
		},
	}
	for _, tc := range tcs {
		_, err := Parse([]byte(tc.doc))
		if err == nil {
			t.Fatalf("%s: Parse err=nil; want error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: err=%q; want mention of %q", tc.name, err, tc.want)
		}
	}
}
