// internal/app/game.go
package app

import (
	"hextest/internal/config"
	"hextest/pkg/hexmap"

	log "github.com/sirupsen/logrus"
)

// Game holds the demo's model: one generated cluster and its animation.
type Game struct {
	Animation *Animation
}

// ClusterOptionsFrom converts decoded settings.
func ClusterOptionsFrom(s config.ClusterSettings) hexmap.ClusterOptions {
	return hexmap.ClusterOptions{
		MaxIterations:     s.MaxIterations,
		AcceptProbability: s.AcceptProbability,
	}
}

// NewGame generates the cluster once; it is not touched again afterwards.
func NewGame(settings config.Settings, rng hexmap.RandomSource) (*Game, error) {
	cluster := hexmap.GenerateCluster(rng, ClusterOptionsFrom(settings.Cluster))
	animation, err := NewAnimation(cluster, AnimationOptionsFrom(settings.Animation))
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"cells":  len(cluster),
		"radius": cluster.Radius(),
		"easing": settings.Animation.Easing,
	}).Info("cluster generated")

	return &Game{Animation: animation}, nil
}

// Update продвигает часы анимации
func (g *Game) Update(deltaTime float64) {
	g.Animation.Advance(deltaTime)
}
