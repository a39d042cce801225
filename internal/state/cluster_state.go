// internal/state/cluster_state.go
package state

import (
	"hextest/internal/app"
	"hextest/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

// ClusterState — единственная сцена: кластер с анимацией появления
type ClusterState struct {
	game     *app.Game
	renderer *render.ClusterRenderer
	settled  bool
}

func NewClusterState(game *app.Game, renderer *render.ClusterRenderer) *ClusterState {
	return &ClusterState{
		game:     game,
		renderer: renderer,
	}
}

func (c *ClusterState) Enter() {
	log.WithField("cells", len(c.game.Animation.Cluster())).Debug("cluster scene entered")
}

func (c *ClusterState) Update(deltaTime float64) {
	c.game.Update(deltaTime)
	if !c.settled && c.game.Animation.Settled() {
		c.settled = true
		log.WithField("clock", c.game.Animation.Clock()).Debug("intro animation settled")
	}
}

func (c *ClusterState) Draw(screen *ebiten.Image) {
	p := c.game.Animation.FrameParameters()
	c.renderer.Draw(screen, c.game.Animation.Cluster(), p.Rotation, p.Scale)
}

func (c *ClusterState) Exit() {}
