// cmd/hextest/main.go
package main

import (
	"time"

	"hextest/internal/app"
	"hextest/internal/config"
	"hextest/internal/state"
	"hextest/internal/utils"
	"hextest/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	// After a stall the animation clock lags wall time by the clipped excess.
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.Defaults()
	if err != nil {
		log.Fatal(err)
	}

	rng := utils.NewPRNGService(0)
	log.WithField("seed", rng.Seed()).Info("starting")

	game, err := app.NewGame(settings, rng)
	if err != nil {
		log.Fatal(err)
	}
	renderer := render.NewClusterRenderer(config.HexSize, config.CellInset, render.DefaultPalette())

	sm := state.NewStateMachine()
	sm.SetState(state.NewClusterState(game, renderer))

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
