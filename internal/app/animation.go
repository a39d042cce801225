// internal/app/animation.go
package app

import (
	"fmt"
	"math"
	"sort"

	"hextest/internal/config"
	"hextest/internal/utils"
	"hextest/pkg/hexmap"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FrameParams is the transform shared by every cell in one frame.
type FrameParams struct {
	Rotation float64 // радианы
	Scale    float64
}

// AnimationOptions describes the intro ease: the cluster spins from -Arc
// to 0 while growing from StartScale to 1 over Duration seconds.
type AnimationOptions struct {
	Duration   float64
	Arc        float64
	StartScale float64
	Easing     string
}

func DefaultAnimationOptions() AnimationOptions {
	return AnimationOptions{
		Duration:   1.0,
		Arc:        math.Pi,
		StartScale: 0.2,
		Easing:     "linear",
	}
}

// AnimationOptionsFrom converts decoded settings.
func AnimationOptionsFrom(s config.AnimationSettings) AnimationOptions {
	return AnimationOptions{
		Duration:   s.Duration,
		Arc:        s.Arc,
		StartScale: s.StartScale,
		Easing:     s.Easing,
	}
}

var easings = map[string]ease.TweenFunc{
	"linear":    ease.Linear,
	"inQuad":    ease.InQuad,
	"outQuad":   ease.OutQuad,
	"inOutQuad": ease.InOutQuad,
	"outCubic":  ease.OutCubic,
	"outSine":   ease.OutSine,
}

// EasingNames lists the accepted values for AnimationOptions.Easing.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Animation holds the generated cluster and the animation clock.
// The clock itself is never clamped; only the derived frame parameters are.
type Animation struct {
	cluster hexmap.Cluster
	clock   float64
	opts    AnimationOptions
	tween   *gween.Tween
}

func NewAnimation(cluster hexmap.Cluster, opts AnimationOptions) (*Animation, error) {
	fn, ok := easings[opts.Easing]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q, want one of %v", opts.Easing, EasingNames())
	}
	if opts.Duration <= 0 {
		return nil, fmt.Errorf("animation duration must be positive, got %v", opts.Duration)
	}
	return &Animation{
		cluster: cluster,
		opts:    opts,
		tween:   gween.New(0, 1, float32(opts.Duration), fn),
	}, nil
}

// Advance adds elapsed seconds to the clock.
func (a *Animation) Advance(elapsed float64) {
	a.clock += elapsed
}

// FrameParameters derives rotation and scale from the clock. Once the clock
// passes Duration the result is fixed at rotation 0, scale 1.
func (a *Animation) FrameParameters() FrameParams {
	dt := utils.Clamp(a.clock, 0, a.opts.Duration)
	f := dt / a.opts.Duration
	if a.opts.Easing != "linear" {
		// gween works in float32; linear stays in float64 to keep f exact.
		eased, _ := a.tween.Set(float32(dt))
		f = float64(eased)
	}
	return FrameParams{
		Rotation: utils.Lerp(-a.opts.Arc, 0, f),
		Scale:    utils.Lerp(a.opts.StartScale, 1, f),
	}
}

func (a *Animation) Clock() float64 {
	return a.clock
}

// Settled reports whether the ease has finished.
func (a *Animation) Settled() bool {
	return a.clock >= a.opts.Duration
}

func (a *Animation) Cluster() hexmap.Cluster {
	return a.cluster
}
