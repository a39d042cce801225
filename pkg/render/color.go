// pkg/render/color.go
package render

import (
	"image/color"

	"hextest/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// Palette holds the colors used to draw a cluster.
type Palette struct {
	BackgroundColor color.RGBA
	FillColor       color.RGBA
	StrokeColor     color.RGBA
	// StrokeWidth is measured in unit-hexagon space and scales with the cell.
	StrokeWidth float64
}

func DefaultPalette() Palette {
	return Palette{
		BackgroundColor: config.BackgroundColor,
		FillColor:       config.CellFillColor,
		StrokeColor:     config.CellStrokeColor,
		StrokeWidth:     config.StrokeWidth,
	}
}

// applyColor окрашивает вершины в цвет c
func applyColor(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
