// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 600
	ScreenHeight = 600
	WindowTitle  = "Hextest"

	HexSize      = 30.0 // пикселей на единицу сетки
	CellInset    = 0.9  // зазор между соседними гексами
	MaxDeltaTime = 0.06
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	CellFillColor   = color.RGBA{128, 128, 128, 255}
	CellStrokeColor = color.RGBA{230, 230, 230, 255}
	StrokeWidth     = 0.02 // в единицах сетки, до масштабирования
)
