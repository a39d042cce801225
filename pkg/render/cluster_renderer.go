// pkg/render/cluster_renderer.go
package render

import (
	"image"
	"image/color"

	"hextest/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// UnitHexagon — замкнутая ломаная из 7 точек вокруг центра (0,0),
// плоская сторона сверху. Последняя точка совпадает с первой.
var UnitHexagon = [7][2]float64{
	{1.0000, 0.0000},
	{0.5000, 0.8660},
	{-0.5000, 0.8660},
	{-1.0000, 0.0000},
	{-0.5000, -0.8660},
	{0.5000, -0.8660},
	{1.0000, -0.0000},
}

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ClusterRenderer draws every cell of a cluster under one shared
// rotation/scale transform, centred in the viewport.
type ClusterRenderer struct {
	layout   hexmap.Layout
	hexSize  float64
	inset    float64
	palette  Palette
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
}

// NewClusterRenderer: hexSize is pixels per grid unit at scale 1, inset
// shrinks each cell around its centre so neighbors do not touch.
func NewClusterRenderer(hexSize, inset float64, palette Palette) *ClusterRenderer {
	return &ClusterRenderer{
		layout:   hexmap.Layout{Orientation: hexmap.FlatTop, Size: 1},
		hexSize:  hexSize,
		inset:    inset,
		palette:  palette,
		fillVs:   make([]ebiten.Vertex, 0, 18),
		fillIs:   make([]uint16, 0, 18),
		strokeVs: make([]ebiten.Vertex, 0, 36),
		strokeIs: make([]uint16, 0, 36),
	}
}

// CellGeoM maps unit-hexagon points of cell h to screen pixels.
// Operations run innermost first: inset, move to the cell centre, grid to
// pixels, frame scale, frame rotation, move to the viewport centre.
func (r *ClusterRenderer) CellGeoM(h hexmap.Hex, rotation, scale float64, width, height int) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(r.inset, r.inset)
	g.Translate(r.layout.ToPixel(h))
	g.Scale(r.hexSize*scale, r.hexSize*scale)
	g.Rotate(rotation)
	g.Translate(float64(width)/2, float64(height)/2)
	return g
}

// Draw clears the screen and draws each cell as a filled hexagon with a
// bevel-joined outline.
func (r *ClusterRenderer) Draw(screen *ebiten.Image, cells []hexmap.Hex, rotation, scale float64) {
	screen.Fill(r.palette.BackgroundColor)

	bounds := screen.Bounds()
	strokeWidth := float32(r.palette.StrokeWidth * r.inset * r.hexSize * scale)
	for _, h := range cells {
		path := r.cellPath(r.CellGeoM(h, rotation, scale, bounds.Dx(), bounds.Dy()))
		r.drawFill(screen, path)
		r.drawOutline(screen, path, strokeWidth)
	}
}

func (r *ClusterRenderer) cellPath(g ebiten.GeoM) *vector.Path {
	path := &vector.Path{}
	// Close замыкает контур, поэтому последнюю точку не добавляем
	for i, pt := range UnitHexagon[:len(UnitHexagon)-1] {
		x, y := g.Apply(pt[0], pt[1])
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()
	return path
}

func (r *ClusterRenderer) drawFill(target *ebiten.Image, path *vector.Path) {
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	applyColor(r.fillVs, r.palette.FillColor)
	target.DrawTriangles(r.fillVs, r.fillIs, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *ClusterRenderer) drawOutline(target *ebiten.Image, path *vector.Path, width float32) {
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinBevel,
	})
	applyColor(r.strokeVs, r.palette.StrokeColor)
	target.DrawTriangles(r.strokeVs, r.strokeIs, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
