// pkg/hexmap/layout.go
package hexmap

// Orientation selects how hexes sit on screen.
type Orientation int

const (
	// pointyTop puts a vertex at the top of every hex; it is the zero Layout.
	pointyTop Orientation = iota
	// FlatTop puts an edge at the top of every hex; vertex 0 points East.
	FlatTop
)

// Layout projects axial coordinates into pixel space.
// Size is the distance from a hex centre to any of its vertices.
type Layout struct {
	Orientation Orientation
	Size        float64
}

// ToPixel конвертирует гекс в пиксельные координаты центра
func (l Layout) ToPixel(h Hex) (x, y float64) {
	q, r := float64(h.Q), float64(h.R)
	if l.Orientation == FlatTop {
		x = l.Size * (3.0 / 2.0 * q)
		y = l.Size * (Sqrt3/2*q + Sqrt3*r)
		return
	}
	x = l.Size * (Sqrt3*q + Sqrt3/2*r)
	y = l.Size * (3.0 / 2.0 * r)
	return
}
