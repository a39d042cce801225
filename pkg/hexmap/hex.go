// pkg/hexmap/hex.go
package hexmap

// Hex представляет гекс в осевых координатах (Q, R)
type Hex struct {
	Q, R int
}

// Origin is the cell every cluster grows from.
var Origin = Hex{}

// NeighborDirections defines the 6 possible directions from a hex, starting from East and going counter-clockwise.
var NeighborDirections = []Hex{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// Neighbors возвращает всех соседей гекса в порядке NeighborDirections
func (h Hex) Neighbors() []Hex {
	neighbors := make([]Hex, 0, len(NeighborDirections))
	for _, d := range NeighborDirections {
		neighbors = append(neighbors, h.Add(d))
	}
	return neighbors
}

// Add возвращает сумму двух гексов
func (h Hex) Add(other Hex) Hex {
	return Hex{
		Q: h.Q + other.Q,
		R: h.R + other.R,
	}
}

// Distance вычисляет расстояние между гексами
func (h Hex) Distance(to Hex) int {
	dq := h.Q - to.Q
	dr := h.R - to.R
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}
