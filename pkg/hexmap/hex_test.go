package hexmap

import (
	"math"
	"testing"
)

func TestNeighbors_AreDistinctAndAdjacent(t *testing.T) {
	h := Hex{Q: 3, R: -2}
	ns := h.Neighbors()
	if len(ns) != 6 {
		t.Fatalf("len(Neighbors())=%d; want 6", len(ns))
	}
	seen := make(map[Hex]struct{})
	for _, n := range ns {
		if d := h.Distance(n); d != 1 {
			t.Fatalf("Distance(%v,%v)=%d; want 1", h, n, d)
		}
		seen[n] = struct{}{}
	}
	if len(seen) != 6 {
		t.Fatalf("distinct neighbors=%d; want 6", len(seen))
	}
}

func TestDistance(t *testing.T) {
	tcs := []struct {
		a, b Hex
		want int
	}{
		{a: Origin, b: Origin, want: 0},
		{a: Origin, b: Hex{Q: 2, R: -1}, want: 2},
		{a: Hex{Q: -1, R: 3}, b: Hex{Q: 2, R: -1}, want: 4},
	}
	for _, tc := range tcs {
		if got := tc.a.Distance(tc.b); got != tc.want {
			t.Fatalf("Distance(%v,%v)=%d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestLayout_NeighborSpacing(t *testing.T) {
	for _, o := range []Orientation{pointyTop, FlatTop} {
		l := Layout{Orientation: o, Size: 2}
		for _, n := range Origin.Neighbors() {
			x, y := l.ToPixel(n)
			if d := math.Hypot(x, y); math.Abs(d-2*Sqrt3) > 1e-9 {
				t.Fatalf("orientation %d: |%v|=%v; want %v", o, n, d, 2*Sqrt3)
			}
		}
	}
}

func TestLayout_FlatTopEastNeighbor(t *testing.T) {
	x, y := Layout{Orientation: FlatTop, Size: 1}.ToPixel(Hex{Q: 1, R: 0})
	if math.Abs(x-1.5) > 1e-9 || math.Abs(y-Sqrt3/2) > 1e-9 {
		t.Fatalf("ToPixel({1,0})=(%v,%v); want (1.5,%v)", x, y, Sqrt3/2)
	}
}
