package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertUniversalInvariants checks spec §8's universal invariants 1-3 and 7
// against every live trapezoid of d.
func assertUniversalInvariants(t *testing.T, d *Decomposition) {
	t.Helper()
	for _, tp := range d.Trapezoids() {
		assert.Less(t, tp.LeftP.X, tp.RightP.X, "trapezoid %s has leftp.x >= rightp.x", tp.DebugName())

		assert.GreaterOrEqual(t, tp.TopLeft().Y, tp.BottomLeft().Y)
		assert.GreaterOrEqual(t, tp.TopRight().Y, tp.BottomRight().Y)

		for _, n := range tp.NeighborsRight {
			assert.True(t, n.NeighborsLeft.Contains(tp), "neighbor symmetry broken on the right side of %s", tp.DebugName())
		}
		for _, n := range tp.NeighborsLeft {
			assert.True(t, n.NeighborsRight.Contains(tp), "neighbor symmetry broken on the left side of %s", tp.DebugName())
		}

		leaf := tp.Leaf()
		if assert.NotNil(t, leaf, "live trapezoid %s has no leaf", tp.DebugName()) {
			lf, ok := leaf.Inner.(Leaf)
			assert.True(t, ok)
			assert.Same(t, tp, lf.Trapezoid)
		}
	}
}

func trianglePolygon() []Edge {
	p1, p2, p3 := Vertex{1, 1}, Vertex{5, 1}, Vertex{3, 5}
	return []Edge{
		{P1: p1, P2: p2, Inside: RightSide},
		{P1: p2, P2: p3, Inside: RightSide},
		{P1: p3, P2: p1, Inside: RightSide},
	}
}

// quadrilateralPolygon is a convex, counterclockwise quadrilateral with no
// vertical sides (every polygon edge must have distinct endpoint x-coordinates).
func quadrilateralPolygon() []Edge {
	a, b, c, d := Vertex{0, 0}, Vertex{4, 1}, Vertex{3, 5}, Vertex{-1, 4}
	return []Edge{
		{P1: a, P2: b, Inside: RightSide},
		{P1: b, P2: c, Inside: RightSide},
		{P1: c, P2: d, Inside: RightSide},
		{P1: d, P2: a, Inside: RightSide},
	}
}

// concavePolygon has a reflex vertex at x=3 that forces the decomposition to
// introduce a vertical wall there. Endpoints are perturbed off the axes so no
// edge is vertical and no two vertices share an x-coordinate.
func concavePolygon() []Edge {
	p1, p2, p3, reflex, p5 := Vertex{0, 0}, Vertex{6, 0.2}, Vertex{6.3, 6}, Vertex{3, 3}, Vertex{-0.3, 6.1}
	return []Edge{
		{P1: p1, P2: p2, Inside: RightSide},
		{P1: p2, P2: p3, Inside: RightSide},
		{P1: p3, P2: reflex, Inside: RightSide},
		{P1: reflex, P2: p5, Inside: RightSide},
		{P1: p5, P2: p1, Inside: RightSide},
	}
}
