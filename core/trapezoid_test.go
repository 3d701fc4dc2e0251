package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box() *Trapezoid {
	top := Edge{P1: Vertex{0, 10}, P2: Vertex{10, 10}, Inside: Undefined}
	bottom := Edge{P1: Vertex{0, 0}, P2: Vertex{10, 0}, Inside: Undefined}
	return &Trapezoid{LeftP: Vertex{0, 10}, RightP: Vertex{10, 10}, Top: top, Bottom: bottom}
}

func TestTrapezoidContainsVertex(t *testing.T) {
	b := box()
	assert.True(t, b.ContainsVertex(Vertex{5, 5}))
	assert.False(t, b.ContainsVertex(Vertex{0, 5}))  // on left wall
	assert.False(t, b.ContainsVertex(Vertex{5, 10})) // on top
	assert.False(t, b.ContainsVertex(Vertex{15, 5})) // outside
}

func TestTrapezoidCorners(t *testing.T) {
	b := box()
	assert.Equal(t, Vertex{0, 10}, b.TopLeft())
	assert.Equal(t, Vertex{10, 10}, b.TopRight())
	assert.Equal(t, Vertex{0, 0}, b.BottomLeft())
	assert.Equal(t, Vertex{10, 0}, b.BottomRight())
}

func TestSplitFullyContained(t *testing.T) {
	b := box()
	edge := Edge{P1: Vertex{3, 3}, P2: Vertex{7, 7}, Inside: Both}

	rec := b.Split(edge)
	require.NotNil(t, rec)
	require.NotNil(t, rec.Left)
	require.NotNil(t, rec.Right)
	require.NotNil(t, rec.Top)
	require.NotNil(t, rec.Bottom)

	assert.Equal(t, b.LeftP, rec.Left.LeftP)
	assert.Equal(t, edge.Start(), rec.Left.RightP)
	assert.Equal(t, edge.End(), rec.Right.LeftP)
	assert.Equal(t, b.RightP, rec.Right.RightP)

	assert.Equal(t, edge, rec.Top.Bottom)
	assert.Equal(t, edge, rec.Bottom.Top)

	assert.True(t, rec.Left.NeighborsRight.Contains(rec.Top))
	assert.True(t, rec.Left.NeighborsRight.Contains(rec.Bottom))
	assert.True(t, rec.Top.NeighborsLeft.Contains(rec.Left))
	assert.True(t, rec.Top.NeighborsRight.Contains(rec.Right))
}

func TestSplitStartInside(t *testing.T) {
	b := box()
	// one endpoint (2,2) strictly inside, the other (10,10) exactly on the
	// box's top-right corner, so not strictly inside: the piece right of x=2
	// is split recursively as the traversing case and no right rectangle is
	// left over.
	edge := Edge{P1: Vertex{2, 2}, P2: Vertex{10, 10}, Inside: Both}

	rec := b.Split(edge)
	require.NotNil(t, rec)
	require.NotNil(t, rec.Left)
	assert.Equal(t, b.LeftP, rec.Left.LeftP)
	assert.Equal(t, edge.Start(), rec.Left.RightP)
	assert.Nil(t, rec.Right)
}

func TestSplitTraversing(t *testing.T) {
	b := box()
	edge := Edge{P1: Vertex{-5, -5}, P2: Vertex{20, 20}, Inside: Both}
	// clip conceptually: within [0,10] this line goes from (0,0) to (10,10)

	rec := b.Split(edge)
	require.NotNil(t, rec)
	assert.Nil(t, rec.Left)
	assert.Nil(t, rec.Right)
	require.NotNil(t, rec.Top)
	require.NotNil(t, rec.Bottom)
	assert.Equal(t, b.LeftP.X, rec.Top.LeftP.X)
	assert.Equal(t, b.RightP.X, rec.Top.RightP.X)
}

func TestCanMergeRight(t *testing.T) {
	top := Edge{P1: Vertex{0, 10}, P2: Vertex{10, 10}, Inside: Undefined}
	bottom := Edge{P1: Vertex{0, 0}, P2: Vertex{10, 0}, Inside: Undefined}

	left := &Trapezoid{LeftP: Vertex{0, 10}, RightP: Vertex{5, 10}, Top: top, Bottom: bottom}
	right := &Trapezoid{LeftP: Vertex{5, 10}, RightP: Vertex{10, 10}, Top: top, Bottom: bottom}
	left.NeighborsRight = NeighborSet{right}
	right.NeighborsLeft = NeighborSet{left}

	assert.True(t, left.CanMergeRight(right))

	merged := left.MergeRight(right)
	assert.Equal(t, left.LeftP, merged.LeftP)
	assert.Equal(t, right.RightP, merged.RightP)
}

func TestCannotMergeAcrossRealWall(t *testing.T) {
	top := Edge{P1: Vertex{0, 10}, P2: Vertex{5, 10}, Inside: LeftSide}
	bottom := Edge{P1: Vertex{0, 0}, P2: Vertex{10, 0}, Inside: RightSide}

	left := &Trapezoid{LeftP: Vertex{0, 10}, RightP: Vertex{5, 10}, Top: top, Bottom: bottom}
	right := &Trapezoid{LeftP: Vertex{5, 10}, RightP: Vertex{10, 10}, Top: top, Bottom: bottom}
	left.NeighborsRight = NeighborSet{right}
	right.NeighborsLeft = NeighborSet{left}

	// The wall vertex (5,10) is an endpoint of top, so it's real: not mergeable.
	assert.False(t, left.CanMergeRight(right))
}

func TestNeighborSetDuplicateSafe(t *testing.T) {
	a, b := &Trapezoid{}, &Trapezoid{}
	var s NeighborSet
	s.Add(a)
	s.Add(a)
	s.Add(b)
	assert.Len(t, s, 3)

	s.Remove(a)
	assert.Len(t, s, 2)
	assert.True(t, s.Contains(a))
	assert.True(t, s.Contains(b))
}
