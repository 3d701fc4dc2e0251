package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeYAtX(t *testing.T) {
	e := Edge{P1: Vertex{0, 0}, P2: Vertex{10, 10}}
	y, ok := e.YAtX(5)
	assert.True(t, ok)
	assert.Equal(t, 5.0, y)

	_, ok = Edge{P1: Vertex{2, 0}, P2: Vertex{2, 10}}.YAtX(2)
	assert.False(t, ok)
}

func TestEdgeYAtXSnapsNearIntegers(t *testing.T) {
	e := Edge{P1: Vertex{0, 0}, P2: Vertex{3, 1}}
	y, ok := e.YAtX(2.99999999)
	assert.True(t, ok)
	assert.Equal(t, 1.0, y)
}

func TestEdgeAboveBelow(t *testing.T) {
	e := Edge{P1: Vertex{0, 0}, P2: Vertex{10, 0}}
	assert.True(t, e.Above(Vertex{5, 1}))
	assert.False(t, e.Above(Vertex{5, -1}))
	assert.True(t, e.Below(Vertex{5, -1}))
	assert.False(t, e.Below(Vertex{5, 1}))
}

func TestEdgeOn(t *testing.T) {
	e := Edge{P1: Vertex{0, 0}, P2: Vertex{10, 0}}
	assert.True(t, e.On(Vertex{5, 0}))
	assert.True(t, e.On(Vertex{0, 0}))
	assert.False(t, e.On(Vertex{10, 0})) // half-open: end excluded
	assert.False(t, e.On(Vertex{11, 0}))
	assert.False(t, e.On(Vertex{5, 1}))
}

func TestEdgeIntersect(t *testing.T) {
	a := Edge{P1: Vertex{0, 0}, P2: Vertex{10, 10}}
	b := Edge{P1: Vertex{0, 10}, P2: Vertex{10, 0}}
	assert.True(t, a.Intersect(b))

	c := Edge{P1: Vertex{0, 1}, P2: Vertex{10, 11}}
	assert.False(t, a.Intersect(c)) // parallel

	d := Edge{P1: Vertex{20, 20}, P2: Vertex{30, 30}}
	assert.False(t, a.Intersect(d)) // collinear but disjoint range, parallel vectors anyway
}

func TestEdgeStartEnd(t *testing.T) {
	e := Edge{P1: Vertex{5, 0}, P2: Vertex{1, 1}}
	assert.Equal(t, Vertex{1, 1}, e.Start())
	assert.Equal(t, Vertex{5, 0}, e.End())
}
