// Package trapdecomp computes the vertical (trapezoidal) decomposition of a
// simple polygon, together with a point-location search DAG, via randomized
// incremental construction.
package trapdecomp

import "github.com/kestrelgeo/trapdecomp/core"

// Re-exported core types so callers never need to import core directly.
type (
	Vertex        = core.Vertex
	Edge          = core.Edge
	Side          = core.Side
	Trapezoid     = core.Trapezoid
	Decomposition = core.Decomposition
	TaggedEdge    = core.TaggedEdge
	EdgeKind      = core.EdgeKind

	UnsupportedEdge     = core.UnsupportedEdge
	MalformedInput      = core.MalformedInput
	DegeneracyViolation = core.DegeneracyViolation
	InvariantBroken     = core.InvariantBroken
)

const (
	LeftSide  = core.LeftSide
	RightSide = core.RightSide
	Both      = core.Both
	Undefined = core.Undefined
)

const (
	KindPolygon      = core.KindPolygon
	KindVerticalWall = core.KindVerticalWall
)

// DefaultPadding is the bounding-box margin used when Options doesn't
// override it.
const DefaultPadding = core.DefaultPadding

// Options configures a Decompose call.
type Options struct {
	// Seed controls the random edge-insertion order. Two calls with the
	// same edges and the same seed always produce the same decomposition.
	Seed int64
	// Padding is the bounding-box margin; DefaultPadding is used if zero.
	Padding float64
}

// Decompose builds the trapezoidal decomposition of the closed polygon
// described by edges. It recovers from the core's internal panics and
// returns them as ordinary errors (UnsupportedEdge, MalformedInput,
// DegeneracyViolation, InvariantBroken).
func Decompose(edges []Edge, opts Options) (result *Decomposition, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = core.HandleDecomposePanicRecover(r)
		}
	}()

	padding := opts.Padding
	if padding == 0 {
		padding = DefaultPadding
	}

	result = core.Build(edges, opts.Seed, padding)
	return result, nil
}

// ClosedPolygon builds the edge list for a closed vertex chain
// v0 -> v1 -> ... -> v(n-1) -> v0, tagging every edge RightSide (spec §6:
// "callers guarantee the chain is traversed so the interior lies to the
// right").
func ClosedPolygon(vertices []Vertex) []Edge {
	edges := make([]Edge, len(vertices))
	for i, v := range vertices {
		next := vertices[(i+1)%len(vertices)]
		edges[i] = Edge{P1: v, P2: next, Inside: RightSide}
	}
	return edges
}

// SetTracer installs a hook called at each phase boundary (locate, split,
// merge, graft) of every edge insertion performed by a later Decompose
// call. Pass nil to disable tracing. This is a package-level hook, not a
// per-call option, matching the teacher's own use of unconditional trace
// prints during development rather than a threaded-through logger.
func SetTracer(f func(phase string, edge Edge)) {
	core.Tracer = f
}
