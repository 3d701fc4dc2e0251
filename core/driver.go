package core

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"
)

// Decomposition is the result of running the randomized incremental
// construction to completion: the DAG root and the bounding box it was
// built against (spec §4.6).
type Decomposition struct {
	Root  *Node
	Box   BoundingBox
	Order []Edge // edges in the (shuffled) order they were actually inserted
}

// Build shuffles edges with seed (spec §9: "take a PRNG seed as a parameter
// for reproducibility"), inserts them one by one into a fresh bounding box,
// and returns the finished decomposition.
func Build(edges []Edge, seed int64, padding float64) *Decomposition {
	if len(edges) == 0 {
		failMalformed("polygon has no edges")
	}
	checkGeneralPosition(edges)

	order := make([]Edge, len(edges))
	copy(order, edges)
	rand.New(rand.NewSource(seed)).Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	root, box := BuildInitialDAG(edges, padding)
	for _, e := range order {
		InsertEdge(root, e)
	}

	return &Decomposition{Root: root, Box: box, Order: order}
}

// checkGeneralPosition enforces spec §7's general-position precondition: no
// two polygon vertices share an x-coordinate. Violating this makes x-node
// ordering ambiguous, so it's checked once up front rather than discovered
// mid-insertion as a confusing invariant failure. Endpoints of a vertical
// edge are exempt: that edge is already rejected on its own as an
// UnsupportedEdge once InsertEdge reaches it, so flagging the same vertices
// here would just report the wrong error for the same input.
func checkGeneralPosition(edges []Edge) {
	verticalEndpoint := map[Vertex]bool{}
	for _, e := range edges {
		if e.IsVertical() {
			verticalEndpoint[e.P1] = true
			verticalEndpoint[e.P2] = true
		}
	}

	byX := map[float64]Vertex{}
	check := func(v Vertex) {
		if verticalEndpoint[v] {
			return
		}
		if other, ok := byX[v.X]; ok && other != v {
			failDegenerate("vertices %v and %v share x-coordinate %v", other, v, v.X)
		}
		byX[v.X] = v
	}
	for _, e := range edges {
		check(e.P1)
		check(e.P2)
	}
}

// Trapezoids returns every live trapezoid, read out by walking the DAG's
// deduplicated leaves.
func (d *Decomposition) Trapezoids() []*Trapezoid {
	leaves := d.Root.Leaves()
	out := make([]*Trapezoid, 0, len(leaves))
	for _, n := range leaves {
		out = append(out, n.Inner.(Leaf).Trapezoid)
	}
	return out
}

// EdgeKind tags an output edge as belonging to the input polygon or not
// (spec §4.6/§6). Every non-polygon edge is tagged KindVerticalWall: the
// decomposition-introduced vertical walls and also the bounding box's own
// horizontal top and bottom edges.
type EdgeKind int

const (
	KindVerticalWall EdgeKind = iota
	KindPolygon
)

func (k EdgeKind) String() string {
	if k == KindPolygon {
		return "polygon"
	}
	return "vertical wall"
}

// TaggedEdge is one edge of the final decomposition, tagged per EdgeKind.
type TaggedEdge struct {
	Edge Edge
	Kind EdgeKind
}

type edgeKey struct {
	p1, p2 Vertex
}

func keyOf(e Edge) edgeKey {
	return edgeKey{e.Start(), e.End()}
}

// TaggedEdges reads out the final decomposition as the deduplicated set of
// edges contributed by every live trapezoid's four sides (spec §4.6).
func (d *Decomposition) TaggedEdges() []TaggedEdge {
	seen := map[edgeKey]bool{}
	var out []TaggedEdge

	add := func(e Edge) {
		k := keyOf(e)
		if seen[k] {
			return
		}
		seen[k] = true
		kind := KindVerticalWall
		if e.Inside == LeftSide || e.Inside == RightSide {
			kind = KindPolygon
		}
		out = append(out, TaggedEdge{Edge: e, Kind: kind})
	}

	for _, t := range d.Trapezoids() {
		add(t.Top)
		add(t.Bottom)
		if e := t.LeftEdge(); e != nil {
			add(*e)
		}
		if e := t.RightEdge(); e != nil {
			add(*e)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		ki, kj := keyOf(out[i].Edge), keyOf(out[j].Edge)
		if ki.p1.X != kj.p1.X {
			return ki.p1.X < kj.p1.X
		}
		if ki.p1.Y != kj.p1.Y {
			return ki.p1.Y < kj.p1.Y
		}
		return ki.p2.X < kj.p2.X
	})
	return out
}

// Report renders a colored human-readable summary, in the teacher's style
// of using aurora to distinguish the kinds of thing being printed: green for
// polygon edges, cyan for introduced vertical walls, and trapezoid names
// colored by Trapezoid.DebugName.
func (d *Decomposition) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d trapezoids)\n", aurora.Bold("trapezoidal decomposition"), len(d.Trapezoids()))
	for _, t := range d.Trapezoids() {
		fmt.Fprintf(&b, "  %s\n", t.String())
	}
	for _, te := range d.TaggedEdges() {
		label := aurora.Cyan(te.Kind.String())
		if te.Kind == KindPolygon {
			label = aurora.Green(te.Kind.String())
		}
		fmt.Fprintf(&b, "  %s %v-%v\n", label, te.Edge.P1, te.Edge.P2)
	}
	return b.String()
}
