package core

import (
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/kestrelgeo/trapdecomp/internal/dbg"
)

// Trapezoid is a region of the trapezoidal map bounded above/below by two
// non-vertical edges and on the left/right by vertical walls at LeftP.X and
// RightP.X (spec §3). NeighborsLeft/NeighborsRight are unordered multisets
// of the trapezoids touching the corresponding wall.
type Trapezoid struct {
	LeftP, RightP Vertex
	Top, Bottom   Edge

	NeighborsLeft, NeighborsRight NeighborSet

	// leaf is the unique live DAG leaf pointing at this trapezoid (spec
	// invariant 3). It is nil until the trapezoid is grafted into the DAG,
	// and cleared when the trapezoid dies.
	leaf *Node
}

// Leaf returns the trapezoid's current live DAG leaf, or nil if it has none
// (not yet grafted, or already dead).
func (t *Trapezoid) Leaf() *Node { return t.leaf }

// NeighborSet is an unordered multiset of trapezoids. A plain slice is used
// rather than a map so that duplicate-safe Add/Remove (spec §9: "neighbor
// multisets, not sets") is just slice append/splice, without needing a
// counted-map for what is, outside of brief mid-split transients, really a
// set of size at most two.
type NeighborSet []*Trapezoid

// Add appends t to the set, duplicates allowed.
func (s *NeighborSet) Add(t *Trapezoid) {
	*s = append(*s, t)
}

// Remove deletes the first occurrence of t, if any.
func (s *NeighborSet) Remove(t *Trapezoid) {
	for i, n := range *s {
		if n == t {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return
		}
	}
}

// Replace swaps the first occurrence of old for replacement, or appends
// replacement if old isn't present.
func (s *NeighborSet) Replace(old, replacement *Trapezoid) {
	for i, n := range *s {
		if n == old {
			(*s)[i] = replacement
			return
		}
	}
	s.Add(replacement)
}

// Contains reports whether t is a member of the set.
func (s NeighborSet) Contains(t *Trapezoid) bool {
	for _, n := range s {
		if n == t {
			return true
		}
	}
	return false
}

// Any returns an arbitrary member, or nil if the set is empty.
func (s NeighborSet) Any() *Trapezoid {
	if len(s) == 0 {
		return nil
	}
	return s[0]
}

func (s NeighborSet) clone() NeighborSet {
	out := make(NeighborSet, len(s))
	copy(out, s)
	return out
}

// ContainsVertex reports whether v lies strictly inside the trapezoid: in
// the open x-range (LeftP.X, RightP.X) and strictly between Bottom and Top.
func (t *Trapezoid) ContainsVertex(v Vertex) bool {
	if !(t.LeftP.X < v.X && v.X < t.RightP.X) {
		return false
	}
	return t.Top.Below(v) && t.Bottom.Above(v)
}

// TopLeft, TopRight, BottomLeft, BottomRight evaluate the top/bottom edges
// at the trapezoid's left/right wall x-coordinates, giving the trapezoid's
// four corners (spec §4.2 derived accessors).
func (t *Trapezoid) TopLeft() Vertex    { return t.cornerOn(t.Top, t.LeftP.X) }
func (t *Trapezoid) TopRight() Vertex   { return t.cornerOn(t.Top, t.RightP.X) }
func (t *Trapezoid) BottomLeft() Vertex { return t.cornerOn(t.Bottom, t.LeftP.X) }
func (t *Trapezoid) BottomRight() Vertex {
	return t.cornerOn(t.Bottom, t.RightP.X)
}

func (t *Trapezoid) cornerOn(e Edge, x float64) Vertex {
	y, ok := e.YAtX(x)
	if !ok {
		failInvariantT("corner", t, "boundary edge is vertical at x=%v", x)
	}
	return Vertex{x, y}
}

// LeftEdge returns the trapezoid's left vertical wall as a synthetic Edge,
// or nil if the wall degenerates to a point (the trapezoid comes to a point
// on the left, e.g. a triangular wedge).
func (t *Trapezoid) LeftEdge() *Edge {
	top, bottom := t.TopLeft(), t.BottomLeft()
	if top == bottom {
		return nil
	}
	return &Edge{P1: bottom, P2: top, Inside: Both}
}

// RightEdge is the right-wall counterpart to LeftEdge.
func (t *Trapezoid) RightEdge() *Edge {
	top, bottom := t.TopRight(), t.BottomRight()
	if top == bottom {
		return nil
	}
	return &Edge{P1: top, P2: bottom, Inside: Both}
}

// HasVertex reports whether v is one of the (up to) six vertices that define
// the trapezoid: the two wall anchors, or an endpoint of its top or bottom
// edge. Those endpoints may lie outside the trapezoid's own x-range, and the
// synthetic corners of the vertical walls are not checked.
func (t *Trapezoid) HasVertex(v Vertex) bool {
	if t.LeftP == v || t.RightP == v {
		return true
	}
	if t.Top.HasVertex(v) || t.Bottom.HasVertex(v) {
		return true
	}
	return false
}

func (t *Trapezoid) sides() []Edge {
	sides := []Edge{t.Top, t.Bottom}
	if e := t.LeftEdge(); e != nil {
		sides = append(sides, *e)
	}
	if e := t.RightEdge(); e != nil {
		sides = append(sides, *e)
	}
	return sides
}

// IntersectsOrContainsEndpoint reports whether edge crosses the trapezoid's
// boundary, or either of edge's endpoints lies strictly inside it. This is
// the frontier-extension test of spec §4.5 step 1.
func (t *Trapezoid) IntersectsOrContainsEndpoint(edge Edge) bool {
	if t.ContainsVertex(edge.Start()) || t.ContainsVertex(edge.End()) {
		return true
	}
	for _, side := range t.sides() {
		if side.Intersect(edge) {
			return true
		}
	}
	return false
}

// DebugName returns a memoized, human-readable identifier for log/trace
// output (adapted from the teacher's Trapezoid.DbgName), colored red when
// the trapezoid is degenerate on a side (a triangular wedge) and green
// otherwise.
func (t *Trapezoid) DebugName() string {
	name := dbg.Name(t)
	if t.TopLeft() == t.BottomLeft() || t.TopRight() == t.BottomRight() {
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}

func (t *Trapezoid) String() string {
	return fmt.Sprintf("Trapezoid %s {leftp=%v rightp=%v top=%v bottom=%v}",
		t.DebugName(), t.LeftP, t.RightP, t.Top, t.Bottom)
}

// splitClass is the outcome of classifying a trapezoid against a candidate
// edge, per spec §4.2.
type splitClass int

const (
	classDisjoint splitClass = iota
	classFullyContained
	classStartInside
	classEndInside
	classTraversing
)

func (t *Trapezoid) classify(edge Edge) splitClass {
	startIn := t.ContainsVertex(edge.Start())
	endIn := t.ContainsVertex(edge.End())
	switch {
	case startIn && endIn:
		return classFullyContained
	case startIn:
		return classStartInside
	case endIn:
		return classEndInside
	default:
		for _, side := range t.sides() {
			if side.Intersect(edge) {
				return classTraversing
			}
		}
		return classDisjoint
	}
}

// SplitRecord is the result of splitting one trapezoid over an edge: the
// original trapezoid plus its replacement fragments (spec §4.2). Left and
// Right are nil unless the split produced a leftover rectangle on that side
// (the one- and two-endpoint-inside cases; a traversing split leaves none).
type SplitRecord struct {
	Original          *Trapezoid
	Top, Bottom       *Trapezoid
	Left, Right       *Trapezoid
}

// Split splits t over edge according to its intersection class, or returns
// nil if edge doesn't touch t at all.
func (t *Trapezoid) Split(edge Edge) *SplitRecord {
	switch t.classify(edge) {
	case classDisjoint:
		return nil
	case classFullyContained:
		return t.splitFullyContained(edge)
	case classStartInside:
		return t.splitStartInside(edge)
	case classEndInside:
		return t.splitEndInside(edge)
	case classTraversing:
		return t.splitTraversing(edge)
	}
	return nil
}

// splitFullyContained handles an edge entirely inside the trapezoid (spec
// §4.2, S4): four fragments, left-rectangle | top/bottom | right-rectangle.
func (t *Trapezoid) splitFullyContained(edge Edge) *SplitRecord {
	start, end := edge.Start(), edge.End()

	left := &Trapezoid{
		LeftP: t.LeftP, RightP: start,
		Top: t.Top, Bottom: t.Bottom,
		NeighborsLeft: t.NeighborsLeft.clone(),
	}
	for _, n := range left.NeighborsLeft {
		n.NeighborsRight.Replace(t, left)
	}

	right := &Trapezoid{
		LeftP: end, RightP: t.RightP,
		Top: t.Top, Bottom: t.Bottom,
		NeighborsRight: t.NeighborsRight.clone(),
	}
	for _, n := range right.NeighborsRight {
		n.NeighborsLeft.Replace(t, right)
	}

	top := &Trapezoid{LeftP: start, RightP: end, Top: t.Top, Bottom: edge}
	bottom := &Trapezoid{LeftP: start, RightP: end, Top: edge, Bottom: t.Bottom}

	left.NeighborsRight = NeighborSet{top, bottom}
	right.NeighborsLeft = NeighborSet{top, bottom}
	top.NeighborsLeft = NeighborSet{left}
	top.NeighborsRight = NeighborSet{right}
	bottom.NeighborsLeft = NeighborSet{left}
	bottom.NeighborsRight = NeighborSet{right}

	return &SplitRecord{Original: t, Top: top, Bottom: bottom, Left: left, Right: right}
}

// splitStartInside peels off a left-rectangle ending at edge's start vertex,
// then recursively splits the remaining piece (spec §4.2: "split off a
// left-rectangle ending at the inside endpoint's x, then recursively split
// the remaining right piece as a traversing case").
func (t *Trapezoid) splitStartInside(edge Edge) *SplitRecord {
	start := edge.Start()

	left := &Trapezoid{
		LeftP: t.LeftP, RightP: start,
		Top: t.Top, Bottom: t.Bottom,
		NeighborsLeft: t.NeighborsLeft.clone(),
	}
	for _, n := range left.NeighborsLeft {
		n.NeighborsRight.Replace(t, left)
	}

	rest := &Trapezoid{
		LeftP: start, RightP: t.RightP,
		Top: t.Top, Bottom: t.Bottom,
		NeighborsLeft:  NeighborSet{left},
		NeighborsRight: t.NeighborsRight.clone(),
	}
	left.NeighborsRight = NeighborSet{rest}
	for _, n := range rest.NeighborsRight {
		n.NeighborsLeft.Replace(t, rest)
	}

	sub := rest.Split(edge)
	if sub == nil {
		failInvariantT("split", t, "start-inside recursion produced no record")
	}
	return &SplitRecord{Original: t, Top: sub.Top, Bottom: sub.Bottom, Left: left, Right: sub.Right}
}

// splitEndInside is the mirror image of splitStartInside, peeling a
// right-rectangle starting at edge's end vertex.
func (t *Trapezoid) splitEndInside(edge Edge) *SplitRecord {
	end := edge.End()

	right := &Trapezoid{
		LeftP: end, RightP: t.RightP,
		Top: t.Top, Bottom: t.Bottom,
		NeighborsRight: t.NeighborsRight.clone(),
	}
	for _, n := range right.NeighborsRight {
		n.NeighborsLeft.Replace(t, right)
	}

	rest := &Trapezoid{
		LeftP: t.LeftP, RightP: end,
		Top: t.Top, Bottom: t.Bottom,
		NeighborsLeft:  t.NeighborsLeft.clone(),
		NeighborsRight: NeighborSet{right},
	}
	right.NeighborsLeft = NeighborSet{rest}
	for _, n := range rest.NeighborsLeft {
		n.NeighborsRight.Replace(t, rest)
	}

	sub := rest.Split(edge)
	if sub == nil {
		failInvariantT("split", t, "end-inside recursion produced no record")
	}
	return &SplitRecord{Original: t, Top: sub.Top, Bottom: sub.Bottom, Left: sub.Left, Right: right}
}

// edgeYAtWall returns the y-value where edge crosses the vertical line
// x = wall.X, preferring wall's own y exactly when wall is an endpoint of
// edge (spec §4.2: "prefer using an actual endpoint of s over a synthetic
// intersection vertex whenever they coincide with the same x").
func edgeYAtWall(edge Edge, wall Vertex) float64 {
	if edge.HasVertex(wall) {
		return wall.Y
	}
	y, ok := edge.YAtX(wall.X)
	if !ok {
		failInvariant("split", "traversing edge is vertical at x=%v", wall.X)
	}
	return y
}

// splitTraversing handles an edge crossing clear across the trapezoid from
// wall to wall (spec §4.2 "traversing" case and §4.5's core split step).
func (t *Trapezoid) splitTraversing(edge Edge) *SplitRecord {
	leftCross := edgeYAtWall(edge, t.LeftP)
	rightCross := edgeYAtWall(edge, t.RightP)

	leftTop, leftBottom := wallCorners(t.LeftP, leftCross)
	rightTop, rightBottom := wallCorners(t.RightP, rightCross)

	top := &Trapezoid{LeftP: leftTop, RightP: rightTop, Top: t.Top, Bottom: edge}
	bottom := &Trapezoid{LeftP: leftBottom, RightP: rightBottom, Top: edge, Bottom: t.Bottom}

	for _, n := range t.NeighborsLeft {
		n.NeighborsRight.Remove(t)
		attach(n, top, bottom, t.LeftP.X, leftCross, true)
	}
	for _, n := range t.NeighborsRight {
		n.NeighborsLeft.Remove(t)
		attach(n, top, bottom, t.RightP.X, rightCross, false)
	}

	return &SplitRecord{Original: t, Top: top, Bottom: bottom}
}

// wallCorners assigns the real wall vertex to whichever of (top, bottom)
// fragment it topologically sits in, and synthesizes the other fragment's
// corner at the same x.
func wallCorners(wall Vertex, crossY float64) (top, bottom Vertex) {
	synth := Vertex{wall.X, crossY}
	if wall.Y >= crossY {
		return wall, synth
	}
	return synth, wall
}

// attach links neighbor n (on the indicated side) to whichever of top/bottom
// its interior overlaps, per spec §4.2: "partition the original's left
// neighbors between top and bottom fragments according to whether each
// left-neighbor's interior lies above s, below s, or straddles s
// (straddlers are linked to both)". isLeft selects left-wall vs right-wall
// linking direction.
func attach(n, top, bottom *Trapezoid, x, crossY float64, isLeft bool) {
	nTop, ok1 := n.Top.YAtX(x)
	nBottom, ok2 := n.Bottom.YAtX(x)
	if !ok1 || !ok2 {
		failInvariantT("split", n, "neighbor boundary vertical at x=%v", x)
	}

	link := func(frag *Trapezoid) {
		if isLeft {
			n.NeighborsRight.Add(frag)
			frag.NeighborsLeft.Add(n)
		} else {
			n.NeighborsLeft.Add(frag)
			frag.NeighborsRight.Add(n)
		}
	}

	switch {
	case nBottom >= crossY-Epsilon:
		link(top)
	case nTop <= crossY+Epsilon:
		link(bottom)
	default:
		link(top)
		link(bottom)
	}
}

// CanMergeRight reports whether t (on the left) can merge with other (on
// the right): spec §4.2's merge legality test.
func (t *Trapezoid) CanMergeRight(other *Trapezoid) bool {
	if t.Top != other.Top || t.Bottom != other.Bottom {
		return false
	}
	if len(t.NeighborsRight) != 1 || t.NeighborsRight.Any() != other {
		return false
	}
	if len(other.NeighborsLeft) != 1 || other.NeighborsLeft.Any() != t {
		return false
	}
	wall := t.RightP
	return !t.Top.HasVertex(wall) && !t.Bottom.HasVertex(wall)
}

// MergeRight merges t with its sole right neighbor other, returning the
// combined trapezoid. Callers must check CanMergeRight first.
func (t *Trapezoid) MergeRight(other *Trapezoid) *Trapezoid {
	merged := &Trapezoid{
		LeftP: t.LeftP, RightP: other.RightP,
		Top: t.Top, Bottom: t.Bottom,
		NeighborsLeft:  t.NeighborsLeft.clone(),
		NeighborsRight: other.NeighborsRight.clone(),
	}
	for _, n := range merged.NeighborsLeft {
		n.NeighborsRight.Replace(t, merged)
	}
	for _, n := range merged.NeighborsRight {
		n.NeighborsLeft.Replace(other, merged)
	}
	return merged
}
