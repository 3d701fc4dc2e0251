package core

// Node is a point-location search DAG node. Its Inner field is mutated in
// place on graft (see Graft below) so that every existing parent slot -
// however many there are - observes the replacement without the DAG needing
// to track parent lists itself. This is the same trick the teacher's
// QueryNode{Inner QueryNodeInner} wrapper uses for in-place replacement.
type Node struct {
	Inner NodeInner
}

// NodeInner is the tagged-union payload of a Node: XNode, YNode, or Leaf.
type NodeInner interface {
	isNodeInner()
}

// XNode splits on a vertex's x-coordinate (spec §3/§4.3).
type XNode struct {
	Vertex      Vertex
	Left, Right *Node
}

// YNode splits on above/below an edge.
type YNode struct {
	Edge         Edge
	Below, Above *Node
}

// Leaf is a trapezoid-bearing node. A graft overwrites the whole Inner of
// the node holding it, so a replaced leaf no longer names its old trapezoid.
type Leaf struct {
	Trapezoid *Trapezoid
}

func (XNode) isNodeInner() {}
func (YNode) isNodeInner() {}
func (Leaf) isNodeInner()  {}

// Direction disambiguates ties at an x-node when the queried point's x
// exactly equals the node's vertex (spec §9 open question: "the specified
// rule is prefer the neighbor whose bottom equals the current top... but
// this is an implementation heuristic"). The default, DirLeft, matches
// spec §4.3's stated tie rule ("v.x <= u.x descend left").
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// NewLeaf wraps t in a fresh leaf node and points t's back-link at it.
func NewLeaf(t *Trapezoid) *Node {
	n := &Node{Inner: Leaf{Trapezoid: t}}
	t.leaf = n
	return n
}

// Locate runs the point-location query of spec §4.3 and returns the set of
// trapezoids reached (deduplicated). It is a singleton except when v lies
// exactly on an edge tested by a y-node, or exactly at an x-node's vertex
// with dir disambiguating only the XNode descent, not the YNode tie (which
// per spec always returns both children).
func (n *Node) Locate(v Vertex, dir Direction) []*Trapezoid {
	leaves := n.locate(v, dir)
	out := make([]*Trapezoid, 0, len(leaves))
	seen := make(map[*Trapezoid]bool, len(leaves))
	for _, t := range leaves {
		if t != nil && !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		failInvariant("query", "point location for %v returned no leaf", v)
	}
	return out
}

func (n *Node) locate(v Vertex, dir Direction) []*Trapezoid {
	switch inner := n.Inner.(type) {
	case Leaf:
		return []*Trapezoid{inner.Trapezoid}
	case XNode:
		switch {
		case v.X < inner.Vertex.X:
			return inner.Left.locate(v, dir)
		case v.X > inner.Vertex.X:
			return inner.Right.locate(v, dir)
		case dir == DirRight:
			return inner.Right.locate(v, dir)
		default:
			return inner.Left.locate(v, dir)
		}
	case YNode:
		if inner.Edge.On(v) {
			below := inner.Below.locate(v, dir)
			above := inner.Above.locate(v, dir)
			return append(below, above...)
		}
		if inner.Edge.Above(v) {
			return inner.Above.locate(v, dir)
		}
		return inner.Below.locate(v, dir)
	default:
		failInvariant("query", "unrecognized node kind")
		return nil
	}
}

// Leaves walks the DAG from n, deduplicating shared leaves (spec §9: "DAG,
// not tree... traversals that collect all leaves must deduplicate").
func (n *Node) Leaves() []*Node {
	seen := map[*Node]bool{}
	var out []*Node
	var walk func(*Node)
	walk = func(node *Node) {
		if node == nil || seen[node] {
			return
		}
		seen[node] = true
		switch inner := node.Inner.(type) {
		case Leaf:
			out = append(out, node)
		case XNode:
			walk(inner.Left)
			walk(inner.Right)
		case YNode:
			walk(inner.Below)
			walk(inner.Above)
		}
	}
	walk(n)
	return out
}

// Graft replaces oldLeaf's content in place with newRoot's, so that every
// parent slot already holding a pointer to oldLeaf observes the
// replacement (spec §4.3 "leaf-replacement"/"graft"). oldLeaf's trapezoid
// back-link is cleared; if the new root is itself a leaf, oldLeaf becomes
// the live leaf for its trapezoid.
func Graft(oldLeaf *Node, newRoot *Node) {
	if lf, ok := oldLeaf.Inner.(Leaf); ok && lf.Trapezoid != nil {
		lf.Trapezoid.leaf = nil
	}
	oldLeaf.Inner = newRoot.Inner
	if lf, ok := oldLeaf.Inner.(Leaf); ok {
		lf.Trapezoid.leaf = oldLeaf
	} else {
		retarget(oldLeaf)
	}
}

// retarget fixes up the back-links of any leaves directly under a freshly
// grafted internal node: NewLeaf already pointed each trapezoid at the leaf
// node it created, which is correct as-is, but is re-asserted here for
// clarity and as a guard against future graft logic drifting from that
// invariant.
func retarget(n *Node) {
	switch inner := n.Inner.(type) {
	case XNode:
		assertLeafBackLink(inner.Left)
		assertLeafBackLink(inner.Right)
	case YNode:
		assertLeafBackLink(inner.Below)
		assertLeafBackLink(inner.Above)
	}
}

func assertLeafBackLink(n *Node) {
	if lf, ok := n.Inner.(Leaf); ok && lf.Trapezoid != nil && lf.Trapezoid.leaf != n {
		failInvariantT("graft", lf.Trapezoid, "leaf back-link does not point at its own node")
	}
}

// BuildSubDAG assembles the replacement sub-DAG for a split record over
// edge s, per spec §4.3: a y-node(s) at the core, optionally wrapped in
// x-node(s.end) when a right-rectangle survived, then optionally wrapped in
// x-node(s.start) when a left-rectangle survived.
func BuildSubDAG(rec *SplitRecord, edge Edge) *Node {
	current := &Node{Inner: YNode{Edge: edge, Below: leafFor(rec.Bottom), Above: leafFor(rec.Top)}}

	if rec.Right != nil {
		current = &Node{Inner: XNode{Vertex: edge.End(), Left: current, Right: leafFor(rec.Right)}}
	}
	if rec.Left != nil {
		current = &Node{Inner: XNode{Vertex: edge.Start(), Left: leafFor(rec.Left), Right: current}}
	}
	return current
}

// leafFor returns t's existing live leaf if it already has one (the
// fragment survived a merge and its leaf is shared across split records),
// or creates a fresh leaf otherwise.
func leafFor(t *Trapezoid) *Node {
	if t.leaf != nil {
		return t.leaf
	}
	return NewLeaf(t)
}
