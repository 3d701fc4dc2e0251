package core

// DefaultPadding is the bounding-rectangle margin used when the caller
// doesn't specify one. Spec §4.4 calls 2 "small constant... suffices",
// matching the reference implementation's BoundingBox.around_vertices.
const DefaultPadding = 2

// BoundingBox is the enclosing rectangle computed from a polygon's edges,
// padded on every side (spec §4.4).
type BoundingBox struct {
	Min, Max    Vertex
	Top, Bottom Edge
}

// ComputeBoundingBox returns [xmin-p, xmax+p] x [ymin-p, ymax+p] over edges'
// endpoints, along with the two horizontal box edges tagged Undefined.
func ComputeBoundingBox(edges []Edge, padding float64) BoundingBox {
	if len(edges) == 0 {
		failMalformed("cannot compute a bounding box from zero edges")
	}

	first := edges[0].P1
	minX, maxX := first.X, first.X
	minY, maxY := first.Y, first.Y
	for _, e := range edges {
		for _, v := range [2]Vertex{e.P1, e.P2} {
			if v.X < minX {
				minX = v.X
			}
			if v.X > maxX {
				maxX = v.X
			}
			if v.Y < minY {
				minY = v.Y
			}
			if v.Y > maxY {
				maxY = v.Y
			}
		}
	}

	min := Vertex{minX - padding, minY - padding}
	max := Vertex{maxX + padding, maxY + padding}
	top := Edge{P1: Vertex{min.X, max.Y}, P2: Vertex{max.X, max.Y}, Inside: Undefined}
	bottom := Edge{P1: Vertex{min.X, min.Y}, P2: Vertex{max.X, min.Y}, Inside: Undefined}
	return BoundingBox{Min: min, Max: max, Top: top, Bottom: bottom}
}

// InitialTrapezoid builds the single trapezoid spanning the whole box. Its
// wall vertices are the box's top corners, which are endpoints of Top by
// construction - so the outer walls are always "real" and never candidates
// for merging away (there's nothing outside the box to merge with anyway).
func (b BoundingBox) InitialTrapezoid() *Trapezoid {
	return &Trapezoid{
		LeftP:  b.Top.Start(),
		RightP: b.Top.End(),
		Top:    b.Top,
		Bottom: b.Bottom,
	}
}

// BuildInitialDAG computes the bounding box for edges, materializes its
// trapezoid, and wraps it in a single leaf - the starting state of the
// search DAG before any edge has been inserted (spec §4.4).
func BuildInitialDAG(edges []Edge, padding float64) (root *Node, box BoundingBox) {
	box = ComputeBoundingBox(edges, padding)
	root = NewLeaf(box.InitialTrapezoid())
	return root, box
}
