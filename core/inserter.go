package core

import "sort"

// Tracer, when non-nil, is called once at each phase boundary of every
// InsertEdge call (locate, split, merge, graft), consolidating the
// reference implementation's per-insertion print statements and the
// teacher's own AddSegment trace calls into a single hook. It is nil by
// default, so tracing costs nothing unless a caller (the CLI's -debug
// flag, via trapdecomp.SetTracer) installs one.
var Tracer func(phase string, edge Edge)

func trace(phase string, edge Edge) {
	if Tracer != nil {
		Tracer(phase, edge)
	}
}

// InsertEdge inserts one polygon edge into the trapezoidal map rooted at
// root, mutating the map and the DAG in place (spec §4.5). Vertical edges
// are rejected before anything is touched.
func InsertEdge(root *Node, edge Edge) {
	if edge.IsVertical() {
		failUnsupportedEdge(edge)
	}

	trace("locate", edge)
	located := root.Locate(edge.Start(), DirLeft)
	frontier := findIntersections(located, edge)
	if len(frontier) == 0 {
		failInvariant("locate", "edge %v-%v touched no trapezoid", edge.P1, edge.P2)
	}

	trace("split", edge)
	records := make([]*SplitRecord, 0, len(frontier))
	for _, t := range frontier {
		rec := t.Split(edge)
		if rec == nil {
			failInvariantT("split", t, "trapezoid in intersection frontier produced no split")
		}
		records = append(records, rec)
	}

	trace("merge", edge)
	mergeSide(records, true)
	mergeSide(records, false)

	trace("graft", edge)
	for _, rec := range records {
		if rec.Original.leaf == nil {
			failInvariantT("graft", rec.Original, "dying trapezoid has no live leaf to replace")
		}
		Graft(rec.Original.leaf, BuildSubDAG(rec, edge))
	}
}

// pruneToLeftFrontier drops any candidate that is a right-neighbor of
// another candidate in the set, leaving only the left-most starting
// trapezoid(s) (spec §4.5 step 1).
func pruneToLeftFrontier(candidates []*Trapezoid) []*Trapezoid {
	out := make([]*Trapezoid, 0, len(candidates))
	for _, c := range candidates {
		rightOfAnother := false
		for _, other := range candidates {
			if other != c && other.NeighborsRight.Contains(c) {
				rightOfAnother = true
				break
			}
		}
		if !rightOfAnother {
			out = append(out, c)
		}
	}
	return out
}

// findIntersections walks right from the left-most frontier trapezoid(s),
// collecting every trapezoid touched by edge (spec §4.5 step 1). Touched
// means IntersectsOrContainsEndpoint, which already subsumes both the
// "crosses a side" and "contains an endpoint" cases the reference
// implementation tests separately.
func findIntersections(candidates []*Trapezoid, edge Edge) []*Trapezoid {
	frontier := pruneToLeftFrontier(candidates)
	inFrontier := func(t *Trapezoid) bool {
		for _, f := range frontier {
			if f == t {
				return true
			}
		}
		return false
	}

	var touched []*Trapezoid
	for i := 0; i < len(frontier); i++ {
		n := frontier[i]
		if !n.IntersectsOrContainsEndpoint(edge) {
			continue
		}
		touched = append(touched, n)

		rights := n.NeighborsRight.clone()
		sort.Slice(rights, func(a, b int) bool {
			return rights[a].Top.Start().X < rights[b].Top.Start().X
		})
		for _, r := range rights {
			if !inFrontier(r) {
				frontier = append(frontier, r)
			}
		}
	}
	return touched
}

// mergeSide runs the left-to-right merge pass of spec §4.5 step 3 over one
// side (top when top is true, bottom otherwise), mutating each record's
// Top or Bottom field in place to point at the final merged fragment.
// Records that end up sharing a merged fragment share the same *Trapezoid
// pointer, which is what lets BuildSubDAG's leafFor reuse a single leaf
// across them.
func mergeSide(records []*SplitRecord, top bool) {
	get := func(r *SplitRecord) *Trapezoid {
		if top {
			return r.Top
		}
		return r.Bottom
	}
	set := func(r *SplitRecord, t *Trapezoid) {
		if top {
			r.Top = t
		} else {
			r.Bottom = t
		}
	}

	var current *Trapezoid
	var participants []*SplitRecord

	commit := func() {
		for _, p := range participants {
			set(p, current)
		}
		current = nil
		participants = nil
	}

	for _, r := range records {
		frag := get(r)
		switch {
		case current == nil:
			current = frag
			participants = []*SplitRecord{r}
		case current.CanMergeRight(frag):
			current = current.MergeRight(frag)
			participants = append(participants, r)
		default:
			commit()
			current = frag
			participants = []*SplitRecord{r}
		}
	}
	commit()
}
