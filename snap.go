package dnd

import "sort"

// snapCandidate is another draggable the dragged node may snap to. bounds is
// captured once at drag start; dist is scratch space for proximity sorting.
type snapCandidate struct {
	node   Node
	bounds Rect
	dist   float64
}

// snapResult describes the outcome of a snap pass.
type snapResult struct {
	rect    Rect
	snapped bool
	target  Node
}

// resolveSnap adjusts the moving rectangle r against the candidate bounds.
//
// Candidates are visited from the end of the slice and the first candidate
// that produces a snap on either axis wins. This is a nearest-fit heuristic
// rather than a global optimum: a farther target that would align both axes
// loses to a nearer one that aligns only one. When sortByDist is set the
// slice is first reordered so the nearest candidate (by squared center
// distance) is visited first.
func resolveSnap(r Rect, cands []snapCandidate, mode SnapMode, tol float64, sortByDist bool) snapResult {
	if len(cands) == 0 {
		return snapResult{rect: r}
	}
	if sortByDist {
		sortCandidates(r, cands)
	}

	for i := len(cands) - 1; i >= 0; i-- {
		b := cands[i].bounds
		if !(r.Right() > b.X-tol && r.X < b.Right()+tol &&
			r.Bottom() > b.Y-tol && r.Y < b.Bottom()+tol) {
			continue
		}
		out, ok := snapEdges(r, b, mode, tol)
		if ok {
			return snapResult{rect: out, snapped: true, target: cands[i].node}
		}
	}
	return snapResult{rect: r}
}

// sortCandidates orders cands by descending squared center distance to r so
// that a reverse walk visits the nearest first.
func sortCandidates(r Rect, cands []snapCandidate) {
	c := r.Center()
	for i := range cands {
		bc := cands[i].bounds.Center()
		dx := c.X - bc.X
		dy := c.Y - bc.Y
		cands[i].dist = dx*dx + dy*dy
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].dist > cands[j].dist
	})
}

// snapEdges applies the edge rules for a single target. Each axis snaps to
// the first edge within tolerance. Outer edges are tried before inner ones;
// inner edges are only considered when no outer edge matched.
func snapEdges(r, b Rect, mode SnapMode, d float64) (Rect, bool) {
	snapped := false

	if mode != SnapInner {
		if near(b.Y, r.Bottom(), d) {
			r.Y = b.Y - r.Height
			snapped = true
		} else if near(b.Bottom(), r.Y, d) {
			r.Y = b.Bottom()
			snapped = true
		}
		if near(b.X, r.Right(), d) {
			r.X = b.X - r.Width
			snapped = true
		} else if near(b.Right(), r.X, d) {
			r.X = b.Right()
			snapped = true
		}
	}

	if !snapped && mode != SnapOuter {
		if near(b.Y, r.Y, d) {
			r.Y = b.Y
			snapped = true
		} else if near(b.Bottom(), r.Bottom(), d) {
			r.Y = b.Bottom() - r.Height
			snapped = true
		}
		if near(b.X, r.X, d) {
			r.X = b.X
			snapped = true
		} else if near(b.Right(), r.Right(), d) {
			r.X = b.Right() - r.Width
			snapped = true
		}
	}

	return r, snapped
}

func near(a, b, d float64) bool {
	diff := a - b
	return diff <= d && diff >= -d
}
