package dnd

import "math"

// Geometry helpers shared by the drag-move solver and drop resolution. All
// rectangles are in world space.

// ClampRect moves r so it lies inside bounds on the axes that axis leaves
// free. When r is larger than bounds on an axis it is aligned to the
// bounds' leading edge. Clamping an already clamped rectangle is a no-op.
func ClampRect(r, bounds Rect, axis Axis) Rect {
	if axis != AxisY {
		r.X = clampSpan(r.X, r.Width, bounds.X, bounds.Right())
	}
	if axis != AxisX {
		r.Y = clampSpan(r.Y, r.Height, bounds.Y, bounds.Bottom())
	}
	return r
}

func clampSpan(pos, size, lo, hi float64) float64 {
	if pos+size > hi {
		pos = hi - size
	}
	if pos < lo {
		pos = lo
	}
	return pos
}

// SnapToGrid rounds pos to the nearest point of the lattice origin + k*step.
// A non-positive step leaves pos unchanged.
func SnapToGrid(pos, origin, step float64) float64 {
	if step <= 0 {
		return pos
	}
	return origin + math.Round((pos-origin)/step)*step
}

// gridInside shifts a lattice position by whole steps until the span
// [pos, pos+size] lies inside [lo, hi]. When the span cannot fit, the
// leading edge is kept inside.
func gridInside(pos, size, step, lo, hi float64) float64 {
	if step <= 0 {
		return pos
	}
	if pos+size > hi {
		pos -= math.Ceil((pos+size-hi)/step) * step
	}
	if pos < lo {
		pos += math.Ceil((lo-pos)/step) * step
	}
	return pos
}

// Intersects implements ToleranceIntersect: the center of dragged lies
// strictly inside target on both axes, i.e. at least half of dragged overlaps.
// A dragged rect that fits target always intersects it, which covers
// zero-extent rects lying on target's edge.
func Intersects(dragged, target Rect) bool {
	if Fits(dragged, target) {
		return true
	}
	c := dragged.Center()
	return target.X < c.X && c.X < target.Right() &&
		target.Y < c.Y && c.Y < target.Bottom()
}

// Fits implements ToleranceFit: dragged lies entirely inside target.
func Fits(dragged, target Rect) bool {
	return target.X <= dragged.X && dragged.Right() <= target.Right() &&
		target.Y <= dragged.Y && dragged.Bottom() <= target.Bottom()
}

// Touches implements ToleranceTouch: the rectangles overlap or share an edge.
func Touches(dragged, target Rect) bool {
	return dragged.X <= target.Right() && dragged.Right() >= target.X &&
		dragged.Y <= target.Bottom() && dragged.Bottom() >= target.Y
}

// Accepts evaluates the tolerance predicate. pointerInside is consulted only
// for TolerancePointer. Unknown modes never match.
func (t Tolerance) Accepts(dragged, target Rect, pointerInside func() bool) bool {
	switch t {
	case ToleranceIntersect:
		return Intersects(dragged, target)
	case ToleranceFit:
		return Fits(dragged, target)
	case TolerancePointer:
		return pointerInside != nil && pointerInside()
	case ToleranceTouch:
		return Touches(dragged, target)
	default:
		return false
	}
}

// shouldRevert applies the revert policy table.
func shouldRevert(p RevertPolicy, dropped bool) bool {
	switch p {
	case RevertAlways:
		return true
	case RevertInvalid:
		return !dropped
	case RevertValid:
		return dropped
	}
	return false
}
