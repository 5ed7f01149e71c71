package dnd

import (
	"fmt"
	"strings"
)

// Vec2 is a 2D vector used for positions, offsets, sizes and grid spacing.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Inflate returns r grown by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{r.X - d, r.Y - d, r.Width + 2*d, r.Height + 2*d}
}

// Axis restricts drag movement to one axis.
type Axis uint8

const (
	AxisNone Axis = iota // move freely
	AxisX                // horizontal movement only
	AxisY                // vertical movement only
)

// HelperMode selects which node is moved during a drag.
type HelperMode uint8

const (
	HelperOriginal HelperMode = iota // the draggable itself moves
	HelperClone                      // a disposable clone moves; the original commits on drop
)

// RevertPolicy decides when a dropped draggable returns to its start position.
type RevertPolicy uint8

const (
	RevertNever   RevertPolicy = iota // never revert
	RevertInvalid                     // revert when no droppable accepted the drop
	RevertValid                       // revert when a droppable accepted the drop
	RevertAlways                      // always revert
)

// SnapMode selects which edges attract during proximity snapping.
type SnapMode uint8

const (
	SnapBoth  SnapMode = iota // outer edges first, then inner edges
	SnapInner                 // align matching edges only (inside approach)
	SnapOuter                 // butt edges against each other only (outside approach)
)

// Tolerance is the geometric predicate a droppable uses to decide whether a
// dragged node counts as over it.
type Tolerance uint8

const (
	ToleranceIntersect Tolerance = iota // at least half of the dragged node overlaps on both axes
	ToleranceFit                        // dragged node fully inside the droppable
	TolerancePointer                    // release pointer inside the droppable
	ToleranceTouch                      // any overlap or touching edge
)

// --- Text encoding (used by YAML tables) ---

var (
	axisNames      = [...]string{"none", "x", "y"}
	helperNames    = [...]string{"original", "clone"}
	revertNames    = [...]string{"never", "invalid", "valid", "always"}
	snapModeNames  = [...]string{"both", "inner", "outer"}
	toleranceNames = [...]string{"intersect", "fit", "pointer", "touch"}
)

func (a Axis) String() string         { return enumName(axisNames[:], uint8(a)) }
func (h HelperMode) String() string   { return enumName(helperNames[:], uint8(h)) }
func (p RevertPolicy) String() string { return enumName(revertNames[:], uint8(p)) }
func (m SnapMode) String() string     { return enumName(snapModeNames[:], uint8(m)) }
func (t Tolerance) String() string    { return enumName(toleranceNames[:], uint8(t)) }

func enumName(names []string, v uint8) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("unknown(%d)", v)
}

func enumParse(kind string, names []string, text []byte) (uint8, error) {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range names {
		if n == s {
			return uint8(i), nil
		}
	}
	return 0, fmt.Errorf("dnd: unknown %s %q", kind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Axis) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. An empty value means AxisNone.
func (a *Axis) UnmarshalText(text []byte) error {
	if len(strings.TrimSpace(string(text))) == 0 {
		*a = AxisNone
		return nil
	}
	v, err := enumParse("axis", axisNames[:], text)
	*a = Axis(v)
	return err
}

// MarshalText implements encoding.TextMarshaler.
func (h HelperMode) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *HelperMode) UnmarshalText(text []byte) error {
	v, err := enumParse("helper", helperNames[:], text)
	*h = HelperMode(v)
	return err
}

// MarshalText implements encoding.TextMarshaler.
func (p RevertPolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. "true" and "false" are
// accepted as aliases for always and never.
func (p *RevertPolicy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "true":
		*p = RevertAlways
		return nil
	case "false", "":
		*p = RevertNever
		return nil
	}
	v, err := enumParse("revert policy", revertNames[:], text)
	*p = RevertPolicy(v)
	return err
}

// MarshalText implements encoding.TextMarshaler.
func (m SnapMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *SnapMode) UnmarshalText(text []byte) error {
	v, err := enumParse("snap mode", snapModeNames[:], text)
	*m = SnapMode(v)
	return err
}

// MarshalText implements encoding.TextMarshaler.
func (t Tolerance) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tolerance) UnmarshalText(text []byte) error {
	v, err := enumParse("tolerance", toleranceNames[:], text)
	*t = Tolerance(v)
	return err
}
