package dnd

import (
	"math"
	"testing"
)

// --- ClampRect ---

func TestClampRect(t *testing.T) {
	bounds := Rect{0, 0, 100, 100}

	tests := []struct {
		name string
		r    Rect
		axis Axis
		want Rect
	}{
		{"inside", Rect{10, 10, 20, 20}, AxisNone, Rect{10, 10, 20, 20}},
		{"past right", Rect{90, 10, 20, 20}, AxisNone, Rect{80, 10, 20, 20}},
		{"past left", Rect{-5, 10, 20, 20}, AxisNone, Rect{0, 10, 20, 20}},
		{"past bottom", Rect{10, 95, 20, 20}, AxisNone, Rect{10, 80, 20, 20}},
		{"past corner", Rect{-10, 120, 20, 20}, AxisNone, Rect{0, 80, 20, 20}},
		{"axis x leaves y", Rect{90, 95, 20, 20}, AxisX, Rect{80, 95, 20, 20}},
		{"axis y leaves x", Rect{90, 95, 20, 20}, AxisY, Rect{90, 80, 20, 20}},
		{"wider than bounds", Rect{30, 0, 150, 20}, AxisNone, Rect{0, 0, 150, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampRect(tt.r, bounds, tt.axis); got != tt.want {
				t.Errorf("ClampRect(%v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestClampRectIdempotent(t *testing.T) {
	bounds := Rect{20, 40, 200, 120}
	inputs := []Rect{
		{-50, -50, 30, 30},
		{500, 500, 30, 30},
		{100, 60, 30, 30},
		{0, 0, 300, 10},
		{0, 0, 10, 400},
	}
	for _, r := range inputs {
		once := ClampRect(r, bounds, AxisNone)
		twice := ClampRect(once, bounds, AxisNone)
		if once != twice {
			t.Errorf("ClampRect not idempotent for %v: %v then %v", r, once, twice)
		}
	}
}

// --- Grid ---

func TestSnapToGrid(t *testing.T) {
	tests := []struct {
		pos, origin, step, want float64
	}{
		{0, 0, 10, 0},
		{4, 0, 10, 0},
		{6, 0, 10, 10},
		{-6, 0, 10, -10},
		{27, 5, 10, 25},
		{13, 5, 0, 13},
		{13, 5, -4, 13},
	}
	for _, tt := range tests {
		if got := SnapToGrid(tt.pos, tt.origin, tt.step); got != tt.want {
			t.Errorf("SnapToGrid(%v, %v, %v) = %v, want %v", tt.pos, tt.origin, tt.step, got, tt.want)
		}
	}
}

func TestSnapToGridLattice(t *testing.T) {
	origin, step := 7.0, 12.0
	for pos := -100.0; pos <= 100; pos += 3.7 {
		got := SnapToGrid(pos, origin, step)
		k := (got - origin) / step
		if math.Abs(k-math.Round(k)) > 1e-9 {
			t.Fatalf("SnapToGrid(%v) = %v is off the lattice", pos, got)
		}
		if math.Abs(got-pos) > step/2+1e-9 {
			t.Fatalf("SnapToGrid(%v) = %v moved more than half a step", pos, got)
		}
	}
}

func TestGridInside(t *testing.T) {
	tests := []struct {
		name                    string
		pos, size, step, lo, hi float64
		want                    float64
	}{
		{"already inside", 20, 10, 10, 0, 100, 20},
		{"one step over", 100, 10, 10, 0, 100, 90},
		{"partial step over", 95, 10, 10, 0, 100, 85},
		{"under", -15, 10, 10, 0, 100, 5},
		{"too large keeps leading edge", -5, 150, 10, 0, 100, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gridInside(tt.pos, tt.size, tt.step, tt.lo, tt.hi)
			if got != tt.want {
				t.Errorf("gridInside = %v, want %v", got, tt.want)
			}
		})
	}
}

// --- Tolerance predicates ---

func TestTolerancePredicates(t *testing.T) {
	target := Rect{100, 100, 100, 100}

	tests := []struct {
		name      string
		r         Rect
		intersect bool
		fit       bool
		touch     bool
	}{
		{"inside", Rect{120, 120, 20, 20}, true, true, true},
		{"exact", Rect{100, 100, 100, 100}, true, true, true},
		{"center inside", Rect{160, 160, 60, 60}, true, false, true},
		{"center on edge", Rect{180, 100, 40, 40}, false, false, true},
		{"touching edge", Rect{200, 120, 20, 20}, false, false, true},
		{"apart", Rect{300, 300, 20, 20}, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.r, target); got != tt.intersect {
				t.Errorf("Intersects = %v, want %v", got, tt.intersect)
			}
			if got := Fits(tt.r, target); got != tt.fit {
				t.Errorf("Fits = %v, want %v", got, tt.fit)
			}
			if got := Touches(tt.r, target); got != tt.touch {
				t.Errorf("Touches = %v, want %v", got, tt.touch)
			}
		})
	}
}

func TestToleranceOrdering(t *testing.T) {
	// fit implies intersect implies touch.
	target := Rect{0, 0, 50, 50}
	for _, size := range []Vec2{{20, 20}, {0, 0}, {0, 20}, {50, 50}, {70, 10}} {
		for x := -60.0; x <= 60; x += 5 {
			for y := -60.0; y <= 60; y += 5 {
				r := Rect{x, y, size.X, size.Y}
				if Fits(r, target) && !Intersects(r, target) {
					t.Fatalf("%v fits but does not intersect", r)
				}
				if Intersects(r, target) && !Touches(r, target) {
					t.Fatalf("%v intersects but does not touch", r)
				}
			}
		}
	}
}

func TestIntersectsDegenerate(t *testing.T) {
	target := Rect{0, 0, 50, 50}
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"point on corner", Rect{0, 0, 0, 0}, true},
		{"point on far edge", Rect{50, 25, 0, 0}, true},
		{"line along edge", Rect{0, 10, 0, 20}, true},
		{"point outside", Rect{51, 25, 0, 0}, false},
		{"same rect", target, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.r, target); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestToleranceAccepts(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{5, 5, 10, 10}
	calls := 0
	inside := func() bool { calls++; return true }

	if ToleranceTouch.Accepts(a, b, inside); calls != 0 {
		t.Error("pointer test should only run for TolerancePointer")
	}
	if !TolerancePointer.Accepts(a, Rect{100, 100, 1, 1}, inside) {
		t.Error("TolerancePointer should defer to the pointer test")
	}
	if TolerancePointer.Accepts(a, b, nil) {
		t.Error("TolerancePointer without a pointer test should not match")
	}
	if Tolerance(42).Accepts(a, a, inside) {
		t.Error("unknown tolerance should never match")
	}
}

func TestShouldRevert(t *testing.T) {
	tests := []struct {
		policy  RevertPolicy
		dropped bool
		want    bool
	}{
		{RevertNever, false, false},
		{RevertNever, true, false},
		{RevertInvalid, false, true},
		{RevertInvalid, true, false},
		{RevertValid, false, false},
		{RevertValid, true, true},
		{RevertAlways, false, true},
		{RevertAlways, true, true},
	}
	for _, tt := range tests {
		if got := shouldRevert(tt.policy, tt.dropped); got != tt.want {
			t.Errorf("shouldRevert(%v, %v) = %v, want %v", tt.policy, tt.dropped, got, tt.want)
		}
	}
}
