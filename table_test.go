package dnd

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestBuiltinTableDefaults(t *testing.T) {
	d := BuiltinTable().Drag
	if d.Distance != 1 || d.Alpha != 1 || d.Cursor != "inherit" {
		t.Errorf("unexpected drag defaults: distance=%v alpha=%v cursor=%q", d.Distance, d.Alpha, d.Cursor)
	}
	if d.Revert != RevertNever || d.RevertDuration != 500*time.Millisecond {
		t.Errorf("revert defaults = %v/%v", d.Revert, d.RevertDuration)
	}
	if d.SnapTolerance != 20 || d.SnapMode != SnapBoth || d.Snap.Enabled() {
		t.Errorf("snap defaults = %v/%v/%v", d.Snap, d.SnapMode, d.SnapTolerance)
	}
	if d.CursorAt != nil || d.Grid != nil || d.Containment.Enabled() {
		t.Error("cursorAt, grid and containment should be unset by default")
	}

	p := BuiltinTable().Drop
	if p.Tolerance != ToleranceIntersect || p.Greedy || !p.Accept.Matches(nil, "") {
		t.Errorf("unexpected drop defaults: %+v", p)
	}
}

func TestSetDefaultTable(t *testing.T) {
	defer ResetDefaultTable()

	tbl := BuiltinTable()
	tbl.Drag.Distance = 8
	grid := Vec2{16, 16}
	tbl.Drag.Grid = &grid
	SetDefaultTable(tbl)

	// Mutating the caller's copy after the fact must not leak in.
	grid.X = 99
	tbl.Drag.Distance = 3

	got := DefaultTable()
	if got.Drag.Distance != 8 {
		t.Errorf("Distance = %v, want 8", got.Drag.Distance)
	}
	if got.Drag.Grid == nil || got.Drag.Grid.X != 16 {
		t.Errorf("Grid = %v, want {16 16}", got.Drag.Grid)
	}

	got.Drag.Grid.X = 1
	if again := DefaultTable(); again.Drag.Grid.X != 16 {
		t.Error("DefaultTable should hand out independent copies")
	}

	ResetDefaultTable()
	if d := DefaultTable().Drag.Distance; d != 1 {
		t.Errorf("after reset Distance = %v, want 1", d)
	}
}

func TestLoadTable(t *testing.T) {
	src := `
drag:
  distance: 4
  axis: x
  cursorAt: [10, 5]
  grid: [8, 0]
  helper: clone
  alpha: 0.5
  revert: invalid
  revertDuration: 300ms
  label: card
  snap: all
  snapMode: outer
  snapSort: true
  snapTolerance: 12
drop:
  label: slot
  accept: [card, token]
  greedy: true
  tolerance: pointer
`
	tbl, err := LoadTable(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}

	d := tbl.Drag
	if d.Distance != 4 || d.Axis != AxisX || d.Helper != HelperClone || d.Alpha != 0.5 {
		t.Errorf("drag = %+v", d)
	}
	if d.CursorAt == nil || *d.CursorAt != (Vec2{10, 5}) {
		t.Errorf("CursorAt = %v", d.CursorAt)
	}
	if d.Grid == nil || *d.Grid != (Vec2{8, 0}) {
		t.Errorf("Grid = %v", d.Grid)
	}
	if d.Revert != RevertInvalid || d.RevertDuration != 300*time.Millisecond {
		t.Errorf("revert = %v/%v", d.Revert, d.RevertDuration)
	}
	if d.Label != "card" || d.Snap != SnapToAll() || d.SnapMode != SnapOuter || !d.SnapSort || d.SnapTolerance != 12 {
		t.Errorf("snap = %v/%v/%v/%v", d.Snap, d.SnapMode, d.SnapSort, d.SnapTolerance)
	}
	// Untouched fields keep their built-in values.
	if d.Cursor != "inherit" || d.RevertEase == nil {
		t.Error("missing fields should keep built-in defaults")
	}

	p := tbl.Drop
	if p.Label != "slot" || !p.Greedy || p.Tolerance != TolerancePointer {
		t.Errorf("drop = %+v", p)
	}
	if !p.Accept.Matches(nil, "token") || p.Accept.Matches(nil, "other") {
		t.Errorf("accept labels = %v", p.Accept.Labels())
	}
}

func TestLoadTableAliases(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		revert RevertPolicy
		accept string
		want   bool
	}{
		{"revert true", "drag: {revert: true}", RevertAlways, "x", true},
		{"revert false", "drag: {revert: false}", RevertNever, "x", true},
		{"accept false", "drop: {accept: false}", RevertNever, "x", false},
		{"accept label", "drop: {accept: card}", RevertNever, "card", true},
		{"accept label mismatch", "drop: {accept: card}", RevertNever, "x", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := LoadTable(strings.NewReader(tt.src))
			if err != nil {
				t.Fatalf("LoadTable: %v", err)
			}
			if tbl.Drag.Revert != tt.revert {
				t.Errorf("Revert = %v, want %v", tbl.Drag.Revert, tt.revert)
			}
			if got := tbl.Drop.Accept.Matches(nil, tt.accept); got != tt.want {
				t.Errorf("Accept.Matches(%q) = %v, want %v", tt.accept, got, tt.want)
			}
		})
	}
}

func TestLoadTableEmpty(t *testing.T) {
	tbl, err := LoadTable(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if tbl.Drag.Distance != 1 || tbl.Drop.Tolerance != ToleranceIntersect {
		t.Error("empty document should yield the built-in table")
	}
}

func TestLoadTableErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown key", "drag: {bogus: 1}"},
		{"bad axis", "drag: {axis: diagonal}"},
		{"bad tolerance", "drop: {tolerance: nearby}"},
		{"bad duration", "drag: {revertDuration: soon}"},
		{"negative duration", "drag: {revertDuration: -1s}"},
		{"short grid", "drag: {grid: [8]}"},
		{"accept map", "drop: {accept: {a: b}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTable(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.HasPrefix(err.Error(), "dnd: load table:") {
				t.Errorf("error %q should be prefixed", err)
			}
		})
	}
}

func TestWriteTableRoundTrip(t *testing.T) {
	tbl := BuiltinTable()
	tbl.Drag.Distance = 6
	tbl.Drag.Revert = RevertValid
	tbl.Drag.Snap = SnapToLabel("tile")
	grid := Vec2{10, 20}
	tbl.Drag.Grid = &grid
	tbl.Drop.Accept = AcceptLabels("tile", "gem")

	var buf bytes.Buffer
	if err := WriteTable(&buf, tbl); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	got, err := LoadTable(&buf)
	if err != nil {
		t.Fatalf("LoadTable: %v\n%s", err, buf.String())
	}
	if got.Drag.Distance != 6 || got.Drag.Revert != RevertValid || got.Drag.Snap != SnapToLabel("tile") {
		t.Errorf("drag = %+v", got.Drag)
	}
	if got.Drag.Grid == nil || *got.Drag.Grid != grid {
		t.Errorf("Grid = %v, want %v", got.Drag.Grid, grid)
	}
	if labels := got.Drop.Accept.Labels(); len(labels) != 2 || labels[1] != "gem" {
		t.Errorf("accept labels = %v", labels)
	}
}
