package dnd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Table is the set of defaults a new draggable or droppable starts from
// before its options are applied.
type Table struct {
	Drag DraggableConfig
	Drop DroppableConfig
}

// BuiltinTable returns the engine's built-in defaults.
func BuiltinTable() Table {
	return Table{
		Drag: DraggableConfig{
			Distance:       1,
			Axis:           AxisNone,
			Cursor:         "inherit",
			Helper:         HelperOriginal,
			Alpha:          1,
			Revert:         RevertNever,
			RevertDuration: 500 * time.Millisecond,
			RevertEase:     ease.Linear,
			SnapMode:       SnapBoth,
			SnapTolerance:  20,
		},
		Drop: DroppableConfig{
			Accept:    AcceptAll(),
			Tolerance: ToleranceIntersect,
		},
	}
}

// defaultTable is process-wide. It is only ever replaced, never mutated in
// place, so copies handed out stay valid.
var defaultTable = BuiltinTable()

// DefaultTable returns a copy of the current process-wide defaults.
func DefaultTable() Table {
	return defaultTable.clone()
}

// SetDefaultTable replaces the process-wide defaults. Nodes initialized
// earlier keep the configuration they were created with.
func SetDefaultTable(t Table) {
	defaultTable = t.clone()
}

// ResetDefaultTable restores the built-in defaults.
func ResetDefaultTable() {
	defaultTable = BuiltinTable()
}

func (t Table) clone() Table {
	t.Drag = t.Drag.clone()
	if labels := t.Drop.Accept.labels; labels != nil {
		t.Drop.Accept.labels = append([]string(nil), labels...)
	}
	return t
}

func (c DraggableConfig) clone() DraggableConfig {
	if c.CursorAt != nil {
		v := *c.CursorAt
		c.CursorAt = &v
	}
	if c.Grid != nil {
		v := *c.Grid
		c.Grid = &v
	}
	return c
}

// --- YAML ---

type tableFile struct {
	Drag dragFile `yaml:"drag"`
	Drop dropFile `yaml:"drop"`
}

type dragFile struct {
	Distance       *float64      `yaml:"distance,omitempty"`
	Axis           *Axis         `yaml:"axis,omitempty"`
	Cursor         *string       `yaml:"cursor,omitempty"`
	CursorAt       []float64     `yaml:"cursorAt,omitempty,flow"`
	Grid           []float64     `yaml:"grid,omitempty,flow"`
	Helper         *HelperMode   `yaml:"helper,omitempty"`
	Alpha          *float64      `yaml:"alpha,omitempty"`
	Revert         *RevertPolicy `yaml:"revert,omitempty"`
	RevertDuration *string       `yaml:"revertDuration,omitempty"`
	Label          *string       `yaml:"label,omitempty"`
	Snap           *SnapTarget   `yaml:"snap,omitempty"`
	SnapMode       *SnapMode     `yaml:"snapMode,omitempty"`
	SnapSort       *bool         `yaml:"snapSort,omitempty"`
	SnapTolerance  *float64      `yaml:"snapTolerance,omitempty"`
	Disabled       *bool         `yaml:"disabled,omitempty"`
}

type dropFile struct {
	Label     *string      `yaml:"label,omitempty"`
	Accept    *acceptField `yaml:"accept,omitempty"`
	Greedy    *bool        `yaml:"greedy,omitempty"`
	Disabled  *bool        `yaml:"disabled,omitempty"`
	Tolerance *Tolerance   `yaml:"tolerance,omitempty"`
}

// acceptField decodes an accept rule: a boolean, "all"/"none", a single
// label or a list of labels.
type acceptField struct {
	Accept
}

func (f *acceptField) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		switch strings.ToLower(value.Value) {
		case "true", "all", "*":
			f.Accept = AcceptAll()
		case "false", "none":
			f.Accept = AcceptNone()
		default:
			f.Accept = AcceptLabel(value.Value)
		}
		return nil
	case yaml.SequenceNode:
		var labels []string
		if err := value.Decode(&labels); err != nil {
			return err
		}
		f.Accept = AcceptLabels(labels...)
		return nil
	}
	return fmt.Errorf("line %d: accept must be a boolean, a label or a list of labels", value.Line)
}

func (f acceptField) MarshalYAML() (any, error) {
	switch f.kind {
	case acceptAll:
		return true, nil
	case acceptNone:
		return false, nil
	case acceptLabels:
		return f.labels, nil
	}
	return nil, fmt.Errorf("accept function rules cannot be encoded")
}

// LoadTable reads a YAML defaults table. Fields missing from the document
// keep their built-in values. Unknown keys are rejected.
func LoadTable(r io.Reader) (Table, error) {
	var f tableFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return Table{}, fmt.Errorf("dnd: load table: %w", err)
	}

	t := BuiltinTable()
	if err := f.Drag.apply(&t.Drag); err != nil {
		return Table{}, fmt.Errorf("dnd: load table: %w", err)
	}
	f.Drop.apply(&t.Drop)
	return t, nil
}

// WriteTable encodes the serializable part of t as YAML. Callbacks,
// selectors, containment and easing functions are not written.
func WriteTable(w io.Writer, t Table) error {
	d := t.Drag
	dur := d.RevertDuration.String()
	f := tableFile{
		Drag: dragFile{
			Distance:       &d.Distance,
			Axis:           &d.Axis,
			Cursor:         &d.Cursor,
			Helper:         &d.Helper,
			Alpha:          &d.Alpha,
			Revert:         &d.Revert,
			RevertDuration: &dur,
			Label:          &d.Label,
			Snap:           &d.Snap,
			SnapMode:       &d.SnapMode,
			SnapSort:       &d.SnapSort,
			SnapTolerance:  &d.SnapTolerance,
			Disabled:       &d.Disabled,
		},
		Drop: dropFile{
			Label:     &t.Drop.Label,
			Greedy:    &t.Drop.Greedy,
			Disabled:  &t.Drop.Disabled,
			Tolerance: &t.Drop.Tolerance,
		},
	}
	if d.CursorAt != nil {
		f.Drag.CursorAt = []float64{d.CursorAt.X, d.CursorAt.Y}
	}
	if d.Grid != nil {
		f.Drag.Grid = []float64{d.Grid.X, d.Grid.Y}
	}
	if t.Drop.Accept.kind != acceptFunc {
		f.Drop.Accept = &acceptField{t.Drop.Accept}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("dnd: write table: %w", err)
	}
	return enc.Close()
}

func (f dragFile) apply(c *DraggableConfig) error {
	if f.Distance != nil {
		c.Distance = *f.Distance
	}
	if f.Axis != nil {
		c.Axis = *f.Axis
	}
	if f.Cursor != nil {
		c.Cursor = *f.Cursor
	}
	if f.CursorAt != nil {
		v, err := pair("cursorAt", f.CursorAt)
		if err != nil {
			return err
		}
		c.CursorAt = &v
	}
	if f.Grid != nil {
		v, err := pair("grid", f.Grid)
		if err != nil {
			return err
		}
		c.Grid = &v
	}
	if f.Helper != nil {
		c.Helper = *f.Helper
	}
	if f.Alpha != nil {
		c.Alpha = *f.Alpha
	}
	if f.Revert != nil {
		c.Revert = *f.Revert
	}
	if f.RevertDuration != nil {
		d, err := time.ParseDuration(*f.RevertDuration)
		if err != nil {
			return fmt.Errorf("revertDuration: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("revertDuration: negative duration %v", d)
		}
		c.RevertDuration = d
	}
	if f.Label != nil {
		c.Label = *f.Label
	}
	if f.Snap != nil {
		c.Snap = *f.Snap
	}
	if f.SnapMode != nil {
		c.SnapMode = *f.SnapMode
	}
	if f.SnapSort != nil {
		c.SnapSort = *f.SnapSort
	}
	if f.SnapTolerance != nil {
		c.SnapTolerance = *f.SnapTolerance
	}
	if f.Disabled != nil {
		c.Disabled = *f.Disabled
	}
	return nil
}

func (f dropFile) apply(c *DroppableConfig) {
	if f.Label != nil {
		c.Label = *f.Label
	}
	if f.Accept != nil {
		c.Accept = f.Accept.Accept
	}
	if f.Greedy != nil {
		c.Greedy = *f.Greedy
	}
	if f.Disabled != nil {
		c.Disabled = *f.Disabled
	}
	if f.Tolerance != nil {
		c.Tolerance = *f.Tolerance
	}
}

func pair(field string, v []float64) (Vec2, error) {
	if len(v) != 2 {
		return Vec2{}, fmt.Errorf("%s: want [x, y], got %d values", field, len(v))
	}
	return Vec2{v[0], v[1]}, nil
}
