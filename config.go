package dnd

import (
	"strings"
	"time"

	"github.com/tanema/gween/ease"
)

// DraggableConfig holds every option of a draggable node. A node has exactly
// one config; re-initializing a draggable replaces it wholesale.
type DraggableConfig struct {
	// Distance is how far (in pixels, on either axis) the pointer must move
	// after a press before the drag starts.
	Distance float64
	Axis     Axis
	// Containment keeps the dragged node inside a region.
	Containment Containment
	// Cursor is a cursor hint for the host while dragging ("inherit" keeps
	// the current cursor).
	Cursor string
	// CursorAt, when set, places the node so the pointer sits at this local
	// offset inside it. When nil the node keeps its offset from the pointer.
	CursorAt *Vec2
	// Grid, when set, snaps movement to multiples of the spacing measured
	// from the start position. A zero component disables that axis.
	Grid *Vec2
	// Handle restricts where a drag may start. Cancel prevents a drag from
	// starting on a matching region.
	Handle Selector
	Cancel Selector
	Helper HelperMode
	// Alpha multiplies the helper's alpha while dragging.
	Alpha          float64
	Revert         RevertPolicy
	RevertDuration time.Duration
	RevertEase     ease.TweenFunc
	// Label identifies the draggable for snapping and droppable accept rules.
	Label         string
	Snap          SnapTarget
	SnapMode      SnapMode
	SnapSort      bool
	SnapTolerance float64
	Disabled      bool

	OnDragStart func(DragContext)
	OnDragMove  func(DragContext)
	OnDragStop  func(DragContext)

	// Raw pointer callbacks, invoked before the engine handles the event.
	OnPointerDown      func(PointerEvent)
	OnPointerMove      func(PointerEvent)
	OnPointerUp        func(PointerEvent)
	OnPointerUpOutside func(PointerEvent)
}

// DroppableConfig holds every option of a droppable node.
type DroppableConfig struct {
	Label  string
	Accept Accept
	// Greedy droppables suppress every other droppable once they match.
	Greedy    bool
	Disabled  bool
	Tolerance Tolerance
	OnDrop    func(DropContext)
}

// DragContext carries drag lifecycle data to callbacks.
type DragContext struct {
	// Node is the draggable; Helper is the node actually moving (Node itself
	// unless the helper mode is HelperClone).
	Node    Node
	Helper  Node
	Label   string
	Pointer PointerEvent
	// Position is the helper's current local position.
	Position Vec2
	// Original is the draggable's position when the gesture started.
	Original Vec2
	Cursor   string
	// SnapTarget is the draggable the helper snapped to on this move, if any.
	SnapTarget Node
	// Dropped and Reverted are valid in OnDragStop.
	Dropped  bool
	Reverted bool
}

// DropContext carries drop data to a droppable's OnDrop callback.
type DropContext struct {
	Droppable Node
	Draggable Node
	Helper    Node
	Label     string
	Pointer   PointerEvent
	// Bounds are the helper's world bounds at release.
	Bounds Rect
}

// --- Accept rules ---

type acceptKind uint8

const (
	acceptAll acceptKind = iota
	acceptNone
	acceptLabels
	acceptFunc
)

// Accept decides which draggables a droppable takes. The zero value accepts
// everything.
type Accept struct {
	kind   acceptKind
	labels []string
	fn     func(n Node, label string) bool
}

// AcceptAll accepts every draggable.
func AcceptAll() Accept { return Accept{kind: acceptAll} }

// AcceptNone rejects every draggable.
func AcceptNone() Accept { return Accept{kind: acceptNone} }

// AcceptLabel accepts draggables whose label equals label.
func AcceptLabel(label string) Accept { return AcceptLabels(label) }

// AcceptLabels accepts draggables whose label is one of labels.
func AcceptLabels(labels ...string) Accept {
	cp := make([]string, len(labels))
	copy(cp, labels)
	return Accept{kind: acceptLabels, labels: cp}
}

// AcceptFunc accepts draggables for which fn returns true.
func AcceptFunc(fn func(n Node, label string) bool) Accept {
	if fn == nil {
		return AcceptNone()
	}
	return Accept{kind: acceptFunc, fn: fn}
}

// Matches reports whether a draggable with the given label is accepted.
// Empty labels never match a label list.
func (a Accept) Matches(n Node, label string) bool {
	switch a.kind {
	case acceptAll:
		return true
	case acceptLabels:
		if label == "" {
			return false
		}
		for _, l := range a.labels {
			if l == label {
				return true
			}
		}
		return false
	case acceptFunc:
		return a.fn(n, label)
	}
	return false
}

// Labels returns the accepted labels, or nil when the rule is not a label list.
func (a Accept) Labels() []string {
	if a.kind != acceptLabels {
		return nil
	}
	return a.labels
}

// --- Snap targets ---

type snapKind uint8

const (
	snapNone snapKind = iota
	snapAll
	snapLabel
)

// SnapTarget selects which draggables attract a dragged node. The zero value
// disables snapping.
type SnapTarget struct {
	kind  snapKind
	label string
}

// SnapToNone disables snapping.
func SnapToNone() SnapTarget { return SnapTarget{} }

// SnapToAll snaps to every other visible draggable.
func SnapToAll() SnapTarget { return SnapTarget{kind: snapAll} }

// SnapToLabel snaps to visible draggables carrying label.
func SnapToLabel(label string) SnapTarget {
	if label == "" {
		return SnapTarget{}
	}
	return SnapTarget{kind: snapLabel, label: label}
}

// Enabled reports whether snapping is on.
func (s SnapTarget) Enabled() bool { return s.kind != snapNone }

func (s SnapTarget) matches(label string) bool {
	switch s.kind {
	case snapAll:
		return true
	case snapLabel:
		return s.label == label
	}
	return false
}

func (s SnapTarget) String() string {
	switch s.kind {
	case snapAll:
		return "all"
	case snapLabel:
		return s.label
	}
	return "none"
}

// MarshalText implements encoding.TextMarshaler.
func (s SnapTarget) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. "none", "false" and the
// empty string disable snapping; "all", "true" and "*" snap to everything;
// any other value is a label.
func (s *SnapTarget) UnmarshalText(text []byte) error {
	v := strings.TrimSpace(string(text))
	switch strings.ToLower(v) {
	case "", "none", "false":
		*s = SnapToNone()
	case "all", "true", "*":
		*s = SnapToAll()
	default:
		*s = SnapToLabel(v)
	}
	return nil
}
