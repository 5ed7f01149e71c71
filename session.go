package dnd

// Phase is a draggable's position in the gesture state machine.
type Phase uint8

const (
	PhaseIdle      Phase = iota // no gesture
	PhaseArmed                  // pressed, waiting for the distance threshold
	PhaseDragging               // moving
	PhaseReverting              // animating back to the start position
)

func (p Phase) String() string {
	switch p {
	case PhaseArmed:
		return "armed"
	case PhaseDragging:
		return "dragging"
	case PhaseReverting:
		return "reverting"
	}
	return "idle"
}

// session is the per-gesture record of a draggable. It exists from the first
// press until the drop completes (including any revert animation).
type session struct {
	pointerID int
	// origin is the global pointer position at press.
	origin Vec2
	// offset is subtracted from the pointer delta; non-zero only with CursorAt.
	offset Vec2
	// original is the node's local position at press.
	original      Vec2
	originalAlpha float64
	// worldOffset converts local positions of the helper to world space:
	// world = local + worldOffset. Captured at drag start.
	worldOffset Vec2

	// helper is the clone moved during the drag, nil when the draggable moves
	// itself.
	helper Node
	parent Node

	snaps []snapCandidate

	isDragging  bool
	dragStarted bool
	isTweening  bool

	// last is the most recent pointer sample, handed to OnDragStop.
	last       PointerEvent
	snappedTo  Node
	dropped    bool
	reverted   bool
	terminated bool
}

func (s *session) phase() Phase {
	switch {
	case s == nil:
		return PhaseIdle
	case s.isTweening:
		return PhaseReverting
	case s.dragStarted:
		return PhaseDragging
	case s.isDragging:
		return PhaseArmed
	}
	return PhaseIdle
}

// dragElement returns the node being moved.
func (s *session) dragElement(owner Node) Node {
	if s.helper != nil {
		return s.helper
	}
	return owner
}

// destroyHelper removes a clone helper from the scene. It is a no-op when the
// draggable is its own helper or the helper is already gone.
func (s *session) destroyHelper(h Host) {
	if s.helper == nil {
		return
	}
	if p := h.Parent(s.helper); p != nil {
		h.RemoveChild(p, s.helper)
	}
	s.helper = nil
}
