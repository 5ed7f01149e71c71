package dnd

// EventType identifies a drag-and-drop lifecycle event.
type EventType uint8

const (
	EventDragStart   EventType = iota // the distance threshold was crossed
	EventDragMove                     // the helper moved
	EventDrop                         // a droppable accepted the draggable
	EventRevertStart                  // a revert animation began
	EventDragStop                     // the gesture finished
)

func (t EventType) String() string {
	switch t {
	case EventDragStart:
		return "dragstart"
	case EventDragMove:
		return "dragmove"
	case EventDrop:
		return "drop"
	case EventRevertStart:
		return "revertstart"
	case EventDragStop:
		return "dragstop"
	}
	return "unknown"
}

// Event is a lifecycle notification forwarded to an EventSink.
type Event struct {
	Type      EventType
	Node      Node
	Label     string
	PointerID int
	// Position is the helper's local position.
	Position Vec2
	// Pointer is the global pointer position of the triggering sample.
	Pointer Vec2
	// Target is the droppable for EventDrop and the snap target for
	// EventDragMove, if any.
	Target   Node
	Dropped  bool
	Reverted bool
}

// EventSink receives lifecycle events, e.g. to bridge them into an ECS.
type EventSink interface {
	EmitEvent(event Event)
}

// SetEventSink sets the optional event bridge. Pass nil to disable it.
func (m *Manager) SetEventSink(sink EventSink) {
	m.sink = sink
}

func (m *Manager) emit(e Event) {
	if m.sink == nil {
		return
	}
	m.sink.EmitEvent(e)
}
