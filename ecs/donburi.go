package ecs

import (
	"github.com/phanxgames/dnd"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DragEventType is the Donburi event type for dnd lifecycle events.
// Subscribe to this in your ECS systems to receive drag, drop and revert events.
var DragEventType = events.NewEventType[dnd.Event]()

// Dragging tags the entity of an EntityNode between drag start and drag stop.
var Dragging = donburi.NewTag()

// EntityNode is a dnd.Node backed by a Donburi entity.
type EntityNode interface {
	dnd.Node
	Entity() donburi.Entity
}

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventSink backed by a Donburi world.
// Events are published to DragEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) dnd.EventSink {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event dnd.Event) {
	switch event.Type {
	case dnd.EventDragStart:
		s.tag(event.Node, true)
	case dnd.EventDragStop:
		s.tag(event.Node, false)
	}
	DragEventType.Publish(s.world, event)
}

func (s *donburiStore) tag(n dnd.Node, on bool) {
	en, ok := n.(EntityNode)
	if !ok {
		return
	}
	e := en.Entity()
	if !s.world.Valid(e) {
		return
	}
	entry := s.world.Entry(e)
	switch has := entry.HasComponent(Dragging); {
	case on && !has:
		entry.AddComponent(Dragging)
	case !on && has:
		entry.RemoveComponent(Dragging)
	}
}
