package ecs

import (
	"testing"

	"github.com/phanxgames/dnd"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type entityNode struct {
	name   string
	entity donburi.Entity
	pos    dnd.Vec2
}

func (n *entityNode) Name() string           { return n.name }
func (n *entityNode) Position() dnd.Vec2     { return n.pos }
func (n *entityNode) SetPosition(p dnd.Vec2) { n.pos = p }
func (n *entityNode) Alpha() float64         { return 1 }
func (n *entityNode) SetAlpha(float64)       {}
func (n *entityNode) Size() dnd.Vec2         { return dnd.Vec2{X: 10, Y: 10} }
func (n *entityNode) WorldVisible() bool     { return true }
func (n *entityNode) Entity() donburi.Entity { return n.entity }

var cardTag = donburi.NewTag()

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []dnd.Event
	DragEventType.Subscribe(world, func(w donburi.World, e dnd.Event) {
		received = append(received, e)
	})

	store.EmitEvent(dnd.Event{
		Type:      dnd.EventDragMove,
		Label:     "card",
		PointerID: 2,
		Position:  dnd.Vec2{X: 100, Y: 200},
	})
	store.EmitEvent(dnd.Event{
		Type:     dnd.EventDragStop,
		Dropped:  false,
		Reverted: true,
	})

	// Events are queued until processed.
	DragEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != dnd.EventDragMove || e0.Label != "card" || e0.PointerID != 2 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Position.X != 100 || e0.Position.Y != 200 {
		t.Errorf("event 0 position: %+v", e0.Position)
	}

	e1 := received[1]
	if e1.Type != dnd.EventDragStop || !e1.Reverted {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var store dnd.EventSink = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_DraggingTag(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	e := world.Create(cardTag)
	n := &entityNode{name: "card", entity: e}

	store.EmitEvent(dnd.Event{Type: dnd.EventDragStart, Node: n})
	if !world.Entry(e).HasComponent(Dragging) {
		t.Fatal("entity should be tagged after drag start")
	}
	// A second start must not add the tag twice.
	store.EmitEvent(dnd.Event{Type: dnd.EventDragStart, Node: n})

	store.EmitEvent(dnd.Event{Type: dnd.EventDragStop, Node: n})
	if world.Entry(e).HasComponent(Dragging) {
		t.Error("tag should be removed after drag stop")
	}
}

func TestDonburiStore_RemovedEntity(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	e := world.Create(cardTag)
	world.Remove(e)
	n := &entityNode{name: "gone", entity: e}

	// Must not panic on an invalid entity.
	store.EmitEvent(dnd.Event{Type: dnd.EventDragStart, Node: n})
	store.EmitEvent(dnd.Event{Type: dnd.EventDragStop, Node: n})
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	DragEventType.Subscribe(world, func(w donburi.World, e dnd.Event) {
		count1++
	})
	DragEventType.Subscribe(world, func(w donburi.World, e dnd.Event) {
		count2++
	})

	store.EmitEvent(dnd.Event{Type: dnd.EventDrop})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("count1=%d count2=%d, want 1/1", count1, count2)
	}
}
