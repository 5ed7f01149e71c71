package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/dnd"
)

// Scene is a retained scene graph wired to a drag-and-drop manager. It owns
// the node tree, pointer state, and the frame-callback queue the manager's
// revert animations run on.
type Scene struct {
	root  *Node
	mgr   *dnd.Manager
	store dnd.EventSink

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	// Frame callbacks scheduled through ScheduleNextTick. Callbacks queued
	// while a frame runs go to the next one.
	nextFrame []func()
	thisFrame []func()

	// Interactive set of the last registry rebuild, in painter order.
	interactive   []dnd.Node
	scanBuf       []dnd.Node
	registryDirty bool

	// Input state
	pointers     [maxPointers]pointerState
	hitBuf       []*Node
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
	runner       *ScriptRunner

	// Cursor hint of the drag in progress.
	cursor    string
	childBuf  []dnd.Node
	frameTick uint64
}

// NewScene creates a new scene with a pre-created root container and its own
// drag-and-drop manager.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	s := &Scene{root: root}
	s.mgr = dnd.NewManager(s)
	s.mgr.SetEventSink(s)
	return s
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Manager returns the drag-and-drop manager driven by this scene.
func (s *Scene) Manager() *dnd.Manager {
	return s.mgr
}

// SetEntityStore forwards drag-and-drop lifecycle events to store, e.g. an
// ECS bridge. Pass nil to disable forwarding.
func (s *Scene) SetEntityStore(store dnd.EventSink) {
	s.store = store
}

// SetDebugMode enables debug logging in the manager.
func (s *Scene) SetDebugMode(enabled bool) {
	s.mgr.SetDebugMode(enabled)
}

// Cursor returns the cursor hint of the drag in progress, or "" when no drag
// is active. Programs map it to a cursor shape; see CursorShape.
func (s *Scene) Cursor() string {
	return s.cursor
}

// Frame returns the number of completed Update calls.
func (s *Scene) Frame() uint64 {
	return s.frameTick
}

// Update runs the frame callbacks queued during the previous frame, rebuilds
// the manager's registry if the interactive set changed, advances the script
// runner, then processes pointer input.
func (s *Scene) Update() {
	s.runFrameCallbacks()
	s.syncInteractive()
	if s.runner != nil {
		s.runner.step(s)
	}
	s.processInput()
	s.frameTick++
}

func (s *Scene) runFrameCallbacks() {
	if len(s.nextFrame) == 0 {
		return
	}
	s.thisFrame, s.nextFrame = s.nextFrame, s.thisFrame[:0]
	for i, fn := range s.thisFrame {
		fn()
		s.thisFrame[i] = nil
	}
	s.thisFrame = s.thisFrame[:0]
}

// EmitEvent implements dnd.EventSink. It tracks the cursor hint and forwards
// the event to the entity store.
func (s *Scene) EmitEvent(e dnd.Event) {
	switch e.Type {
	case dnd.EventDragStart:
		if cfg, ok := s.mgr.DraggableConfig(e.Node); ok {
			s.cursor = cfg.Cursor
		}
	case dnd.EventDragStop:
		s.cursor = ""
	}
	if s.store != nil {
		s.store.EmitEvent(e)
	}
}

// CursorShape maps a cursor hint to an ebiten cursor shape. Unknown hints
// and "inherit" map to the default shape.
func CursorShape(hint string) ebiten.CursorShapeType {
	switch hint {
	case "pointer":
		return ebiten.CursorShapePointer
	case "move", "grab", "grabbing":
		return ebiten.CursorShapeMove
	case "crosshair":
		return ebiten.CursorShapeCrosshair
	case "text":
		return ebiten.CursorShapeText
	case "not-allowed":
		return ebiten.CursorShapeNotAllowed
	case "ew-resize":
		return ebiten.CursorShapeEWResize
	case "ns-resize":
		return ebiten.CursorShapeNSResize
	}
	return ebiten.CursorShapeDefault
}
