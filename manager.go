package dnd

import (
	"io"
	"os"
	"time"
)

type draggable struct {
	cfg  DraggableConfig
	sess *session
}

type droppable struct {
	cfg DroppableConfig
}

// Manager is the interaction coordinator. It owns the draggable and droppable
// configurations, advances each draggable's gesture as pointer events arrive
// from the host, and runs the revert animations.
//
// A Manager is not safe for concurrent use; call it from the host's update
// goroutine only.
type Manager struct {
	host  Host
	drags map[Node]*draggable
	drops map[Node]*droppable
	reg   registry

	// Revert scheduler state.
	tweens  []*revertTween
	tickBuf []*revertTween
	ticking bool
	tickFn  func()
	now     func() time.Time

	sink   EventSink
	debug  bool
	logOut io.Writer
}

// NewManager creates a Manager driven by host.
// Panics if host is nil.
func NewManager(host Host) *Manager {
	if host == nil {
		panic("dnd: nil host")
	}
	m := &Manager{
		host:   host,
		drags:  make(map[Node]*draggable),
		drops:  make(map[Node]*droppable),
		now:    time.Now,
		logOut: os.Stderr,
	}
	m.tickFn = m.tick
	return m
}

// SetClock replaces the time source used by revert animations.
// Pass nil to restore time.Now.
func (m *Manager) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	m.now = now
}

// Host returns the host the manager was created with.
func (m *Manager) Host() Host {
	return m.host
}

// --- Registry ---

// RegisterInteractiveSet rebuilds the draggable and droppable collections
// from the host's current interactive nodes. Hosts call it whenever that set
// changes. The order of nodes is significant: later nodes are considered
// topmost during drop resolution.
func (m *Manager) RegisterInteractiveSet(nodes []Node) {
	m.reg.clear()
	for _, n := range nodes {
		if n == nil {
			continue
		}
		_, isDrag := m.drags[n]
		_, isDrop := m.drops[n]
		m.reg.collect(n, isDrag, isDrop)
	}
}

// Draggables returns the draggables of the last rebuild. The returned slice
// MUST NOT be mutated.
func (m *Manager) Draggables() []Node {
	return m.reg.draggables
}

// Droppables returns the droppables of the last rebuild. The returned slice
// MUST NOT be mutated.
func (m *Manager) Droppables() []Node {
	return m.reg.droppables
}

// --- Draggable configuration ---

// MakeDraggable makes n draggable with the default table plus opts. If n is
// already draggable, its session and helper are torn down and its config is
// replaced wholesale. Raw pointer callbacks of the previous config carry over
// unless opts set new ones.
// Panics if n is nil.
func (m *Manager) MakeDraggable(n Node, opts ...DragOption) {
	if n == nil {
		panic("dnd: MakeDraggable on nil node")
	}
	cfg := DefaultTable().Drag
	if prev := m.drags[n]; prev != nil {
		m.teardownDrag(n, prev)
		cfg.OnPointerDown = prev.cfg.OnPointerDown
		cfg.OnPointerMove = prev.cfg.OnPointerMove
		cfg.OnPointerUp = prev.cfg.OnPointerUp
		cfg.OnPointerUpOutside = prev.cfg.OnPointerUpOutside
	}
	applyDrag(&cfg, opts)
	m.drags[n] = &draggable{cfg: cfg.clone()}
}

// ConfigureDraggable changes individual options of n. A node that is not
// draggable yet is initialized with the defaults first.
func (m *Manager) ConfigureDraggable(n Node, opts ...DragOption) {
	d := m.drags[n]
	if d == nil {
		m.MakeDraggable(n)
		d = m.drags[n]
	}
	applyDrag(&d.cfg, opts)
}

// RemoveDraggable makes n non-draggable, tearing down any gesture, helper or
// revert animation in flight. No callbacks fire.
func (m *Manager) RemoveDraggable(n Node) {
	d := m.drags[n]
	if d == nil {
		return
	}
	m.teardownDrag(n, d)
	delete(m.drags, n)
}

// IsDraggable reports whether n is draggable.
func (m *Manager) IsDraggable(n Node) bool {
	_, ok := m.drags[n]
	return ok
}

// DraggableConfig returns a copy of n's configuration.
func (m *Manager) DraggableConfig(n Node) (DraggableConfig, bool) {
	d := m.drags[n]
	if d == nil {
		return DraggableConfig{}, false
	}
	return d.cfg.clone(), true
}

// Phase returns the gesture phase of a draggable.
func (m *Manager) Phase(n Node) Phase {
	d := m.drags[n]
	if d == nil {
		return PhaseIdle
	}
	return d.sess.phase()
}

// Helper returns the node currently moved for n: the clone helper, n itself
// while a gesture is in progress, or nil when n is idle.
func (m *Manager) Helper(n Node) Node {
	d := m.drags[n]
	if d == nil || d.sess == nil || !d.sess.dragStarted && !d.sess.isTweening {
		return nil
	}
	return d.sess.dragElement(n)
}

// teardownDrag destroys n's session without firing callbacks.
func (m *Manager) teardownDrag(n Node, d *draggable) {
	s := d.sess
	if s == nil {
		return
	}
	m.cancelRevert(s)
	if s.dragStarted || s.isTweening {
		s.dragElement(n).SetAlpha(s.originalAlpha)
	}
	s.destroyHelper(m.host)
	s.snaps = nil
	s.terminated = true
	d.sess = nil
	m.debugf("teardown %s", nodeName(n))
}

// --- Droppable configuration ---

// MakeDroppable makes n a drop target with the default table plus opts,
// replacing any previous droppable config.
// Panics if n is nil.
func (m *Manager) MakeDroppable(n Node, opts ...DropOption) {
	if n == nil {
		panic("dnd: MakeDroppable on nil node")
	}
	cfg := DefaultTable().Drop
	applyDrop(&cfg, opts)
	m.drops[n] = &droppable{cfg: cfg}
}

// ConfigureDroppable changes individual options of n. A node that is not
// droppable yet is initialized with the defaults first.
func (m *Manager) ConfigureDroppable(n Node, opts ...DropOption) {
	d := m.drops[n]
	if d == nil {
		m.MakeDroppable(n)
		d = m.drops[n]
	}
	applyDrop(&d.cfg, opts)
}

// RemoveDroppable makes n stop acting as a drop target.
func (m *Manager) RemoveDroppable(n Node) {
	delete(m.drops, n)
}

// IsDroppable reports whether n is a drop target.
func (m *Manager) IsDroppable(n Node) bool {
	_, ok := m.drops[n]
	return ok
}

// DroppableConfig returns a copy of n's drop configuration.
func (m *Manager) DroppableConfig(n Node) (DroppableConfig, bool) {
	d := m.drops[n]
	if d == nil {
		return DroppableConfig{}, false
	}
	return d.cfg, true
}
