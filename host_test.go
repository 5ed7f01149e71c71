package dnd

import "time"

// --- Test scene ---------------------------------------------------------------

type testNode struct {
	name     string
	pos      Vec2
	size     Vec2
	alpha    float64
	hidden   bool
	parent   *testNode
	children []*testNode
	clone    bool
	disposed bool
}

func newTestNode(name string, x, y, w, h float64) *testNode {
	return &testNode{name: name, pos: Vec2{x, y}, size: Vec2{w, h}, alpha: 1}
}

func (n *testNode) Name() string       { return n.name }
func (n *testNode) Position() Vec2     { return n.pos }
func (n *testNode) SetPosition(p Vec2) { n.pos = p }
func (n *testNode) Alpha() float64     { return n.alpha }
func (n *testNode) SetAlpha(a float64) { n.alpha = a }
func (n *testNode) Size() Vec2         { return n.size }
func (n *testNode) IsDisposed() bool   { return n.disposed }
func (n *testNode) WorldVisible() bool {
	for p := n; p != nil; p = p.parent {
		if p.hidden {
			return false
		}
	}
	return true
}

func (n *testNode) world() Vec2 {
	w := n.pos
	for p := n.parent; p != nil; p = p.parent {
		w = w.Add(p.pos)
	}
	return w
}

func (n *testNode) add(c *testNode) *testNode {
	if c.parent != nil {
		c.parent.remove(c)
	}
	c.parent = n
	n.children = append(n.children, c)
	return c
}

func (n *testNode) remove(c *testNode) {
	for i, ch := range n.children {
		if ch == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

// testHost implements Host over testNode trees. Scheduled ticks are queued and
// run one frame at a time by frame.
type testHost struct {
	queue  []func()
	clones int
}

func (h *testHost) Bounds(n Node) Rect {
	tn := n.(*testNode)
	w := tn.world()
	return Rect{w.X, w.Y, tn.size.X, tn.size.Y}
}

func (h *testHost) HitTest(n Node, p Vec2) bool {
	return h.Bounds(n).Contains(p.X, p.Y)
}

func (h *testHost) ToLocal(n Node, p Vec2) Vec2 {
	return p.Sub(n.(*testNode).world())
}

func (h *testHost) Parent(n Node) Node {
	p := n.(*testNode).parent
	if p == nil {
		return nil
	}
	return p
}

func (h *testHost) Children(n Node) []Node {
	tn := n.(*testNode)
	out := make([]Node, len(tn.children))
	for i, c := range tn.children {
		out[i] = c
	}
	return out
}

func (h *testHost) CloneVisual(n Node) Node {
	tn := n.(*testNode)
	h.clones++
	return &testNode{name: tn.name + "-clone", pos: tn.pos, size: tn.size, alpha: tn.alpha, clone: true}
}

func (h *testHost) AddChild(parent, child Node) {
	parent.(*testNode).add(child.(*testNode))
}

func (h *testHost) RemoveChild(parent, child Node) {
	parent.(*testNode).remove(child.(*testNode))
}

func (h *testHost) ScheduleNextTick(fn func()) {
	h.queue = append(h.queue, fn)
}

// frame runs the callbacks scheduled before it was called.
func (h *testHost) frame() int {
	q := h.queue
	h.queue = nil
	for _, fn := range q {
		fn()
	}
	return len(q)
}

type testClock struct{ t time.Time }

func newTestClock() *testClock {
	return &testClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *testClock) now() time.Time          { return c.t }
func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// --- Fixtures -----------------------------------------------------------------

type fixture struct {
	host  *testHost
	clock *testClock
	mgr   *Manager
	root  *testNode
}

func newFixture() *fixture {
	h := &testHost{}
	c := newTestClock()
	m := NewManager(h)
	m.SetClock(c.now)
	return &fixture{
		host:  h,
		clock: c,
		mgr:   m,
		root:  newTestNode("root", 0, 0, 800, 600),
	}
}

// node adds a child of the root.
func (f *fixture) node(name string, x, y, w, h float64) *testNode {
	return f.root.add(newTestNode(name, x, y, w, h))
}

// register rebuilds the registry from the root's children in order.
func (f *fixture) register() {
	nodes := make([]Node, 0, len(f.root.children))
	for _, c := range f.root.children {
		nodes = append(nodes, c)
	}
	f.mgr.RegisterInteractiveSet(nodes)
}

func ptr(x, y float64) PointerEvent {
	return PointerEvent{Global: Vec2{x, y}}
}

// drag presses n at from, moves to to and releases there.
func (f *fixture) drag(n Node, from, to Vec2) {
	f.mgr.PointerDown(n, PointerEvent{Global: from})
	f.mgr.PointerMove(n, PointerEvent{Global: to})
	f.mgr.PointerUp(n, PointerEvent{Global: to})
}

type eventLog struct {
	events []Event
}

func (l *eventLog) EmitEvent(e Event) { l.events = append(l.events, e) }

func (l *eventLog) types() []EventType {
	out := make([]EventType, len(l.events))
	for i, e := range l.events {
		out[i] = e.Type
	}
	return out
}
