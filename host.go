package dnd

// Node is the engine's view of a scene node. Implementations must be
// comparable (typically a pointer type) because nodes are used as map keys.
type Node interface {
	// Name is the node's label inside the scene graph. Handle and cancel
	// selectors match it against a draggable's children.
	Name() string

	// Position is the node's local position in its parent's space.
	Position() Vec2
	SetPosition(p Vec2)

	Alpha() float64
	SetAlpha(a float64)

	// Size is the node's width and height in its parent's space.
	Size() Vec2

	// WorldVisible reports whether the node and all of its ancestors are visible.
	WorldVisible() bool
}

// Host is the capability interface a scene graph implements so the engine can
// query geometry, create helper visuals and schedule animation frames.
//
// All methods are called from the host's update goroutine.
type Host interface {
	// Bounds returns the node's axis-aligned bounding box in world space.
	Bounds(n Node) Rect

	// HitTest reports whether the world-space point lies inside the node.
	HitTest(n Node, global Vec2) bool

	// ToLocal converts a world-space point into the node's local space.
	ToLocal(n Node, global Vec2) Vec2

	// Parent returns the node's parent, or nil for a root or detached node.
	Parent(n Node) Node

	// Children returns the node's direct children. The engine does not mutate
	// the returned slice.
	Children(n Node) []Node

	// CloneVisual returns a new detached node that looks like n.
	CloneVisual(n Node) Node

	AddChild(parent, child Node)
	RemoveChild(parent, child Node)

	// ScheduleNextTick invokes fn once, on the next display refresh.
	ScheduleNextTick(fn func())
}

// PointerEvent is a pointer sample routed by the host to a draggable.
type PointerEvent struct {
	PointerID int
	// Global is the current pointer position in world space.
	Global Vec2
	// Start is the world position where the current gesture began. The engine
	// fills it in for events it hands to callbacks.
	Start Vec2
}

// Selector identifies a sub-region of a draggable, either by an explicit node
// or by a label. The zero Selector selects nothing.
type Selector struct {
	Node  Node
	Label string
}

// SelectNode returns a Selector matching the given node.
func SelectNode(n Node) Selector { return Selector{Node: n} }

// SelectLabel returns a Selector matching children carrying the given label.
func SelectLabel(label string) Selector { return Selector{Label: label} }

// IsZero reports whether the selector is unset.
func (s Selector) IsZero() bool { return s.Node == nil && s.Label == "" }

type containmentKind uint8

const (
	containNone containmentKind = iota
	containParent
	containRect
	containNode
)

// Containment restricts where a draggable may be moved. The zero value
// disables containment.
type Containment struct {
	kind containmentKind
	rect Rect
	node Node
}

// ContainParent keeps the draggable inside its parent's bounds.
func ContainParent() Containment { return Containment{kind: containParent} }

// ContainRect keeps the draggable inside a fixed world-space rectangle.
func ContainRect(r Rect) Containment { return Containment{kind: containRect, rect: r} }

// ContainNode keeps the draggable inside another node's bounds.
func ContainNode(n Node) Containment { return Containment{kind: containNode, node: n} }

// Enabled reports whether any containment is configured.
func (c Containment) Enabled() bool { return c.kind != containNone }

// resolve returns the world-space containment rectangle for node.
func (c Containment) resolve(h Host, node Node) (Rect, bool) {
	switch c.kind {
	case containParent:
		p := h.Parent(node)
		if p == nil {
			return Rect{}, false
		}
		return h.Bounds(p), true
	case containRect:
		return c.rect, true
	case containNode:
		if c.node == nil {
			return Rect{}, false
		}
		return h.Bounds(c.node), true
	}
	return Rect{}, false
}
