package scene

import (
	"image/color"
	"math"

	"github.com/phanxgames/dnd"
)

// HitShape is used for custom hit testing regions in local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default fill.
var ColorWhite = Color{1, 1, 1, 1}

func (c Color) toRGBA(alpha float64) color.RGBA {
	a := clamp01(c.A * alpha)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// nodeIDCounter is a plain counter (no atomic, scenes are single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a scene graph element: a container, or a solid rectangle when it
// has a size. Nodes implement dnd.Node, so any node can be made draggable or
// droppable.
type Node struct {
	ID   uint32
	name string

	parent   *Node
	children []*Node

	// Transform (local)
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64
	PivotX, PivotY float64

	// Width and Height are the unscaled local size. A node with a size is
	// drawn as a filled rectangle and is hit-testable.
	Width, Height float64

	alpha        float64
	Visible      bool
	Interactable bool
	Color        Color

	// HitShape overrides the size-derived hit area.
	HitShape HitShape

	UserData any

	disposed bool
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.alpha = 1
	n.Color = ColorWhite
	n.Visible = true
}

// NewContainer creates a node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{name: name}
	nodeDefaults(n)
	return n
}

// NewRect creates an interactable filled rectangle.
func NewRect(name string, w, h float64, c Color) *Node {
	n := &Node{name: name, Width: w, Height: h}
	nodeDefaults(n)
	n.Color = c
	n.Interactable = true
	return n
}

// --- dnd.Node ---

// Name returns the node's label. Handle and cancel selectors match it.
func (n *Node) Name() string { return n.name }

// Position returns the local position.
func (n *Node) Position() dnd.Vec2 { return dnd.Vec2{X: n.X, Y: n.Y} }

// SetPosition sets the local position.
func (n *Node) SetPosition(p dnd.Vec2) {
	n.X = p.X
	n.Y = p.Y
}

// Alpha returns the node's own alpha, not multiplied by its ancestors.
func (n *Node) Alpha() float64 { return n.alpha }

// SetAlpha sets the node's own alpha.
func (n *Node) SetAlpha(a float64) { n.alpha = a }

// Size returns the scaled size in the parent's space.
func (n *Node) Size() dnd.Vec2 {
	return dnd.Vec2{X: math.Abs(n.Width * n.ScaleX), Y: math.Abs(n.Height * n.ScaleY)}
}

// WorldVisible reports whether the node and all of its ancestors are visible.
func (n *Node) WorldVisible() bool {
	for p := n; p != nil; p = p.parent {
		if !p.Visible {
			return false
		}
	}
	return true
}

// --- Tree manipulation ---

// Parent returns the node's parent, or nil.
func (n *Node) Parent() *Node { return n.parent }

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("scene: cannot add nil child")
	}
	if n.disposed || child.disposed {
		panic("scene: AddChild with disposed node")
	}
	if isAncestor(child, n) {
		panic("scene: adding child would create a cycle")
	}
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child's parent is not n.
func (n *Node) RemoveChild(child *Node) {
	if child.parent != n {
		panic("scene: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.parent == nil {
		return
	}
	n.parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// BringToFront moves the node to the end of its parent's children so it is
// drawn, hit-tested and drop-resolved on top of its siblings.
func (n *Node) BringToFront() {
	p := n.parent
	if p == nil || p.children[len(p.children)-1] == n {
		return
	}
	p.removeChildByPtr(n)
	p.children = append(p.children, n)
}

// Dispose removes this node from its parent and disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.parent = nil
		child.dispose()
	}
	n.children = nil
	n.HitShape = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing its parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// containsLocal tests whether (lx, ly) falls inside the node's hit region.
// Nodes without a HitShape or size are not hit-testable.
func (n *Node) containsLocal(lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	if n.Width == 0 && n.Height == 0 {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}
