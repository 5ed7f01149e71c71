package scene

import "github.com/phanxgames/dnd"

// The methods below implement dnd.Host. Every dnd.Node the manager hands
// back is a *Node of this scene.

var _ dnd.Host = (*Scene)(nil)

func asNode(n dnd.Node) *Node {
	if n == nil {
		return nil
	}
	return n.(*Node)
}

// Bounds returns the node's world-space bounding box.
func (s *Scene) Bounds(n dnd.Node) dnd.Rect {
	return asNode(n).WorldBounds()
}

// HitTest reports whether the world point lies inside the node's hit area.
func (s *Scene) HitTest(n dnd.Node, global dnd.Vec2) bool {
	node := asNode(n)
	lx, ly := node.WorldToLocal(global.X, global.Y)
	return node.containsLocal(lx, ly)
}

// ToLocal converts a world point into the node's local space.
func (s *Scene) ToLocal(n dnd.Node, global dnd.Vec2) dnd.Vec2 {
	lx, ly := asNode(n).WorldToLocal(global.X, global.Y)
	return dnd.Vec2{X: lx, Y: ly}
}

// Parent returns the node's parent as a dnd.Node, or nil.
func (s *Scene) Parent(n dnd.Node) dnd.Node {
	p := asNode(n).parent
	if p == nil {
		return nil
	}
	return p
}

// Children returns the node's children. The slice is reused between calls.
func (s *Scene) Children(n dnd.Node) []dnd.Node {
	s.childBuf = s.childBuf[:0]
	for _, c := range asNode(n).children {
		s.childBuf = append(s.childBuf, c)
	}
	return s.childBuf
}

// CloneVisual returns a detached, non-interactable copy of the node's
// visual: size, transform, color and alpha. Children are not copied.
func (s *Scene) CloneVisual(n dnd.Node) dnd.Node {
	src := asNode(n)
	c := NewContainer(src.name + "-helper")
	c.X, c.Y = src.X, src.Y
	c.ScaleX, c.ScaleY = src.ScaleX, src.ScaleY
	c.Rotation = src.Rotation
	c.PivotX, c.PivotY = src.PivotX, src.PivotY
	c.Width, c.Height = src.Width, src.Height
	c.Color = src.Color
	c.alpha = src.alpha
	return c
}

// AddChild attaches child to parent.
func (s *Scene) AddChild(parent, child dnd.Node) {
	asNode(parent).AddChild(asNode(child))
}

// RemoveChild detaches child from parent.
func (s *Scene) RemoveChild(parent, child dnd.Node) {
	asNode(parent).RemoveChild(asNode(child))
}

// ScheduleNextTick runs fn at the start of the next Update.
func (s *Scene) ScheduleNextTick(fn func()) {
	s.nextFrame = append(s.nextFrame, fn)
}

// --- Registry sync ---

// collectInteractive walks the tree in painter order, appending every
// visible, interactable node. Hidden or non-interactable subtrees are
// skipped.
func collectInteractive(n *Node, buf []dnd.Node) []dnd.Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	buf = append(buf, n)
	for _, c := range n.children {
		buf = collectInteractive(c, buf)
	}
	return buf
}

// syncInteractive rebuilds the manager's registry when the interactive set
// differs from the last rebuild.
func (s *Scene) syncInteractive() {
	s.scanBuf = collectInteractive(s.root, s.scanBuf[:0])
	if !s.registryDirty && sameNodes(s.scanBuf, s.interactive) {
		return
	}
	s.registryDirty = false
	s.interactive = append(s.interactive[:0], s.scanBuf...)
	s.mgr.RegisterInteractiveSet(s.interactive)
}

// Invalidate forces a registry rebuild on the next Update.
func (s *Scene) Invalidate() {
	s.registryDirty = true
}

// markInteractable sets Interactable on n and its ancestors so the node
// reaches the registry.
func markInteractable(n *Node) {
	for p := n; p != nil; p = p.parent {
		p.Interactable = true
	}
}

// MakeDraggable marks n and its ancestors interactable and makes n draggable.
func (s *Scene) MakeDraggable(n *Node, opts ...dnd.DragOption) {
	markInteractable(n)
	s.mgr.MakeDraggable(n, opts...)
	s.registryDirty = true
}

// MakeDroppable marks n and its ancestors interactable and makes n a drop
// target.
func (s *Scene) MakeDroppable(n *Node, opts ...dnd.DropOption) {
	markInteractable(n)
	s.mgr.MakeDroppable(n, opts...)
	s.registryDirty = true
}

// RemoveDraggable makes n non-draggable.
func (s *Scene) RemoveDraggable(n *Node) {
	s.mgr.RemoveDraggable(n)
	s.registryDirty = true
}

// RemoveDroppable makes n stop acting as a drop target.
func (s *Scene) RemoveDroppable(n *Node) {
	s.mgr.RemoveDroppable(n)
	s.registryDirty = true
}

func sameNodes(a, b []dnd.Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
