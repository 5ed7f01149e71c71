package dnd

import "math"

// PointerDown handles a press over a draggable node. Events for nodes that
// are not draggable are ignored.
func (m *Manager) PointerDown(n Node, ev PointerEvent) {
	d := m.drags[n]
	if d == nil {
		return
	}
	if d.cfg.OnPointerDown != nil {
		ev.Start = ev.Global
		d.cfg.OnPointerDown(ev)
		// The callback may have reconfigured or removed the node.
		if d = m.drags[n]; d == nil {
			return
		}
	}
	m.press(n, d, ev)
}

// PointerMove handles pointer movement routed to a draggable node.
func (m *Manager) PointerMove(n Node, ev PointerEvent) {
	d := m.drags[n]
	if d == nil {
		return
	}
	if d.cfg.OnPointerMove != nil {
		d.cfg.OnPointerMove(m.withStart(d, ev))
		if d = m.drags[n]; d == nil {
			return
		}
	}
	s := d.sess
	if s == nil || !s.isDragging || s.pointerID != ev.PointerID {
		return
	}
	s.last = ev
	if !s.dragStarted {
		if !m.dragStart(n, d, s, ev) {
			return
		}
	}
	m.dragMove(n, d, s, ev)
}

// PointerUp handles a release over a draggable node.
func (m *Manager) PointerUp(n Node, ev PointerEvent) {
	d := m.drags[n]
	if d == nil {
		return
	}
	if d.cfg.OnPointerUp != nil {
		d.cfg.OnPointerUp(m.withStart(d, ev))
		if d = m.drags[n]; d == nil {
			return
		}
	}
	m.release(n, d, ev)
}

// PointerUpOutside handles a release that happened outside the draggable
// node after a press on it.
func (m *Manager) PointerUpOutside(n Node, ev PointerEvent) {
	d := m.drags[n]
	if d == nil {
		return
	}
	if d.cfg.OnPointerUpOutside != nil {
		d.cfg.OnPointerUpOutside(m.withStart(d, ev))
		if d = m.drags[n]; d == nil {
			return
		}
	}
	m.release(n, d, ev)
}

// withStart fills in the gesture start of ev from the active session.
func (m *Manager) withStart(d *draggable, ev PointerEvent) PointerEvent {
	if d.sess != nil && d.sess.pointerID == ev.PointerID {
		ev.Start = d.sess.origin
	} else {
		ev.Start = ev.Global
	}
	return ev
}

// --- Idle -> Armed ---

func (m *Manager) press(n Node, d *draggable, ev PointerEvent) {
	cfg := &d.cfg
	prev := d.sess

	if cfg.Disabled {
		m.debugf("press on %s ignored: disabled", nodeName(n))
		return
	}
	if prev != nil && prev.isTweening {
		m.debugf("press on %s ignored: reverting", nodeName(n))
		return
	}
	if prev != nil && prev.isDragging && prev.pointerID != ev.PointerID {
		m.debugf("press on %s ignored: held by pointer %d", nodeName(n), prev.pointerID)
		return
	}
	if !cfg.Handle.IsZero() && !m.selectorHit(n, cfg.Handle, ev.Global) {
		m.debugf("press on %s ignored: outside handle", nodeName(n))
		return
	}
	if !cfg.Cancel.IsZero() && m.selectorHit(n, cfg.Cancel, ev.Global) {
		m.debugf("press on %s ignored: cancel region", nodeName(n))
		return
	}

	if prev != nil {
		// The previous gesture never completed: drop its helper and alpha
		// before the new one records the node's state.
		m.teardownDrag(n, d)
	}

	s := &session{
		pointerID:     ev.PointerID,
		origin:        ev.Global,
		original:      n.Position(),
		originalAlpha: n.Alpha(),
		isDragging:    true,
		last:          ev,
	}
	if cfg.CursorAt != nil {
		local := m.host.ToLocal(n, ev.Global)
		s.offset = cfg.CursorAt.Sub(local)
	}
	d.sess = s
}

// selectorHit reports whether the pointer is over the region sel describes.
// Label selectors match direct children of n by name, draggable label or
// droppable label, topmost child first.
func (m *Manager) selectorHit(n Node, sel Selector, p Vec2) bool {
	if sel.Node != nil {
		return m.host.HitTest(sel.Node, p)
	}
	children := m.host.Children(n)
	for i := len(children) - 1; i >= 0; i-- {
		c := children[i]
		if m.hasLabel(c, sel.Label) && m.host.HitTest(c, p) {
			return true
		}
	}
	return false
}

func (m *Manager) hasLabel(n Node, label string) bool {
	if n.Name() == label {
		return true
	}
	if d := m.drags[n]; d != nil && d.cfg.Label == label {
		return true
	}
	if d := m.drops[n]; d != nil && d.cfg.Label == label {
		return true
	}
	return false
}

// --- Armed -> Dragging ---

// dragStart crosses the distance threshold. It returns false while the
// pointer is still within the threshold on both axes.
func (m *Manager) dragStart(n Node, d *draggable, s *session, ev PointerEvent) bool {
	cfg := &d.cfg
	if math.Abs(ev.Global.X-s.origin.X) < cfg.Distance &&
		math.Abs(ev.Global.Y-s.origin.Y) < cfg.Distance {
		return false
	}

	s.destroyHelper(m.host)
	s.parent = m.host.Parent(n)
	if cfg.Helper == HelperClone && s.parent != nil {
		c := m.host.CloneVisual(n)
		m.host.AddChild(s.parent, c)
		c.SetPosition(n.Position())
		s.helper = c
	}
	el := s.dragElement(n)
	el.SetAlpha(s.originalAlpha * cfg.Alpha)

	b := m.host.Bounds(n)
	pos := n.Position()
	s.worldOffset = Vec2{b.X - pos.X, b.Y - pos.Y}

	s.snaps = s.snaps[:0]
	if cfg.Snap.Enabled() {
		s.snaps = m.collectSnaps(n, cfg.Snap, s.snaps)
	}

	s.dragStarted = true
	m.debugf("drag start %s (pointer %d, %d snap targets)", nodeName(n), ev.PointerID, len(s.snaps))

	ctx := m.dragContext(n, d, s)
	if cfg.OnDragStart != nil {
		cfg.OnDragStart(ctx)
	}
	m.emit(Event{
		Type: EventDragStart, Node: n, Label: cfg.Label, PointerID: ev.PointerID,
		Position: ctx.Position, Pointer: ev.Global,
	})
	// The callback may have torn the session down.
	return d.sess == s && m.drags[n] == d
}

// collectSnaps gathers every visible draggable matching target, excluding n,
// with freshly computed bounds.
func (m *Manager) collectSnaps(n Node, target SnapTarget, buf []snapCandidate) []snapCandidate {
	drags := m.reg.draggables
	for i := len(drags) - 1; i >= 0; i-- {
		o := drags[i]
		if o == n || !o.WorldVisible() {
			continue
		}
		od := m.drags[o]
		if od == nil || !target.matches(od.cfg.Label) {
			continue
		}
		buf = append(buf, snapCandidate{node: o, bounds: m.host.Bounds(o)})
	}
	return buf
}

// --- Dragging -> Dragging ---

func (m *Manager) dragMove(n Node, d *draggable, s *session, ev PointerEvent) {
	cfg := &d.cfg
	size := n.Size()
	wo := s.worldOffset

	delta := ev.Global.Sub(s.origin)
	local := s.original.Add(delta).Sub(s.offset)
	start := s.original.Add(wo)
	r := Rect{local.X + wo.X, local.Y + wo.Y, size.X, size.Y}

	bounds, contained := cfg.Containment.resolve(m.host, n)
	if contained {
		r = ClampRect(r, bounds, cfg.Axis)
	}

	if g := cfg.Grid; g != nil {
		if g.X > 0 && cfg.Axis != AxisY {
			r.X = SnapToGrid(r.X, start.X, g.X)
			if contained {
				r.X = gridInside(r.X, r.Width, g.X, bounds.X, bounds.Right())
			}
		}
		if g.Y > 0 && cfg.Axis != AxisX {
			r.Y = SnapToGrid(r.Y, start.Y, g.Y)
			if contained {
				r.Y = gridInside(r.Y, r.Height, g.Y, bounds.Y, bounds.Bottom())
			}
		}
	}

	s.snappedTo = nil
	if cfg.Snap.Enabled() && len(s.snaps) > 0 {
		res := resolveSnap(r, s.snaps, cfg.SnapMode, cfg.SnapTolerance, cfg.SnapSort)
		r = res.rect
		s.snappedTo = res.target
	}

	el := s.dragElement(n)
	pos := Vec2{r.X - wo.X, r.Y - wo.Y}
	cur := el.Position()
	switch cfg.Axis {
	case AxisX:
		pos.Y = cur.Y
	case AxisY:
		pos.X = cur.X
	}
	el.SetPosition(pos)

	ctx := m.dragContext(n, d, s)
	if cfg.OnDragMove != nil {
		cfg.OnDragMove(ctx)
	}
	m.emit(Event{
		Type: EventDragMove, Node: n, Label: cfg.Label, PointerID: ev.PointerID,
		Position: pos, Pointer: ev.Global, Target: s.snappedTo,
	})
}

// --- Release ---

func (m *Manager) release(n Node, d *draggable, ev PointerEvent) {
	s := d.sess
	if s == nil || !s.isDragging || s.pointerID != ev.PointerID {
		return
	}
	s.isDragging = false
	s.last = ev
	if !s.dragStarted {
		// Never crossed the threshold: back to idle without side effects.
		d.sess = nil
		return
	}
	m.drop(n, d, s, ev)
}

func (m *Manager) dragContext(n Node, d *draggable, s *session) DragContext {
	el := s.dragElement(n)
	ptr := s.last
	ptr.Start = s.origin
	return DragContext{
		Node:       n,
		Helper:     el,
		Label:      d.cfg.Label,
		Pointer:    ptr,
		Position:   el.Position(),
		Original:   s.original,
		Cursor:     d.cfg.Cursor,
		SnapTarget: s.snappedTo,
		Dropped:    s.dropped,
		Reverted:   s.reverted,
	}
}
