package dnd

// drop resolves a release after a started drag: finds the droppables the
// helper landed on, fires their callbacks and then settles or reverts.
func (m *Manager) drop(n Node, d *draggable, s *session, ev PointerEvent) {
	cfg := &d.cfg
	el := s.dragElement(n)
	bounds := m.host.Bounds(el)

	dropped, hits := m.resolveDrop(n, cfg.Label, bounds, ev.Global)
	s.dropped = dropped
	m.debugf("drop %s: dropped=%v targets=%d", nodeName(n), dropped, len(hits))

	ptr := ev
	ptr.Start = s.origin
	for i := len(hits) - 1; i >= 0; i-- {
		t := hits[i]
		if td := m.drops[t]; td != nil && td.cfg.OnDrop != nil {
			td.cfg.OnDrop(DropContext{
				Droppable: t,
				Draggable: n,
				Helper:    el,
				Label:     cfg.Label,
				Pointer:   ptr,
				Bounds:    bounds,
			})
		}
		m.emit(Event{
			Type: EventDrop, Node: n, Label: cfg.Label, PointerID: ev.PointerID,
			Position: el.Position(), Pointer: ev.Global, Target: t, Dropped: true,
		})
	}

	// A drop callback may have removed or re-initialized the draggable.
	if m.drags[n] != d || d.sess != s {
		return
	}

	if shouldRevert(cfg.Revert, dropped) {
		s.reverted = true
		if cfg.RevertDuration > 0 {
			m.startRevert(n, d, s)
			return
		}
		el.SetPosition(s.original)
		m.stop(n, d, s)
		return
	}

	if s.helper != nil {
		n.SetPosition(s.helper.Position())
	}
	m.stop(n, d, s)
}

// resolveDrop scans the droppables topmost first and returns whether the
// drop counts as accepted plus the droppables hit, in scan order. A greedy
// hit discards earlier hits and ends the scan. With no droppables
// registered every drop counts as accepted.
func (m *Manager) resolveDrop(n Node, label string, bounds Rect, pointer Vec2) (bool, []Node) {
	var hits []Node
	registered := false

	drops := m.reg.droppables
	for i := len(drops) - 1; i >= 0; i-- {
		t := drops[i]
		td := m.drops[t]
		if td == nil {
			continue
		}
		registered = true
		if t == n || td.cfg.Disabled || !t.WorldVisible() {
			continue
		}
		if !td.cfg.Accept.Matches(n, label) {
			continue
		}
		hit := td.cfg.Tolerance.Accepts(bounds, m.host.Bounds(t), func() bool {
			return m.host.HitTest(t, pointer)
		})
		if !hit {
			continue
		}
		if td.cfg.Greedy {
			hits = append(hits[:0], t)
			break
		}
		hits = append(hits, t)
	}

	if !registered {
		return true, nil
	}
	return len(hits) > 0, hits
}

// stop finishes a gesture: restores alpha, destroys the helper, clears the
// snap candidates, fires OnDragStop and destroys the session. It runs at
// most once per session.
func (m *Manager) stop(n Node, d *draggable, s *session) {
	if s.terminated {
		return
	}
	s.terminated = true
	s.isTweening = false

	s.dragElement(n).SetAlpha(s.originalAlpha)
	ctx := m.dragContext(n, d, s)
	ctx.Position = n.Position()

	s.destroyHelper(m.host)
	s.snaps = nil
	if d.sess == s {
		d.sess = nil
	}

	m.debugf("drag stop %s (dropped=%v reverted=%v)", nodeName(n), s.dropped, s.reverted)
	if d.cfg.OnDragStop != nil {
		d.cfg.OnDragStop(ctx)
	}
	m.emit(Event{
		Type: EventDragStop, Node: n, Label: d.cfg.Label, PointerID: s.pointerID,
		Position: n.Position(), Pointer: s.last.Global, Dropped: s.dropped, Reverted: s.reverted,
	})
}
