package dnd

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// revertTween animates one draggable's helper back to its start position:
// position = from - delta*progress, where progress runs from 0 to 1 along the
// easing curve. The curve is evaluated by gween in float32; positions are
// composed in float64 so rounding scales with delta, not with the
// coordinates.
type revertTween struct {
	node     Node
	drag     *draggable
	sess     *session
	start    time.Time
	duration time.Duration
	from     Vec2
	delta    Vec2
	progress *gween.Tween
	done     bool
}

// startRevert queues a revert animation for s and starts the ticker if it is
// idle. The node's own position is not touched until the animation ends.
func (m *Manager) startRevert(n Node, d *draggable, s *session) {
	el := s.dragElement(n)
	from := el.Position()
	fn := d.cfg.RevertEase
	if fn == nil {
		fn = ease.Linear
	}
	secs := float32(d.cfg.RevertDuration.Seconds())
	tw := &revertTween{
		node:     n,
		drag:     d,
		sess:     s,
		start:    m.now(),
		duration: d.cfg.RevertDuration,
		from:     from,
		delta:    from.Sub(s.original),
		progress: gween.New(0, 1, secs, fn),
	}
	s.isTweening = true
	m.tweens = append(m.tweens, tw)
	m.debugf("revert %s over %v", nodeName(n), tw.duration)
	m.emit(Event{
		Type: EventRevertStart, Node: n, Label: d.cfg.Label, PointerID: s.pointerID,
		Position: from, Pointer: s.last.Global, Dropped: s.dropped, Reverted: true,
	})

	if !m.ticking {
		m.ticking = true
		m.tick()
	}
}

// tick advances every revert animation by one frame. The loop stops itself:
// when no animation is left at the start of a tick it does not schedule
// another one.
func (m *Manager) tick() {
	if len(m.tweens) == 0 {
		m.ticking = false
		return
	}
	m.host.ScheduleNextTick(m.tickFn)

	now := m.now()
	m.tickBuf = append(m.tickBuf[:0], m.tweens...)
	for i := len(m.tickBuf) - 1; i >= 0; i-- {
		tw := m.tickBuf[i]
		if tw.done {
			continue
		}
		if m.nodeGone(tw.node, tw.sess) {
			tw.done = true
			m.abandonRevert(tw)
			continue
		}
		elapsed := now.Sub(tw.start)
		if elapsed >= tw.duration {
			tw.done = true
			m.finishRevert(tw)
			continue
		}
		p, _ := tw.progress.Set(float32(elapsed.Seconds()))
		k := float64(p)
		tw.sess.dragElement(tw.node).SetPosition(Vec2{
			X: tw.from.X - tw.delta.X*k,
			Y: tw.from.Y - tw.delta.Y*k,
		})
	}
	for i := range m.tickBuf {
		m.tickBuf[i] = nil
	}
	m.compactTweens()
}

// finishRevert snaps the helper exactly onto the start position and settles
// the gesture.
func (m *Manager) finishRevert(tw *revertTween) {
	s := tw.sess
	if s.terminated {
		return
	}
	s.dragElement(tw.node).SetPosition(s.original)
	m.stop(tw.node, tw.drag, s)
}

// nodeGone reports whether n left the scene while s was reverting: it was
// disposed, or it no longer sits under the parent it was dragged in.
func (m *Manager) nodeGone(n Node, s *session) bool {
	if d, ok := n.(interface{ IsDisposed() bool }); ok && d.IsDisposed() {
		return true
	}
	return s.parent != nil && m.host.Parent(n) != s.parent
}

// abandonRevert ends the gesture of a node that is gone without writing to
// it or firing callbacks. A disposed node also stops being draggable.
func (m *Manager) abandonRevert(tw *revertTween) {
	s := tw.sess
	if s.terminated {
		return
	}
	s.isTweening = false
	s.terminated = true
	s.destroyHelper(m.host)
	s.snaps = nil
	if tw.drag.sess == s {
		tw.drag.sess = nil
	}
	m.debugf("revert %s abandoned: node left the scene", nodeName(tw.node))
	if d, ok := tw.node.(interface{ IsDisposed() bool }); ok && d.IsDisposed() {
		if m.drags[tw.node] == tw.drag {
			delete(m.drags, tw.node)
		}
	}
}

// cancelRevert drops the animation of s, if any, without settling it.
func (m *Manager) cancelRevert(s *session) {
	if !s.isTweening {
		return
	}
	for _, tw := range m.tweens {
		if tw.sess == s {
			tw.done = true
		}
	}
	s.isTweening = false
	m.compactTweens()
}

func (m *Manager) compactTweens() {
	j := 0
	for _, tw := range m.tweens {
		if !tw.done {
			m.tweens[j] = tw
			j++
		}
	}
	for i := j; i < len(m.tweens); i++ {
		m.tweens[i] = nil
	}
	m.tweens = m.tweens[:j]
}

// Reverting returns the number of revert animations in flight.
func (m *Manager) Reverting() int {
	return len(m.tweens)
}

// Ticking reports whether the revert ticker is scheduled.
func (m *Manager) Ticking() bool {
	return m.ticking
}
