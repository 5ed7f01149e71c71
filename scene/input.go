package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/dnd"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Per-pointer state ---

type pointerState struct {
	down         bool
	lastX, lastY float64
	// dragNode is the draggable the press landed on, nil when the press
	// missed every draggable.
	dragNode *Node
	// hoverNode is the draggable under an idle pointer.
	hoverNode *Node
}

// --- Hit testing ---

// collectHittable walks the tree in painter order, appending interactable
// nodes that have a hit area.
func collectHittable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Width != 0 || n.Height != 0 {
		buf = append(buf, n)
	}
	for _, c := range n.children {
		buf = collectHittable(c, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (wx, wy).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(wx, wy float64) *Node {
	s.hitBuf = collectHittable(s.root, s.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(wx, wy)
		if n.containsLocal(lx, ly) {
			return n
		}
	}
	return nil
}

// draggableAt returns the draggable owning the topmost node at (wx, wy):
// the hit node itself or its nearest draggable ancestor, so presses on a
// handle child reach the draggable.
func (s *Scene) draggableAt(wx, wy float64) *Node {
	for n := s.hitTest(wx, wy); n != nil; n = n.parent {
		if s.mgr.IsDraggable(n) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from Update to handle mouse, touch and injected
// input. Injected events replace real mouse input for the frame.
func (s *Scene) processInput() {
	if !s.processInjectedInput() {
		s.processMousePointer()
	}
	s.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer and
// routes the samples to the manager. A press binds the pointer to the
// draggable under it until release, so moves and the release reach that
// draggable even when the pointer leaves it.
func (s *Scene) processPointer(pointerID int, wx, wy float64, pressed bool) {
	ps := &s.pointers[pointerID]
	ev := dnd.PointerEvent{PointerID: pointerID, Global: dnd.Vec2{X: wx, Y: wy}}
	moved := wx != ps.lastX || wy != ps.lastY

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.lastX, ps.lastY = wx, wy
		ps.hoverNode = nil
		ps.dragNode = s.draggableAt(wx, wy)
		if ps.dragNode != nil {
			s.mgr.PointerDown(ps.dragNode, ev)
		}

	case !pressed && ps.down:
		ps.down = false
		ps.lastX, ps.lastY = wx, wy
		n := ps.dragNode
		ps.dragNode = nil
		if n == nil {
			return
		}
		// The release sample may carry movement the last move did not.
		if moved {
			s.mgr.PointerMove(n, ev)
		}
		if s.draggableAt(wx, wy) == n {
			s.mgr.PointerUp(n, ev)
		} else {
			s.mgr.PointerUpOutside(n, ev)
		}

	case pressed && ps.down:
		if !moved {
			return
		}
		ps.lastX, ps.lastY = wx, wy
		if ps.dragNode != nil {
			s.mgr.PointerMove(ps.dragNode, ev)
		}

	default:
		// Hover move: only raw pointer callbacks see it.
		if !moved {
			return
		}
		ps.lastX, ps.lastY = wx, wy
		ps.hoverNode = s.draggableAt(wx, wy)
		if ps.hoverNode != nil {
			s.mgr.PointerMove(ps.hoverNode, ev)
		}
	}
}

// Hovered returns the draggable under the mouse pointer while no button is
// held, or nil.
func (s *Scene) Hovered() *Node {
	return s.pointers[0].hoverNode
}
