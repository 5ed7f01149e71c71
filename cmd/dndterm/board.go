package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/dnd"
)

// tile is a rectangle of terminal cells. Positions are in cells, relative to
// the parent tile.
type tile struct {
	name     string
	pos      dnd.Vec2
	w, h     float64
	alpha    float64
	hidden   bool
	glyph    rune
	style    tcell.Style
	parent   *tile
	children []*tile
}

func newTile(name string, x, y, w, h float64, glyph rune, style tcell.Style) *tile {
	return &tile{name: name, pos: dnd.Vec2{X: x, Y: y}, w: w, h: h, alpha: 1, glyph: glyph, style: style}
}

func (t *tile) Name() string           { return t.name }
func (t *tile) Position() dnd.Vec2     { return t.pos }
func (t *tile) SetPosition(p dnd.Vec2) { t.pos = p }
func (t *tile) Alpha() float64         { return t.alpha }
func (t *tile) SetAlpha(a float64)     { t.alpha = a }
func (t *tile) Size() dnd.Vec2         { return dnd.Vec2{X: t.w, Y: t.h} }

func (t *tile) WorldVisible() bool {
	for p := t; p != nil; p = p.parent {
		if p.hidden {
			return false
		}
	}
	return true
}

func (t *tile) world() dnd.Vec2 {
	w := t.pos
	for p := t.parent; p != nil; p = p.parent {
		w = w.Add(p.pos)
	}
	return w
}

func (t *tile) add(c *tile) {
	if c.parent != nil {
		c.parent.remove(c)
	}
	c.parent = t
	t.children = append(t.children, c)
}

func (t *tile) remove(c *tile) {
	for i, x := range t.children {
		if x == c {
			t.children = append(t.children[:i], t.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

func (t *tile) raise() {
	p := t.parent
	if p == nil {
		return
	}
	p.remove(t)
	p.add(t)
}

// feedback plays the drop tones.
type feedback interface {
	accept()
	reject()
}

type silent struct{}

func (silent) accept() {}
func (silent) reject() {}

// cellSetter is the part of tcell.Screen the board draws with.
type cellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// board hosts the drag-and-drop manager over a grid of terminal cells.
type board struct {
	root  *tile
	mgr   *dnd.Manager
	sound feedback

	next, running []func()
	nodes         []dnd.Node
	kids          []dnd.Node
	dirty         bool

	down         bool
	lastX, lastY int
	held         *tile

	status string
	drops  int
}

var _ dnd.Host = (*board)(nil)

func newBoard(width, height int, sound feedback) *board {
	if sound == nil {
		sound = silent{}
	}
	b := &board{
		root:  newTile("board", 0, 0, float64(width), float64(height), ' ', tcell.StyleDefault),
		sound: sound,
		dirty: true,
	}
	b.mgr = dnd.NewManager(b)
	b.mgr.SetEventSink(b)
	return b
}

func asTile(n dnd.Node) *tile { return n.(*tile) }

// --- dnd.Host ---

func (b *board) Bounds(n dnd.Node) dnd.Rect {
	t := asTile(n)
	w := t.world()
	return dnd.Rect{X: w.X, Y: w.Y, Width: t.w, Height: t.h}
}

// HitTest treats a cell as the point at its top-left corner; the rectangle is
// half-open so adjacent tiles do not share cells.
func (b *board) HitTest(n dnd.Node, g dnd.Vec2) bool {
	r := b.Bounds(n)
	return g.X >= r.X && g.X < r.Right() && g.Y >= r.Y && g.Y < r.Bottom()
}

func (b *board) ToLocal(n dnd.Node, g dnd.Vec2) dnd.Vec2 {
	return g.Sub(asTile(n).world())
}

func (b *board) Parent(n dnd.Node) dnd.Node {
	if p := asTile(n).parent; p != nil {
		return p
	}
	return nil
}

func (b *board) Children(n dnd.Node) []dnd.Node {
	b.kids = b.kids[:0]
	for _, c := range asTile(n).children {
		b.kids = append(b.kids, c)
	}
	return b.kids
}

func (b *board) CloneVisual(n dnd.Node) dnd.Node {
	t := asTile(n)
	c := newTile(t.name+"-ghost", t.pos.X, t.pos.Y, t.w, t.h, t.glyph, t.style)
	c.alpha = t.alpha
	return c
}

func (b *board) AddChild(parent, child dnd.Node) {
	asTile(parent).add(asTile(child))
	b.dirty = true
}

func (b *board) RemoveChild(parent, child dnd.Node) {
	asTile(parent).remove(asTile(child))
	b.dirty = true
}

func (b *board) ScheduleNextTick(fn func()) {
	b.next = append(b.next, fn)
}

// EmitEvent implements dnd.EventSink: it plays the drop tones and keeps the
// status line.
func (b *board) EmitEvent(e dnd.Event) {
	switch e.Type {
	case dnd.EventDragStart:
		b.status = fmt.Sprintf("dragging %s", e.Node.Name())
	case dnd.EventDrop:
		b.drops++
		b.status = fmt.Sprintf("%s dropped on %s", e.Node.Name(), e.Target.Name())
		b.sound.accept()
	case dnd.EventRevertStart:
		b.status = fmt.Sprintf("%s rejected", e.Node.Name())
		b.sound.reject()
	}
}

// --- Frame ---

// sync rebuilds the manager's registry after a tree change.
func (b *board) sync() {
	if !b.dirty {
		return
	}
	b.dirty = false
	b.nodes = collect(b.root, b.nodes[:0])
	b.mgr.RegisterInteractiveSet(b.nodes)
}

func collect(t *tile, buf []dnd.Node) []dnd.Node {
	if t.hidden {
		return buf
	}
	buf = append(buf, t)
	for _, c := range t.children {
		buf = collect(c, buf)
	}
	return buf
}

// frame runs the callbacks scheduled since the previous frame.
func (b *board) frame() {
	b.sync()
	b.running, b.next = b.next, b.running[:0]
	for i, fn := range b.running {
		fn()
		b.running[i] = nil
	}
	b.running = b.running[:0]
}

// --- Input ---

// tileAt returns the topmost visible tile covering the cell.
func (b *board) tileAt(x, y int) *tile {
	p := dnd.Vec2{X: float64(x), Y: float64(y)}
	for i := len(b.nodes) - 1; i >= 0; i-- {
		t := asTile(b.nodes[i])
		if t != b.root && t.WorldVisible() && b.HitTest(t, p) {
			return t
		}
	}
	return nil
}

func (b *board) draggableAt(x, y int) *tile {
	for t := b.tileAt(x, y); t != nil; t = t.parent {
		if b.mgr.IsDraggable(t) {
			return t
		}
	}
	return nil
}

// mouse routes one tcell mouse sample. The left button drives the drag.
func (b *board) mouse(x, y int, buttons tcell.ButtonMask) {
	b.sync()
	pressed := buttons&tcell.Button1 != 0
	ev := dnd.PointerEvent{Global: dnd.Vec2{X: float64(x), Y: float64(y)}}
	moved := x != b.lastX || y != b.lastY
	b.lastX, b.lastY = x, y

	switch {
	case pressed && !b.down:
		b.down = true
		b.held = b.draggableAt(x, y)
		if b.held != nil {
			b.held.raise()
			b.dirty = true
			b.sync()
			b.mgr.PointerDown(b.held, ev)
		}
	case pressed && moved && b.held != nil:
		b.mgr.PointerMove(b.held, ev)
	case !pressed && b.down:
		b.down = false
		t := b.held
		b.held = nil
		if t == nil {
			return
		}
		if moved {
			b.mgr.PointerMove(t, ev)
		}
		if b.draggableAt(x, y) == t {
			b.mgr.PointerUp(t, ev)
		} else {
			b.mgr.PointerUpOutside(t, ev)
		}
	}
}

// --- Drawing ---

func (b *board) draw(dst cellSetter) {
	b.drawTile(dst, b.root)
	width := int(b.root.w)
	line := []rune(b.status)
	y := int(b.root.h) - 1
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(line) {
			r = line[x]
		}
		dst.SetContent(x, y, r, nil, tcell.StyleDefault.Reverse(true))
	}
}

func (b *board) drawTile(dst cellSetter, t *tile) {
	if t.hidden {
		return
	}
	w := t.world()
	x0, y0 := int(math.Round(w.X)), int(math.Round(w.Y))
	style := t.style
	if t.alpha < 1 {
		style = style.Dim(true)
	}
	label := []rune(t.name)
	for y := y0; y < y0+int(t.h); y++ {
		for x := x0; x < x0+int(t.w); x++ {
			r := t.glyph
			if t != b.root && y == y0 && x-x0 < len(label) {
				r = label[x-x0]
			}
			dst.SetContent(x, y, r, nil, style)
		}
	}
	for _, c := range t.children {
		b.drawTile(dst, c)
	}
}
