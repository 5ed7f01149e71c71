package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/dnd"
)

const (
	slotW, slotH = 12, 6
	cardW, cardH = 8, 4
)

var (
	slotStyle  = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite)
	redCard    = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorRed)
	blackCard  = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	suitStyles = map[string]tcell.Style{"hearts": redCard, "spades": blackCard}
)

// deal lays out the slots and the hand. joker is the accept rule of the
// third slot; the zero Accept takes every card.
func deal(b *board, joker dnd.Accept) {
	slot(b, "hearts", 4, dnd.AcceptLabel("hearts"))
	slot(b, "spades", 20, dnd.AcceptLabel("spades"))
	slot(b, "joker", 36, joker)

	for i, c := range []struct{ name, suit string }{
		{"A♥", "hearts"}, {"K♥", "hearts"}, {"A♠", "spades"}, {"K♠", "spades"},
	} {
		card := newTile(c.name, float64(4+i*10), 15, cardW, cardH, ' ', suitStyles[c.suit])
		b.AddChild(b.root, card)
		b.mgr.MakeDraggable(card,
			dnd.WithLabel(c.suit),
			dnd.WithGrid(1, 1),
			dnd.WithContainment(dnd.ContainParent()),
			dnd.WithRevert(dnd.RevertInvalid),
			dnd.WithAlpha(0.5),
		)
	}
	b.sync()
}

func slot(b *board, name string, x float64, acc dnd.Accept) *tile {
	t := newTile(name, x, 2, slotW, slotH, '.', slotStyle)
	b.AddChild(b.root, t)
	b.mgr.MakeDroppable(t,
		dnd.WithDropLabel(name),
		dnd.WithAccept(acc),
		dnd.WithDrop(func(ctx dnd.DropContext) {
			// Center the card in the slot.
			ctx.Draggable.SetPosition(dnd.Vec2{
				X: t.pos.X + (slotW-cardW)/2,
				Y: t.pos.Y + (slotH-cardH)/2,
			})
		}),
	)
	return t
}

// resize tracks the terminal size; cards outside the new bounds are pulled
// back in by containment on their next drag.
func (b *board) resize(w, h int) {
	b.root.w, b.root.h = float64(w), float64(h)
	b.dirty = true
}
