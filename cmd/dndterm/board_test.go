package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/dnd"
	"github.com/phanxgames/dnd/rules"
)

type countingSound struct{ accepts, rejects int }

func (s *countingSound) accept() { s.accepts++ }
func (s *countingSound) reject() { s.rejects++ }

type cells map[[2]int]rune

func (c cells) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) { c[[2]int{x, y}] = r }

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestBoard(t *testing.T, joker dnd.Accept) (*board, *countingSound, *clock) {
	t.Helper()
	snd := &countingSound{}
	b := newBoard(80, 24, snd)
	clk := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	b.mgr.SetClock(clk.now)
	deal(b, joker)
	return b, snd, clk
}

func find(b *board, name string) *tile {
	for _, c := range b.root.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// drag presses at from, moves to to and releases there.
func drag(b *board, fromX, fromY, toX, toY int) {
	b.mouse(fromX, fromY, tcell.Button1)
	b.mouse(toX, toY, tcell.Button1)
	b.mouse(toX, toY, tcell.ButtonNone)
}

func TestDropIntoMatchingSlot(t *testing.T) {
	b, snd, _ := newTestBoard(t, dnd.Accept{})
	card := find(b, "A♥")

	drag(b, 5, 16, 7, 4)

	if card.pos != (dnd.Vec2{X: 6, Y: 3}) {
		t.Errorf("card at %+v, want centered in hearts slot (6, 3)", card.pos)
	}
	if snd.accepts != 1 || snd.rejects != 0 {
		t.Errorf("tones = %d/%d, want 1 accept", snd.accepts, snd.rejects)
	}
	if b.drops != 1 || b.status != "A♥ dropped on hearts" {
		t.Errorf("drops=%d status=%q", b.drops, b.status)
	}
	if card.alpha != 1 {
		t.Errorf("alpha = %v, want restored 1", card.alpha)
	}
}

func TestWrongSlotReverts(t *testing.T) {
	b, snd, clk := newTestBoard(t, dnd.Accept{})
	card := find(b, "A♥")

	drag(b, 5, 16, 23, 4)
	if snd.rejects != 1 {
		t.Fatalf("rejects = %d, want 1", snd.rejects)
	}
	if b.mgr.Phase(card) != dnd.PhaseReverting {
		t.Fatalf("phase = %v, want reverting", b.mgr.Phase(card))
	}

	clk.t = clk.t.Add(time.Second)
	b.frame()
	if card.pos != (dnd.Vec2{X: 4, Y: 15}) {
		t.Errorf("card at %+v, want back at (4, 15)", card.pos)
	}
	b.frame()
	if b.mgr.Ticking() {
		t.Error("ticker should stop after the revert")
	}
}

func TestJokerRule(t *testing.T) {
	r, err := rules.Compile("joker.star", `
def accept(node, label):
    return label == "spades"
`)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		card       string
		fromX      int
		wantAccept int
	}{
		{"spade accepted", "K♠", 35, 1},
		{"heart rejected", "K♥", 15, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, snd, _ := newTestBoard(t, r.Accept())
			// Both cards land at (38, 3), over the joker slot.
			drag(b, tt.fromX, 16, 39, 4)
			if snd.accepts != tt.wantAccept {
				t.Errorf("accepts = %d, want %d", snd.accepts, tt.wantAccept)
			}
			if tt.wantAccept == 1 {
				if got := find(b, tt.card).pos; got != (dnd.Vec2{X: 38, Y: 3}) {
					t.Errorf("card at %+v, want (38, 3)", got)
				}
			}
		})
	}
}

func TestPressOnSlotDoesNothing(t *testing.T) {
	b, snd, _ := newTestBoard(t, dnd.Accept{})
	drag(b, 5, 3, 40, 20)
	if snd.accepts+snd.rejects != 0 || b.status != "" {
		t.Errorf("slot press should not start a drag: status %q", b.status)
	}
}

func TestContainParent(t *testing.T) {
	b, _, _ := newTestBoard(t, dnd.Accept{})
	card := find(b, "K♥")
	drag(b, 15, 16, 200, 16)
	// The drop missed every slot, so the card is reverting from the clamp.
	if b.mgr.Phase(card) != dnd.PhaseReverting {
		t.Fatalf("phase = %v", b.mgr.Phase(card))
	}
	if card.pos.X != 72 {
		t.Errorf("card.X = %v, want clamped to 72", card.pos.X)
	}
}

func TestDraw(t *testing.T) {
	b, _, _ := newTestBoard(t, dnd.Accept{})
	b.status = "ready"
	c := cells{}
	b.draw(c)

	if c[[2]int{4, 15}] != 'A' || c[[2]int{5, 15}] != '♥' {
		t.Errorf("card label = %q%q", c[[2]int{4, 15}], c[[2]int{5, 15}])
	}
	if c[[2]int{4, 3}] != '.' {
		t.Errorf("slot fill = %q, want '.'", c[[2]int{4, 3}])
	}
	if c[[2]int{0, 23}] != 'r' || c[[2]int{4, 23}] != 'y' {
		t.Error("status line missing")
	}
}

func TestHitTestHalfOpen(t *testing.T) {
	b, _, _ := newTestBoard(t, dnd.Accept{})
	card := find(b, "A♥")
	if !b.HitTest(card, dnd.Vec2{X: 4, Y: 15}) {
		t.Error("top-left cell should hit")
	}
	if b.HitTest(card, dnd.Vec2{X: 12, Y: 15}) {
		t.Error("cell past the right edge should miss")
	}
}

func TestResize(t *testing.T) {
	b, _, _ := newTestBoard(t, dnd.Accept{})
	b.resize(40, 20)
	if got := b.Bounds(b.root); got.Width != 40 || got.Height != 20 {
		t.Errorf("root bounds = %+v", got)
	}
}
