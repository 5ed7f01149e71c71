package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw paints the tree in painter order. Sized nodes are drawn as filled
// rectangles covering their world bounding box; rotation is reflected only
// through the box.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA(1))
	}
	drawNode(screen, s.root, identityTransform, 1)
}

func drawNode(dst *ebiten.Image, n *Node, parent [6]float64, parentAlpha float64) {
	if !n.Visible {
		return
	}
	world := multiplyAffine(parent, n.localTransform())
	alpha := parentAlpha * n.alpha

	if n.Width > 0 && n.Height > 0 && alpha > 0 && n.Color.A > 0 {
		r := worldAABB(world, n.Width, n.Height)
		vector.DrawFilledRect(dst,
			float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
			n.Color.toRGBA(alpha), false)
	}
	for _, c := range n.children {
		drawNode(dst, c, world, alpha)
	}
}
