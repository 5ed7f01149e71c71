package dnd

import (
	"time"

	"github.com/tanema/gween/ease"
)

// DragOption overrides one or more fields of a DraggableConfig.
type DragOption func(*DraggableConfig)

// DropOption overrides one or more fields of a DroppableConfig.
type DropOption func(*DroppableConfig)

func applyDrag(cfg *DraggableConfig, opts []DragOption) {
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
}

func applyDrop(cfg *DroppableConfig, opts []DropOption) {
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
}

// WithDragConfig replaces every field with cfg.
func WithDragConfig(cfg DraggableConfig) DragOption {
	return func(c *DraggableConfig) { *c = cfg }
}

// WithDistance sets how far, in pixels on either axis, the pointer must
// travel before a press turns into a drag.
func WithDistance(px float64) DragOption {
	return func(c *DraggableConfig) { c.Distance = px }
}

// WithAxis locks movement to one axis.
func WithAxis(a Axis) DragOption {
	return func(c *DraggableConfig) { c.Axis = a }
}

// WithContainment keeps the dragged node inside a region.
func WithContainment(ct Containment) DragOption {
	return func(c *DraggableConfig) { c.Containment = ct }
}

// WithCursor sets the cursor hint reported while dragging.
func WithCursor(cursor string) DragOption {
	return func(c *DraggableConfig) { c.Cursor = cursor }
}

// WithCursorAt pins the pointer to the local point (x, y) of the node while
// dragging.
func WithCursorAt(x, y float64) DragOption {
	return func(c *DraggableConfig) { c.CursorAt = &Vec2{x, y} }
}

// WithGrid snaps movement to a grid. Pass 0 for an axis to leave it free.
func WithGrid(x, y float64) DragOption {
	return func(c *DraggableConfig) {
		if x <= 0 && y <= 0 {
			c.Grid = nil
			return
		}
		c.Grid = &Vec2{x, y}
	}
}

// WithHandle restricts presses to the region the selector describes.
func WithHandle(s Selector) DragOption {
	return func(c *DraggableConfig) { c.Handle = s }
}

// WithCancel ignores presses inside the region the selector describes.
func WithCancel(s Selector) DragOption {
	return func(c *DraggableConfig) { c.Cancel = s }
}

// WithHelper chooses whether the node itself or a clone moves during a drag.
func WithHelper(h HelperMode) DragOption {
	return func(c *DraggableConfig) { c.Helper = h }
}

// WithAlpha multiplies the moved node's alpha while dragging.
func WithAlpha(a float64) DragOption {
	return func(c *DraggableConfig) { c.Alpha = a }
}

// WithRevert sets when a released node animates back to its start position.
func WithRevert(p RevertPolicy) DragOption {
	return func(c *DraggableConfig) { c.Revert = p }
}

// WithRevertDuration sets the length of the revert animation. Zero reverts
// instantly.
func WithRevertDuration(d time.Duration) DragOption {
	return func(c *DraggableConfig) { c.RevertDuration = d }
}

// WithRevertEase sets the easing curve of the revert animation.
func WithRevertEase(fn ease.TweenFunc) DragOption {
	return func(c *DraggableConfig) { c.RevertEase = fn }
}

// WithLabel tags the draggable for accept rules, snapping and selectors.
func WithLabel(label string) DragOption {
	return func(c *DraggableConfig) { c.Label = label }
}

// WithSnap selects which other draggables the node snaps to.
func WithSnap(t SnapTarget) DragOption {
	return func(c *DraggableConfig) { c.Snap = t }
}

// WithSnapMode selects which edges are considered when snapping.
func WithSnapMode(m SnapMode) DragOption {
	return func(c *DraggableConfig) { c.SnapMode = m }
}

// WithSnapSort makes the nearest snap target win when several are in range.
func WithSnapSort(enabled bool) DragOption {
	return func(c *DraggableConfig) { c.SnapSort = enabled }
}

// WithSnapTolerance sets the snapping distance in pixels.
func WithSnapTolerance(px float64) DragOption {
	return func(c *DraggableConfig) { c.SnapTolerance = px }
}

// WithDisabled turns dragging off without removing the configuration.
func WithDisabled(disabled bool) DragOption {
	return func(c *DraggableConfig) { c.Disabled = disabled }
}

// WithDragStart registers a callback fired once the distance threshold is
// crossed.
func WithDragStart(fn func(DragContext)) DragOption {
	return func(c *DraggableConfig) { c.OnDragStart = fn }
}

// WithDragMove registers a callback fired after every drag move.
func WithDragMove(fn func(DragContext)) DragOption {
	return func(c *DraggableConfig) { c.OnDragMove = fn }
}

// WithDragStop registers a callback fired when the gesture ends, after any
// revert animation.
func WithDragStop(fn func(DragContext)) DragOption {
	return func(c *DraggableConfig) { c.OnDragStop = fn }
}

// WithPointerDown registers a raw pointer-down passthrough.
func WithPointerDown(fn func(PointerEvent)) DragOption {
	return func(c *DraggableConfig) { c.OnPointerDown = fn }
}

// WithPointerMove registers a raw pointer-move passthrough.
func WithPointerMove(fn func(PointerEvent)) DragOption {
	return func(c *DraggableConfig) { c.OnPointerMove = fn }
}

// WithPointerUp registers a raw pointer-up passthrough for releases over the
// node.
func WithPointerUp(fn func(PointerEvent)) DragOption {
	return func(c *DraggableConfig) { c.OnPointerUp = fn }
}

// WithPointerUpOutside registers a raw pointer-up passthrough for releases
// away from the node.
func WithPointerUpOutside(fn func(PointerEvent)) DragOption {
	return func(c *DraggableConfig) { c.OnPointerUpOutside = fn }
}

// --- Drop options ---

// WithDropConfig replaces every field with cfg.
func WithDropConfig(cfg DroppableConfig) DropOption {
	return func(c *DroppableConfig) { *c = cfg }
}

// WithDropLabel tags the droppable.
func WithDropLabel(label string) DropOption {
	return func(c *DroppableConfig) { c.Label = label }
}

// WithAccept sets which draggables the droppable accepts.
func WithAccept(a Accept) DropOption {
	return func(c *DroppableConfig) { c.Accept = a }
}

// WithGreedy makes this droppable, when hit, the only one receiving the drop.
func WithGreedy(greedy bool) DropOption {
	return func(c *DroppableConfig) { c.Greedy = greedy }
}

// WithDropDisabled turns the droppable off without removing it.
func WithDropDisabled(disabled bool) DropOption {
	return func(c *DroppableConfig) { c.Disabled = disabled }
}

// WithTolerance sets the overlap rule a drop must satisfy.
func WithTolerance(t Tolerance) DropOption {
	return func(c *DroppableConfig) { c.Tolerance = t }
}

// WithDrop registers a callback fired when a draggable is dropped here.
func WithDrop(fn func(DropContext)) DropOption {
	return func(c *DroppableConfig) { c.OnDrop = fn }
}
