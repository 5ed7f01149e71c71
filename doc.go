// Package dnd is a pointer-driven drag-and-drop engine for retained-mode 2D
// scene graphs.
//
// The engine does not draw anything. A scene graph plugs in by implementing
// [Host] (geometry queries, helper creation, frame scheduling) and exposing
// its nodes as [Node]. The [scene] subpackage provides a ready-made host for
// [Ebitengine].
//
// # Quick start
//
//	mgr := dnd.NewManager(host)
//	mgr.MakeDraggable(card,
//		dnd.WithLabel("card"),
//		dnd.WithRevert(dnd.RevertInvalid),
//	)
//	mgr.MakeDroppable(slot, dnd.WithAccept(dnd.AcceptLabel("card")))
//	mgr.RegisterInteractiveSet(host.InteractiveNodes())
//
// The host then routes pointer samples for draggable nodes into
// [Manager.PointerDown], [Manager.PointerMove], [Manager.PointerUp] and
// [Manager.PointerUpOutside].
//
// # Gestures
//
// Each draggable runs its own gesture state machine: Idle, Armed after a
// press, Dragging once the pointer moved at least the configured distance on
// either axis, and optionally Reverting while the helper animates back to
// its start position. [Manager.Phase] reports the current phase.
//
// While dragging, every move runs through a fixed pipeline: containment
// clamp, grid quantization, edge snapping against other draggables, then
// the axis lock.
//
// # Drops
//
// On release the helper's bounds are tested against every registered
// droppable, topmost first, using the droppable's [Tolerance]. Greedy
// droppables stop the scan. The [RevertPolicy] then decides whether the
// node stays where it was dropped or returns to its start position.
//
// # Defaults
//
// New draggables and droppables start from a process-wide [Table]. Replace
// it with [SetDefaultTable] or load one from YAML with [LoadTable]:
//
//	drag:
//	  distance: 4
//	  revert: invalid
//	  revertDuration: 300ms
//	drop:
//	  tolerance: pointer
//
// Call [Manager.SetDebugMode] to log gesture transitions to stderr.
//
// [Ebitengine]: https://ebitengine.org
// [scene]: https://pkg.go.dev/github.com/phanxgames/dnd/scene
package dnd
