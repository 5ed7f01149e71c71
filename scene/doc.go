// Package scene is a small retained-mode scene graph for [Ebitengine] that
// hosts the dnd drag-and-drop engine.
//
// A [Scene] owns a tree of [Node] values and a [dnd.Manager]. Each Update
// runs pending revert-animation frames, rebuilds the manager's registry
// when the set of interactable nodes changed, and routes mouse, touch and
// injected pointer samples to the draggable under the pointer.
//
//	s := scene.NewScene()
//	card := scene.NewRect("card", 60, 80, scene.Color{R: 0.9, G: 0.3, B: 0.3, A: 1})
//	s.Root().AddChild(card)
//	s.MakeDraggable(card, dnd.WithRevert(dnd.RevertInvalid))
//	log.Fatal(scene.Run(s, scene.RunConfig{Title: "cards"}))
//
// Geometry queries assume unscaled ancestors for draggables: a draggable's
// [Node.Size] is measured in its parent's space.
//
// [Ebitengine]: https://ebitengine.org
package scene
