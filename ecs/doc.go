// Package ecs provides ECS adapters for dnd's lifecycle events.
//
// The primary adapter is [NewDonburiStore], which bridges drag-and-drop
// events (drag start, move, drop, revert, stop) into a [Donburi] world as
// typed events. Subscribe to [DragEventType] in your ECS systems to receive
// them. Nodes implementing [EntityNode] additionally carry the [Dragging]
// tag on their entity for the duration of a gesture.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
