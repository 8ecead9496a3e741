// Package ecs bridges engine signals into an ECS world.
//
// The primary adapter is [NewDonburiSink], which forwards every signal emitted
// inside a scene tree (pressed, timeout, animation_finished, ...) into a
// [Donburi] world as typed events. Subscribe to [SignalEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	tree.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
