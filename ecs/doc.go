// Package ecs bridges digits signals into a [Donburi] world.
//
// [NewDonburiStore] returns a digits.SignalStore that publishes every signal
// invocation on a widget with a non-zero EntityID as a typed Donburi event.
// Subscribe to [SignalEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	app := digits.NewApp(platform, digits.WithSignalStore(store))
//	button.EntityID = 42
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
