// Package ecs provides ECS adapters for touchable's gesture callbacks.
//
// The primary adapter is [NewDonburiStore], which bridges every Touchable
// callback (touch down, move, up, hover move, hover leave) into a [Donburi]
// world as typed events. Subscribe to [GestureEventType] in your ECS systems
// to receive them. Only surfaces with a non-zero ID are forwarded.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	t.SetEntityStore(store)
//	t.SetID(uint32(entity.Id()))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
