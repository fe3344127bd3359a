package ecs

import (
	"github.com/phanxgames/touchable"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for touchable gesture events.
// Subscribe to this in your ECS systems to receive touch and hover events.
var GestureEventType = events.NewEventType[touchable.GestureEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Gesture events are published to GestureEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) touchable.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event touchable.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}
