package touchable

// EntityStore is the interface for optional ECS integration.
// When set on a Touchable, every callback is also forwarded to the store.
type EntityStore interface {
	EmitEvent(event GestureEvent)
}

// GestureEvent carries a snapshot of a callback for the ECS bridge.
type GestureEvent struct {
	Type      EventType
	SurfaceID uint32

	Global      Vec2
	Local       Vec2
	Translation Vec2

	FromPointingDevice bool
	HasMoved           bool
	// WasTap is valid for EventTouchUp.
	WasTap bool
}

func (t *Touchable) emitGestureEvent(typ EventType, e *PositionEvent) {
	if t.store == nil || t.id == 0 {
		return
	}
	t.store.EmitEvent(GestureEvent{
		Type:               typ,
		SurfaceID:          t.id,
		Global:             e.GlobalPoint,
		Local:              e.LocalPoint,
		Translation:        e.Translation,
		FromPointingDevice: e.IsFromPointingDevice,
		HasMoved:           e.HasMoved,
		WasTap:             e.WasTap,
	})
}
