package touchable

import "time"

// PositionEvent tracks the evolving position of one contact, from its down
// event through every subsequent move to its up event. Hover tracking reuses
// the same type with a contact that never goes down.
//
// Fields are exported for reading. Mutate only through the methods so the
// derived fields stay consistent.
type PositionEvent struct {
	// GlobalPoint is the last known position in document coordinates.
	GlobalPoint Vec2
	// LocalPoint is GlobalPoint relative to the surface origin at the time
	// of the last update.
	LocalPoint Vec2
	// Translation is the cumulative displacement since the contact began.
	Translation Vec2
	// DeltaTranslation is the displacement since the last
	// ResetDeltaTranslation call.
	DeltaTranslation Vec2

	StartTimestamp time.Duration
	Timestamp      time.Duration

	// HasMoved latches once the contact leaves the tap radius.
	HasMoved bool
	// WasTap is only meaningful after Up.
	WasTap bool

	// IsFromPointingDevice is true for mouse contacts and false for touch.
	IsFromPointingDevice bool

	surface Surface
}

// NewPositionEvent starts tracking a contact at document point p.
func NewPositionEvent(surface Surface, p Vec2, ts time.Duration, fromPointingDevice bool) *PositionEvent {
	e := &PositionEvent{
		GlobalPoint:          p,
		StartTimestamp:       ts,
		Timestamp:            ts,
		IsFromPointingDevice: fromPointingDevice,
		surface:              surface,
	}
	e.updateLocal()
	return e
}

// Move updates the contact to document point p.
func (e *PositionEvent) Move(p Vec2, ts time.Duration) {
	d := p.Sub(e.GlobalPoint)
	e.Translation = e.Translation.Add(d)
	e.DeltaTranslation = e.DeltaTranslation.Add(d)
	e.GlobalPoint = p
	e.Timestamp = ts
	e.updateLocal()

	if e.Translation.LenSq() > MoveThresholdSquared {
		e.HasMoved = true
	}
}

// Up finishes the contact. If p is non-nil the position is updated first,
// exactly as Move would. WasTap is evaluated against ts either way.
func (e *PositionEvent) Up(p *Vec2, ts time.Duration) {
	if p != nil {
		e.Move(*p, ts)
	}
	e.Timestamp = ts
	e.WasTap = !e.HasMoved && ts-e.StartTimestamp < TapDuration
}

// ResetDeltaTranslation zeroes DeltaTranslation. Translation and HasMoved
// are unaffected.
func (e *PositionEvent) ResetDeltaTranslation() {
	e.DeltaTranslation = Vec2{}
}

// IsWithinBounds reports whether LocalPoint lies inside the surface, using
// the surface's current size.
func (e *PositionEvent) IsWithinBounds() bool {
	if e.surface == nil {
		return false
	}
	size := e.surface.Size()
	return e.LocalPoint.X >= 0 && e.LocalPoint.X <= size.X &&
		e.LocalPoint.Y >= 0 && e.LocalPoint.Y <= size.Y
}

// Elapsed returns the time between the down event and the last update.
func (e *PositionEvent) Elapsed() time.Duration {
	return e.Timestamp - e.StartTimestamp
}

func (e *PositionEvent) updateLocal() {
	if e.surface == nil {
		e.LocalPoint = e.GlobalPoint
		return
	}
	e.LocalPoint = e.GlobalPoint.Sub(e.surface.Offset())
}
