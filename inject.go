package touchable

import "time"

// Injector synthesizes raw input for one surface and delivers it through a
// Dispatcher, immediately and in call order. It mirrors how a browser or
// windowing system routes events: mouse begin and move reach the surface
// only while the pointer is over it, while the document sees everything.
//
// Injected events are stamped with the injector's own clock, which only
// moves when Advance or SetTime is called.
type Injector struct {
	d       *Dispatcher
	surface Surface

	now     time.Duration
	pointer Vec2
	inside  bool
	touches []Touch
}

// NewInjector creates an Injector for surface that delivers to d.
func NewInjector(d *Dispatcher, surface Surface) *Injector {
	return &Injector{d: d, surface: surface}
}

// Now returns the injector clock.
func (in *Injector) Now() time.Duration { return in.now }

// SetTime sets the injector clock.
func (in *Injector) SetTime(ts time.Duration) { in.now = ts }

// Advance moves the injector clock forward by d.
func (in *Injector) Advance(d time.Duration) { in.now += d }

// --- Mouse ---

// MouseMove moves the pointer to (x, y). The surface receives a move while
// the pointer is over it and a leave when the pointer exits.
func (in *Injector) MouseMove(x, y float64) {
	p := Vec2{x, y}
	ev := in.mouseEvent(PhaseMove, p)
	wasInside := in.inside
	in.pointer = p
	in.inside = surfaceContains(in.surface, p)

	if wasInside && !in.inside {
		in.d.Dispatch(ScopeSurface, in.mouseEvent(PhaseLeave, p))
	}
	if in.inside {
		in.d.Dispatch(ScopeSurface, ev)
	}
	in.d.Dispatch(ScopeDocument, ev)
}

// MouseDown presses the button at (x, y).
func (in *Injector) MouseDown(x, y float64) {
	in.setPointer(x, y)
	ev := in.mouseEvent(PhaseBegin, in.pointer)
	if in.inside {
		in.d.Dispatch(ScopeSurface, ev)
	}
	in.d.Dispatch(ScopeDocument, ev)
}

// MouseUp releases the button at (x, y).
func (in *Injector) MouseUp(x, y float64) {
	in.setPointer(x, y)
	ev := in.mouseEvent(PhaseEnd, in.pointer)
	if in.inside {
		in.d.Dispatch(ScopeSurface, ev)
	}
	in.d.Dispatch(ScopeDocument, ev)
}

// MouseLeave reports that the pointer left the surface without moving,
// e.g. because the window lost the pointer.
func (in *Injector) MouseLeave() {
	if !in.inside {
		return
	}
	in.inside = false
	in.d.Dispatch(ScopeSurface, in.mouseEvent(PhaseLeave, in.pointer))
}

// Click is a convenience for a press followed by a release at the same
// point with no time in between.
func (in *Injector) Click(x, y float64) {
	in.MouseDown(x, y)
	in.MouseUp(x, y)
}

// Drag presses at from, moves in steps linearly interpolated moves toward
// to, advancing the clock by dt before each move, and releases at to.
// steps below 1 is treated as 1.
func (in *Injector) Drag(from, to Vec2, steps int, dt time.Duration) {
	if steps < 1 {
		steps = 1
	}
	in.MouseDown(from.X, from.Y)
	for i := 1; i <= steps; i++ {
		in.Advance(dt)
		f := float64(i) / float64(steps)
		in.MouseMove(from.X+(to.X-from.X)*f, from.Y+(to.Y-from.Y)*f)
	}
	in.MouseUp(to.X, to.Y)
}

func (in *Injector) setPointer(x, y float64) {
	in.pointer = Vec2{x, y}
	in.inside = surfaceContains(in.surface, in.pointer)
}

func (in *Injector) mouseEvent(phase Phase, p Vec2) RawEvent {
	return RawEvent{Family: FamilyMouse, Phase: phase, Point: p, Timestamp: in.now}
}

// --- Touch ---

// TouchStart puts finger id down at (x, y).
func (in *Injector) TouchStart(id int, x, y float64) {
	t := Touch{ID: id, Point: Vec2{x, y}}
	in.touches = append(in.touches, t)
	ev := in.touchEvent(PhaseBegin, t)
	if surfaceContains(in.surface, t.Point) {
		in.d.Dispatch(ScopeSurface, ev)
	}
	in.d.Dispatch(ScopeDocument, ev)
}

// TouchMove moves finger id to (x, y). Unknown fingers are ignored.
func (in *Injector) TouchMove(id int, x, y float64) {
	i := in.touchIndex(id)
	if i < 0 {
		return
	}
	in.touches[i].Point = Vec2{x, y}
	in.d.Dispatch(ScopeDocument, in.touchEvent(PhaseMove, in.touches[i]))
}

// TouchEnd lifts finger id.
func (in *Injector) TouchEnd(id int) {
	in.liftTouch(id, PhaseEnd)
}

// TouchCancel reports that the platform cancelled finger id.
func (in *Injector) TouchCancel(id int) {
	in.liftTouch(id, PhaseCancel)
}

// Tap is a convenience for a touch start followed by a touch end.
func (in *Injector) Tap(id int, x, y float64) {
	in.TouchStart(id, x, y)
	in.TouchEnd(id)
}

// TouchDispatch delivers a hand-built touch event at document scope, for
// sequences the helpers cannot express (e.g. a move whose touch list no
// longer contains the tracked finger).
func (in *Injector) TouchDispatch(phase Phase, touches, changed []Touch) {
	in.d.Dispatch(ScopeDocument, RawEvent{
		Family:         FamilyTouch,
		Phase:          phase,
		Touches:        touches,
		ChangedTouches: changed,
		Timestamp:      in.now,
	})
}

func (in *Injector) liftTouch(id int, phase Phase) {
	i := in.touchIndex(id)
	if i < 0 {
		return
	}
	t := in.touches[i]
	in.touches = append(in.touches[:i], in.touches[i+1:]...)
	in.d.Dispatch(ScopeDocument, in.touchEvent(phase, t))
}

func (in *Injector) touchIndex(id int) int {
	for i := range in.touches {
		if in.touches[i].ID == id {
			return i
		}
	}
	return -1
}

func (in *Injector) touchEvent(phase Phase, changed Touch) RawEvent {
	touches := make([]Touch, len(in.touches))
	copy(touches, in.touches)
	return RawEvent{
		Family:         FamilyTouch,
		Phase:          phase,
		Touches:        touches,
		ChangedTouches: []Touch{changed},
		Timestamp:      in.now,
	}
}
