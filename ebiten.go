package touchable

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenSource turns Ebitengine's polled input state into raw events for one
// surface. Call Update once per tick from Game.Update; events are dispatched
// synchronously from inside that call.
//
// Ebitengine has no event timestamps, so events are stamped with a
// monotonic clock started when the source is created.
type EbitenSource struct {
	*Dispatcher

	surface Surface
	clock   func() time.Duration

	prev     inputFrame
	primed   bool
	touchBuf []ebiten.TouchID
}

// inputFrame is one tick's worth of polled input.
type inputFrame struct {
	cursor   Vec2
	cursorIn bool
	pressed  bool
	touches  []Touch
}

// scopedEvent pairs a raw event with the scope it is delivered at.
type scopedEvent struct {
	scope Scope
	ev    RawEvent
}

// NewEbitenSource creates a source for surface.
func NewEbitenSource(surface Surface) *EbitenSource {
	start := time.Now()
	return &EbitenSource{
		Dispatcher: NewDispatcher(),
		surface:    surface,
		clock:      func() time.Duration { return time.Since(start) },
	}
}

// SetClock replaces the timestamp source.
func (s *EbitenSource) SetClock(clock func() time.Duration) {
	s.clock = clock
}

// Update polls Ebitengine and dispatches the resulting events.
func (s *EbitenSource) Update() {
	s.apply(s.readFrame(), s.clock())
}

// readFrame reads the current cursor, left mouse button, and touch state.
func (s *EbitenSource) readFrame() inputFrame {
	mx, my := ebiten.CursorPosition()
	f := inputFrame{
		cursor:  Vec2{float64(mx), float64(my)},
		pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}

	s.touchBuf = ebiten.AppendTouchIDs(s.touchBuf[:0])
	if len(s.touchBuf) > 0 {
		f.touches = make([]Touch, 0, len(s.touchBuf))
		for _, id := range s.touchBuf {
			tx, ty := ebiten.TouchPosition(id)
			f.touches = append(f.touches, Touch{ID: int(id), Point: Vec2{float64(tx), float64(ty)}})
		}
	}
	return f
}

// apply diffs cur against the previous frame and dispatches the result.
// The first frame only primes the previous state.
func (s *EbitenSource) apply(cur inputFrame, ts time.Duration) {
	cur.cursorIn = surfaceContains(s.surface, cur.cursor)
	if !s.primed {
		s.prev = cur
		s.prev.pressed = false
		s.prev.touches = nil
		s.primed = true
	}
	hit := func(p Vec2) bool { return surfaceContains(s.surface, p) }
	for _, se := range frameDiff(s.prev, cur, ts, hit) {
		s.Dispatch(se.scope, se.ev)
	}
	s.prev = cur
}

// frameDiff converts two consecutive frames into the raw events a push-based
// platform would have delivered between them. Mouse events come first
// (leave, move, then button edges); touch events follow as ends, moves,
// then starts, so a lifted finger reports its final position and a
// finger lifting while another lands in the same tick yields a clean new
// contact. hit decides surface-scope delivery of touch
// starts; cursorIn already carries it for the mouse.
func frameDiff(prev, cur inputFrame, ts time.Duration, hit func(Vec2) bool) []scopedEvent {
	var out []scopedEvent
	mouse := func(scope Scope, phase Phase) {
		out = append(out, scopedEvent{scope, RawEvent{
			Family: FamilyMouse, Phase: phase, Point: cur.cursor, Timestamp: ts,
		}})
	}

	if prev.cursorIn && !cur.cursorIn {
		mouse(ScopeSurface, PhaseLeave)
	}
	if cur.cursor != prev.cursor {
		if cur.cursorIn {
			mouse(ScopeSurface, PhaseMove)
		}
		mouse(ScopeDocument, PhaseMove)
	}
	switch {
	case cur.pressed && !prev.pressed:
		if cur.cursorIn {
			mouse(ScopeSurface, PhaseBegin)
		}
		mouse(ScopeDocument, PhaseBegin)
	case !cur.pressed && prev.pressed:
		if cur.cursorIn {
			mouse(ScopeSurface, PhaseEnd)
		}
		mouse(ScopeDocument, PhaseEnd)
	}

	touch := func(scope Scope, phase Phase, changed []Touch) {
		out = append(out, scopedEvent{scope, RawEvent{
			Family: FamilyTouch, Phase: phase, Touches: cur.touches,
			ChangedTouches: changed, Timestamp: ts,
		}})
	}

	var moved, ended, began []Touch
	for _, t := range cur.touches {
		if old, ok := findTouch(prev.touches, t.ID); !ok {
			began = append(began, t)
		} else if old.Point != t.Point {
			moved = append(moved, t)
		}
	}
	for _, t := range prev.touches {
		if _, ok := findTouch(cur.touches, t.ID); !ok {
			ended = append(ended, t)
		}
	}

	if len(ended) > 0 {
		touch(ScopeDocument, PhaseEnd, ended)
	}
	if len(moved) > 0 {
		touch(ScopeDocument, PhaseMove, moved)
	}
	for _, t := range began {
		changed := []Touch{t}
		if hit(t.Point) {
			touch(ScopeSurface, PhaseBegin, changed)
		}
		touch(ScopeDocument, PhaseBegin, changed)
	}
	return out
}
