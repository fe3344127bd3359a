package touchable

// ScrubOptions configures a Scrubbable.
type ScrubOptions struct {
	// DisableHover turns off hover scrubbing; only a pressed contact scrubs.
	DisableHover bool
}

// ScrubCallbacks receives scrub values. Every slot is optional.
type ScrubCallbacks struct {
	// ScrubMove fires on press, on drag, and on hover. value is the
	// horizontal position across the surface, clamped to [0, 1].
	ScrubMove func(value float64, pressed bool)
	// ScrubEnd fires when the pressed contact ends.
	ScrubEnd func(value float64, wasTap bool)
	// ScrubLeave fires when a hovering pointer leaves the surface.
	ScrubLeave func()
}

// Scrubbable maps hover and drag over a surface to a continuous value in
// [0, 1], e.g. for scrub-to-preview controls.
type Scrubbable struct {
	t     *Touchable
	cb    ScrubCallbacks
	value float64
}

// NewScrubbable binds a Scrubbable to surface and enables tracking (and
// hover unless opts.DisableHover).
func NewScrubbable(surface Surface, src InputSource, cb ScrubCallbacks, opts ScrubOptions) *Scrubbable {
	s := &Scrubbable{cb: cb}
	s.t = Bind(surface, src, Callbacks{
		TouchDown: s.scrub,
		TouchMove: s.scrub,
		TouchUp: func(e *PositionEvent) {
			s.value = scrubValue(e)
			if s.cb.ScrubEnd != nil {
				s.cb.ScrubEnd(s.value, e.WasTap)
			}
		},
		HoverMove: s.scrub,
		HoverLeave: func(*PositionEvent) {
			if s.cb.ScrubLeave != nil {
				s.cb.ScrubLeave()
			}
		},
	})
	s.t.SetTouchable(true)
	s.t.SetHoverable(!opts.DisableHover)
	return s
}

// Touchable returns the underlying Touchable.
func (s *Scrubbable) Touchable() *Touchable { return s.t }

// Value returns the last scrub value.
func (s *Scrubbable) Value() float64 { return s.value }

// Pressed reports whether a contact is scrubbing.
func (s *Scrubbable) Pressed() bool { return s.t.ActiveContact() != nil }

// Unbind detaches the Scrubbable from its surface.
func (s *Scrubbable) Unbind() { s.t.Unbind() }

func (s *Scrubbable) scrub(e *PositionEvent) {
	s.value = scrubValue(e)
	if s.cb.ScrubMove != nil {
		s.cb.ScrubMove(s.value, s.Pressed())
	}
}

func scrubValue(e *PositionEvent) float64 {
	if e.surface == nil {
		return 0
	}
	w := e.surface.Size().X
	if w <= 0 {
		return 0
	}
	return clamp(e.LocalPoint.X/w, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
