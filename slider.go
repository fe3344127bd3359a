package touchable

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const defaultSettleDuration = 0.15 // seconds

// SliderOptions configures a Slider.
type SliderOptions struct {
	Min, Max float64
	// Step is the settled resolution. Zero or negative settles to any value.
	Step float64
	// Value is the initial value.
	Value float64
	// SettleDuration is the knob animation time in seconds after release.
	// Zero uses 0.15s; negative snaps immediately.
	SettleDuration float32
	// Ease shapes the settle animation. Defaults to ease.OutQuad.
	Ease ease.TweenFunc
}

// Slider is a horizontal slider over a track surface. While pressed its
// value follows the contact continuously; on release it settles to the
// nearest step and the knob animates there.
type Slider struct {
	// OnChange fires on every value change. pressed is false exactly once
	// per contact, for the settled value.
	OnChange func(value float64, pressed bool)

	scrub *Scrubbable
	opts  SliderOptions

	value    float64
	fraction float64
	tween    *gween.Tween
}

// NewSlider binds a Slider to the track surface and enables tracking. Hover
// does not move a slider.
func NewSlider(track Surface, src InputSource, opts SliderOptions) *Slider {
	if opts.Max < opts.Min {
		opts.Min, opts.Max = opts.Max, opts.Min
	}
	if opts.SettleDuration == 0 {
		opts.SettleDuration = defaultSettleDuration
	}
	if opts.Ease == nil {
		opts.Ease = ease.OutQuad
	}
	s := &Slider{opts: opts}
	s.SetValue(opts.Value)
	s.scrub = NewScrubbable(track, src, ScrubCallbacks{
		ScrubMove: s.scrubMove,
		ScrubEnd:  s.scrubEnd,
	}, ScrubOptions{DisableHover: true})
	return s
}

// Touchable returns the underlying Touchable.
func (s *Slider) Touchable() *Touchable { return s.scrub.Touchable() }

// Value returns the current value: continuous while pressed, settled
// otherwise.
func (s *Slider) Value() float64 { return s.value }

// Pressed reports whether a contact is moving the slider.
func (s *Slider) Pressed() bool { return s.scrub.Pressed() }

// Fraction returns the knob position across the track in [0, 1]. It lags
// Value while the settle animation runs.
func (s *Slider) Fraction() float64 { return s.fraction }

// Settling reports whether the settle animation is running.
func (s *Slider) Settling() bool { return s.tween != nil }

// SetValue sets a settled value without animation or callbacks.
func (s *Slider) SetValue(v float64) {
	s.tween = nil
	s.value = s.snap(v)
	s.fraction = s.fractionOf(s.value)
}

// Update advances the settle animation by dt seconds. Call it once per tick.
func (s *Slider) Update(dt float32) {
	if s.tween == nil {
		return
	}
	cur, done := s.tween.Update(dt)
	s.fraction = float64(cur)
	if done {
		s.tween = nil
	}
}

// Unbind detaches the Slider from its track.
func (s *Slider) Unbind() {
	s.tween = nil
	s.scrub.Unbind()
}

func (s *Slider) scrubMove(f float64, pressed bool) {
	if !pressed {
		return
	}
	s.tween = nil
	s.fraction = f
	s.value = s.opts.Min + f*(s.opts.Max-s.opts.Min)
	s.changed(true)
}

func (s *Slider) scrubEnd(f float64, _ bool) {
	s.value = s.snap(s.opts.Min + f*(s.opts.Max-s.opts.Min))
	target := s.fractionOf(s.value)
	if s.opts.SettleDuration < 0 || target == f {
		s.fraction = target
		s.tween = nil
	} else {
		s.fraction = f
		s.tween = gween.New(float32(f), float32(target), s.opts.SettleDuration, s.opts.Ease)
	}
	s.changed(false)
}

func (s *Slider) changed(pressed bool) {
	if s.OnChange != nil {
		s.OnChange(s.value, pressed)
	}
}

func (s *Slider) snap(v float64) float64 {
	v = clamp(v, s.opts.Min, s.opts.Max)
	if s.opts.Step <= 0 {
		return v
	}
	n := math.Round((v - s.opts.Min) / s.opts.Step)
	return clamp(s.opts.Min+n*s.opts.Step, s.opts.Min, s.opts.Max)
}

func (s *Slider) fractionOf(v float64) float64 {
	span := s.opts.Max - s.opts.Min
	if span == 0 {
		return 0
	}
	return (v - s.opts.Min) / span
}
