package touchable

import (
	"fmt"
	"testing"
)

func newScrubRig(opts ScrubOptions) (*Scrubbable, *Injector, *[]string) {
	surface := &Rect{X: 100, Width: 200, Height: 20}
	d := NewDispatcher()
	var log []string
	s := NewScrubbable(surface, d, ScrubCallbacks{
		ScrubMove: func(v float64, pressed bool) { log = append(log, fmt.Sprintf("move %.2f %v", v, pressed)) },
		ScrubEnd:  func(v float64, wasTap bool) { log = append(log, fmt.Sprintf("end %.2f %v", v, wasTap)) },
		ScrubLeave: func() {
			log = append(log, "leave")
		},
	}, opts)
	return s, NewInjector(d, surface), &log
}

func TestScrubbable_HoverAndDrag(t *testing.T) {
	s, in, log := newScrubRig(ScrubOptions{})

	in.MouseMove(150, 10)
	in.MouseDown(200, 10)
	if !s.Pressed() {
		t.Error("Pressed() should be true during a contact")
	}
	in.MouseMove(400, 10)
	in.MouseUp(400, 10)
	if s.Pressed() {
		t.Error("Pressed() should be false after release")
	}
	in.MouseMove(150, 10)
	in.MouseMove(50, 10)

	want := []string{
		"move 0.25 false",
		"move 0.50 true",
		"move 1.00 true",
		"end 1.00 false",
		"move 0.25 false",
		"leave",
	}
	if fmt.Sprint(*log) != fmt.Sprint(want) {
		t.Errorf("log =\n%v\nwant\n%v", *log, want)
	}
	if s.Value() != 0.25 {
		t.Errorf("Value() = %v, want 0.25", s.Value())
	}
}

func TestScrubbable_ClampsLeft(t *testing.T) {
	s, in, _ := newScrubRig(ScrubOptions{})
	in.MouseDown(110, 10)
	in.MouseMove(0, 10)
	if s.Value() != 0 {
		t.Errorf("Value() = %v, want 0", s.Value())
	}
}

func TestScrubbable_DisableHover(t *testing.T) {
	s, in, log := newScrubRig(ScrubOptions{DisableHover: true})
	if s.Touchable().IsHoverable() {
		t.Error("hover should be disabled")
	}

	in.MouseMove(150, 10)
	in.Click(250, 10)

	want := []string{"move 0.75 true", "end 0.75 true"}
	if fmt.Sprint(*log) != fmt.Sprint(want) {
		t.Errorf("log = %v, want %v", *log, want)
	}
}

func TestScrubbable_Touch(t *testing.T) {
	s, in, log := newScrubRig(ScrubOptions{})
	in.TouchStart(1, 300, 10)
	in.TouchEnd(1)

	want := []string{"move 1.00 true", "end 1.00 true"}
	if fmt.Sprint(*log) != fmt.Sprint(want) {
		t.Errorf("log = %v, want %v", *log, want)
	}

	s.Unbind()
	in.Tap(2, 200, 10)
	if len(*log) != 2 {
		t.Errorf("events after Unbind: %v", *log)
	}
}

func TestScrubValue_ZeroWidth(t *testing.T) {
	e := NewPositionEvent(&Rect{}, Vec2{5, 5}, 0, true)
	if got := scrubValue(e); got != 0 {
		t.Errorf("scrubValue = %v, want 0", got)
	}
}
