package touchable

import (
	"encoding/json"
	"fmt"
	"time"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	ID     int     `json:"id,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Steps  int     `json:"steps,omitempty"`
	// Dt is the time between drag steps in milliseconds.
	Dt float64 `json:"dt,omitempty"`

	// Ms advances the clock before the action ("wait" only advances).
	Ms float64 `json:"ms,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner replays a scripted input sequence through an Injector, one
// step per call to Step. Useful for reproducing device traces in tests and
// for driving automated demos.
type TestRunner struct {
	steps  []testStep
	cursor int
}

func validAction(action string) bool {
	switch action {
	case "mousedown", "mousemove", "mouseup", "mouseleave", "click", "drag",
		"touchstart", "touchmove", "touchend", "touchcancel", "tap", "wait":
		return true
	}
	return false
}

// LoadTestScript parses a JSON test script and returns a TestRunner.
//
//	{"steps": [
//		{"action": "mousedown", "x": 100, "y": 100},
//		{"action": "mousemove", "x": 120, "y": 100, "ms": 50},
//		{"action": "mouseup", "x": 120, "y": 100, "ms": 50},
//		{"action": "drag", "x": 10, "y": 10, "toX": 90, "toY": 10, "steps": 4, "dt": 16}
//	]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !validAction(st.Action) {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.cursor >= len(r.steps)
}

// Step executes the next step against in. It reports false once the script
// is exhausted.
func (r *TestRunner) Step(in *Injector) bool {
	if r.Done() {
		return false
	}
	st := r.steps[r.cursor]
	r.cursor++

	in.Advance(time.Duration(st.Ms * float64(time.Millisecond)))

	switch st.Action {
	case "mousedown":
		in.MouseDown(st.X, st.Y)
	case "mousemove":
		in.MouseMove(st.X, st.Y)
	case "mouseup":
		in.MouseUp(st.X, st.Y)
	case "mouseleave":
		in.MouseLeave()
	case "click":
		in.Click(st.X, st.Y)
	case "drag":
		in.Drag(Vec2{st.X, st.Y}, Vec2{st.ToX, st.ToY}, st.Steps, time.Duration(st.Dt*float64(time.Millisecond)))
	case "touchstart":
		in.TouchStart(st.ID, st.X, st.Y)
	case "touchmove":
		in.TouchMove(st.ID, st.X, st.Y)
	case "touchend":
		in.TouchEnd(st.ID)
	case "touchcancel":
		in.TouchCancel(st.ID)
	case "tap":
		in.Tap(st.ID, st.X, st.Y)
	case "wait":
	}
	return true
}

// Run executes every remaining step.
func (r *TestRunner) Run(in *Injector) {
	for r.Step(in) {
	}
}
