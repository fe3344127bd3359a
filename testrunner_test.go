package touchable

import (
	"strings"
	"testing"
	"time"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "mousedown", "x": 100, "y": 200},
			{"action": "wait", "ms": 50},
			{"action": "drag", "x": 10, "y": 10, "toX": 90, "toY": 10, "steps": 4},
			{"action": "tap", "id": 3, "x": 5, "y": 6}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "mousedown" || runner.steps[0].X != 100 || runner.steps[0].Y != 200 {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "wait" || runner.steps[1].Ms != 50 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].ToX != 90 || runner.steps[2].Steps != 4 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].ID != 3 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScript_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantMsg string
	}{
		{"invalid json", `not json`, "parse test script"},
		{"empty steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "click"}, {"action": "screenshot"}]}`, `step 1: unknown action "screenshot"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestRunnerStep_Sequence(t *testing.T) {
	r := newRig()
	data := []byte(`{"steps": [
		{"action": "mousedown", "x": 100, "y": 100},
		{"action": "mousemove", "x": 105, "y": 100, "ms": 50},
		{"action": "mousemove", "x": 120, "y": 100, "ms": 50},
		{"action": "mouseup", "x": 120, "y": 100, "ms": 50}
	]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}

	if !runner.Step(r.in) {
		t.Fatal("first Step should report true")
	}
	r.rec.expect(t, "down")

	runner.Run(r.in)
	r.rec.expect(t, "down", "move", "move", "up")
	if !runner.Done() {
		t.Error("runner should be done")
	}
	if runner.Step(r.in) {
		t.Error("Step after the last step should report false")
	}

	up := r.last()
	if up.Elapsed() != 150*ms || !up.HasMoved || up.WasTap {
		t.Errorf("Elapsed=%v HasMoved=%v WasTap=%v", up.Elapsed(), up.HasMoved, up.WasTap)
	}
}

func TestRunnerStep_WaitBreaksTap(t *testing.T) {
	r := newRig()
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "touchstart", "id": 1, "x": 50, "y": 50},
		{"action": "wait", "ms": 400},
		{"action": "touchend", "id": 1}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.Run(r.in)

	r.rec.expect(t, "down", "up")
	if r.last().WasTap {
		t.Error("400ms touch should not be a tap")
	}
	if r.in.Now() != 400*ms {
		t.Errorf("Now() = %v, want 400ms", r.in.Now())
	}
}

func TestRunnerStep_MultiTouchTrace(t *testing.T) {
	r := newRig()
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "touchstart", "id": 1, "x": 50, "y": 50},
		{"action": "touchmove", "id": 1, "x": 70, "y": 50, "ms": 16},
		{"action": "touchstart", "id": 2, "x": 90, "y": 90, "ms": 16},
		{"action": "touchcancel", "id": 2},
		{"action": "touchend", "id": 1},
		{"action": "tap", "id": 4, "x": 10, "y": 10, "ms": 100}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.Run(r.in)

	r.rec.expect(t, "down", "move", "up", "down", "up")
	if !r.last().WasTap {
		t.Error("final tap should be a tap")
	}
}

func TestRunnerStep_MouseHelpers(t *testing.T) {
	r := newRig()
	r.t.SetHoverable(true)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "mousemove", "x": 20, "y": 20},
		{"action": "mouseleave"},
		{"action": "click", "x": 30, "y": 30},
		{"action": "drag", "x": 30, "y": 30, "toX": 60, "toY": 30, "steps": 2}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.Run(r.in)

	r.rec.expect(t, "hover", "leave", "down", "up", "down", "move", "move", "up")
}

func TestRunnerStep_DragStepInterval(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		elapsed time.Duration
		wasTap  bool
	}{
		{"no dt", `{"steps": [{"action": "drag", "x": 10, "y": 10, "toX": 12, "toY": 10, "steps": 4}]}`, 0, true},
		{"slow steps", `{"steps": [{"action": "drag", "x": 10, "y": 10, "toX": 12, "toY": 10, "steps": 4, "dt": 100}]}`, 400 * ms, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig()
			runner, err := LoadTestScript([]byte(tt.script))
			if err != nil {
				t.Fatal(err)
			}
			runner.Run(r.in)

			r.rec.expect(t, "down", "move", "move", "move", "move", "up")
			up := r.last()
			if up.Elapsed() != tt.elapsed {
				t.Errorf("Elapsed() = %v, want %v", up.Elapsed(), tt.elapsed)
			}
			if up.WasTap != tt.wasTap {
				t.Errorf("WasTap = %v, want %v", up.WasTap, tt.wasTap)
			}
			if r.in.Now() != tt.elapsed {
				t.Errorf("Now() = %v, want %v", r.in.Now(), tt.elapsed)
			}
		})
	}
}
