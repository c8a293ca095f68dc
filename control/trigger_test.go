package control

import "testing"

func TestTriggerCheckAndReset(t *testing.T) {
	var tr Trigger

	if tr.IsSet() {
		t.Fatalf("new trigger should not be set")
	}
	tr.Set()
	if !tr.IsSet() {
		t.Fatalf("trigger should be set after Set")
	}
	if !tr.CheckAndReset() {
		t.Fatalf("first CheckAndReset after Set should return true")
	}
	if tr.IsSet() {
		t.Fatalf("CheckAndReset should clear the trigger")
	}
	if tr.CheckAndReset() {
		t.Fatalf("second CheckAndReset should return false")
	}

	tr.Set()
	tr.Reset()
	if tr.CheckAndReset() {
		t.Fatalf("Reset should clear a set trigger")
	}
}

func TestTimedTriggerCountdown(t *testing.T) {
	cases := []struct {
		name     string
		duration float64
		steps    int
		dt       float64
		wantFree bool
	}{
		{"armed_within_window", 0.1, 2, 1.0 / 60.0, false},
		{"free_once_budget_elapsed", 0.1, 7, 1.0 / 60.0, true},
		{"free_after_overshoot", 0.1, 60, 1.0 / 60.0, true},
		{"zero_duration_never_armed", 0, 0, 1.0 / 60.0, true},
		{"negative_duration_never_armed", -0.5, 0, 1.0 / 60.0, true},
		{"long_window_stays_armed", 1.0, 30, 1.0 / 60.0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var tr TimedTrigger
			tr.SetFor(c.duration)
			for i := 0; i < c.steps; i++ {
				tr.Step(c.dt)
			}
			if tr.Free() != c.wantFree {
				t.Fatalf("after %d steps of %g: Free() = %t, want %t", c.steps, c.dt, tr.Free(), c.wantFree)
			}
		})
	}
}

func TestTimedTriggerReset(t *testing.T) {
	var tr TimedTrigger
	tr.SetFor(10)
	if tr.Free() {
		t.Fatalf("trigger should be armed after SetFor(10)")
	}
	tr.Reset()
	if !tr.Free() {
		t.Fatalf("Reset should force the trigger free regardless of remaining time")
	}
}

func TestTimedTriggerMonotonic(t *testing.T) {
	var tr TimedTrigger
	tr.SetFor(0.05)
	prevFree := tr.Free()
	for i := 0; i < 10; i++ {
		tr.Step(0.01)
		if prevFree && !tr.Free() {
			t.Fatalf("trigger re-armed itself at step %d without SetFor", i)
		}
		prevFree = tr.Free()
	}
	if !tr.Free() {
		t.Fatalf("trigger should be free after decaying past its duration")
	}
}
