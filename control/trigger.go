package control

// Trigger is a one-shot boolean latch.
type Trigger struct {
	set bool
}

// Set arms the trigger.
func (t *Trigger) Set() {
	t.set = true
}

// Reset clears the trigger.
func (t *Trigger) Reset() {
	t.set = false
}

// IsSet reports whether the trigger is armed.
func (t *Trigger) IsSet() bool {
	return t.set
}

// CheckAndReset returns the armed state and clears it in one step.
func (t *Trigger) CheckAndReset() bool {
	was := t.set
	t.set = false
	return was
}

// TimedTrigger is a countdown latch that stays armed for a configured
// duration after being set. The owner decrements it once per fixed tick.
type TimedTrigger struct {
	remaining float64
}

// SetFor arms the trigger for d seconds. A zero or negative duration leaves
// the trigger free, collapsing the grace window to immediate-only.
func (t *TimedTrigger) SetFor(d float64) {
	t.remaining = d
}

// Step advances the countdown by dt seconds.
func (t *TimedTrigger) Step(dt float64) {
	t.remaining -= dt
	if t.remaining < 0 {
		t.remaining = 0
	}
}

// Reset forces the trigger free immediately.
func (t *TimedTrigger) Reset() {
	t.remaining = 0
}

// Free reports whether the countdown has expired.
func (t *TimedTrigger) Free() bool {
	return t.remaining <= 0
}
