package control

// JumpAssist decides when a requested jump actually fires. A press may arrive
// early (before landing) and is buffered; it may arrive late (just after
// walking off a ledge) and is forgiven by the coyote window; an early release
// either shortens the ascent immediately or is deferred until the buffered
// jump executes. The reachable states (idle, buffered-waiting, coyote-eligible,
// pending-abort) are encoded by the two countdowns and the abort latch.
type JumpAssist struct {
	wait   TimedTrigger
	coyote TimedTrigger
	abort  Trigger

	bufferTime  float64
	coyoteTime  float64
	startSpeed  float64
	abortFactor float64
}

// NewJumpAssist builds a jump assist from the controller tuning.
func NewJumpAssist(cfg Config) JumpAssist {
	return JumpAssist{
		bufferTime:  cfg.JumpBufferTime,
		coyoteTime:  cfg.CoyoteTime,
		startSpeed:  cfg.JumpStartSpeed,
		abortFactor: cfg.JumpAbortFactor,
	}
}

// Press records a jump request to be resolved as soon as eligible.
func (j *JumpAssist) Press() {
	j.wait.SetFor(j.bufferTime)
	j.abort.Reset()
}

// Release requests a shorter jump. While ascending the abort applies at once;
// before the jump has fired it is latched and applied retroactively when the
// buffered jump executes. Clearing the buffer on an ascending release keeps
// the release from triggering a second jump on landing.
func (j *JumpAssist) Release(st *CharacterState) {
	if st.Velocity.Y > 0 {
		st.Velocity.Y *= j.abortFactor
		j.wait.Reset()
		return
	}
	j.abort.Set()
}

// Resolve fires the pending jump if one exists and the character is eligible:
// grounded, or inside the coyote window. An ineligible pending jump keeps
// waiting for as long as its own buffer lasts.
func (j *JumpAssist) Resolve(st *CharacterState) {
	if j.wait.Free() {
		return
	}
	if !st.Grounded && j.coyote.Free() {
		return
	}

	j.wait.Reset()
	j.coyote.Reset()
	st.Velocity.Y = j.startSpeed
	st.Grounded = false

	if j.abort.CheckAndReset() {
		st.Velocity.Y *= j.abortFactor
	}
}

// GroundLost opens the coyote window. Called the instant ground contact is
// lost while descending.
func (j *JumpAssist) GroundLost() {
	j.coyote.SetFor(j.coyoteTime)
}

// Pending reports whether a buffered jump is still waiting to execute.
func (j *JumpAssist) Pending() bool {
	return !j.wait.Free()
}

// Step advances both countdowns by one tick.
func (j *JumpAssist) Step(dt float64) {
	j.wait.Step(dt)
	j.coyote.Step(dt)
}
