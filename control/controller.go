package control

// CharacterState is the mutable per-character state the tick pipeline owns.
// It has exactly one writer: the controller driving it.
type CharacterState struct {
	Velocity Vec2
	Grounded bool
	// Facing is -1 or +1 and flips to match the last nonzero move axis.
	Facing int
}

// Controller turns per-tick move/jump input into a physics velocity using
// contact probing, gravity integration, and the jump assist. It is built for
// a single-threaded fixed-timestep loop: one Tick per physics step, jump
// events delivered between ticks.
type Controller struct {
	cfg   Config
	probe *ContactDetector
	jump  JumpAssist
	state CharacterState
}

// New creates a controller over the given caster capability.
func New(cfg Config, caster Caster) *Controller {
	facing := cfg.InitialFacing
	if facing == 0 {
		facing = 1
	}
	return &Controller{
		cfg:   cfg,
		probe: NewContactDetector(caster, cfg),
		jump:  NewJumpAssist(cfg),
		state: CharacterState{Facing: facing},
	}
}

// Config returns the tuning the controller was built with.
func (c *Controller) Config() Config {
	return c.cfg
}

// OnJumpPressed handles the jump-press edge. Ignored when jump is disabled.
func (c *Controller) OnJumpPressed() {
	if !c.cfg.JumpEnabled {
		return
	}
	c.jump.Press()
}

// OnJumpReleased handles the jump-release edge. Ignored when jump is disabled.
func (c *Controller) OnJumpReleased() {
	if !c.cfg.JumpEnabled {
		return
	}
	c.jump.Release(&c.state)
}

// Tick runs one fixed step of the movement pipeline and returns the velocity
// to hand to the physics body. bounds are the character collider's current
// world bounds; moveAxis is in [-1, 1].
func (c *Controller) Tick(dt, moveAxis float64, bounds Bounds) Vec2 {
	st := &c.state

	// Horizontal input, scaled down in the air.
	st.Velocity.X = moveAxis * c.cfg.Speed
	if !st.Grounded {
		st.Velocity.X *= c.cfg.AirAccelerationFactor
	}
	if moveAxis > 0 {
		st.Facing = 1
	} else if moveAxis < 0 {
		st.Facing = -1
	}

	// Contact clamp. The ceiling check runs only when the descending branch
	// did not; a simultaneous floor-and-ceiling squeeze is never evaluated in
	// one tick.
	if st.Velocity.Y < 0 {
		if c.probe.Touching(bounds, Down) {
			st.Velocity.Y = 0
			st.Grounded = true
		} else {
			if st.Grounded {
				c.jump.GroundLost()
			}
			st.Grounded = false
		}
	} else if c.probe.Touching(bounds, Up) {
		st.Velocity.Y = 0
	}

	if c.cfg.GravityEnabled {
		st.Velocity.Y += c.cfg.Gravity * dt
	}

	c.jump.Resolve(st)

	if st.Velocity.Y < c.cfg.MinVerticalVelocity {
		st.Velocity.Y = c.cfg.MinVerticalVelocity
	}

	c.jump.Step(dt)
	return st.Velocity
}

// Velocity returns the last computed velocity.
func (c *Controller) Velocity() Vec2 {
	return c.state.Velocity
}

// Grounded reports whether the character rested on a supporting surface at
// the end of the last tick. Read-only; animation and other systems key off it.
func (c *Controller) Grounded() bool {
	return c.state.Grounded
}

// Facing returns -1 or +1 for the current visual facing.
func (c *Controller) Facing() int {
	return c.state.Facing
}

// JumpPending reports whether a buffered jump is waiting to execute.
func (c *Controller) JumpPending() bool {
	return c.jump.Pending()
}
