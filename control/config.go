package control

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FollowMode selects how the camera tracks the character.
type FollowMode int

const (
	// FollowRaw snaps the camera to the character every call.
	FollowRaw FollowMode = iota
	// FollowLerp moves the camera toward the character by a fixed factor per call.
	FollowLerp
	// FollowNone leaves the camera where it is.
	FollowNone
)

func (m FollowMode) String() string {
	switch m {
	case FollowRaw:
		return "raw"
	case FollowLerp:
		return "lerp"
	case FollowNone:
		return "none"
	}
	return fmt.Sprintf("FollowMode(%d)", int(m))
}

// UnmarshalYAML parses a follow mode from its yaml string form.
func (m *FollowMode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "raw":
		*m = FollowRaw
	case "lerp":
		*m = FollowLerp
	case "none":
		*m = FollowNone
	default:
		return fmt.Errorf("config: unknown camera follow mode %q", s)
	}
	return nil
}

// MarshalYAML renders a follow mode as its yaml string form.
func (m FollowMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// Config holds the controller tuning. It is immutable for the lifetime of a
// Controller; range validation is the loader's job, the tick pipeline never
// re-clamps these values.
type Config struct {
	GravityEnabled      bool    `yaml:"gravity_enabled"`
	Gravity             float64 `yaml:"gravity"`
	MinVerticalVelocity float64 `yaml:"min_vertical_velocity"`

	Speed                 float64 `yaml:"speed"`
	AirAccelerationFactor float64 `yaml:"air_acceleration_factor"`

	JumpEnabled     bool    `yaml:"jump_enabled"`
	JumpStartSpeed  float64 `yaml:"jump_start_speed"`
	JumpAbortFactor float64 `yaml:"jump_abort_factor"`
	JumpBufferTime  float64 `yaml:"jump_buffer_time"`
	CoyoteTime      float64 `yaml:"coyote_time"`

	ContactMask            uint    `yaml:"contact_mask"`
	MinContactAngleCos     float64 `yaml:"min_contact_angle_cos"`
	ContactProbeThickness  float64 `yaml:"contact_probe_thickness"`
	ContactPositionEpsilon float64 `yaml:"contact_position_epsilon"`
	MaxContacts            int     `yaml:"max_contacts"`

	CameraFollowMode FollowMode `yaml:"camera_follow_mode"`
	FollowSmoothness float64    `yaml:"follow_smoothness"`

	InitialFacing int `yaml:"initial_facing"`
}

// DefaultConfig returns tuning that feels reasonable for a 32x64 character
// in a pixel-unit world at 60 ticks per second.
func DefaultConfig() Config {
	return Config{
		GravityEnabled:         true,
		Gravity:                -1800,
		MinVerticalVelocity:    -900,
		Speed:                  260,
		AirAccelerationFactor:  0.65,
		JumpEnabled:            true,
		JumpStartSpeed:         620,
		JumpAbortFactor:        0.45,
		JumpBufferTime:         0.12,
		CoyoteTime:             0.1,
		ContactMask:            1,
		MinContactAngleCos:     0.7,
		ContactProbeThickness:  4,
		ContactPositionEpsilon: 2,
		MaxContacts:            8,
		CameraFollowMode:       FollowLerp,
		FollowSmoothness:       0.15,
		InitialFacing:          1,
	}
}

// LoadConfig parses yaml tuning over the defaults and validates it.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the bounded fields. It is the load-time pass the tick
// pipeline relies on; out-of-range values that slip past degrade per the
// trigger semantics rather than being re-clamped at runtime.
func (c Config) Validate() error {
	if c.Gravity > 0 {
		return fmt.Errorf("config: gravity must be <= 0, got %g", c.Gravity)
	}
	if c.MinVerticalVelocity > 0 {
		return fmt.Errorf("config: min_vertical_velocity must be <= 0, got %g", c.MinVerticalVelocity)
	}
	if c.AirAccelerationFactor < 0 || c.AirAccelerationFactor > 1 {
		return fmt.Errorf("config: air_acceleration_factor must be in [0,1], got %g", c.AirAccelerationFactor)
	}
	if c.JumpAbortFactor < 0 || c.JumpAbortFactor > 1 {
		return fmt.Errorf("config: jump_abort_factor must be in [0,1], got %g", c.JumpAbortFactor)
	}
	if c.MinContactAngleCos < 0 || c.MinContactAngleCos > 1 {
		return fmt.Errorf("config: min_contact_angle_cos must be in [0,1], got %g", c.MinContactAngleCos)
	}
	if c.FollowSmoothness < 0 || c.FollowSmoothness > 1 {
		return fmt.Errorf("config: follow_smoothness must be in [0,1], got %g", c.FollowSmoothness)
	}
	if c.MaxContacts <= 0 {
		return fmt.Errorf("config: max_contacts must be > 0, got %d", c.MaxContacts)
	}
	if c.InitialFacing != 1 && c.InitialFacing != -1 {
		return fmt.Errorf("config: initial_facing must be -1 or 1, got %d", c.InitialFacing)
	}
	return nil
}
