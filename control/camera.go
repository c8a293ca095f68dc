package control

import "fmt"

// CameraFollower maps the character position to a camera position under one
// of the follow modes. It runs in the embedder's late pass, after the tick
// pipeline has updated the character, so Lerp mode reads a fresh position.
type CameraFollower struct {
	mode   FollowMode
	smooth float64
	pos    Vec2
}

// NewCameraFollower creates a follower starting at the given position.
func NewCameraFollower(mode FollowMode, smoothness float64, start Vec2) *CameraFollower {
	return &CameraFollower{mode: mode, smooth: smoothness, pos: start}
}

// Position returns the current camera position.
func (f *CameraFollower) Position() Vec2 {
	return f.pos
}

// Follow advances the camera toward target per the follow mode and returns
// the new camera position.
func (f *CameraFollower) Follow(target Vec2) Vec2 {
	switch f.mode {
	case FollowRaw:
		f.pos = target
	case FollowLerp:
		f.pos.X += (target.X - f.pos.X) * f.smooth
		f.pos.Y += (target.Y - f.pos.Y) * f.smooth
	case FollowNone:
		// camera stays put
	default:
		// a mode outside the enum is a build/config defect, not a runtime
		// condition
		panic(fmt.Sprintf("camera: invalid follow mode %d", int(f.mode)))
	}
	return f.pos
}
