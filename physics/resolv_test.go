package physics

import (
	"math"
	"testing"

	"github.com/milk9111/platformkit/control"
)

func TestResolvStepMovesPlayer(t *testing.T) {
	w := NewResolvWorld(640, 480)
	w.SpawnPlayer(control.Vec2{X: 100, Y: 200}, 32, 64)
	w.SetPlayerVelocity(control.Vec2{X: 60, Y: -30})

	dt := 1.0 / 60.0
	for i := 0; i < 60; i++ {
		w.Step(dt)
	}

	p := w.PlayerPosition()
	if math.Abs(p.X-160) > 1e-6 || math.Abs(p.Y-170) > 1e-6 {
		t.Fatalf("position = %+v after 1s, want (160, 170)", p)
	}
}

func TestResolvStepClipsAgainstFloor(t *testing.T) {
	w := NewResolvWorld(640, 480)
	w.AddBox(control.Vec2{X: 0, Y: 0}, control.Vec2{X: 640, Y: 40}, 1)
	w.SpawnPlayer(control.Vec2{X: 100, Y: 100}, 32, 64)
	w.SetPlayerVelocity(control.Vec2{X: 0, Y: -600})

	dt := 1.0 / 60.0
	for i := 0; i < 20; i++ {
		w.Step(dt)
	}

	// falling at 10 units per tick from a bottom edge at 68: the move into
	// the floor is clipped to land flush on its top at 40
	bottom := w.PlayerBounds().Min.Y
	if math.Abs(bottom-40) > 1e-6 {
		t.Fatalf("player bottom = %g, want resting flush on the floor at 40", bottom)
	}
}

func TestResolvStepClipsAgainstWall(t *testing.T) {
	w := NewResolvWorld(640, 480)
	w.AddBox(control.Vec2{X: 300, Y: 0}, control.Vec2{X: 340, Y: 480}, 1)
	w.SpawnPlayer(control.Vec2{X: 100, Y: 200}, 32, 64)
	w.SetPlayerVelocity(control.Vec2{X: 400, Y: 0})

	dt := 1.0 / 60.0
	for i := 0; i < 60; i++ {
		w.Step(dt)
	}

	right := w.PlayerBounds().Max.X
	if math.Abs(right-300) > 1e-6 {
		t.Fatalf("player right edge = %g, want stopped at the wall face 300", right)
	}
}
