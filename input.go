package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const stickDeadzone = 0.3

// Input holds the per-tick input state for the controller.
type Input struct {
	// MoveX is the horizontal move axis in [-1, 1].
	MoveX float64
	// JumpPressed/JumpReleased are true only on the edge frame.
	JumpPressed  bool
	JumpReleased bool
	// JumpHeld is true while the jump key is down.
	JumpHeld bool
	// PausePressed is true on the frame the pause key is pressed.
	PausePressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and first gamepad.
func (i *Input) Update() {
	var moveX float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		moveX += 1
	}

	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	jumpReleased := inpututil.IsKeyJustReleased(ebiten.KeySpace)
	jumpHeld := ebiten.IsKeyPressed(ebiten.KeySpace)

	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]

		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			moveX = leftX
		}

		jumpPressed = jumpPressed || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		jumpReleased = jumpReleased || inpututil.IsStandardGamepadButtonJustReleased(gid, ebiten.StandardGamepadButtonRightBottom)
		jumpHeld = jumpHeld || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
	}

	i.MoveX = moveX
	i.JumpPressed = jumpPressed
	i.JumpReleased = jumpReleased
	i.JumpHeld = jumpHeld
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
