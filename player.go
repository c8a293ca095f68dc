package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/platformkit/control"
)

const (
	playerWidth  = 32.0
	playerHeight = 64.0
)

// Player is the demo's rendered character. All movement decisions live in the
// controller; this only knows how to draw itself at the body's position.
type Player struct {
	img   *ebiten.Image
	eye   *ebiten.Image
	width float64
}

func NewPlayer() *Player {
	img := ebiten.NewImage(int(playerWidth), int(playerHeight))
	img.Fill(colornames.Crimson)
	// a small offset marker so the facing flip is visible
	eye := ebiten.NewImage(6, 6)
	eye.Fill(colornames.White)
	return &Player{img: img, eye: eye, width: playerWidth}
}

// Draw renders the player centered at pos, flipped to match facing.
func (p *Player) Draw(screen *ebiten.Image, pos control.Vec2, facing int, toScreen func(control.Vec2) (float64, float64)) {
	x, y := toScreen(control.Vec2{X: pos.X - playerWidth/2, Y: pos.Y + playerHeight/2})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(p.img, op)

	eyeOp := &ebiten.DrawImageOptions{}
	if facing >= 0 {
		eyeOp.GeoM.Translate(x+playerWidth-10, y+8)
	} else {
		eyeOp.GeoM.Translate(x+4, y+8)
	}
	screen.DrawImage(p.eye, eyeOp)
}
