package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/milk9111/platformkit/control"
	"github.com/milk9111/platformkit/physics"
)

// maskSolid is the collision category the contact probe checks against.
const maskSolid uint = 1

// Level is the demo's static geometry: a long floor, a few platforms, walls
// on both ends, and a hanging block to bonk against.
type Level struct {
	boxes []control.Bounds
	imgs  []*ebiten.Image
}

func NewLevel() *Level {
	boxes := []control.Bounds{
		// floor
		{Min: control.Vec2{X: 0, Y: 0}, Max: control.Vec2{X: 2400, Y: 40}},
		// end walls
		{Min: control.Vec2{X: -40, Y: 0}, Max: control.Vec2{X: 0, Y: 720}},
		{Min: control.Vec2{X: 2400, Y: 0}, Max: control.Vec2{X: 2440, Y: 720}},
		// stepping platforms
		{Min: control.Vec2{X: 420, Y: 140}, Max: control.Vec2{X: 640, Y: 170}},
		{Min: control.Vec2{X: 780, Y: 250}, Max: control.Vec2{X: 960, Y: 280}},
		{Min: control.Vec2{X: 1100, Y: 360}, Max: control.Vec2{X: 1240, Y: 390}},
		// hanging block forming a low ceiling over the floor
		{Min: control.Vec2{X: 1500, Y: 130}, Max: control.Vec2{X: 1900, Y: 520}},
		// a ledge to walk off for coyote jumps
		{Min: control.Vec2{X: 2050, Y: 200}, Max: control.Vec2{X: 2250, Y: 230}},
	}

	lvl := &Level{boxes: boxes}
	for _, b := range boxes {
		img := ebiten.NewImage(int(b.Max.X-b.Min.X), int(b.Max.Y-b.Min.Y))
		img.Fill(colornames.Slategray)
		lvl.imgs = append(lvl.imgs, img)
	}
	return lvl
}

// Populate adds the level geometry to the physics world.
func (l *Level) Populate(world *physics.ChipmunkWorld) {
	for _, b := range l.boxes {
		world.AddBox(b.Min, b.Max, maskSolid)
	}
}

// SpawnPosition is where the player starts.
func (l *Level) SpawnPosition() control.Vec2 {
	return control.Vec2{X: 200, Y: 200}
}

// Draw renders the level boxes through the world-to-screen transform, which
// takes a world point and returns the matching screen position.
func (l *Level) Draw(screen *ebiten.Image, toScreen func(control.Vec2) (float64, float64)) {
	screen.Fill(color.NRGBA{R: 0x18, G: 0x1c, B: 0x24, A: 0xff})
	for i, b := range l.boxes {
		// the on-screen top-left corner is the world's (Min.X, Max.Y)
		x, y := toScreen(control.Vec2{X: b.Min.X, Y: b.Max.Y})
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		screen.DrawImage(l.imgs[i], op)
	}
}
