package physics

import (
	"github.com/solarlune/resolv"

	"github.com/milk9111/platformkit/control"
)

const tagSolid = "solid"

// ResolvWorld is the headless backend: a resolv space with tag-checked
// per-axis movement instead of a rigid-body solver. It implements the same
// control.Caster capability as ChipmunkWorld.
type ResolvWorld struct {
	space *resolv.Space
	boxes []levelBox

	player *resolv.Object
	vel    control.Vec2
}

// NewResolvWorld creates a world covering [0,width]x[0,height].
func NewResolvWorld(width, height float64) *ResolvWorld {
	return &ResolvWorld{space: resolv.NewSpace(int(width), int(height), 16, 16)}
}

// AddBox registers a static axis-aligned obstacle under the given collision
// category bits.
func (w *ResolvWorld) AddBox(min, max control.Vec2, category uint) {
	obj := resolv.NewObject(min.X, min.Y, max.X-min.X, max.Y-min.Y, tagSolid)
	w.space.Add(obj)
	w.boxes = append(w.boxes, levelBox{min: min, max: max, category: category})
}

// SpawnPlayer creates the player object centered at pos.
func (w *ResolvWorld) SpawnPlayer(pos control.Vec2, width, height float64) {
	w.player = resolv.NewObject(pos.X-width/2, pos.Y-height/2, width, height, "player")
	w.space.Add(w.player)
}

// PlayerBounds returns the player collider's current world bounds.
func (w *ResolvWorld) PlayerBounds() control.Bounds {
	return control.Bounds{
		Min: control.Vec2{X: w.player.X, Y: w.player.Y},
		Max: control.Vec2{X: w.player.X + w.player.W, Y: w.player.Y + w.player.H},
	}
}

// PlayerPosition returns the player object's center.
func (w *ResolvWorld) PlayerPosition() control.Vec2 {
	return control.Vec2{X: w.player.X + w.player.W/2, Y: w.player.Y + w.player.H/2}
}

// SetPlayerVelocity stores the controller's tick velocity for the next Step.
func (w *ResolvWorld) SetPlayerVelocity(v control.Vec2) {
	w.vel = v
}

// Step moves the player by the stored velocity, one axis at a time, clipping
// each move to the first solid contact.
func (w *ResolvWorld) Step(dt float64) {
	if w.player == nil {
		return
	}

	dx := w.vel.X * dt
	if dx != 0 {
		if check := w.player.Check(dx, 0, tagSolid); check != nil {
			if solids := check.ObjectsByTags(tagSolid); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
			}
		}
		w.player.X += dx
		w.player.Update()
	}

	dy := w.vel.Y * dt
	if dy != 0 {
		if check := w.player.Check(0, dy, tagSolid); check != nil {
			if solids := check.ObjectsByTags(tagSolid); len(solids) > 0 {
				dy = check.ContactWithObject(solids[0]).Y()
			}
		}
		w.player.Y += dy
		w.player.Update()
	}
}

// BoxCast implements control.Caster over the registered level geometry, same
// sweep and sampling as the Chipmunk backend.
func (w *ResolvWorld) BoxCast(origin, size, dir control.Vec2, dist float64, mask uint, buf []control.ContactSample) int {
	sweptMin, sweptMax := sweptBounds(origin, size, dir, dist)

	count := 0
	for _, b := range w.boxes {
		if count >= len(buf) {
			break
		}
		if mask != 0 && b.category&mask == 0 {
			continue
		}
		if sweptMax.X < b.min.X || sweptMin.X > b.max.X ||
			sweptMax.Y < b.min.Y || sweptMin.Y > b.max.Y {
			continue
		}
		buf[count] = boxSample(origin, b.min, b.max)
		count++
	}
	return count
}
