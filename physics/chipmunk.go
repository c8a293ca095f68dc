// Package physics provides box-cast capable collision backends for the
// controller: one over Chipmunk2D for the interactive game, one over resolv
// for headless use. Either plugs into control.Caster without the controller
// knowing which is underneath.
package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/platformkit/control"
)

type levelBox struct {
	min      control.Vec2
	max      control.Vec2
	category uint
}

// ChipmunkWorld owns a cp.Space with static level geometry and the player
// body. It implements control.Caster with a swept-AABB probe over the
// geometry it registered; Chipmunk itself resolves the body's collisions
// when the world steps.
type ChipmunkWorld struct {
	space *cp.Space
	boxes []levelBox

	body  *cp.Body
	halfW float64
	halfH float64
}

// NewChipmunkWorld creates an empty world. Gravity stays zero in the space;
// the controller integrates gravity into the velocity it hands over.
func NewChipmunkWorld() *ChipmunkWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	return &ChipmunkWorld{space: space}
}

// AddBox registers a static axis-aligned obstacle under the given collision
// category bits.
func (w *ChipmunkWorld) AddBox(min, max control.Vec2, category uint) {
	bb := cp.BB{L: min.X, B: min.Y, R: max.X, T: max.Y}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	w.space.AddShape(shape)
	w.boxes = append(w.boxes, levelBox{min: min, max: max, category: category})
}

// SpawnPlayer creates the player body centered at pos.
func (w *ChipmunkWorld) SpawnPlayer(pos control.Vec2, width, height float64) {
	body := cp.NewBody(1, cp.MomentForBox(1, width, height))
	body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y})

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)

	w.space.AddBody(body)
	w.space.AddShape(shape)
	w.body = body
	w.halfW = width / 2
	w.halfH = height / 2
}

// PlayerBounds returns the player collider's current world bounds.
func (w *ChipmunkWorld) PlayerBounds() control.Bounds {
	p := w.body.Position()
	return control.Bounds{
		Min: control.Vec2{X: p.X - w.halfW, Y: p.Y - w.halfH},
		Max: control.Vec2{X: p.X + w.halfW, Y: p.Y + w.halfH},
	}
}

// PlayerPosition returns the player body's center.
func (w *ChipmunkWorld) PlayerPosition() control.Vec2 {
	p := w.body.Position()
	return control.Vec2{X: p.X, Y: p.Y}
}

// SetPlayerVelocity applies the controller's tick velocity to the body.
func (w *ChipmunkWorld) SetPlayerVelocity(v control.Vec2) {
	w.body.SetVelocityVector(cp.Vector{X: v.X, Y: v.Y})
}

// Step advances the space. The body is a box that must not tumble, so its
// angle is re-zeroed after each step.
func (w *ChipmunkWorld) Step(dt float64) {
	w.space.Step(dt)
	if w.body != nil {
		w.body.SetAngle(0)
		w.body.SetAngularVelocity(0)
	}
}

// BoxCast implements control.Caster by overlap-testing the swept box against
// the registered level geometry. Hit points and normals come from the
// obstacle faces, so axis-aligned floors report (0,1) and ceilings (0,-1).
func (w *ChipmunkWorld) BoxCast(origin, size, dir control.Vec2, dist float64, mask uint, buf []control.ContactSample) int {
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

// sweptBounds is the AABB covered by a box of the given size centered at
// origin and swept along dir for dist.
func sweptBounds(origin, size, dir control.Vec2, dist float64) (control.Vec2, control.Vec2) {
	min := control.Vec2{X: origin.X - size.X/2, Y: origin.Y - size.Y/2}
	max := control.Vec2{X: origin.X + size.X/2, Y: origin.Y + size.Y/2}
	dx := dir.X * dist
	dy := dir.Y * dist
	if dx < 0 {
		min.X += dx
	} else {
		max.X += dx
	}
	if dy < 0 {
		min.Y += dy
	} else {
		max.Y += dy
	}
	return min, max
}

// boxSample builds the contact sample for an axis-aligned obstacle: the point
// is the obstacle surface nearest the probe origin, the normal the face the
// origin lies beyond.
func boxSample(origin, bmin, bmax control.Vec2) control.ContactSample {
	point := control.Vec2{
		X: clamp(origin.X, bmin.X, bmax.X),
		Y: clamp(origin.Y, bmin.Y, bmax.Y),
	}
	var normal control.Vec2
	switch {
	case origin.Y >= bmax.Y:
		normal = control.Vec2{X: 0, Y: 1}
	case origin.Y <= bmin.Y:
		normal = control.Vec2{X: 0, Y: -1}
	case origin.X <= bmin.X:
		normal = control.Vec2{X: -1, Y: 0}
	default:
		normal = control.Vec2{X: 1, Y: 0}
	}
	return control.ContactSample{Point: point, Normal: normal}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
