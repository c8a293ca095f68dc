package control

import "math"

// Vec2 is a 2D vector in Y-up world coordinates.
type Vec2 struct {
	X float64
	Y float64
}

// Bounds is an axis-aligned box given by its min and max corners.
type Bounds struct {
	Min Vec2
	Max Vec2
}

// ContactSample is one hit reported by a box cast. Samples are ephemeral;
// the probe buffer is overwritten on every cast.
type ContactSample struct {
	Point  Vec2
	Normal Vec2
}

// Caster is the box-cast capability a physics backend provides: sweep a box
// of the given size from origin along dir for dist against mask, write up to
// len(buf) hits in arbitrary order, and return the number written.
type Caster interface {
	BoxCast(origin, size, dir Vec2, dist float64, mask uint, buf []ContactSample) int
}

// Direction selects which edge of the character a probe checks.
type Direction int

const (
	// Down probes for a supporting floor below the character.
	Down Direction = iota
	// Up probes for a ceiling above the character.
	Up
)

// ContactDetector reports whether the character's collision bounds currently
// touch a qualifying surface above or below them.
type ContactDetector struct {
	caster    Caster
	mask      uint
	minCos    float64
	thickness float64
	epsilon   float64
	buf       []ContactSample
}

// NewContactDetector builds a detector over the given caster. The hit buffer
// is sized to cfg.MaxContacts once and reused for every probe.
func NewContactDetector(caster Caster, cfg Config) *ContactDetector {
	return &ContactDetector{
		caster:    caster,
		mask:      cfg.ContactMask,
		minCos:    cfg.MinContactAngleCos,
		thickness: cfg.ContactProbeThickness,
		epsilon:   cfg.ContactPositionEpsilon,
		buf:       make([]ContactSample, cfg.MaxContacts),
	}
}

// Touching probes from the bottom-center (Down) or top-center (Up) of bounds
// and reports whether any hit both faces the right way and lies close enough
// to the probed edge. Steep walls fail the normal test; grazes far from the
// edge fail the epsilon test.
func (d *ContactDetector) Touching(bounds Bounds, dir Direction) bool {
	width := bounds.Max.X - bounds.Min.X
	var origin, axis Vec2
	switch dir {
	case Down:
		origin = Vec2{X: (bounds.Min.X + bounds.Max.X) / 2, Y: bounds.Min.Y}
		axis = Vec2{X: 0, Y: -1}
	case Up:
		origin = Vec2{X: (bounds.Min.X + bounds.Max.X) / 2, Y: bounds.Max.Y}
		axis = Vec2{X: 0, Y: 1}
	}

	n := d.caster.BoxCast(origin, Vec2{X: width, Y: d.thickness}, axis, d.thickness, d.mask, d.buf)
	if n > len(d.buf) {
		n = len(d.buf)
	}
	for _, hit := range d.buf[:n] {
		if dir == Down && hit.Normal.Y < d.minCos {
			continue
		}
		if dir == Up && hit.Normal.Y > -d.minCos {
			continue
		}
		if math.Abs(hit.Point.Y-origin.Y) <= d.epsilon {
			return true
		}
	}
	return false
}
