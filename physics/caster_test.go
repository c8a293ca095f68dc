package physics

import (
	"testing"

	"github.com/milk9111/platformkit/control"
)

type boxWorld interface {
	control.Caster
	AddBox(min, max control.Vec2, category uint)
}

// both backends share the probe math, so they must report identical samples
// for the same geometry.
func backends() map[string]boxWorld {
	return map[string]boxWorld{
		"chipmunk": NewChipmunkWorld(),
		"resolv":   NewResolvWorld(640, 480),
	}
}

func TestBoxCastFloorHit(t *testing.T) {
	for name, w := range backends() {
		t.Run(name, func(t *testing.T) {
			w.AddBox(control.Vec2{X: 0, Y: 0}, control.Vec2{X: 100, Y: 10}, 1)

			buf := make([]control.ContactSample, 4)
			n := w.BoxCast(control.Vec2{X: 50, Y: 12}, control.Vec2{X: 32, Y: 4}, control.Vec2{Y: -1}, 4, 1, buf)
			if n != 1 {
				t.Fatalf("hits = %d, want 1", n)
			}
			hit := buf[0]
			if hit.Point != (control.Vec2{X: 50, Y: 10}) {
				t.Fatalf("point = %+v, want floor surface (50, 10)", hit.Point)
			}
			if hit.Normal != (control.Vec2{X: 0, Y: 1}) {
				t.Fatalf("normal = %+v, want up (0, 1)", hit.Normal)
			}
		})
	}
}

func TestBoxCastCeilingHit(t *testing.T) {
	for name, w := range backends() {
		t.Run(name, func(t *testing.T) {
			w.AddBox(control.Vec2{X: 0, Y: 50}, control.Vec2{X: 100, Y: 60}, 1)

			buf := make([]control.ContactSample, 4)
			n := w.BoxCast(control.Vec2{X: 50, Y: 48}, control.Vec2{X: 32, Y: 4}, control.Vec2{Y: 1}, 4, 1, buf)
			if n != 1 {
				t.Fatalf("hits = %d, want 1", n)
			}
			hit := buf[0]
			if hit.Point != (control.Vec2{X: 50, Y: 50}) {
				t.Fatalf("point = %+v, want ceiling surface (50, 50)", hit.Point)
			}
			if hit.Normal != (control.Vec2{X: 0, Y: -1}) {
				t.Fatalf("normal = %+v, want down (0, -1)", hit.Normal)
			}
		})
	}
}

func TestBoxCastOutOfRange(t *testing.T) {
	for name, w := range backends() {
		t.Run(name, func(t *testing.T) {
			w.AddBox(control.Vec2{X: 0, Y: 0}, control.Vec2{X: 100, Y: 10}, 1)

			buf := make([]control.ContactSample, 4)
			// swept box stops at y=14, well above the floor at y=10
			n := w.BoxCast(control.Vec2{X: 50, Y: 20}, control.Vec2{X: 32, Y: 4}, control.Vec2{Y: -1}, 4, 1, buf)
			if n != 0 {
				t.Fatalf("hits = %d, want none beyond the sweep", n)
			}
		})
	}
}

func TestBoxCastMask(t *testing.T) {
	for name, w := range backends() {
		t.Run(name, func(t *testing.T) {
			w.AddBox(control.Vec2{X: 0, Y: 0}, control.Vec2{X: 100, Y: 10}, 1)
			w.AddBox(control.Vec2{X: 0, Y: 0}, control.Vec2{X: 100, Y: 12}, 2)

			buf := make([]control.ContactSample, 4)
			origin := control.Vec2{X: 50, Y: 13}
			size := control.Vec2{X: 32, Y: 4}

			if n := w.BoxCast(origin, size, control.Vec2{Y: -1}, 4, 1, buf); n != 1 {
				t.Fatalf("mask 1 hits = %d, want only the category-1 box", n)
			}
			if n := w.BoxCast(origin, size, control.Vec2{Y: -1}, 4, 2, buf); n != 1 {
				t.Fatalf("mask 2 hits = %d, want only the category-2 box", n)
			}
			// a zero mask matches everything
			if n := w.BoxCast(origin, size, control.Vec2{Y: -1}, 4, 0, buf); n != 2 {
				t.Fatalf("zero mask hits = %d, want both boxes", n)
			}
		})
	}
}

func TestBoxCastBufferLimit(t *testing.T) {
	for name, w := range backends() {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 5; i++ {
				w.AddBox(control.Vec2{X: 0, Y: 0}, control.Vec2{X: 100, Y: 10}, 1)
			}

			buf := make([]control.ContactSample, 2)
			n := w.BoxCast(control.Vec2{X: 50, Y: 12}, control.Vec2{X: 32, Y: 4}, control.Vec2{Y: -1}, 4, 1, buf)
			if n != 2 {
				t.Fatalf("hits = %d, want capped at buffer length 2", n)
			}
		})
	}
}

func TestBoxCastFeedsContactDetector(t *testing.T) {
	cfg := control.DefaultConfig()
	for name, w := range backends() {
		t.Run(name, func(t *testing.T) {
			w.AddBox(control.Vec2{X: 0, Y: 0}, control.Vec2{X: 640, Y: 40}, cfg.ContactMask)
			det := control.NewContactDetector(w, cfg)

			resting := control.Bounds{
				Min: control.Vec2{X: 100, Y: 40},
				Max: control.Vec2{X: 132, Y: 104},
			}
			if !det.Touching(resting, control.Down) {
				t.Fatalf("bounds resting on the floor should touch down")
			}
			if det.Touching(resting, control.Up) {
				t.Fatalf("open air above should not touch up")
			}

			airborne := control.Bounds{
				Min: control.Vec2{X: 100, Y: 80},
				Max: control.Vec2{X: 132, Y: 144},
			}
			if det.Touching(airborne, control.Down) {
				t.Fatalf("bounds high above the floor should not touch down")
			}
		})
	}
}
