package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/platformkit/control"
	"github.com/milk9111/platformkit/physics"
	"github.com/milk9111/platformkit/tuning"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// Update runs at ebiten's fixed 60 TPS; this is the physics tick.
	tickDelta = 1.0 / 60.0
)

type Game struct {
	frames int

	input  *Input
	level  *Level
	world  *physics.ChipmunkWorld
	ctrl   *control.Controller
	cam    *control.CameraFollower
	player *Player

	paused  bool
	pauseUI *ebitenui.UI

	watcher *tuning.Watcher
}

func NewGame(cfg control.Config) *Game {
	level := NewLevel()
	world := physics.NewChipmunkWorld()
	level.Populate(world)

	spawn := level.SpawnPosition()
	world.SpawnPlayer(spawn, playerWidth, playerHeight)

	g := &Game{
		input:  NewInput(),
		level:  level,
		world:  world,
		ctrl:   control.New(cfg, world),
		cam:    control.NewCameraFollower(cfg.CameraFollowMode, cfg.FollowSmoothness, spawn),
		player: NewPlayer(),
	}
	g.pauseUI = NewPauseUI(g)

	// hot reload only when a tuning dir exists on disk to watch
	if _, err := os.Stat("tuning"); err == nil {
		watcher, err := tuning.NewWatcher("tuning")
		if err != nil {
			log.Printf("tuning watcher disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g
}

func (g *Game) Update() error {
	g.frames++
	g.input.Update()

	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.maybeReloadTuning()

	if g.input.JumpPressed {
		g.ctrl.OnJumpPressed()
	}
	if g.input.JumpReleased {
		g.ctrl.OnJumpReleased()
	}

	vel := g.ctrl.Tick(tickDelta, g.input.MoveX, g.world.PlayerBounds())
	g.world.SetPlayerVelocity(vel)
	g.world.Step(tickDelta)

	return nil
}

// maybeReloadTuning drains pending watcher events and rebuilds the controller
// with the new tuning. The character's position lives in the physics body, so
// a rebuild keeps it in place.
func (g *Game) maybeReloadTuning() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("tuning changed: %s", name)
			reload = true
		case err := <-g.watcher.Errors:
			log.Printf("tuning watcher: %v", err)
		default:
			if !reload {
				return
			}
			cfg, err := tuning.Default()
			if err != nil {
				log.Printf("tuning reload rejected: %v", err)
				return
			}
			g.ctrl = control.New(cfg, g.world)
			g.cam = control.NewCameraFollower(cfg.CameraFollowMode, cfg.FollowSmoothness, g.cam.Position())
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	// camera follow is the late pass, reading the just-updated position
	camPos := g.cam.Follow(g.world.PlayerPosition())

	toScreen := func(p control.Vec2) (float64, float64) {
		return p.X - camPos.X + baseWidth/2, baseHeight/2 - (p.Y - camPos.Y)
	}

	g.level.Draw(screen, toScreen)
	g.player.Draw(screen, g.world.PlayerPosition(), g.ctrl.Facing(), toScreen)

	vel := g.ctrl.Velocity()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.0f  vel: (%.1f, %.1f)  grounded: %t  buffered: %t",
		ebiten.ActualFPS(), vel.X, vel.Y, g.ctrl.Grounded(), g.ctrl.JumpPending()))

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) quit() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	os.Exit(0)
}
