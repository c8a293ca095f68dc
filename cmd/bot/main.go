// Command bot runs the character controller headless, driven by a tengo input
// script. It is useful for checking how tuning changes feel without launching
// the game: the script writes the same move/jump signals a player would.
package main

import (
	"embed"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/platformkit/control"
	"github.com/milk9111/platformkit/physics"
	"github.com/milk9111/platformkit/tuning"
)

//go:embed scripts/*.tengo
var scriptsFS embed.FS

const (
	tickDelta = 1.0 / 60.0

	worldWidth  = 2400.0
	worldHeight = 720.0
)

func main() {
	scriptPath := flag.String("script", "", "tengo input script (default: built-in patrol)")
	ticks := flag.Int("ticks", 600, "number of ticks to simulate")
	trace := flag.Int("trace", 30, "print a trace line every N ticks (0 = silent)")
	flag.Parse()

	src, err := loadScript(*scriptPath)
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := tuning.Default()
	if err != nil {
		log.Fatal(err)
	}

	world := physics.NewResolvWorld(worldWidth, worldHeight)
	buildLevel(world)
	world.SpawnPlayer(control.Vec2{X: 200, Y: 200}, 32, 64)

	ctrl := control.New(cfg, world)

	compiled, err := compileScript(src)
	if err != nil {
		log.Fatal(err)
	}

	prevJump := false
	for i := 0; i < *ticks; i++ {
		pos := world.PlayerPosition()
		if err := setInputs(compiled, i, pos, ctrl); err != nil {
			log.Fatal(err)
		}
		if err := compiled.Run(); err != nil {
			log.Fatalf("script tick %d: %v", i, err)
		}

		move := compiled.Get("move").Float()
		jump := compiled.Get("jump").Bool()
		if jump && !prevJump {
			ctrl.OnJumpPressed()
		}
		if !jump && prevJump {
			ctrl.OnJumpReleased()
		}
		prevJump = jump

		vel := ctrl.Tick(tickDelta, move, world.PlayerBounds())
		world.SetPlayerVelocity(vel)
		world.Step(tickDelta)

		if *trace > 0 && i%*trace == 0 {
			p := world.PlayerPosition()
			fmt.Printf("tick=%4d pos=(%7.1f,%6.1f) vel=(%7.1f,%7.1f) grounded=%t\n",
				i, p.X, p.Y, vel.X, vel.Y, ctrl.Grounded())
		}
	}
}

func loadScript(path string) ([]byte, error) {
	if path == "" {
		return scriptsFS.ReadFile("scripts/patrol.tengo")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bot: load script %q: %w", path, err)
	}
	return data, nil
}

// compileScript declares the globals the runner exchanges with the script
// each tick: tick/x/y/vy/grounded in, move/jump out, dir as persistent
// scratch state.
func compileScript(src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript(src)
	_ = script.Add("tick", 0)
	_ = script.Add("x", 0.0)
	_ = script.Add("y", 0.0)
	_ = script.Add("vy", 0.0)
	_ = script.Add("grounded", false)
	_ = script.Add("move", 0.0)
	_ = script.Add("jump", false)
	_ = script.Add("dir", 1.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("bot: compile script: %w", err)
	}
	return compiled, nil
}

func setInputs(compiled *tengo.Compiled, tick int, pos control.Vec2, ctrl *control.Controller) error {
	if err := compiled.Set("tick", tick); err != nil {
		return err
	}
	if err := compiled.Set("x", pos.X); err != nil {
		return err
	}
	if err := compiled.Set("y", pos.Y); err != nil {
		return err
	}
	if err := compiled.Set("vy", ctrl.Velocity().Y); err != nil {
		return err
	}
	return compiled.Set("grounded", ctrl.Grounded())
}

// buildLevel mirrors the demo level's floor and platforms without the render
// side.
func buildLevel(world *physics.ResolvWorld) {
	const maskSolid uint = 1
	world.AddBox(control.Vec2{X: 0, Y: 0}, control.Vec2{X: worldWidth, Y: 40}, maskSolid)
	world.AddBox(control.Vec2{X: 0, Y: 0}, control.Vec2{X: 10, Y: worldHeight}, maskSolid)
	world.AddBox(control.Vec2{X: worldWidth - 10, Y: 0}, control.Vec2{X: worldWidth, Y: worldHeight}, maskSolid)
	world.AddBox(control.Vec2{X: 420, Y: 140}, control.Vec2{X: 640, Y: 170}, maskSolid)
	world.AddBox(control.Vec2{X: 780, Y: 250}, control.Vec2{X: 960, Y: 280}, maskSolid)
}
