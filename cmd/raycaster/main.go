package main

import (
	"flag"
	"log"

	"github.com/davecgh/go-spew/spew"

	"github.com/softglow/raycaster/internal/game"
	ebitenrender "github.com/softglow/raycaster/internal/render/ebiten"
	"github.com/softglow/raycaster/internal/scene"
)

func main() {
	scenePath := flag.String("scene", "", "JSON scene file (built-in demo scene when empty or missing)")
	debug := flag.Bool("debug", false, "show the FPS, ray density, and origin overlay")
	dumpScene := flag.Bool("dump-scene", false, "print the resolved scene configuration and exit")
	flag.Parse()

	cfg, err := scene.LoadConfig(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene config: %v", err)
	}

	if *dumpScene {
		spew.Dump(cfg)
		return
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g := game.New(cfg, renderer, inputMgr, engine, *debug)

	engine.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	engine.SetWindowTitle("Raycaster")
	engine.SetWindowResizable(false)

	log.Printf("Casting %d rays against %d walls (scroll to adjust, Esc to quit)",
		cfg.DensityDefault, len(cfg.Walls))
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
