package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/chosenlight/lumen/internal/config"
	"github.com/chosenlight/lumen/internal/game"
	"github.com/chosenlight/lumen/internal/scene"
)

var (
	configPath = flag.String("config", "lumen.yaml", "path to the engine config file")
	scenePath  = flag.String("scene", "scene.yaml", "path to the scene file")
	renderMode = flag.String("mode", "", "override render mode (march or line)")
	debugFlag  = flag.Bool("debug", false, "show FPS and sweep timing overlay")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *renderMode != "" {
		cfg.RenderMode = *renderMode
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid render mode: %v", err)
		}
	}

	sc, err := scene.Load(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	g := game.New(cfg, sc, *debugFlag)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Lumen - 2D Ray Casting")

	log.Printf("Starting viewer: %dx%d, %d rays per frame, %d walls",
		cfg.Width, cfg.Height, cfg.NumRays(), sc.Len())
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
