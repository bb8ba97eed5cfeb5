package main

import (
	"context"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/contributors-showcase/internal/app"
)

func main() {
	configPath := flag.String("config", "data/showcase.yaml", "path to the yaml config")
	seed := flag.Int64("seed", 0, "random seed (0 uses the config or the clock)")
	quiet := flag.Bool("quiet", false, "discard log output")
	flag.Parse()

	// Initialize the showcase with the resolved contributor list
	a, err := app.New(context.Background(), app.Options{ConfigPath: *configPath, Seed: *seed, Quiet: *quiet})
	if err != nil {
		log.Fatal(err)
	}
	win := a.Config.Window

	game, err := NewGame(a.Show, win.Width, win.Height, a.Seed)
	if err != nil {
		log.Fatal(err)
	}

	// Set up Ebitengine game
	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(win.TPS)

	// Run the game loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
