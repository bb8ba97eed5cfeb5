// Command showcase-snap runs the showcase headless with a fixed time step
// and writes frames as PNG files.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/olivierh59500/contributors-showcase/internal/app"
	"github.com/olivierh59500/contributors-showcase/internal/showcase"
)

func main() {
	configPath := flag.String("config", "data/showcase.yaml", "path to the yaml config")
	seed := flag.Int64("seed", 1, "random seed")
	frames := flag.Int("frames", 600, "number of ticks to simulate")
	every := flag.Int("every", 30, "write every n-th frame")
	dt := flag.Float64("dt", 1.0/60, "seconds per tick")
	outDir := flag.String("out", "frames", "output directory")
	flag.Parse()

	if *every <= 0 || *frames <= 0 || *dt < 0 {
		log.Fatal("frames and every must be positive, dt must not be negative")
	}

	a, err := app.New(context.Background(), app.Options{ConfigPath: *configPath, Seed: *seed})
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	win := a.Config.Window
	r, err := newRenderer(win.Width, win.Height, int(math.Ceil(a.Show.Tuning().SpriteSize)), a.Seed)
	if err != nil {
		log.Fatal(err)
	}
	bounds := showcase.Bounds{Width: float64(win.Width), Height: float64(win.Height)}

	written := 0
	for i := 1; i <= *frames; i++ {
		a.Show.Tick(*dt, bounds)
		if i%*every != 0 {
			continue
		}
		path := filepath.Join(*outDir, fmt.Sprintf("frame_%05d.png", i))
		if err := r.render(a.Show).SavePNG(path); err != nil {
			log.Fatal(err)
		}
		written++
	}
	log.Printf("snap: wrote %d frames to %s", written, *outDir)
}
