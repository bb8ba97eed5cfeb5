// Command showcase-tui runs the contributor showcase in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/contributors-showcase/internal/app"
	"github.com/olivierh59500/contributors-showcase/internal/showcase"
)

const frameInterval = 33 * time.Millisecond

// Viewer drives a showcase on a tcell screen.
type Viewer struct {
	screen tcell.Screen
	show   *showcase.Showcase
	paused bool
	last   time.Time
}

func (v *Viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			v.paused = !v.paused
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'n':
			v.show.Skip()
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) step(now time.Time) {
	dt := 0.0
	if !v.last.IsZero() {
		dt = now.Sub(v.last).Seconds()
	}
	v.last = now
	if v.paused {
		return
	}

	cols, rows := v.screen.Size()
	v.show.Tick(dt, viewport(cols, rows))
}

// pollEvents forwards screen events until the screen is finalized or quit
// is closed.
func pollEvents(screen tcell.Screen, quit <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	return events
}

func (v *Viewer) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	quit := make(chan struct{})
	defer close(quit)
	events := pollEvents(v.screen, quit)

	for {
		select {
		case ev, ok := <-events:
			if !ok || !v.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			v.step(now)
			draw(v.screen, v.show)
		}
	}
}

func main() {
	configPath := flag.String("config", "data/showcase.yaml", "path to the yaml config")
	seed := flag.Int64("seed", 0, "random seed (0 uses the config or the clock)")
	flag.Parse()

	// log output would corrupt the terminal
	a, err := app.New(context.Background(), app.Options{ConfigPath: *configPath, Seed: *seed, Quiet: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	v := &Viewer{screen: screen, show: a.Show}
	v.run()
}
