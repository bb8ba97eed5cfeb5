// Package app holds the startup shared by every frontend: configuration,
// name resolution and showcase construction.
package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"

	"github.com/olivierh59500/contributors-showcase/internal/config"
	"github.com/olivierh59500/contributors-showcase/internal/contributors"
	"github.com/olivierh59500/contributors-showcase/internal/showcase"
)

// Options are the command-line level settings.
type Options struct {
	ConfigPath string
	EnvFiles   []string // Optional .env files, defaults to ./.env
	Seed       int64    // Overrides the config when non-zero
	Quiet      bool     // Discard log output
}

// App is a ready-to-tick showcase with its configuration.
type App struct {
	Config     *config.Config
	Show       *showcase.Showcase
	Seed       int64
	Resolution contributors.Resolution
}

// New loads the configuration, resolves the contributor names and builds
// the showcase.
func New(ctx context.Context, opts Options) (*App, error) {
	if opts.Quiet {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(opts.EnvFiles...); err != nil {
		return nil, err
	}
	if opts.Seed != 0 {
		cfg.Showcase.Seed = opts.Seed
	}

	names, res := contributors.Resolve(ctx, cfg.NameSource())

	seed := cfg.Seed()
	show, err := showcase.New(names, rand.New(rand.NewSource(seed)), cfg.Tuning())
	if err != nil {
		return nil, fmt.Errorf("failed to build showcase: %w", err)
	}
	log.Printf("showcase: %d contributors (%s), seed %d", len(show.Roster), res.Outcome, seed)

	return &App{
		Config:     cfg,
		Show:       show,
		Seed:       seed,
		Resolution: res,
	}, nil
}
