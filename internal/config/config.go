// Package config loads the showcase configuration from a yaml file and
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/olivierh59500/contributors-showcase/internal/contributors"
	"github.com/olivierh59500/contributors-showcase/internal/showcase"
)

// Environment variables read by ApplyEnv.
const (
	EnvSeed         = "SHOWCASE_SEED"
	EnvRepoDir      = "SHOWCASE_REPO_DIR"
	EnvIntervalSecs = "SHOWCASE_INTERVAL_SECS"
	EnvDisableGit   = "SHOWCASE_DISABLE_GIT"
)

// Config is the full configuration.
type Config struct {
	Window       WindowConfig       `yaml:"window"`
	Showcase     ShowcaseConfig     `yaml:"showcase"`
	Contributors ContributorsConfig `yaml:"contributors"`
}

// WindowConfig sizes the window frontend.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// ShowcaseConfig tunes the simulation.
type ShowcaseConfig struct {
	IntervalSecs float64 `yaml:"interval_secs"`
	SpriteSize   float64 `yaml:"sprite_size"`
	Gravity      float64 `yaml:"gravity"`
	ImpulseMin   float64 `yaml:"impulse_min"`
	ImpulseMax   float64 `yaml:"impulse_max"`
	Seed         int64   `yaml:"seed"` // 0 picks a time-based seed
}

// ContributorsConfig selects where names come from.
type ContributorsConfig struct {
	RepoDir    string        `yaml:"repo_dir"`
	GitTimeout time.Duration `yaml:"git_timeout"`
	DisableGit bool          `yaml:"disable_git"`
}

// Default returns the stock configuration.
func Default() *Config {
	t := showcase.DefaultTuning()
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Contributor showcase",
			TPS:    60,
		},
		Showcase: ShowcaseConfig{
			IntervalSecs: t.Interval,
			SpriteSize:   t.SpriteSize,
			Gravity:      t.Gravity,
			ImpulseMin:   t.ImpulseMin,
			ImpulseMax:   t.ImpulseMax,
		},
		Contributors: ContributorsConfig{
			RepoDir:    ".",
			GitTimeout: 5 * time.Second,
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: %s not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv loads an optional .env file, then applies SHOWCASE_* overrides.
func (c *Config) ApplyEnv(envFiles ...string) error {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}

	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Showcase.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvRepoDir); ok {
		c.Contributors.RepoDir = v
	}
	if v, ok := os.LookupEnv(EnvIntervalSecs); ok {
		secs, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvIntervalSecs, err)
		}
		c.Showcase.IntervalSecs = secs
	}
	if v, ok := os.LookupEnv(EnvDisableGit); ok {
		off, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDisableGit, err)
		}
		c.Contributors.DisableGit = off
	}
	return c.Validate()
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window tps must be positive, got %d", c.Window.TPS)
	}
	s := c.Showcase
	if s.IntervalSecs <= 0 {
		return fmt.Errorf("interval_secs must be positive, got %.2f", s.IntervalSecs)
	}
	if s.SpriteSize <= 0 {
		return fmt.Errorf("sprite_size must be positive, got %.2f", s.SpriteSize)
	}
	if s.ImpulseMin >= s.ImpulseMax {
		return fmt.Errorf("impulse range invalid: min(%.1f) >= max(%.1f)", s.ImpulseMin, s.ImpulseMax)
	}
	if c.Contributors.GitTimeout < 0 {
		return fmt.Errorf("git_timeout must not be negative, got %s", c.Contributors.GitTimeout)
	}
	return nil
}

// Tuning maps the showcase section onto simulation parameters.
func (c *Config) Tuning() showcase.Tuning {
	return showcase.Tuning{
		Gravity:    c.Showcase.Gravity,
		SpriteSize: c.Showcase.SpriteSize,
		ImpulseMin: c.Showcase.ImpulseMin,
		ImpulseMax: c.Showcase.ImpulseMax,
		Interval:   c.Showcase.IntervalSecs,
	}
}

// Seed returns the configured seed, or one derived from the clock.
func (c *Config) Seed() int64 {
	if c.Showcase.Seed != 0 {
		return c.Showcase.Seed
	}
	return time.Now().UnixNano()
}

// NameSource returns the live name source, or nil when git is disabled.
func (c *Config) NameSource() contributors.Source {
	if c.Contributors.DisableGit {
		return nil
	}
	return contributors.GitSource{
		Dir:     c.Contributors.RepoDir,
		Timeout: c.Contributors.GitTimeout,
	}
}
