package app

import (
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/vk/bootstrapgo/internal/config"
	"github.com/vk/bootstrapgo/internal/manifest"
	"github.com/vk/bootstrapgo/internal/spawn"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ProfilePath is a launch profile file or a directory of them. Empty
	// means built-in defaults only.
	ProfilePath string

	// BaseDir anchors every relative path in the profile. Empty means
	// "derive from the profile location, else the current directory".
	BaseDir string

	// StatusPort is the port for the HTTP status endpoint; 0 disables it.
	StatusPort int

	LogFormat string
	LogLevel  string

	// DryRun prints the resolved commands instead of spawning them.
	DryRun bool
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.StatusPort < 0 || cfg.StatusPort > 65535 {
		return nil, fmt.Errorf("invalid status port: %d", cfg.StatusPort)
	}
	return &cfg, nil
}

// App encapsulates the launcher's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loader  config.Loader
	spawner spawn.Runner
	fetcher manifest.Fetcher

	// stage holds the name of the currently running pipeline stage, for
	// the status server.
	stage atomic.Value
}

// Option overrides one of the App's external collaborators. Tests use
// these to substitute fakes for the process spawner and manifest fetcher.
type Option func(*App)

// WithSpawner replaces the subprocess runner.
func WithSpawner(r spawn.Runner) Option {
	return func(a *App) { a.spawner = r }
}

// WithFetcher replaces the remote manifest fetcher.
func WithFetcher(f manifest.Fetcher) Option {
	return func(a *App) { a.fetcher = f }
}

// NewApp is the constructor for the launcher. It returns a fully
// initialized App instance with its own isolated logger.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, opts ...Option) *App {
	a := &App{
		outW:    outW,
		logger:  newLogger(appConfig.LogLevel, appConfig.LogFormat, outW),
		config:  appConfig,
		loader:  loader,
		spawner: spawn.NewExecRunner(),
		fetcher: manifest.NewHTTPFetcher(),
	}
	a.stage.Store("idle")

	for _, opt := range opts {
		opt(a)
	}
	a.logger.Debug("Launcher configured.", "profile", appConfig.ProfilePath, "dry_run", appConfig.DryRun)
	return a
}
