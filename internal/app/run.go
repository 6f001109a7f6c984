package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/bootstrapgo/internal/config"
	"github.com/vk/bootstrapgo/internal/ctxlog"
	"github.com/vk/bootstrapgo/internal/fsutil"
	"github.com/vk/bootstrapgo/internal/pipeline"
	"github.com/vk/bootstrapgo/internal/pyenv"
)

// Run executes the launch pipeline: load the profile, resolve the plan
// against the base directory, then ensure-environment, ensure-dependencies,
// launch. Stage failures come back as a *pipeline.StageError carrying the
// process exit code; profile and setup problems as plain wrapped errors.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	baseDir, err := a.resolveBaseDir()
	if err != nil {
		return fmt.Errorf("resolving base directory: %w", err)
	}
	a.logger.Debug("Base directory resolved.", "base_dir", baseDir)

	var profilePaths []string
	if a.config.ProfilePath != "" {
		profilePaths = append(profilePaths, a.config.ProfilePath)
	}
	profile, err := a.loader.Load(ctx, baseDir, profilePaths...)
	if err != nil {
		return fmt.Errorf("loading launch profile: %w", err)
	}

	env := pyenv.New(baseDir, profile.Environment)

	if a.config.StatusPort > 0 {
		a.startStatusServer(a.config.StatusPort)
	}

	if a.config.DryRun {
		return a.printPlan(profile, env, baseDir)
	}

	stages := []pipeline.Stage{
		{Name: "environment", Run: func(ctx context.Context) error {
			return a.ensureEnvironment(ctx, env)
		}},
		{Name: "dependencies", Run: func(ctx context.Context) error {
			return a.ensureDependencies(ctx, env, profile.Manifest, baseDir)
		}},
		{Name: "launch", Run: func(ctx context.Context) error {
			return a.launch(ctx, env, profile.App)
		}},
	}

	err = pipeline.Run(ctx, stages, func(stage string) { a.stage.Store(stage) })
	if err == nil {
		a.stage.Store("done")
		a.logger.Debug("App.Run method finished.")
	}
	return err
}

// resolveBaseDir picks the directory every relative path is anchored to:
// the explicit -base-dir flag, else the profile's own directory, else the
// caller's current directory. The process working directory is never
// rebound; the result is threaded through the plan explicitly.
func (a *App) resolveBaseDir() (string, error) {
	if a.config.BaseDir != "" {
		return filepath.Abs(a.config.BaseDir)
	}
	if a.config.ProfilePath != "" {
		abs, err := filepath.Abs(a.config.ProfilePath)
		if err != nil {
			return "", err
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
		return filepath.Dir(abs), nil
	}
	return os.Getwd()
}

// ensureEnvironment is Stage A. The marker check decides everything: a
// present interpreter means the environment is never touched again.
func (a *App) ensureEnvironment(ctx context.Context, env *pyenv.Env) error {
	if env.Provisioned() {
		a.logger.Debug("Environment already provisioned, skipping creation.", "interpreter", env.Interpreter())
		return nil
	}

	a.logger.Info("Creating virtual environment.", "dir", env.Root())
	code, err := a.spawner.Run(ctx, env.CreateCommand())
	if err != nil {
		return fmt.Errorf("creating environment: %w", err)
	}
	if code != 0 {
		return fmt.Errorf("environment creation exited with code %d", code)
	}
	return nil
}

// ensureDependencies is Stage B: optionally refresh the manifest from its
// remote source, then hand it to the environment's installer.
func (a *App) ensureDependencies(ctx context.Context, env *pyenv.Env, m config.Manifest, baseDir string) error {
	manifestPath := fsutil.ResolveUnder(baseDir, m.Path)

	if m.URL != "" {
		if err := a.fetcher.Fetch(ctx, m.URL, manifestPath); err != nil {
			return err
		}
	}

	a.logger.Info("Installing dependencies.", "manifest", manifestPath)
	code, err := a.spawner.Run(ctx, env.InstallCommand(m.Path))
	if err != nil {
		return fmt.Errorf("installing dependencies: %w", err)
	}
	if code != 0 {
		return fmt.Errorf("dependency installation exited with code %d", code)
	}
	return nil
}

// launch is Stage C. A non-zero application exit code is passed through
// as-is with no launcher diagnostic; the application already reported its
// failure on its own stdio.
func (a *App) launch(ctx context.Context, env *pyenv.Env, entry config.Entrypoint) error {
	a.logger.Info("Starting application.", "entrypoint", fsutil.ResolveUnder(env.BaseDir(), entry.Path))
	code, err := a.spawner.Run(ctx, env.LaunchCommand(entry))
	if err != nil {
		return fmt.Errorf("starting application: %w", err)
	}
	if code != 0 {
		return &pipeline.StageError{Stage: "launch", Code: code}
	}
	return nil
}

// printPlan writes the resolved commands without spawning anything.
func (a *App) printPlan(profile *config.Profile, env *pyenv.Env, baseDir string) error {
	if env.Provisioned() {
		fmt.Fprintf(a.outW, "environment:  (skip, already provisioned: %s)\n", env.Interpreter())
	} else {
		fmt.Fprintf(a.outW, "environment:  %s\n", env.CreateCommand())
	}
	if profile.Manifest.URL != "" {
		fmt.Fprintf(a.outW, "fetch:        %s -> %s\n", profile.Manifest.URL, fsutil.ResolveUnder(baseDir, profile.Manifest.Path))
	}
	fmt.Fprintf(a.outW, "dependencies: %s\n", env.InstallCommand(profile.Manifest.Path))
	fmt.Fprintf(a.outW, "launch:       %s\n", env.LaunchCommand(profile.App))
	return nil
}
