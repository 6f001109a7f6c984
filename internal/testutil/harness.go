package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/bootstrapgo/internal/app"
	"github.com/vk/bootstrapgo/internal/config"
	"github.com/vk/bootstrapgo/internal/hclprofile"
	"github.com/vk/bootstrapgo/internal/pyenv"
)

// HarnessResult holds the outcomes of a launcher test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	BaseDir   string
	Spawner   *Spawner
}

// RunLauncherTest provides a standardized harness for exercising the full
// launcher against a temporary directory. The files map seeds the
// directory (relative paths, subdirectories created as needed); any .hcl
// file in it is picked up as a launch profile. All subprocesses go through
// the provided scripted Spawner.
func RunLauncherTest(t *testing.T, files map[string]string, spawner *Spawner) *HarnessResult {
	t.Helper()
	return RunLauncherTestWithConfig(t, files, spawner, nil)
}

// RunLauncherTestWithConfig is RunLauncherTest with a hook to adjust the
// launcher configuration before the run starts and extra app options to
// swap further collaborators.
func RunLauncherTestWithConfig(t *testing.T, files map[string]string, spawner *Spawner, adjust func(*app.Config), opts ...app.Option) *HarnessResult {
	t.Helper()

	baseDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(baseDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	cfg, err := app.NewConfig(app.Config{
		ProfilePath: baseDir,
		BaseDir:     baseDir,
		LogFormat:   "text",
		LogLevel:    "debug",
	})
	require.NoError(t, err)
	if adjust != nil {
		adjust(cfg)
	}

	logBuffer := &SafeBuffer{}
	launcher := app.NewApp(logBuffer, cfg, hclprofile.NewLoader(), append([]app.Option{app.WithSpawner(spawner)}, opts...)...)
	runErr := launcher.Run(context.Background())

	if os.Getenv("BGO_TEST_LOGS") == "true" {
		t.Logf("--- Full log output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		BaseDir:   baseDir,
		Spawner:   spawner,
	}
}

// ProvisionMarker creates the environment marker (the interpreter file at
// its platform sub-path) under baseDir, simulating an already-provisioned
// default environment.
func ProvisionMarker(t *testing.T, baseDir string) string {
	t.Helper()

	interpreter := pyenv.New(baseDir, config.Default().Environment).Interpreter()
	require.NoError(t, os.MkdirAll(filepath.Dir(interpreter), 0o755))
	require.NoError(t, os.WriteFile(interpreter, []byte("#!/bin/sh\n"), 0o755))
	return interpreter
}
