package pyenv

import (
	"sort"

	"github.com/vk/bootstrapgo/internal/config"
	"github.com/vk/bootstrapgo/internal/fsutil"
	"github.com/vk/bootstrapgo/internal/spawn"
)

// CreateCommand builds the provisioning invocation: the host interpreter
// with the configured argv prefix, the optional prompt, and the
// environment directory appended last.
func (e *Env) CreateCommand() spawn.Command {
	args := append([]string{}, e.cfg.CreateArgs...)
	if e.cfg.Prompt != "" {
		args = append(args, "--prompt", e.cfg.Prompt)
	}
	args = append(args, e.Root())

	return spawn.Command{
		Path: e.cfg.Python,
		Args: args,
		Dir:  e.baseDir,
	}
}

// InstallCommand builds the installer invocation. Going through the
// environment's interpreter ("-m pip") guarantees packages land in the
// environment regardless of what the ambient PATH points at, and
// "--upgrade" gives every listed package install-or-upgrade semantics.
func (e *Env) InstallCommand(manifestPath string) spawn.Command {
	return spawn.Command{
		Path: e.Interpreter(),
		Args: []string{"-m", "pip", "install", "--upgrade", "-r", fsutil.ResolveUnder(e.baseDir, manifestPath)},
		Dir:  e.baseDir,
	}
}

// LaunchCommand builds the final invocation: the environment's interpreter
// against the application entry point.
func (e *Env) LaunchCommand(app config.Entrypoint) spawn.Command {
	args := append([]string{fsutil.ResolveUnder(e.baseDir, app.Path)}, app.Args...)

	var extraEnv []string
	for name, value := range app.Env {
		extraEnv = append(extraEnv, name+"="+value)
	}
	// Map iteration order is random; keep the child environment stable.
	sort.Strings(extraEnv)

	return spawn.Command{
		Path:     e.Interpreter(),
		Args:     args,
		Dir:      e.baseDir,
		ExtraEnv: extraEnv,
	}
}
