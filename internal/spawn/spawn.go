package spawn

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/vk/bootstrapgo/internal/ctxlog"
)

// Command describes a single subprocess invocation.
type Command struct {
	// Path is the executable to run. It may be a bare name resolved via
	// PATH (the host interpreter) or an absolute path inside the
	// environment directory.
	Path string

	// Args are the arguments passed to the executable, not including Path.
	Args []string

	// Dir is the working directory for the child. The launcher always sets
	// this to the resolved base directory rather than inheriting its own.
	Dir string

	// ExtraEnv holds KEY=VALUE pairs appended to the inherited environment.
	ExtraEnv []string
}

// String renders the command roughly as a shell would see it. Used for
// logging and for dry-run output.
func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// Runner executes commands and reports their exit status. Implementations
// must return the child's exit code when the child ran at all, and a non-nil
// error only when the process could not be started.
type Runner interface {
	Run(ctx context.Context, cmd Command) (int, error)
}

// ExecRunner is the real Runner backed by os/exec. Child stdio is wired
// straight to the launcher's own stdio: the launched application owns the
// terminal once Stage C starts.
type ExecRunner struct{}

// NewExecRunner creates a Runner that forks real processes.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run starts the command and waits for it to finish.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (int, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Spawning subprocess.", "command", cmd.String(), "dir", cmd.Dir)

	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	c.Dir = cmd.Dir
	c.Env = append(os.Environ(), cmd.ExtraEnv...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	err := c.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The child ran and exited non-zero; that is a result, not an error.
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
