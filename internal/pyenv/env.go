package pyenv

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/vk/bootstrapgo/internal/config"
	"github.com/vk/bootstrapgo/internal/fsutil"
)

// Env binds a profile's environment settings to a resolved base directory.
// All paths it produces are absolute as long as baseDir is.
type Env struct {
	baseDir string
	cfg     config.Environment
}

// New creates an Env for the given base directory and environment settings.
func New(baseDir string, cfg config.Environment) *Env {
	return &Env{baseDir: baseDir, cfg: cfg}
}

// BaseDir returns the directory the environment was resolved against.
func (e *Env) BaseDir() string {
	return e.baseDir
}

// Root returns the environment directory.
func (e *Env) Root() string {
	return fsutil.ResolveUnder(e.baseDir, e.cfg.Dir)
}

// Interpreter returns the path of the environment's own interpreter: the
// environment marker. Its existence means the environment is provisioned.
func (e *Env) Interpreter() string {
	return filepath.Join(e.Root(), interpreterRel(runtime.GOOS))
}

// Provisioned reports whether the environment marker exists. Nothing else
// about the environment is inspected; a present interpreter is trusted.
func (e *Env) Provisioned() bool {
	info, err := os.Stat(e.Interpreter())
	return err == nil && info.Mode().IsRegular()
}

// interpreterRel is the marker's sub-path inside the environment
// directory for the given GOOS.
func interpreterRel(goos string) string {
	if goos == "windows" {
		return filepath.Join("Scripts", "python.exe")
	}
	return filepath.Join("bin", "python")
}
