package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/bootstrapgo/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("bootstrapgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
bootstrapgo - Bootstraps a Python virtual environment and launches an application.

With no arguments it uses the conventional layout relative to the current
directory: a "venv" environment, a "requirements.txt" manifest, and an
"app/main.py" entry point. A launch profile overrides any of those.

Usage:
  bootstrapgo [options] [PROFILE_PATH]

Arguments:
  PROFILE_PATH
    Path to a single .hcl launch profile or a directory containing them.

Options:
`)
		flagSet.PrintDefaults()
	}

	profileFlag := flagSet.String("profile", "", "Path to the launch profile file or directory.")
	pFlag := flagSet.String("p", "", "Path to the launch profile file or directory (shorthand).")
	baseDirFlag := flagSet.String("base-dir", "", "Base directory for relative paths. Defaults to the profile's directory, else the current directory.")
	statusPortFlag := flagSet.Int("status-port", 0, "Port for the HTTP status server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Print the resolved commands without running them.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	profile := ""
	if *profileFlag != "" {
		profile = *profileFlag
	} else if *pFlag != "" {
		profile = *pFlag
	} else if flagSet.NArg() > 0 {
		profile = flagSet.Arg(0)
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		ProfilePath: profile,
		BaseDir:     *baseDirFlag,
		StatusPort:  *statusPortFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		DryRun:      *dryRunFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
