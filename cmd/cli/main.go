package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/bootstrapgo/internal/app"
	"github.com/vk/bootstrapgo/internal/cli"
	"github.com/vk/bootstrapgo/internal/hclprofile"
	"github.com/vk/bootstrapgo/internal/pipeline"
)

// main is the entrypoint for the bootstrapgo launcher.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}

		var stageErr *pipeline.StageError
		if errors.As(err, &stageErr) {
			// A nil cause means the launched application already reported
			// its own failure; only its exit code passes through.
			if stageErr.Err != nil {
				fmt.Fprintln(os.Stderr, stageErr.Error())
			}
			os.Exit(stageErr.Code)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// Profile loading panics are turned into a clean error for the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	loader := hclprofile.NewLoader()
	launcher := app.NewApp(outW, appConfig, loader)

	return launcher.Run(context.Background())
}
