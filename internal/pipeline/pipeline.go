package pipeline

import (
	"context"
	"fmt"

	"github.com/vk/bootstrapgo/internal/ctxlog"
)

// Stage is a single step of the launch pipeline.
type Stage struct {
	// Name identifies the stage in logs, diagnostics, and the status server.
	Name string

	// Run does the stage's work. A non-nil return aborts the pipeline.
	Run func(ctx context.Context) error
}

// StageError is the failure of one stage, carrying the process exit code
// the launcher should terminate with.
type StageError struct {
	// Stage is the name of the stage that failed.
	Stage string

	// Code is the process exit code to report.
	Code int

	// Err is the underlying cause. A nil Err means the failure already
	// surfaced through the child's own output and the launcher should add
	// no diagnostic of its own (the launch stage propagating an
	// application exit code).
	Err error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("stage %s exited with code %d", e.Stage, e.Code)
	}
	return fmt.Sprintf("stage %s failed: %s", e.Stage, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *StageError) Unwrap() error {
	return e.Err
}

// Observer is notified as stages begin. The status server uses it to
// report pipeline progress.
type Observer func(stage string)

// Run executes the stages in order and stops at the first failure. Stage
// errors pass through unchanged when they already are a *StageError;
// anything else is wrapped with exit code 1.
func Run(ctx context.Context, stages []Stage, observe Observer) error {
	logger := ctxlog.FromContext(ctx)

	for _, stage := range stages {
		if observe != nil {
			observe(stage.Name)
		}
		logger.Debug("Pipeline stage starting.", "stage", stage.Name)

		if err := stage.Run(ctx); err != nil {
			if stageErr, ok := err.(*StageError); ok {
				return stageErr
			}
			return &StageError{Stage: stage.Name, Code: 1, Err: err}
		}
		logger.Debug("Pipeline stage finished.", "stage", stage.Name)
	}
	return nil
}
