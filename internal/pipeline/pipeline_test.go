package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ExecutesStagesInOrder(t *testing.T) {
	t.Parallel()

	var order []string
	stages := []Stage{
		{Name: "one", Run: func(context.Context) error { order = append(order, "one"); return nil }},
		{Name: "two", Run: func(context.Context) error { order = append(order, "two"); return nil }},
		{Name: "three", Run: func(context.Context) error { order = append(order, "three"); return nil }},
	}

	err := Run(context.Background(), stages, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"one", "two", "three"}, order)
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	var order []string
	boom := errors.New("boom")
	stages := []Stage{
		{Name: "one", Run: func(context.Context) error { order = append(order, "one"); return nil }},
		{Name: "two", Run: func(context.Context) error { return boom }},
		{Name: "three", Run: func(context.Context) error { order = append(order, "three"); return nil }},
	}

	err := Run(context.Background(), stages, nil)
	require.Error(t, err)
	require.Equal(t, []string{"one"}, order, "no stage may run after a failure")

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	require.Equal(t, "two", stageErr.Stage)
	require.Equal(t, 1, stageErr.Code)
	require.ErrorIs(t, err, boom)
}

func TestRun_StageErrorPassesThroughUnchanged(t *testing.T) {
	t.Parallel()

	original := &StageError{Stage: "launch", Code: 42}
	stages := []Stage{
		{Name: "launch", Run: func(context.Context) error { return original }},
	}

	err := Run(context.Background(), stages, nil)
	require.Same(t, original, err.(*StageError), "exit-code-bearing errors must not be rewrapped")
}

func TestRun_NotifiesObserver(t *testing.T) {
	t.Parallel()

	var seen []string
	stages := []Stage{
		{Name: "one", Run: func(context.Context) error { return nil }},
		{Name: "two", Run: func(context.Context) error { return errors.New("stop") }},
		{Name: "three", Run: func(context.Context) error { return nil }},
	}

	_ = Run(context.Background(), stages, func(stage string) { seen = append(seen, stage) })
	require.Equal(t, []string{"one", "two"}, seen)
}

func TestStageError_Messages(t *testing.T) {
	t.Parallel()

	withCause := &StageError{Stage: "environment", Code: 1, Err: errors.New("no python")}
	require.Equal(t, "stage environment failed: no python", withCause.Error())

	silent := &StageError{Stage: "launch", Code: 3}
	require.Equal(t, "stage launch exited with code 3", silent.Error())
}
