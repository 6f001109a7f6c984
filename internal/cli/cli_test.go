package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	config, shouldExit, err := Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit, "zero-argument invocation runs with defaults")
	require.Equal(t, "", config.ProfilePath)
	require.Equal(t, "text", config.LogFormat)
	require.Equal(t, "info", config.LogLevel)
	require.Equal(t, 0, config.StatusPort)
	require.False(t, config.DryRun)
}

func TestParse_ProfileSources(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"long flag", []string{"-profile", "a.hcl"}, "a.hcl"},
		{"short flag", []string{"-p", "b.hcl"}, "b.hcl"},
		{"positional", []string{"c.hcl"}, "c.hcl"},
		{"long flag wins over positional", []string{"-profile", "a.hcl", "c.hcl"}, "a.hcl"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			config, _, err := Parse(tt.args, &bytes.Buffer{})
			require.NoError(t, err)
			require.Equal(t, tt.want, config.ProfilePath)
		})
	}
}

func TestParse_InvalidLogFormat(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"-log-format", "xml"}, &bytes.Buffer{})
	require.Error(t, err)
	exitErr, ok := err.(*ExitError)
	require.True(t, ok)
	require.Equal(t, 2, exitErr.Code)
}

func TestParse_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"-log-level", "verbose"}, &bytes.Buffer{})
	require.Error(t, err)
	exitErr, ok := err.(*ExitError)
	require.True(t, ok)
	require.Equal(t, 2, exitErr.Code)
}

func TestParse_InvalidStatusPort(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"-status-port", "99999"}, &bytes.Buffer{})
	require.Error(t, err)
	exitErr, ok := err.(*ExitError)
	require.True(t, ok)
	require.Equal(t, 2, exitErr.Code)
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	_, shouldExit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_UnknownFlag(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"--definitely-not-a-flag"}, &bytes.Buffer{})
	require.Error(t, err)
	exitErr, ok := err.(*ExitError)
	require.True(t, ok)
	require.Equal(t, 2, exitErr.Code)
}
