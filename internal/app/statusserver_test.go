package app

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/bootstrapgo/internal/hclprofile"
)

func TestStatusHandler_ReportsCurrentStage(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{})
	require.NoError(t, err)
	a := NewApp(io.Discard, cfg, hclprofile.NewLoader())

	rec := httptest.NewRecorder()
	a.statusHandler(rec, httptest.NewRequest("GET", "/status", nil))
	require.Equal(t, 200, rec.Code)
	require.JSONEq(t, `{"stage":"idle"}`, rec.Body.String())

	a.stage.Store("dependencies")
	rec = httptest.NewRecorder()
	a.statusHandler(rec, httptest.NewRequest("GET", "/status", nil))
	require.JSONEq(t, `{"stage":"dependencies"}`, rec.Body.String())
}

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{})
	require.NoError(t, err)
	a := NewApp(io.Discard, cfg, hclprofile.NewLoader())

	rec := httptest.NewRecorder()
	a.healthHandler(rec, httptest.NewRequest("GET", "/health", nil))
	require.Equal(t, 200, rec.Code)
	require.Equal(t, "OK\n", rec.Body.String())
}
