package app

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// statusHandler reports which pipeline stage is currently running. Useful
// when the launcher sits in front of a long dependency install and a
// supervisor wants to know it is not stuck.
func (a *App) statusHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Status endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"stage": a.stage.Load().(string),
	})
}

// healthHandler answers liveness probes.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// startStatusServer runs the status HTTP server in the background. It
// lives exactly as long as the launcher process and is not shut down
// gracefully; Stage C usually replaces the interesting part of its
// lifetime anyway.
func (a *App) startStatusServer(port int) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)
	mux.HandleFunc("/status", a.statusHandler)

	addr := fmt.Sprintf(":%d", port)

	go func() {
		a.logger.Info("Status server starting.", "address", fmt.Sprintf("http://localhost%s/status", addr))
		if err := http.ListenAndServe(addr, mux); err != nil {
			a.logger.Error("Status server failed.", "error", err)
		}
	}()
}
