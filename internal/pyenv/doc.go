// Package pyenv models the virtual environment the launcher manages: the
// marker check that decides whether provisioning already happened, the
// platform-specific interpreter location, and the construction of the
// three subprocess commands (provision, install, launch).
//
// The package builds commands but never runs them; execution belongs to
// the spawn package so the pipeline stays testable without real processes.
package pyenv
