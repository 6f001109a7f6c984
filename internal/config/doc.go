// Package config defines the format-agnostic launch profile model for the
// application, along with the Loader interface for reading profiles from
// various sources. The profile is the single source of truth for the
// pipeline: concrete implementations, such as the HCL one, live in
// separate packages.
package config
