package config

import "context"

// Loader is the interface for a format-specific profile loader.
type Loader interface {
	// Load reads profile files from the given paths, merges them over the
	// defaults, and returns the resulting profile. Relative values inside
	// the profile are left untouched; resolution against baseDir happens
	// when the launch plan is built.
	Load(ctx context.Context, baseDir string, paths ...string) (*Profile, error)
}
