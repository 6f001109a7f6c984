package fsutil

import "path/filepath"

// ResolveUnder anchors a possibly-relative path to the given base
// directory. Absolute paths are returned unchanged. This is how the
// launcher stays independent of the caller's working directory: every
// relative profile value goes through here exactly once.
func ResolveUnder(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
