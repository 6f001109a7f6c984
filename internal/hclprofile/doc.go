// Package hclprofile is the HCL-specific implementation of the
// config.Loader interface. Profiles are plain HCL files with three
// optional blocks (environment, manifest, app); any value left out falls
// back to the built-in defaults, so an empty file is a valid profile.
package hclprofile
