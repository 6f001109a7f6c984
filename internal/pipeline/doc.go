// Package pipeline runs an ordered list of named stages with fail-fast
// semantics. The launcher's whole control flow is one linear pass through
// this package: the first stage error stops the run, no stage is retried,
// and nothing created by an earlier stage is rolled back.
package pipeline
