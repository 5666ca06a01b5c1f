// Package output emits the compiled review prompt.
//
// [WriteArtifact] writes to a named file, created or truncated, or to the
// standard output stream when no path is configured. Failures are reported
// as output diagnostics naming the destination.
package output
