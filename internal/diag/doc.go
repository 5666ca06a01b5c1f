// Package diag defines the typed failures produced by the code-review
// pipeline and writes them to the error stream.
//
// Every stage reports problems as a [*Error] (or a [List] of them when a
// compile produces several), tagged with a [Kind]. The CLI boundary maps the
// kind to a process exit code and calls [Write] once.
package diag
