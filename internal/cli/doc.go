// Package cli wires together the Cobra command for the code-review binary.
//
// It binds the flags, sets up logging, resolves the configuration, runs the
// review pipeline and writes the prompt. [Run] is the single place where
// failures are reported: every error is written to the error stream and
// mapped to one of the exit codes.
package cli
