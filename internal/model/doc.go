// Package model defines the value types and error types shared by the
// domino board and the CLI.
//
// This package contains pure data structures with no external dependencies.
// Domino is an immutable value: inversion returns a new tile rather than
// mutating the receiver.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
