// Package cli implements the cobra-based CLI commands for domino.
//
// Each subcommand (play, replay, validate) is defined in its own file within
// this package. This file defines the root command that serves as the
// parent for all subcommands and handles global flags.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/domino/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	jsonOutput bool

	// verbose enables per-move diagnostic output on stderr.
	verbose bool
)

// logger backs VerboseLog and the per-move replay trace. It is
// reconfigured by the root command before any subcommand runs.
var logger = newLogger(os.Stderr, false)

// Build metadata, injected from the main package.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
//
// The root command itself does not perform any action. It only provides
// help text and global flags.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "domino",
		Short: "Build a domino board from a sequence of moves",
		Long: `domino places tiles on a single board, end to end, where touching faces
must carry equal values.

Each move names a side and a tile, e.g. "left:1|2". A tile offered to an
end is turned so its matching face points inward; a tile matching neither
face is rejected and the board is left unchanged.`,

		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(cmd.ErrOrStderr(), verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewPlayCommand())
	rootCmd.AddCommand(NewReplayCommand())
	rootCmd.AddCommand(NewValidateCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
//
// CLIError values carry their own exit codes; other errors are classified
// with exitCodeFor before falling back to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(exitCodeFor(err)))
	}
}

// exitCodeFor maps domain errors that reach Execute unwrapped to exit codes.
func exitCodeFor(err error) model.ExitCode {
	switch {
	case errors.Is(err, model.ErrEndsMismatch):
		return model.ExitEndsMismatch
	case errors.Is(err, model.ErrEmptyBoard):
		return model.ExitEmptyBoard
	default:
		return model.ExitGeneralError
	}
}

// printError outputs an error message on stderr in the format selected by
// the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}

// newLogger builds the stderr logger. Debug entries are only emitted in
// verbose mode.
func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.WarnLevel)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// IsJSONOutput returns whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}
