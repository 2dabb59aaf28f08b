// Package cli — play.go implements the "domino play" command.
//
// The play command builds a board from moves given as positional
// arguments and prints the result. Each invocation starts from an empty
// board; nothing is persisted between runs.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/domino/internal/board"
	"github.com/mmr-tortoise/domino/internal/model"
	"github.com/mmr-tortoise/domino/internal/moves"
)

// buildFlags holds the flags shared by play and replay.
type buildFlags struct {
	// keepGoing skips mismatched moves instead of stopping at the first one.
	keepGoing bool

	// endsOnly prints just the two end values. It fails on an empty board.
	endsOnly bool
}

// register binds the shared flags to cmd.
func (f *buildFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.keepGoing, "keep-going", "k", false, "Skip moves that do not match instead of stopping")
	cmd.Flags().BoolVar(&f.endsOnly, "ends", false, "Print only the left and right end values")
}

// NewPlayCommand creates the "play" cobra command.
func NewPlayCommand() *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "play [side:tile]...",
		Short: "Build a board from moves given on the command line",
		Long: `Build a board from moves given on the command line, applied in order.

A move is "side:tile". The side is left, right, l or r. The tile is a|b,
[a|b], a-b or a:b.

Examples:
  domino play left:1|2 left:1|3
  domino play r:3-4 r:5-4 --keep-going
  domino play left:1|2 --ends --json`,

		Args: cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.OutOrStdout(), args, flags)
		},
	}

	flags.register(cmd)
	return cmd
}

// runPlay parses the arguments and builds the board.
func runPlay(w io.Writer, args []string, flags *buildFlags) error {
	seq, err := moves.ParseMoves(args)
	if err != nil {
		return model.WrapCLIError(model.ExitInvalidMove, "invalid move", err)
	}
	VerboseLog("Parsed %d moves", len(seq))

	return buildAndPrint(w, "", seq, flags)
}

// buildAndPrint replays seq onto an empty board and prints the outcome.
// A move that stops the replay is reported as a CLIError after nothing is
// printed, so scripts see either a full result or an error.
func buildAndPrint(w io.Writer, name string, seq []model.Move, flags *buildFlags) error {
	b := board.New()

	result, err := moves.Replay(b, seq, moves.ReplayOptions{
		ContinueOnMismatch: flags.keepGoing,
		Logger:             logger,
	})
	if err != nil {
		return replayError(err)
	}
	VerboseLog("Applied %d moves, rejected %d", result.Applied, len(result.Rejected))

	if flags.endsOnly {
		left, right, err := b.Ends()
		if err != nil {
			return model.WrapCLIError(model.ExitEmptyBoard, "board has no ends", err)
		}
		printEnds(w, left, right)
		return nil
	}

	printBoardResult(w, name, b, result)
	return nil
}

// replayError translates a replay failure into a CLIError with the exit
// code matching the underlying board error.
func replayError(err error) error {
	var moveErr *moves.MoveError
	if !errors.As(err, &moveErr) {
		return err
	}

	if errors.Is(err, model.ErrEndsMismatch) {
		return model.WrapCLIError(model.ExitEndsMismatch,
			fmt.Sprintf("move %d rejected", moveErr.Index+1), moveErr.Err)
	}
	return model.WrapCLIError(model.ExitInvalidMove,
		fmt.Sprintf("move %d is invalid", moveErr.Index+1), moveErr.Err)
}
