package moves

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/mmr-tortoise/domino/internal/board"
	"github.com/mmr-tortoise/domino/internal/model"
)

// ReplayOptions controls how Replay reacts to rejected moves.
type ReplayOptions struct {
	// ContinueOnMismatch records moves rejected with an EndsMismatchError and
	// carries on with the next move instead of stopping.
	ContinueOnMismatch bool

	// Logger receives one debug entry per move. Nil disables logging.
	Logger logrus.FieldLogger
}

// Rejection records a move the board refused.
type Rejection struct {
	// Index is the zero-based position of the move in the sequence.
	Index int

	// Move is the rejected move as supplied.
	Move model.Move

	// Err is the error returned by the board.
	Err error
}

// ReplayResult summarizes a replay.
type ReplayResult struct {
	// Applied is the number of moves the board accepted.
	Applied int

	// Rejected lists moves skipped under ContinueOnMismatch, in order.
	Rejected []Rejection
}

// MoveError wraps the board error for the move that stopped a replay.
type MoveError struct {
	Index int
	Move  model.Move
	Err   error
}

// Error implements the error interface for MoveError.
func (e *MoveError) Error() string {
	return fmt.Sprintf("move %d (%s): %v", e.Index+1, e.Move, e.Err)
}

// Unwrap returns the board error for use with errors.Is/errors.As.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Replay applies moves to b in order.
//
// By default the first rejected move stops the replay and is returned as a
// *MoveError; moves before it stay on the board. With ContinueOnMismatch,
// mismatched moves are collected in the result and the replay goes on.
// A rejected move never changes the board.
func Replay(b *board.Board, seq []model.Move, opts ReplayOptions) (*ReplayResult, error) {
	log := opts.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	result := &ReplayResult{}
	for i, m := range seq {
		entry := log.WithFields(logrus.Fields{
			"index": i,
			"side":  m.Side.String(),
			"tile":  m.Tile.String(),
		})

		if err := b.Add(m.Side, m.Tile); err != nil {
			if opts.ContinueOnMismatch && errors.Is(err, model.ErrEndsMismatch) {
				entry.WithError(err).Debug("move rejected, continuing")
				result.Rejected = append(result.Rejected, Rejection{Index: i, Move: m, Err: err})
				continue
			}
			entry.WithError(err).Debug("move rejected")
			return result, &MoveError{Index: i, Move: m, Err: err}
		}

		result.Applied++
		entry.WithField("board", b.String()).Debug("move applied")
	}

	return result, nil
}
