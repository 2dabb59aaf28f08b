package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification. The typed errors below match
// these through errors.Is, so callers that do not need the details can
// compare against the sentinel.
var (
	ErrEmptyBoard   = errors.New("board is empty")
	ErrEndsMismatch = errors.New("values do not match")
)

// EmptyBoardError is returned when an end of a board with no tiles is queried.
// A board never fabricates a default end value.
type EmptyBoardError struct {
	// End is the side that was queried.
	End Side
}

// Error implements the error interface for EmptyBoardError.
func (e *EmptyBoardError) Error() string {
	return fmt.Sprintf("cannot retrieve the %s end of the board because it is empty", e.End)
}

// Is reports whether target is ErrEmptyBoard.
func (e *EmptyBoardError) Is(target error) bool {
	return target == ErrEmptyBoard
}

// EndsMismatchError is returned when a tile offered to one end of a board
// has no face equal to that end's value. The board is left unchanged.
type EndsMismatchError struct {
	// Side is the end the tile was offered to.
	Side Side

	// Tile is the rejected tile, in the orientation the caller supplied.
	Tile Domino

	// End is the outward-facing value of that end at the time of the attempt.
	End int
}

// Error implements the error interface for EndsMismatchError.
func (e *EndsMismatchError) Error() string {
	return fmt.Sprintf("%s cannot be added to the %s of the board (end is %d): %v",
		e.Tile, e.Side, e.End, ErrEndsMismatch)
}

// Is reports whether target is ErrEndsMismatch.
func (e *EndsMismatchError) Is(target error) bool {
	return target == ErrEndsMismatch
}
