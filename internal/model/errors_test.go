package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyBoardError(t *testing.T) {
	err := &EmptyBoardError{End: SideLeft}

	assert.Equal(t, "cannot retrieve the left end of the board because it is empty", err.Error())
	assert.True(t, errors.Is(err, ErrEmptyBoard))
	assert.False(t, errors.Is(err, ErrEndsMismatch))
}

func TestEndsMismatchError(t *testing.T) {
	err := &EndsMismatchError{Side: SideRight, Tile: NewDomino(1, 3), End: 2}

	assert.Equal(t, "[1|3] cannot be added to the right of the board (end is 2): values do not match", err.Error())
	assert.True(t, errors.Is(err, ErrEndsMismatch))
	assert.False(t, errors.Is(err, ErrEmptyBoard))
}

// TestErrors_ThroughWrapping verifies classification survives fmt.Errorf %w.
func TestErrors_ThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("move 3: %w", &EndsMismatchError{Side: SideLeft, Tile: NewDomino(5, 6), End: 1})

	var mismatch *EndsMismatchError
	assert.True(t, errors.As(wrapped, &mismatch))
	assert.Equal(t, SideLeft, mismatch.Side)
	assert.True(t, errors.Is(wrapped, ErrEndsMismatch))
}
