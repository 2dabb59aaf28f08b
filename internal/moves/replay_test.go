package moves

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/domino/internal/board"
	"github.com/mmr-tortoise/domino/internal/model"
)

func scenarioMoves() []model.Move {
	return []model.Move{
		{Side: model.SideLeft, Tile: model.NewDomino(1, 2)},
		{Side: model.SideRight, Tile: model.NewDomino(1, 3)},
		{Side: model.SideLeft, Tile: model.NewDomino(1, 3)},
	}
}

// TestReplay_StopsAtFirstMismatch verifies the default policy: moves before
// the rejected one stay applied and the error names the move.
func TestReplay_StopsAtFirstMismatch(t *testing.T) {
	b := board.New()

	result, err := Replay(b, scenarioMoves(), ReplayOptions{})
	require.Error(t, err)

	var moveErr *MoveError
	require.True(t, errors.As(err, &moveErr))
	assert.Equal(t, 1, moveErr.Index)
	assert.True(t, errors.Is(err, model.ErrEndsMismatch))
	assert.Contains(t, err.Error(), "move 2 (right:[1|3])")

	assert.Equal(t, 1, result.Applied)
	assert.Equal(t, "[1|2]", b.String())
}

// TestReplay_ContinueOnMismatch verifies rejected moves are recorded and the
// remaining moves still apply.
func TestReplay_ContinueOnMismatch(t *testing.T) {
	b := board.New()

	result, err := Replay(b, scenarioMoves(), ReplayOptions{ContinueOnMismatch: true})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Applied)
	require.Len(t, result.Rejected, 1)
	assert.Equal(t, 1, result.Rejected[0].Index)
	assert.True(t, errors.Is(result.Rejected[0].Err, model.ErrEndsMismatch))

	assert.Equal(t, "[3|1][1|2]", b.String())
	assert.Equal(t, result.Applied, b.Len())
}

// TestReplay_InvalidSideAlwaysStops verifies ContinueOnMismatch only skips
// mismatches, not malformed moves.
func TestReplay_InvalidSideAlwaysStops(t *testing.T) {
	b := board.New()
	seq := []model.Move{
		{Side: model.Side("up"), Tile: model.NewDomino(1, 2)},
		{Side: model.SideLeft, Tile: model.NewDomino(1, 2)},
	}

	result, err := Replay(b, seq, ReplayOptions{ContinueOnMismatch: true})
	require.Error(t, err)
	assert.False(t, errors.Is(err, model.ErrEndsMismatch))
	assert.Equal(t, 0, result.Applied)
	assert.Equal(t, 0, b.Len())
}

// TestReplay_LoadedFixture replays a file end to end.
func TestReplay_LoadedFixture(t *testing.T) {
	raw, err := LoadMoves(testdataPath(t, "chain.jsonc"))
	require.NoError(t, err)
	seq, err := raw.ToMoves()
	require.NoError(t, err)

	b := board.New()
	result, err := Replay(b, seq, ReplayOptions{})
	require.NoError(t, err)

	assert.Equal(t, 4, result.Applied)
	assert.Empty(t, result.Rejected)
	assert.Equal(t, "[1|2][2|3][3|4][4|5]", b.String())
}

// TestReplay_LogsEachMove verifies per-move debug entries carry the move fields.
func TestReplay_LogsEachMove(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	_, err := Replay(board.New(), scenarioMoves(), ReplayOptions{ContinueOnMismatch: true, Logger: logger})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "move applied")
	assert.Contains(t, out, "move rejected, continuing")
	assert.Contains(t, out, "side=right")
	assert.Contains(t, out, "index=1")
}
