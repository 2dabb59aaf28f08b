package moves

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/domino/internal/model"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		input    string
		expected model.Move
		hasError bool
	}{
		{"left:1|2", model.Move{Side: model.SideLeft, Tile: model.NewDomino(1, 2)}, false},
		{"right:[3|1]", model.Move{Side: model.SideRight, Tile: model.NewDomino(3, 1)}, false},
		{"r:4:5", model.Move{Side: model.SideRight, Tile: model.NewDomino(4, 5)}, false},
		{"L:0-6", model.Move{Side: model.SideLeft, Tile: model.NewDomino(0, 6)}, false},
		{"1|2", model.Move{}, true},        // no side
		{"middle:1|2", model.Move{}, true}, // unknown side
		{"left:", model.Move{}, true},      // no tile
		{"left:x|y", model.Move{}, true},   // bad faces
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := ParseMove(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

// TestParseMoves verifies order is preserved and the failing position is
// reported with a one-based index.
func TestParseMoves(t *testing.T) {
	seq, err := ParseMoves([]string{"left:1|2", "left:1|3"})
	require.NoError(t, err)
	require.Len(t, seq, 2)
	assert.Equal(t, model.NewDomino(1, 3), seq[1].Tile)

	_, err = ParseMoves([]string{"left:1|2", "bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "move 2")

	seq, err = ParseMoves(nil)
	require.NoError(t, err)
	assert.Empty(t, seq)
}
