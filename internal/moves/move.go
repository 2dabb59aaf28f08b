package moves

import (
	"fmt"
	"strings"

	"github.com/mmr-tortoise/domino/internal/model"
)

// ParseMove converts a "side:tile" argument into a Move.
//
// The side is split off at the first colon, so the tile part may itself use
// any form ParseDomino accepts:
//
//	"left:1|2"   → left  [1|2]
//	"r:[3|1]"    → right [3|1]
//	"right:4:5"  → right [4|5]
func ParseMove(s string) (model.Move, error) {
	sidePart, tilePart, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return model.Move{}, fmt.Errorf("invalid move %q (expected side:tile, e.g. left:1|2)", s)
	}

	side, err := model.ParseSide(sidePart)
	if err != nil {
		return model.Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}

	tile, err := model.ParseDomino(tilePart)
	if err != nil {
		return model.Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}

	return model.Move{Side: side, Tile: tile}, nil
}

// ParseMoves converts a list of "side:tile" arguments. It stops at the
// first malformed argument and reports its position.
func ParseMoves(args []string) ([]model.Move, error) {
	result := make([]model.Move, 0, len(args))
	for i, arg := range args {
		m, err := ParseMove(arg)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		result = append(result, m)
	}
	return result, nil
}
