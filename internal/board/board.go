package board

import (
	"fmt"
	"strings"

	"github.com/mmr-tortoise/domino/internal/model"
)

// Board is an ordered chain of oriented tiles. Index 0 is the leftmost tile.
//
// For every adjacent pair (t[i], t[i+1]) the board maintains
// t[i].Second == t[i+1].First.
//
// Tiles are kept in two slices so both ends grow in amortized O(1):
// front holds the tiles left of the first insertion point in reverse
// order, back holds the rest in board order. The zero value is an empty
// board ready to use.
type Board struct {
	front []model.Domino
	back  []model.Domino
}

// New creates an empty board.
func New() *Board {
	return &Board{}
}

// Len returns the number of tiles on the board. It never fails.
func (b *Board) Len() int {
	return len(b.front) + len(b.back)
}

// at returns the tile at board index i. The caller guarantees 0 <= i < Len().
func (b *Board) at(i int) model.Domino {
	if i < len(b.front) {
		return b.front[len(b.front)-1-i]
	}
	return b.back[i-len(b.front)]
}

// LeftEnd returns the outward-facing value on the left end of the board.
// Returns an *model.EmptyBoardError if the board has no tiles.
func (b *Board) LeftEnd() (int, error) {
	if b.Len() == 0 {
		return 0, &model.EmptyBoardError{End: model.SideLeft}
	}
	return b.at(0).First, nil
}

// RightEnd returns the outward-facing value on the right end of the board.
// Returns an *model.EmptyBoardError if the board has no tiles.
func (b *Board) RightEnd() (int, error) {
	if b.Len() == 0 {
		return 0, &model.EmptyBoardError{End: model.SideRight}
	}
	return b.at(b.Len() - 1).Second, nil
}

// Ends returns both outward-facing values. Returns an *model.EmptyBoardError
// for the left end if the board has no tiles.
func (b *Board) Ends() (left, right int, err error) {
	if left, err = b.LeftEnd(); err != nil {
		return 0, 0, err
	}
	right, _ = b.RightEnd()
	return left, right, nil
}

// AddLeft places d on the left end of the board.
//
// On an empty board d is inserted in the orientation given. Otherwise the
// first face is checked before the second: if d.First equals the left end
// the inverted tile is inserted, so the new left end is d.Second; if
// d.Second equals the left end d is inserted as is. A tile matching neither
// face yields an *model.EndsMismatchError and the board is not modified.
func (b *Board) AddLeft(d model.Domino) error {
	if b.Len() == 0 {
		b.back = append(b.back, d)
		return nil
	}

	end := b.at(0).First
	switch end {
	case d.First:
		b.front = append(b.front, d.Inverted())
	case d.Second:
		b.front = append(b.front, d)
	default:
		return &model.EndsMismatchError{Side: model.SideLeft, Tile: d, End: end}
	}
	return nil
}

// AddRight places d on the right end of the board.
//
// On an empty board d is appended in the orientation given. Otherwise, if
// d.First equals the right end d is appended as is; if d.Second equals the
// right end the inverted tile is appended, so the new right end is d.First.
// A tile matching neither face yields an *model.EndsMismatchError and the
// board is not modified.
func (b *Board) AddRight(d model.Domino) error {
	if b.Len() == 0 {
		b.back = append(b.back, d)
		return nil
	}

	end := b.at(b.Len() - 1).Second
	switch end {
	case d.First:
		b.back = append(b.back, d)
	case d.Second:
		b.back = append(b.back, d.Inverted())
	default:
		return &model.EndsMismatchError{Side: model.SideRight, Tile: d, End: end}
	}
	return nil
}

// Add places d on the given side of the board.
func (b *Board) Add(side model.Side, d model.Domino) error {
	switch side {
	case model.SideLeft:
		return b.AddLeft(d)
	case model.SideRight:
		return b.AddRight(d)
	default:
		return fmt.Errorf("invalid side: %q (valid: left, right)", side)
	}
}

// Tiles returns a copy of the tiles in board order, left to right.
func (b *Board) Tiles() []model.Domino {
	tiles := make([]model.Domino, 0, b.Len())
	for i := len(b.front) - 1; i >= 0; i-- {
		tiles = append(tiles, b.front[i])
	}
	return append(tiles, b.back...)
}

// String concatenates each tile's "[a|b]" form from left to right with no
// separators. An empty board renders as the empty string.
func (b *Board) String() string {
	var sb strings.Builder
	for i := len(b.front) - 1; i >= 0; i-- {
		sb.WriteString(b.front[i].String())
	}
	for _, d := range b.back {
		sb.WriteString(d.String())
	}
	return sb.String()
}
