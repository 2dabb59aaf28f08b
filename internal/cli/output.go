// Package cli — output.go renders board results as text or JSON.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mmr-tortoise/domino/internal/board"
	"github.com/mmr-tortoise/domino/internal/moves"
)

// boardJSON is the JSON output structure for play and replay.
// The end fields are omitted when the board is empty.
type boardJSON struct {
	Name     string          `json:"name,omitempty"`
	Board    string          `json:"board"`
	Tiles    [][2]int        `json:"tiles"`
	LeftEnd  *int            `json:"leftEnd,omitempty"`
	RightEnd *int            `json:"rightEnd,omitempty"`
	Length   int             `json:"length"`
	Rejected []rejectionJSON `json:"rejected"`
}

type rejectionJSON struct {
	Move   int    `json:"move"`
	Side   string `json:"side"`
	Tile   string `json:"tile"`
	Reason string `json:"reason"`
}

// printBoardResult outputs the board in the format selected by --json.
func printBoardResult(w io.Writer, name string, b *board.Board, result *moves.ReplayResult) {
	if IsJSONOutput() {
		printBoardResultJSON(w, name, b, result)
	} else {
		printBoardResultText(w, name, b, result)
	}
}

func printBoardResultJSON(w io.Writer, name string, b *board.Board, result *moves.ReplayResult) {
	out := boardJSON{
		Name:   name,
		Board:  b.String(),
		Tiles:  make([][2]int, 0, b.Len()),
		Length: b.Len(),
		// Empty slice so the JSON shows [] instead of null.
		Rejected: make([]rejectionJSON, 0, len(result.Rejected)),
	}

	for _, d := range b.Tiles() {
		out.Tiles = append(out.Tiles, [2]int{d.First, d.Second})
	}
	if left, right, err := b.Ends(); err == nil {
		out.LeftEnd = &left
		out.RightEnd = &right
	}
	for _, r := range result.Rejected {
		out.Rejected = append(out.Rejected, rejectionJSON{
			Move:   r.Index + 1,
			Side:   r.Move.Side.String(),
			Tile:   r.Move.Tile.String(),
			Reason: r.Err.Error(),
		})
	}

	data, _ := json.MarshalIndent(out, "", "  ")
	fmt.Fprintln(w, string(data))
}

// printBoardResultText prints the board as aligned label/value lines:
//
//	Board:     [3|1][1|2]
//	Left end:  3
//	Right end: 2
//	Length:    2
func printBoardResultText(w io.Writer, name string, b *board.Board, result *moves.ReplayResult) {
	if name != "" {
		fmt.Fprintf(w, "%-10s %s\n", "Name:", name)
	}

	left, right, err := b.Ends()
	if err != nil {
		fmt.Fprintf(w, "%-10s %s\n", "Board:", "(empty)")
		fmt.Fprintf(w, "%-10s %s\n", "Left end:", "-")
		fmt.Fprintf(w, "%-10s %s\n", "Right end:", "-")
	} else {
		fmt.Fprintf(w, "%-10s %s\n", "Board:", b.String())
		fmt.Fprintf(w, "%-10s %d\n", "Left end:", left)
		fmt.Fprintf(w, "%-10s %d\n", "Right end:", right)
	}
	fmt.Fprintf(w, "%-10s %d\n", "Length:", b.Len())

	for _, r := range result.Rejected {
		fmt.Fprintf(w, "%-10s move %d %s: %v\n", "Rejected:", r.Index+1, r.Move, r.Err)
	}
}

// printEnds outputs just the two end values.
func printEnds(w io.Writer, left, right int) {
	if IsJSONOutput() {
		data, _ := json.Marshal(map[string]int{"leftEnd": left, "rightEnd": right})
		fmt.Fprintln(w, string(data))
		return
	}
	fmt.Fprintf(w, "%d %d\n", left, right)
}
