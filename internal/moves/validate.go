// validate.go provides structural checks for moves files.
//
// Validation never touches a board: it only confirms that every entry can be
// converted into a Move. Whether a move fits the board depends on the moves
// before it and is only known during replay.
package moves

import (
	"fmt"

	"github.com/mmr-tortoise/domino/internal/model"
)

// ValidationError represents a single problem found in a moves file.
type ValidationError struct {
	// Field is the path of the offending value (e.g., "moves[2].tile").
	Field string

	// Message describes what's wrong with the value.
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("moves file validation error: %s: %s", e.Field, e.Message)
}

// ValidateMoves performs structural checks on a parsed moves file and
// returns every problem found (empty list = valid file).
//
// Checks performed:
//   - The file contains at least one move
//   - Each side is "left" or "right" (or a shorthand)
//   - Each tile is a recognized string form or a two-element integer array
func ValidateMoves(raw *RawMovesFile) []ValidationError {
	var errs []ValidationError

	if len(raw.Moves) == 0 {
		errs = append(errs, ValidationError{
			Field:   "moves",
			Message: "at least one move is required",
		})
	}

	for i, rm := range raw.Moves {
		if _, err := model.ParseSide(rm.Side); err != nil {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("moves[%d].side", i),
				Message: err.Error(),
			})
		}
		if _, err := parseRawTile(rm.Tile); err != nil {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("moves[%d].tile", i),
				Message: err.Error(),
			})
		}
	}

	return errs
}
