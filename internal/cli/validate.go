// Package cli — validate.go implements the "domino validate" command.
//
// The validate command checks a moves file's structure without building a
// board. Whether each move fits is only known during replay.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/domino/internal/model"
	"github.com/mmr-tortoise/domino/internal/moves"
)

// NewValidateCommand creates the "validate" cobra command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <moves-file>",
		Short: "Check a moves file without building a board",
		Long: `Check that every entry of a moves file has a valid side and tile.

Examples:
  domino validate game.yaml
  domino validate game.jsonc --json`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), args[0])
		},
	}
}

// validationJSON is the JSON output structure for the validate command.
type validationJSON struct {
	File     string                `json:"file"`
	Valid    bool                  `json:"valid"`
	Moves    int                   `json:"moves"`
	Problems []validationErrorJSON `json:"problems"`
}

type validationErrorJSON struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// runValidate loads and validates the file. It prints the report and
// returns a CLIError with ExitInvalidMove when problems were found.
func runValidate(w io.Writer, path string) error {
	raw, err := moves.LoadMoves(path)
	if err != nil {
		return err
	}

	errs := moves.ValidateMoves(raw)
	VerboseLog("Validated %s: %d problem(s)", path, len(errs))

	if IsJSONOutput() {
		out := validationJSON{
			File:     path,
			Valid:    len(errs) == 0,
			Moves:    len(raw.Moves),
			Problems: make([]validationErrorJSON, 0, len(errs)),
		}
		for _, e := range errs {
			out.Problems = append(out.Problems, validationErrorJSON{Field: e.Field, Message: e.Message})
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Fprintln(w, string(data))
	} else if len(errs) == 0 {
		fmt.Fprintf(w, "%s: %d moves, valid\n", path, len(raw.Moves))
	}

	if len(errs) > 0 {
		return model.NewCLIError(model.ExitInvalidMove, formatValidationErrors(errs))
	}
	return nil
}
