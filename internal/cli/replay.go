// Package cli — replay.go implements the "domino replay" command.
//
// The replay command loads a moves file (YAML or JSONC), validates it, and
// builds a board from its moves.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/domino/internal/model"
	"github.com/mmr-tortoise/domino/internal/moves"
)

// NewReplayCommand creates the "replay" cobra command.
func NewReplayCommand() *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "replay <moves-file>",
		Short: "Build a board from a moves file",
		Long: `Build a board from the moves listed in a YAML or JSONC file.

The file has an optional name and a list of moves:

  name: opening
  moves:
    - side: left
      tile: "1|2"
    - side: right
      tile: [2, 5]

Examples:
  domino replay game.yaml
  domino replay game.jsonc --keep-going --json`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := moves.LoadMoves(args[0])
			if err != nil {
				return err
			}
			VerboseLog("Loaded %d moves from %s", len(raw.Moves), args[0])

			if errs := moves.ValidateMoves(raw); len(errs) > 0 {
				return model.NewCLIError(model.ExitInvalidMove, formatValidationErrors(errs))
			}

			seq, err := raw.ToMoves()
			if err != nil {
				return model.WrapCLIError(model.ExitInvalidMove, "invalid move", err)
			}

			return buildAndPrint(cmd.OutOrStdout(), raw.Name, seq, flags)
		},
	}

	flags.register(cmd)
	return cmd
}

// formatValidationErrors joins validation problems into a single message,
// one problem per line after the summary.
func formatValidationErrors(errs []moves.ValidationError) string {
	lines := make([]string, 0, len(errs)+1)
	lines = append(lines, fmt.Sprintf("moves file has %d problem(s)", len(errs)))
	for _, e := range errs {
		lines = append(lines, fmt.Sprintf("  %s: %s", e.Field, e.Message))
	}
	return strings.Join(lines, "\n")
}
