// Package moves handles parsing, loading, validation and replay of domino
// move sequences for the domino CLI.
//
// A move places one tile on one end of a board. Moves come from two
// sources:
//
//   - Command-line arguments in "side:tile" form, e.g. "left:1|2"
//   - Moves files in YAML (.yaml, .yml) or JSON with comments (.json, .jsonc)
//
// JSONC is supported via github.com/tidwall/jsonc, so moves files may carry
// // and /* */ comments and trailing commas. YAML files are decoded with
// gopkg.in/yaml.v3.
//
// Replay applies a move sequence to a board in order and reports which
// moves were rejected.
package moves
