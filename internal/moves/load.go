package moves

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/domino/internal/model"
)

// RawMovesFile represents the raw structure of a moves file before
// validation. Only the fields below are read; unknown fields are ignored.
type RawMovesFile struct {
	// Name is an optional label for the sequence, echoed in output.
	Name string `json:"name" yaml:"name"`

	// Moves lists the placements in the order they are applied.
	Moves []RawMove `json:"moves" yaml:"moves"`
}

// RawMove is a single entry of a moves file.
//
// Tile uses interface{} because a tile may be written either as a string
// ("1|2", "[1|2]") or as a two-element array ([1, 2]).
type RawMove struct {
	Side string      `json:"side" yaml:"side"`
	Tile interface{} `json:"tile" yaml:"tile"`
}

// LoadMoves reads a moves file and decodes it according to its extension.
//
// .yaml and .yml files are decoded with yaml.v3. .json and .jsonc files are
// stripped of comments and trailing commas with jsonc before decoding with
// encoding/json. Other extensions are rejected.
//
// Returns a CLIError with ExitMovesFileNotFound if the file does not exist.
func LoadMoves(path string) (*RawMovesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitMovesFileNotFound,
				fmt.Sprintf("moves file not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read moves file: %w", err)
	}

	raw, err := DecodeMoves(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse moves file at %s: %w", path, err)
	}
	return raw, nil
}

// DecodeMoves decodes moves file contents. ext selects the format and
// includes the leading dot, as returned by filepath.Ext.
func DecodeMoves(data []byte, ext string) (*RawMovesFile, error) {
	var raw RawMovesFile

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported moves file extension %q (valid: .yaml, .yml, .json, .jsonc)", ext)
	}

	return &raw, nil
}

// ToMoves converts the raw entries into typed moves. It stops at the first
// entry that cannot be converted; use ValidateMoves to collect every problem.
func (f *RawMovesFile) ToMoves() ([]model.Move, error) {
	result := make([]model.Move, 0, len(f.Moves))
	for i, rm := range f.Moves {
		side, err := model.ParseSide(rm.Side)
		if err != nil {
			return nil, fmt.Errorf("moves[%d].side: %w", i, err)
		}
		tile, err := parseRawTile(rm.Tile)
		if err != nil {
			return nil, fmt.Errorf("moves[%d].tile: %w", i, err)
		}
		result = append(result, model.Move{Side: side, Tile: tile})
	}
	return result, nil
}

// parseRawTile normalizes the tile forms a moves file may contain.
//
// encoding/json decodes numbers as float64 when the target is interface{},
// while yaml.v3 decodes them as int, so both are accepted for array faces.
func parseRawTile(v interface{}) (model.Domino, error) {
	switch tile := v.(type) {
	case string:
		return model.ParseDomino(tile)
	case []interface{}:
		if len(tile) != 2 {
			return model.Domino{}, fmt.Errorf("tile array must have exactly 2 faces, got %d", len(tile))
		}
		first, err := toFace(tile[0])
		if err != nil {
			return model.Domino{}, err
		}
		second, err := toFace(tile[1])
		if err != nil {
			return model.Domino{}, err
		}
		return model.NewDomino(first, second), nil
	case nil:
		return model.Domino{}, fmt.Errorf("tile is required")
	default:
		return model.Domino{}, fmt.Errorf("unsupported tile value %v (type %T)", v, v)
	}
}

// toFace converts a decoded array element into a face value.
// Non-integral numbers are rejected.
func toFace(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		if n != float64(int(n)) {
			return 0, fmt.Errorf("face value %v is not an integer", n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("face value %v (type %T) is not an integer", v, v)
	}
}
