// Package model defines the domain types for the domino CLI.
//
// Domino is the tile value type consumed by the board package. Side and
// Move describe a single placement request as it appears on the command
// line or in a moves file.
package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Domino is a tile with two faces. The faces are ordered: First is the
// face drawn on the left in the "[first|second]" rendering.
//
// Face values are not range checked. Conventional sets use 0-6, but any
// integer is accepted, including negative numbers.
type Domino struct {
	First  int `json:"first" yaml:"first"`
	Second int `json:"second" yaml:"second"`
}

// NewDomino creates a tile with the given faces.
func NewDomino(first, second int) Domino {
	return Domino{First: first, Second: second}
}

// Inverted returns a new tile with the faces swapped.
// The receiver is not modified.
func (d Domino) Inverted() Domino {
	return Domino{First: d.Second, Second: d.First}
}

// IsDouble reports whether both faces carry the same value.
// Inverting a double yields an equal tile.
func (d Domino) IsDouble() bool {
	return d.First == d.Second
}

// Equal reports whether both tiles have the same faces in the same order.
// [1|2] and [2|1] are not equal.
func (d Domino) Equal(other Domino) bool {
	return d.First == other.First && d.Second == other.Second
}

// Matches reports whether either face carries the given value.
func (d Domino) Matches(value int) bool {
	return d.First == value || d.Second == value
}

// String returns the "[first|second]" representation of the tile.
// This method satisfies the fmt.Stringer interface.
func (d Domino) String() string {
	return fmt.Sprintf("[%d|%d]", d.First, d.Second)
}

// dominoRegex matches the accepted textual tile forms:
// "1|2", "[1|2]", "1-2" and "1:2". Faces may be negative.
var dominoRegex = regexp.MustCompile(`^\[?\s*(-?\d+)\s*[|:\-]\s*(-?\d+)\s*\]?$`)

// ParseDomino converts a textual tile such as "[3|1]" or "3|1" into a Domino.
// Returns an error if the text is not a recognized tile form.
func ParseDomino(s string) (Domino, error) {
	m := dominoRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Domino{}, fmt.Errorf("invalid domino %q (expected forms: a|b, [a|b], a-b, a:b)", s)
	}

	// The regex guarantees both groups are integers, so Atoi can only fail
	// on overflow.
	first, err := strconv.Atoi(m[1])
	if err != nil {
		return Domino{}, fmt.Errorf("invalid domino %q: %w", s, err)
	}
	second, err := strconv.Atoi(m[2])
	if err != nil {
		return Domino{}, fmt.Errorf("invalid domino %q: %w", s, err)
	}
	return Domino{First: first, Second: second}, nil
}

// Side identifies one of the two ends of a board.
type Side string

const (
	// SideLeft is the end at index 0 of the board.
	SideLeft Side = "left"

	// SideRight is the end at the last index of the board.
	SideRight Side = "right"
)

// String returns the string representation of Side.
func (s Side) String() string {
	return string(s)
}

// IsValid checks whether the Side value is one of the predefined sides.
func (s Side) IsValid() bool {
	switch s {
	case SideLeft, SideRight:
		return true
	default:
		return false
	}
}

// ParseSide converts a string to a Side. The single-letter forms "l" and
// "r" are accepted as shorthands. Matching is case insensitive.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return SideLeft, nil
	case "right", "r":
		return SideRight, nil
	default:
		return "", fmt.Errorf("invalid side: %q (valid: left, right)", s)
	}
}

// Move is a request to place a tile on one end of a board.
type Move struct {
	Side Side   `json:"side"`
	Tile Domino `json:"tile"`
}

// String returns the "side:[a|b]" form of the move.
func (m Move) String() string {
	return fmt.Sprintf("%s:%s", m.Side, m.Tile)
}

// ExitCode defines the CLI exit codes. Scripts can use these to
// tell a rejected move apart from malformed input.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitMovesFileNotFound indicates the moves file does not exist.
	ExitMovesFileNotFound ExitCode = 2

	// ExitInvalidMove indicates a move could not be parsed or failed
	// structural validation.
	ExitInvalidMove ExitCode = 3

	// ExitEndsMismatch indicates a tile matched neither face of the end
	// it was offered to.
	ExitEndsMismatch ExitCode = 4

	// ExitEmptyBoard indicates an end was queried on a board with no tiles.
	ExitEmptyBoard ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
