// Package board implements a single domino board: an ordered chain of
// tiles placed end to end where adjoining faces carry equal values.
//
// A Board grows from either end. Each insertion compares the offered tile
// against the outward-facing value of that end and, when one face matches,
// stores the tile oriented so the matching face points inward. Tiles that
// match neither face are rejected and the board is left unchanged.
//
// Board performs no internal locking. Hosts that share a Board between
// goroutines must serialize calls themselves.
package board
