// Package loader builds *csp.CSP instances from the scenario seeds of
// spec.md §6/§8: DIMACS graph-coloring files, digit-grid Sudoku puzzles,
// and the generated n-queens family. One file per instance shape,
// mirroring builder/impl_*.go's one-constructor-per-topology layout;
// sentinels live together here as builder/errors.go does.
package loader

import "errors"

// ErrMalformedHeader indicates a DIMACS "p edge N M" header line is
// missing or cannot be parsed.
var ErrMalformedHeader = errors.New("loader: malformed DIMACS header")

// ErrMalformedEdge indicates an "e u v" line could not be parsed, or
// referenced a vertex outside [1, N].
var ErrMalformedEdge = errors.New("loader: malformed edge line")

// ErrTooFewColors indicates colors < 1.
var ErrTooFewColors = errors.New("loader: colors must be >= 1")

// ErrNotSquareGrid indicates a Sudoku grid whose edge length has no
// integer square root, so it cannot be partitioned into boxes.
var ErrNotSquareGrid = errors.New("loader: grid edge is not a perfect square")

// ErrMalformedGrid indicates a Sudoku grid row with the wrong cell count,
// a cell that fails to parse as a digit, or a digit outside [0, gridEdge].
var ErrMalformedGrid = errors.New("loader: malformed digit grid")

// ErrTooFewQueens indicates n < 1 for NewNQueens.
var ErrTooFewQueens = errors.New("loader: n must be >= 1")
