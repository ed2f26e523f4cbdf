// Package gocsp is a depth-first solver for finite-domain binary
// constraint satisfaction problems (CSPs).
//
// It brings together:
//
//   - csp/       — the CSP model: variables, domains, binary constraints,
//     and the constraint graph's neighborhood map
//   - heuristic/ — pluggable variable- and value-ordering functions
//   - propagate/ — forward checking and an AC-3 arc-consistency propagator
//   - search/    — chronological backtracking and conflict-directed
//     backjumping engines, built on in-place domain pruning with exact
//     rollback
//   - optimize/  — a dichotomic bound-shrinking driver for optimization
//     problems built on top of the decision engines
//   - loader/    — instance loaders for graph coloring, Sudoku, and n-queens
//
// Domains are mutated in place during search (a per-variable cursor over
// a partitioned array, values swapped to the tail rather than copied) so
// that descending the search tree allocates nothing; every failure path
// restores each domain's cursor and live set before returning (the order
// of values inside a domain may differ afterward).
//
//	go get github.com/csplab/gocsp
package gocsp
