// Package csp: errors.go — sentinel errors for CSP construction and access.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context via fmt.Errorf("%s: %w", ...).
package csp

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex indicates a variable index outside [0, n) was used to
// construct a constraint or was otherwise referenced.
var ErrInvalidIndex = errors.New("csp: variable index out of range")

// ErrSelfLoop indicates a constraint was added between a variable and itself.
var ErrSelfLoop = errors.New("csp: constraint endpoints must differ")

// ErrEmptyDomain indicates a variable was constructed with zero candidate
// values, making the CSP trivially unsatisfiable before any search begins.
var ErrEmptyDomain = errors.New("csp: domain is empty")

// ErrDomainCountMismatch indicates the number of supplied domains does not
// match the number of supplied variables.
var ErrDomainCountMismatch = errors.New("csp: domain count does not match variable count")

// ErrUnassigned indicates a value was requested for a variable that has no
// assignment in the given state.
var ErrUnassigned = errors.New("csp: variable is not assigned")

// cspErrorf wraps an underlying sentinel with the calling function's name,
// preserving errors.Is compatibility via %w.
func cspErrorf(fn string, err error) error {
	return fmt.Errorf("%s: %w", fn, err)
}
