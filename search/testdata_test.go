package search_test

import (
	"testing"

	"github.com/csplab/gocsp/csp"
	"github.com/stretchr/testify/require"
)

// triangleCSP builds a K3 graph-coloring instance with the given number
// of colors (spec §8 scenario seeds 1-2).
func triangleCSP(t *testing.T, colors int) *csp.CSP {
	t.Helper()
	domain := make([]int, colors)
	for i := range domain {
		domain[i] = i
	}
	domains := [][]int{domain, domain, domain}
	constraints := []csp.Constraint{
		{I: 0, J: 1, Pred: csp.NotEqual},
		{I: 1, J: 2, Pred: csp.NotEqual},
		{I: 0, J: 2, Pred: csp.NotEqual},
	}
	c, err := csp.New(domains, constraints, nil)
	require.NoError(t, err)
	return c
}

// nQueensCSP builds the n-queens instance (spec §8 scenario seeds 3-4):
// variables q0..q(n-1) each ranging over rows 1..n, with pairwise
// not-same-row and not-same-diagonal constraints.
func nQueensCSP(t *testing.T, n int) *csp.CSP {
	t.Helper()
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i + 1
	}
	domains := make([][]int, n)
	for i := range domains {
		domains[i] = rows
	}
	var constraints []csp.Constraint
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist := j - i
			constraints = append(constraints, csp.Constraint{
				I: i, J: j,
				Pred: csp.PredicateFunc(func(_, _, vi, vj int) bool {
					if vi == vj {
						return false
					}
					if vi-vj == dist || vj-vi == dist {
						return false
					}
					return true
				}),
			})
		}
	}
	c, err := csp.New(domains, constraints, nil)
	require.NoError(t, err)
	return c
}

// validNQueens reports whether assignment (1-based rows keyed by label
// "0".."n-1") is a valid n-queens solution.
func validNQueens(assignment map[string]int, n int) bool {
	if len(assignment) != n {
		return false
	}
	rows := make([]int, n)
	for i := 0; i < n; i++ {
		v, ok := assignment[labelOf(i)]
		if !ok {
			return false
		}
		rows[i] = v
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rows[i] == rows[j] {
				return false
			}
			dist := j - i
			if rows[i]-rows[j] == dist || rows[j]-rows[i] == dist {
				return false
			}
		}
	}
	return true
}

func labelOf(i int) string {
	return [...]string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}[i]
}
