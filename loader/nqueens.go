package loader

import "github.com/csplab/gocsp/csp"

// NewNQueens builds the classic n-queens CSP (spec.md §8 scenario seeds
// 3-4): one variable per column, domain 1..n (the row it occupies), with
// every pair of columns constrained to different rows and different
// diagonals.
func NewNQueens(n int) (*csp.CSP, error) {
	if n < 1 {
		return nil, cspErrorf("NewNQueens", ErrTooFewQueens)
	}
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i + 1
	}
	domains := make([][]int, n)
	for i := range domains {
		domains[i] = rows
	}

	c, err := csp.New(domains, nil, nil)
	if err != nil {
		return nil, cspErrorf("NewNQueens", err)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist := j - i
			pred := csp.PredicateFunc(func(_, _, vi, vj int) bool {
				if vi == vj {
					return false
				}
				return vi-vj != dist && vj-vi != dist
			})
			if err := c.AddConstraint(i, j, pred); err != nil {
				return nil, cspErrorf("NewNQueens", err)
			}
		}
	}
	return c, nil
}
