package loader

import (
	"bufio"
	"io"
	"math"
	"strings"

	"github.com/csplab/gocsp/csp"
)

// ParseSudoku reads a gridEdge x gridEdge digit grid (one row per line,
// one digit per cell, "0" marking an unknown cell — spec.md §6) and
// builds the CSP: an all-different constraint, expressed as a NotEqual
// edge between every pair of cells in the same row, column, or box (this
// package's binary CSPs have no native all-different primitive, so the
// pairwise expansion original_source/wrappers uses is the only option).
//
// A pre-filled cell's domain collapses to the singleton {digit} rather
// than the full 1..gridEdge range — a detail spec.md's own loader section
// leaves implicit but that original_source's solvers all rely on; without
// it the puzzle's given clues are not actually constraints, only
// suggestions, and the search degenerates into "find any Latin square".
func ParseSudoku(r io.Reader, gridEdge int) (*csp.CSP, error) {
	box := int(math.Sqrt(float64(gridEdge)))
	if box*box != gridEdge {
		return nil, cspErrorf("ParseSudoku", ErrNotSquareGrid)
	}

	grid := make([][]int, gridEdge)
	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() && row < gridEdge {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != gridEdge {
			return nil, cspErrorf("ParseSudoku", ErrMalformedGrid)
		}
		cells := make([]int, gridEdge)
		for i, f := range fields {
			d := 0
			if _, err := parseDigit(f, &d); err != nil || d < 0 || d > gridEdge {
				return nil, cspErrorf("ParseSudoku", ErrMalformedGrid)
			}
			cells[i] = d
		}
		grid[row] = cells
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, cspErrorf("ParseSudoku", err)
	}
	if row != gridEdge {
		return nil, cspErrorf("ParseSudoku", ErrMalformedGrid)
	}

	full := make([]int, gridEdge)
	for i := range full {
		full[i] = i + 1
	}

	domains := make([][]int, gridEdge*gridEdge)
	idx := func(r, c int) int { return r*gridEdge + c }
	for r := 0; r < gridEdge; r++ {
		for c := 0; c < gridEdge; c++ {
			if grid[r][c] == 0 {
				domains[idx(r, c)] = full
			} else {
				domains[idx(r, c)] = []int{grid[r][c]}
			}
		}
	}

	cspInst, err := csp.New(domains, nil, nil)
	if err != nil {
		return nil, cspErrorf("ParseSudoku", err)
	}

	addAllDifferent := func(cells []int) error {
		for i := 0; i < len(cells); i++ {
			for j := i + 1; j < len(cells); j++ {
				if err := cspInst.AddConstraint(cells[i], cells[j], csp.NotEqual); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for r := 0; r < gridEdge; r++ {
		cells := make([]int, gridEdge)
		for c := 0; c < gridEdge; c++ {
			cells[c] = idx(r, c)
		}
		if err := addAllDifferent(cells); err != nil {
			return nil, cspErrorf("ParseSudoku", err)
		}
	}
	for c := 0; c < gridEdge; c++ {
		cells := make([]int, gridEdge)
		for r := 0; r < gridEdge; r++ {
			cells[r] = idx(r, c)
		}
		if err := addAllDifferent(cells); err != nil {
			return nil, cspErrorf("ParseSudoku", err)
		}
	}
	for br := 0; br < box; br++ {
		for bc := 0; bc < box; bc++ {
			cells := make([]int, 0, gridEdge)
			for r := 0; r < box; r++ {
				for c := 0; c < box; c++ {
					cells = append(cells, idx(br*box+r, bc*box+c))
				}
			}
			if err := addAllDifferent(cells); err != nil {
				return nil, cspErrorf("ParseSudoku", err)
			}
		}
	}

	return cspInst, nil
}

// parseDigit parses a single decimal field into *out, returning an error
// (and leaving *out unchanged) on anything else.
func parseDigit(field string, out *int) (int, error) {
	n := 0
	for _, r := range field {
		if r < '0' || r > '9' {
			return 0, ErrMalformedGrid
		}
		n = n*10 + int(r-'0')
	}
	*out = n
	return n, nil
}
