package loader_test

import (
	"context"
	"strings"
	"testing"

	"github.com/csplab/gocsp/loader"
	"github.com/csplab/gocsp/search"
	"github.com/stretchr/testify/require"
)

// A solvable 4x4 Sudoku (box size 2), digits 1-4, "0" marks a blank.
const sudoku4x4 = `
1 0 0 4
0 4 1 0
0 1 4 0
4 0 0 1
`

func TestParseSudoku_FourByFourSolves(t *testing.T) {
	c, err := loader.ParseSudoku(strings.NewReader(sudoku4x4), 4)
	require.NoError(t, err)

	res := search.NewBacktrack(c, search.NewConfig(search.WithFC())).Run(context.Background())
	require.True(t, res.Solved)

	require.Equal(t, 1, res.Assignment["0"])
	require.Equal(t, 4, res.Assignment["3"])
}

func TestParseSudoku_RejectsNonSquareGrid(t *testing.T) {
	_, err := loader.ParseSudoku(strings.NewReader("1 2 3\n2 3 1\n3 1 2\n"), 3)
	require.ErrorIs(t, err, loader.ErrNotSquareGrid)
}

func TestParseSudoku_RejectsMalformedRow(t *testing.T) {
	bad := "1 0 0 4\n0 4 1\n0 1 4 0\n4 0 0 1\n"
	_, err := loader.ParseSudoku(strings.NewReader(bad), 4)
	require.ErrorIs(t, err, loader.ErrMalformedGrid)
}

func TestParseSudoku_EmptyGridIsSolvable(t *testing.T) {
	empty := strings.Repeat(strings.Repeat("0 ", 9)+"\n", 9)
	c, err := loader.ParseSudoku(strings.NewReader(empty), 9)
	require.NoError(t, err)

	res := search.NewBacktrack(c, search.NewConfig(search.WithFC())).Run(context.Background())
	require.True(t, res.Solved)
	require.Len(t, res.Assignment, 81)
}
