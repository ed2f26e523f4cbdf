package csp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnd(t *testing.T) {
	gt := PredicateFunc(func(_, _, vi, vj int) bool { return vi > vj })
	ne := PredicateFunc(func(_, _, vi, vj int) bool { return vi != vj })
	combined := And(gt, ne)

	require.True(t, combined.Check(0, 1, 2, 1))
	require.False(t, combined.Check(0, 1, 1, 2), "fails gt")
	require.False(t, combined.Check(0, 1, 2, 2), "fails both")
}

func TestSwap(t *testing.T) {
	lt := PredicateFunc(func(i, j, vi, vj int) bool { return vi < vj })
	swapped := Swap(lt)

	// swapped(j,i,vj,vi) should equal lt(i,j,vi,vj)
	require.Equal(t, lt.Check(0, 1, 3, 5), swapped.Check(1, 0, 5, 3))
	require.True(t, swapped.Check(1, 0, 5, 3))
}

func TestNotEqual(t *testing.T) {
	require.True(t, NotEqual.Check(0, 1, 1, 2))
	require.False(t, NotEqual.Check(0, 1, 2, 2))
}
