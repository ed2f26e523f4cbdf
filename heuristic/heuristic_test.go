package heuristic_test

import (
	"math/rand"
	"testing"

	"github.com/csplab/gocsp/csp"
	"github.com/csplab/gocsp/heuristic"
	"github.com/stretchr/testify/require"
)

func threeVarCSP(t *testing.T) *csp.CSP {
	t.Helper()
	domains := [][]int{{0, 1, 2}, {0, 1}, {0, 1, 2, 3}}
	c, err := csp.New(domains, nil, nil)
	require.NoError(t, err)
	return c
}

func TestNaive(t *testing.T) {
	c := threeVarCSP(t)
	v, ok := heuristic.Naive(c, map[int]int{})
	require.True(t, ok)
	require.Equal(t, 0, v)

	v, ok = heuristic.Naive(c, map[int]int{0: 1})
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = heuristic.Naive(c, map[int]int{0: 1, 1: 0, 2: 3})
	require.False(t, ok)
}

func TestMinRemainingValues(t *testing.T) {
	c := threeVarCSP(t)
	// variable 1 has the smallest domain (size 2)
	v, ok := heuristic.MinRemainingValues(c, map[int]int{})
	require.True(t, ok)
	require.Equal(t, 1, v)

	// once 1 is assigned, variable 0 (size 3) beats variable 2 (size 4)
	v, ok = heuristic.MinRemainingValues(c, map[int]int{1: 0})
	require.True(t, ok)
	require.Equal(t, 0, v)
}

func TestNaiveValues(t *testing.T) {
	c := threeVarCSP(t)
	require.Equal(t, []int{0, 1, 2}, heuristic.NaiveValues(c, 0))
}

func TestRandomValues_Deterministic(t *testing.T) {
	c := threeVarCSP(t)
	h1 := heuristic.RandomValues(rand.New(rand.NewSource(42)))
	h2 := heuristic.RandomValues(rand.New(rand.NewSource(42)))

	got1 := h1(c, 2)
	got2 := h2(c, 2)
	require.Equal(t, got1, got2, "same seed must reproduce the same order")
	require.ElementsMatch(t, []int{0, 1, 2, 3}, got1)
}
