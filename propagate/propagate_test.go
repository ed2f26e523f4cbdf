package propagate_test

import (
	"testing"

	"github.com/csplab/gocsp/csp"
	"github.com/csplab/gocsp/propagate"
	"github.com/stretchr/testify/require"
)

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

func TestForwardCheck_RootIsNoop(t *testing.T) {
	c := triangleCSP(t, 3)
	log := propagate.ShrinkLog{}
	emptied, ok := propagate.ForwardCheck(c, map[int]int{}, propagate.NoVariable, log)
	require.False(t, ok)
	require.Equal(t, propagate.NoVariable, emptied)
	require.Empty(t, log)
}

func TestForwardCheck_PrunesNeighbors(t *testing.T) {
	c := triangleCSP(t, 3)
	state := map[int]int{0: 0}
	log := propagate.ShrinkLog{}
	emptied, ok := propagate.ForwardCheck(c, state, 0, log)
	require.False(t, ok)
	require.Equal(t, propagate.NoVariable, emptied)

	// neighbors 1 and 2 must have lost value 0
	require.NotContains(t, c.LiveValues(1), 0)
	require.NotContains(t, c.LiveValues(2), 0)
	require.Equal(t, 2, c.DomainSize(1))
	require.Equal(t, 2, c.DomainSize(2))
	require.Equal(t, 1, log[1])
	require.Equal(t, 1, log[2])

	log.Rollback(c)
	require.Equal(t, 3, c.DomainSize(1))
	require.Equal(t, 3, c.DomainSize(2))
}

func TestForwardCheck_DetectsEmptiedDomain(t *testing.T) {
	domains := [][]int{{0, 1}, {0}}
	c, err := csp.New(domains, []csp.Constraint{{I: 0, J: 1, Pred: csp.NotEqual}}, nil)
	require.NoError(t, err)

	state := map[int]int{0: 0}
	log := propagate.ShrinkLog{}
	emptied, ok := propagate.ForwardCheck(c, state, 0, log)
	require.True(t, ok)
	require.Equal(t, 1, emptied)
}

func TestAC3_RootPrunesTriangle(t *testing.T) {
	// 2-coloring of a triangle is globally arc-inconsistent once any
	// variable is reduced to a singleton domain.
	c := triangleCSP(t, 2)
	_ = c.RemoveValueAt(0, 1) // force variable 0's domain down to {0}
	log := propagate.ShrinkLog{}
	emptied, ok := propagate.AC3(c, map[int]int{}, propagate.NoVariable, log)
	require.True(t, ok)
	require.NotEqual(t, propagate.NoVariable, emptied)
}

func TestAC3_NoPruningNeeded(t *testing.T) {
	c := triangleCSP(t, 3)
	log := propagate.ShrinkLog{}
	emptied, ok := propagate.AC3(c, map[int]int{}, propagate.NoVariable, log)
	require.False(t, ok)
	require.Equal(t, propagate.NoVariable, emptied)
	require.Equal(t, 3, c.DomainSize(0))
}

func TestShrinkLog_Rollback(t *testing.T) {
	c := triangleCSP(t, 3)
	require.True(t, c.RemoveValueAt(0, 0))
	log := propagate.ShrinkLog{0: 1}
	log.Rollback(c)
	require.Equal(t, 3, c.DomainSize(0))
}
