package csp_test

import (
	"fmt"

	"github.com/csplab/gocsp/csp"
)

// ExampleNew builds a 3-variable CSP (a triangle graph 3-coloring) and
// inspects its neighborhood map and one of its symmetrized constraints.
func ExampleNew() {
	colors := []int{0, 1, 2}
	domains := [][]int{colors, colors, colors}
	constraints := []csp.Constraint{
		{I: 0, J: 1, Pred: csp.NotEqual},
		{I: 1, J: 2, Pred: csp.NotEqual},
		{I: 0, J: 2, Pred: csp.NotEqual},
	}

	c, err := csp.New(domains, constraints, []string{"A", "B", "C"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	p, _ := c.Constraint(0, 1)
	fmt.Println(c.Label(0), len(c.Neighbors(0)), p.Check(0, 1, 1, 1))
	// Output: A 2 false
}
