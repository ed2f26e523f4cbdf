// Command sudoku solves a digit-grid puzzle read from stdin with the
// backtracking engine and prints the completed grid.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/csplab/gocsp/heuristic"
	"github.com/csplab/gocsp/loader"
	"github.com/csplab/gocsp/search"
)

func main() {
	gridEdge := flag.Int("grid", 9, "grid edge length (must be a perfect square)")
	timeout := flag.Duration("timeout", 10*time.Second, "search time budget")
	flag.Parse()

	c, err := loader.ParseSudoku(os.Stdin, *gridEdge)
	if err != nil {
		log.Fatalf("sudoku: %v", err)
	}

	cfg := search.NewConfig(
		search.WithAC3(),
		search.WithFC(),
		search.WithVariableHeuristic(heuristic.MinRemainingValues),
		search.WithTimeLimit(*timeout),
	)
	res := search.NewBacktrack(c, cfg).Run(context.Background())

	fmt.Printf("outcome=%s nodes=%d elapsed=%s\n", res.Stats.Outcome, res.Stats.NodesVisited, res.Stats.Elapsed)
	if !res.Solved {
		return
	}
	printGrid(*gridEdge, res.Assignment)
}

func printGrid(gridEdge int, assignment map[string]int) {
	for r := 0; r < gridEdge; r++ {
		for c := 0; c < gridEdge; c++ {
			fmt.Printf("%d ", assignment[fmt.Sprintf("%d", r*gridEdge+c)])
		}
		fmt.Println()
	}
}
