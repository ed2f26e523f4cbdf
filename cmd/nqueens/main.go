// Command nqueens solves the n-queens CSP with the backjumping engine and
// prints the board.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/csplab/gocsp/heuristic"
	"github.com/csplab/gocsp/loader"
	"github.com/csplab/gocsp/search"
)

func main() {
	n := flag.Int("n", 8, "board size")
	timeout := flag.Duration("timeout", 10*time.Second, "search time budget")
	flag.Parse()

	c, err := loader.NewNQueens(*n)
	if err != nil {
		log.Fatalf("nqueens: %v", err)
	}

	cfg := search.NewConfig(
		search.WithFC(),
		search.WithVariableHeuristic(heuristic.MinRemainingValues),
		search.WithTimeLimit(*timeout),
	)
	res := search.NewBackjump(c, cfg).Run(context.Background())

	fmt.Printf("outcome=%s nodes=%d elapsed=%s\n", res.Stats.Outcome, res.Stats.NodesVisited, res.Stats.Elapsed)
	if !res.Solved {
		return
	}
	printBoard(*n, res.Assignment)
}

func printBoard(n int, assignment map[string]int) {
	for col := 0; col < n; col++ {
		row := assignment[fmt.Sprintf("%d", col)]
		for r := 1; r <= n; r++ {
			if r == row {
				fmt.Print("Q ")
			} else {
				fmt.Print(". ")
			}
		}
		fmt.Println()
	}
}
