// Command graphcolor decides k-colorability of a DIMACS-format graph read
// from stdin, or (with -minimize) finds the chromatic number via
// optimize.Minimize.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/csplab/gocsp/csp"
	"github.com/csplab/gocsp/heuristic"
	"github.com/csplab/gocsp/loader"
	"github.com/csplab/gocsp/optimize"
	"github.com/csplab/gocsp/search"
)

func main() {
	colors := flag.Int("colors", 3, "number of colors to try (ignored with -minimize)")
	minimize := flag.Bool("minimize", false, "binary-search the smallest feasible color count")
	maxColors := flag.Int("max-colors", 32, "upper bound assumed feasible by -minimize (never probed)")
	timeout := flag.Duration("timeout", 10*time.Second, "per-probe search time budget")
	flag.Parse()

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("graphcolor: read stdin: %v", err)
	}

	engineConfig := func() search.Config {
		return search.NewConfig(
			search.WithAC3(),
			search.WithFC(),
			search.WithVariableHeuristic(heuristic.MinRemainingValues),
			search.WithTimeLimit(*timeout),
		)
	}

	if !*minimize {
		c, err := loader.ParseColoring(bytes.NewReader(data), *colors)
		if err != nil {
			log.Fatalf("graphcolor: %v", err)
		}
		res := search.NewBackjump(c, engineConfig()).Run(context.Background())
		fmt.Printf("colors=%d outcome=%s nodes=%d elapsed=%s\n", *colors, res.Stats.Outcome, res.Stats.NodesVisited, res.Stats.Elapsed)
		return
	}

	build := func(bound int) *csp.CSP {
		c, err := loader.ParseColoring(bytes.NewReader(data), bound)
		if err != nil {
			log.Fatalf("graphcolor: %v", err)
		}
		return c
	}
	newEngine := func(c *csp.CSP) optimize.Engine {
		return search.NewBackjump(c, engineConfig()).Run
	}

	result := optimize.Minimize(context.Background(), build, 1, *maxColors, newEngine)
	fmt.Printf("chromatic<=%d exact=%v probes=%d elapsed=%s\n", result.Best, result.Exact, result.Probes, result.Elapsed)
}
