package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/csplab/gocsp/csp"
)

// NewGraphColoring builds a graph-coloring CSP directly from an adjacency
// list: one variable per vertex (domain 0..colors-1) and a NotEqual
// constraint per edge. edges need not be deduplicated or symmetric;
// csp.AddConstraint absorbs repeats via predicate conjunction (spec
// §4.1). Shared by ParseColoring and programmatic callers such as the
// Myciel3 scenario seed, which is generated rather than file-backed.
func NewGraphColoring(numVertices int, edges [][2]int, colors int) (*csp.CSP, error) {
	if colors < 1 {
		return nil, cspErrorf("NewGraphColoring", ErrTooFewColors)
	}
	domain := make([]int, colors)
	for i := range domain {
		domain[i] = i
	}
	domains := make([][]int, numVertices)
	for i := range domains {
		domains[i] = domain
	}

	c, err := csp.New(domains, nil, nil)
	if err != nil {
		return nil, cspErrorf("NewGraphColoring", err)
	}
	for _, e := range edges {
		if err := c.AddConstraint(e[0], e[1], csp.NotEqual); err != nil {
			return nil, cspErrorf("NewGraphColoring", err)
		}
	}
	return c, nil
}

// ParseColoring reads a DIMACS-format graph ("p edge N M" header, "c"
// comment lines, "e u v" edge lines, 1-based vertex numbering — spec.md
// §6) and builds the corresponding colors-coloring CSP via
// NewGraphColoring.
func ParseColoring(r io.Reader, colors int) (*csp.CSP, error) {
	scanner := bufio.NewScanner(r)

	numVertices, numEdges := -1, -1
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 || fields[0] != "p" || fields[1] != "edge" {
			return nil, cspErrorf("ParseColoring", ErrMalformedHeader)
		}
		n, err1 := strconv.Atoi(fields[2])
		m, err2 := strconv.Atoi(fields[3])
		if err1 != nil || err2 != nil || n < 0 || m < 0 {
			return nil, cspErrorf("ParseColoring", ErrMalformedHeader)
		}
		numVertices, numEdges = n, m
		break
	}
	if numVertices < 0 {
		return nil, cspErrorf("ParseColoring", ErrMalformedHeader)
	}

	edges := make([][2]int, 0, numEdges)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 || fields[0] != "e" {
			return nil, cspErrorf("ParseColoring", ErrMalformedEdge)
		}
		u, err1 := strconv.Atoi(fields[1])
		v, err2 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil || u < 1 || u > numVertices || v < 1 || v > numVertices {
			return nil, cspErrorf("ParseColoring", ErrMalformedEdge)
		}
		edges = append(edges, [2]int{u - 1, v - 1})
	}
	if err := scanner.Err(); err != nil {
		return nil, cspErrorf("ParseColoring", err)
	}

	return NewGraphColoring(numVertices, edges, colors)
}

func cspErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
