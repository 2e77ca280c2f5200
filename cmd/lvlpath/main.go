// Command lvlpath reads an adjacency-matrix file, asks for a start vertex,
// and prints Levit shortest-path distances to every vertex.
//
// Usage:
//
//	lvlpath [-file matrix.txt] [-noarc -]
//
// The matrix format is documented in the matfile package. The start vertex
// is read from stdin as a 1-indexed number in [1, n]. Unreachable vertices
// print as "unreachable". Any failure — I/O, format, bad start vertex, or a
// suspected negative cycle — is reported as a single message on stderr.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlpath/levit"
	"github.com/katalvlaran/lvlpath/matfile"
)

// defaultMatrixPath is where the tool looks for the matrix unless -file
// overrides it.
const defaultMatrixPath = "matrix.txt"

var errBadStartVertex = errors.New("lvlpath: start vertex must be a number in [1, n]")

func main() {
	if err := run(os.Stdin, os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "lvlpath:", err)
		os.Exit(1)
	}
}

// run encapsulates the whole session for easier testing: parse flags, load
// the matrix, prompt for the start vertex, solve, print the table.
func run(in io.Reader, out io.Writer, args []string) error {
	fs := newFlagSet(out)
	file := fs.String("file", defaultMatrixPath, "path to the adjacency-matrix file")
	noarc := fs.String("noarc", matfile.DefaultNoArcToken, "token marking an absent arc")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g, err := matfile.ParseFile(*file, matfile.WithNoArcToken(*noarc))
	if err != nil {
		return err
	}
	n := g.VertexCount()

	start, err := promptStart(in, out, n)
	if err != nil {
		return err
	}

	// Cap relaxations at the Bellman–Ford bound so a negative cycle in the
	// input surfaces as an error instead of a hang.
	budget := (n + 1) * max(g.ArcCount(), 1)
	res, err := levit.Levit(g, start, levit.WithMaxRelaxations(budget))
	if err != nil {
		return err
	}

	for v, d := range res.Dist {
		if d == levit.Inf {
			fmt.Fprintf(out, "vertex %d: unreachable\n", v+1)
			continue
		}
		fmt.Fprintf(out, "vertex %d: %d\n", v+1, d)
	}

	return nil
}

// newFlagSet builds a flag set that reports usage to out instead of
// stderr, keeping run fully testable.
func newFlagSet(out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("lvlpath", flag.ContinueOnError)
	fs.SetOutput(out)

	return fs
}

// promptStart asks for a 1-indexed start vertex and returns it 0-indexed.
func promptStart(in io.Reader, out io.Writer, n int) (int, error) {
	fmt.Fprintf(out, "Start vertex [1..%d]: ", n)

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("lvlpath: reading start vertex: %w", err)
	}
	start, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil || start < 1 || start > n {
		return 0, fmt.Errorf("%w: got %q, n=%d", errBadStartVertex, strings.TrimSpace(line), n)
	}

	return start - 1, nil
}
