package matfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlpath/digraph"
)

// DefaultNoArcToken is the token that marks an absent arc unless
// WithNoArcToken overrides it.
const DefaultNoArcToken = "-"

// Sentinel errors returned by matrix parsing.
var (
	// ErrEmptyInput is returned when the input contains no lines.
	ErrEmptyInput = errors.New("matfile: input is empty")

	// ErrMalformedRow is returned when a row's token count differs from
	// the number of lines n.
	ErrMalformedRow = errors.New("matfile: malformed row")

	// ErrTokenParse is returned when a non-sentinel token does not parse
	// as a signed integer.
	ErrTokenParse = errors.New("matfile: token is not an integer")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("matfile: invalid option supplied")
)

// Option configures parsing via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Parse runs.
type Option func(*Options)

// Options holds the parsing parameters.
type Options struct {
	// NoArcToken marks "no arc" cells. Must be non-empty and free of the
	// separator characters (space, tab, comma).
	NoArcToken string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the "-" no-arc token.
func DefaultOptions() Options {
	return Options{NoArcToken: DefaultNoArcToken}
}

// WithNoArcToken overrides the token that marks an absent arc.
// An empty token or one containing a separator character is invalid.
func WithNoArcToken(tok string) Option {
	return func(o *Options) {
		if tok == "" || strings.ContainsAny(tok, " \t,") {
			o.err = fmt.Errorf("%w: unusable no-arc token %q", ErrOptionViolation, tok)
			return
		}
		o.NoArcToken = tok
	}
}

// isSeparator reports whether r splits tokens within a row.
func isSeparator(r rune) bool { return r == ' ' || r == '\t' || r == ',' }

// Parse reads an n×n adjacency matrix from r and builds the corresponding
// n-vertex Digraph. n is the number of lines; a single trailing newline
// does not count as a row. Returns ErrEmptyInput, ErrMalformedRow, or
// ErrTokenParse on format violations (row errors carry 1-indexed row and
// column context), or the underlying read error if r fails.
func Parse(r io.Reader, opts ...Option) (*digraph.Digraph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("matfile: read failed: %w", err)
	}
	// A file ending in "\n" scans the same as one without it, but an
	// explicitly blank last line must still count as a (malformed) row;
	// bufio.Scanner already behaves that way, so nothing to trim here.
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(lines)
	g, err := digraph.New(n)
	if err != nil {
		return nil, err
	}

	for i, line := range lines {
		tokens := strings.FieldsFunc(line, isSeparator)
		if len(tokens) != n {
			return nil, fmt.Errorf("%w: row %d has %d tokens, want %d", ErrMalformedRow, i+1, len(tokens), n)
		}
		for j, tok := range tokens {
			if tok == o.NoArcToken || i == j {
				continue // absent arc, or ignored diagonal entry
			}
			w, perr := strconv.ParseInt(tok, 10, 64)
			if perr != nil {
				return nil, fmt.Errorf("%w: row %d, column %d: %q", ErrTokenParse, i+1, j+1, tok)
			}
			if aerr := g.AddArc(i, j, w); aerr != nil {
				return nil, aerr // unreachable: i, j < n by construction
			}
		}
	}

	return g, nil
}

// ParseString parses a matrix held in a string.
func ParseString(s string, opts ...Option) (*digraph.Digraph, error) {
	return Parse(strings.NewReader(s), opts...)
}

// ParseFile opens path and parses its contents as an adjacency matrix.
func ParseFile(path string, opts ...Option) (*digraph.Digraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matfile: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, opts...)
}
