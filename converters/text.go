// SPDX-License-Identifier: MIT
//
// File: text.go
// Role: Plain-text edge-list adapter.
//
// Format:
//
//	# comments run to end of line; blank lines are ignored
//	4            <- vertex count V
//	0 1 10       <- one "from to weight" triple per line
//	2 3 4
//
// All fields are base-10 integers separated by whitespace.

package converters

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/spanforest/core"
)

// ErrMalformedInput indicates a syntactically invalid edge list.
var ErrMalformedInput = errors.New("converters: malformed edge list")

// ParseEdgeList reads a vertex count followed by edge triples and builds a
// core.Graph from them.
//
// Errors:
//   - ErrMalformedInput (wrapped, with line number) on bad syntax or a missing header.
//   - core.ErrInvalidArgument (wrapped) when the parsed graph fails validation.
//   - any read error from r, wrapped.
func ParseEdgeList(r io.Reader) (*core.Graph, error) {
	var (
		sc          = bufio.NewScanner(r)
		line        int
		vertexCount = -1
		edges       []core.Edge
	)
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		if vertexCount < 0 {
			if len(fields) != 1 {
				return nil, fmt.Errorf("%w: line %d: want vertex count, got %d fields", ErrMalformedInput, line, len(fields))
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: line %d: bad vertex count %q", ErrMalformedInput, line, fields[0])
			}
			vertexCount = n
			continue
		}

		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: want \"from to weight\", got %d fields", ErrMalformedInput, line, len(fields))
		}
		from, errFrom := strconv.Atoi(fields[0])
		to, errTo := strconv.Atoi(fields[1])
		w, errW := strconv.ParseInt(fields[2], 10, 64)
		if err := errors.Join(errFrom, errTo, errW); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, line, err)
		}
		edges = append(edges, core.Edge{From: from, To: to, Weight: w})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("converters: ParseEdgeList: read: %w", err)
	}
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: missing vertex count", ErrMalformedInput)
	}

	g, err := core.NewGraph(vertexCount, edges)
	if err != nil {
		return nil, fmt.Errorf("converters: ParseEdgeList: %w", err)
	}

	return g, nil
}

// WriteEdgeList writes vertexCount and edges in the format ParseEdgeList reads.
func WriteEdgeList(w io.Writer, vertexCount int, edges []core.Edge) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", vertexCount)
	for _, e := range edges {
		fmt.Fprintf(bw, "%d %d %d\n", e.From, e.To, e.Weight)
	}

	return bw.Flush()
}
