package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/drkbts/topology/graph"
)

// errUnknownKind is returned when a topology spec names no known generator.
var errUnknownKind = errors.New("cli: unknown topology kind")

// kindNames lists the accepted --kind values for help texts.
const kindNames = "uring, bring, umesh, bmesh, opg, bgrid, btorus"

// buildTopology dispatches a kind name to its generator. Ring and chain
// kinds take the first dimension as their size; composite kinds take the
// whole list; opg takes none.
func buildTopology(kind string, dims []int) (*graph.Graph, error) {
	switch strings.ToLower(kind) {
	case "uring":
		return graph.NewURing(singleDim(dims))
	case "bring":
		return graph.NewBRing(singleDim(dims))
	case "umesh":
		return graph.NewUMesh(singleDim(dims))
	case "bmesh":
		return graph.NewBMesh(singleDim(dims))
	case "opg":
		return graph.NewOPG(), nil
	case "bgrid":
		return graph.NewBGrid(dims)
	case "btorus":
		return graph.NewBTorus(dims)
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", errUnknownKind, kind, kindNames)
	}
}

// singleDim reduces a dimension list to the single size a basic generator
// expects. A missing list maps to 0 so the generator rejects it with its own
// ErrInvalidArgument.
func singleDim(dims []int) int {
	if len(dims) == 0 {
		return 0
	}
	return dims[0]
}

// parseSpec parses a compact topology spec of the form "kind" or
// "kind:d1,d2,…", e.g. "bring:8" or "bgrid:4,3,2".
func parseSpec(spec string) (*graph.Graph, error) {
	kind, rest, _ := strings.Cut(spec, ":")
	dims, err := parseDims(rest)
	if err != nil {
		return nil, fmt.Errorf("spec %q: %w", spec, err)
	}
	return buildTopology(kind, dims)
}

// parseDims parses a comma-separated dimension list. Empty input yields an
// empty list.
func parseDims(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	dims := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("dimension %q: %w", p, err)
		}
		dims = append(dims, d)
	}
	return dims, nil
}
