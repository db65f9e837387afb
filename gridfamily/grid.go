package gridfamily

import (
	"errors"
	"fmt"

	"github.com/heeschnum/heesch/geom"
)

// ErrUnknownFamily indicates a grid code outside {O,H,I,o,T,A,D,K,h}.
var ErrUnknownFamily = errors.New("gridfamily: unknown grid code")

// Grid is the abstract per-family parameter every core package (shape,
// cloud, holefinder, solver) is generic over. A Grid value carries no
// mutable state; all methods are pure functions of their arguments.
type Grid interface {
	// Code is the single-character record-format identifier.
	Code() byte
	// Name is a human-readable family name, used in CLI output.
	Name() string
	// Orientations returns the finite symmetry group acting on cells.
	Orientations() []geom.Transform
	// Origins returns one canonical point per translational
	// equivalence class of cells.
	Origins() []geom.Point
	// Neighbors returns the vertex-neighbors of cell p.
	Neighbors(p geom.Point) []geom.Point
	// EdgeNeighbors returns the edge-neighbors of cell p.
	EdgeNeighbors(p geom.Point) []geom.Point
	// Translatable reports whether some pure translation maps the
	// orbit class of p onto the orbit class of q.
	Translatable(p, q geom.Point) bool
}

// registry maps grid codes to constructors. Populated by each family's
// init() via register, so adding a family never touches this file.
var registry = map[byte]func() Grid{}

func register(code byte, ctor func() Grid) {
	registry[code] = ctor
}

// ByCode looks up a Grid by its record-format code (one of
// {O,H,I,o,T,A,D,K,h}). Returns ErrUnknownFamily for anything else.
func ByCode(code byte) (Grid, error) {
	ctor, ok := registry[code]
	if !ok {
		return nil, fmt.Errorf("gridfamily: code %q: %w", string(code), ErrUnknownFamily)
	}
	return ctor(), nil
}

// Codes returns every registered grid code, for CLI help text and
// dispatch-table tests.
func Codes() []byte {
	codes := make([]byte, 0, len(registry))
	for c := range registry {
		codes = append(codes, c)
	}
	return codes
}

// xf is a terse constructor for geom.Transform from the 2x3 integer
// literal layout used throughout the grid tables below: xf(a,b,c,d,e,f).
func xf(a, b, c, d, e, f int32) geom.Transform {
	return geom.Transform{A: a, B: b, C: c, D: d, E: e, F: f}
}

// pt is a terse geom.Point constructor for the vector tables below.
func pt(x, y int32) geom.Point {
	return geom.Point{X: x, Y: y}
}

// pts converts a flat list of (x,y) pairs into a []geom.Point.
func pts(coords ...int32) []geom.Point {
	out := make([]geom.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, pt(coords[i], coords[i+1]))
	}
	return out
}
