package enumerate

import (
	"context"
	"sort"

	"github.com/heeschnum/heesch/geom"
	"github.com/heeschnum/heesch/gridfamily"
	"github.com/heeschnum/heesch/shape"
)

// Callback receives one generated polyform. Enumerator.Run and
// CompoundEnumerator.Run allocate a new shape for every call, and
// FreeFilter.Wrap forwards the shape it was given unchanged.
type Callback func(*shape.Shape)

type cellStatus int

const (
	free cellStatus = iota
	occupied
	reachable
)

// Enumerator grows fixed polyforms of a single grid family one cell at
// a time. A single Enumerator is not safe for concurrent use, but may
// be reused across calls to Run.
type Enumerator struct {
	grid gridfamily.Grid

	cellmap map[geom.Point]cellStatus
	origin  geom.Point
	untried []geom.Point
}

// New returns an Enumerator for grid.
func New(grid gridfamily.Grid) *Enumerator {
	return &Enumerator{grid: grid, cellmap: make(map[geom.Point]cellStatus)}
}

// Run generates every fixed polyform of exactly size cells over the
// enumerator's grid, invoking out once per shape, and returns the
// total count. It returns ctx.Err() if ctx is canceled mid-search.
func (e *Enumerator) Run(ctx context.Context, size int, out Callback) (int, error) {
	total := 0
	for _, o := range e.grid.Origins() {
		e.origin = o
		for k := range e.cellmap {
			delete(e.cellmap, k)
		}
		e.untried = e.untried[:0]
		e.untried = append(e.untried, o)

		n, err := e.solve(ctx, size, 0, out)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (e *Enumerator) contains(p geom.Point) bool {
	_, ok := e.cellmap[p]
	return ok
}

func (e *Enumerator) solve(ctx context.Context, size, from int, out Callback) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if size == 0 {
		shp := shape.New(e.grid)
		for p, st := range e.cellmap {
			if st == occupied {
				shp.Add(p)
			}
		}
		shp.Complete()
		out(shp)
		return 1, nil
	}

	total := 0
	usz := len(e.untried)

	for idx := from; idx < usz; idx++ {
		p := e.untried[idx]
		e.cellmap[p] = occupied

		for _, d := range e.grid.EdgeNeighbors(p) {
			pn := p.Add(d)
			if pn.Less(e.origin) || e.contains(pn) {
				continue
			}
			if !containsPoint(e.untried, pn) {
				e.untried = append(e.untried, pn)
			}
		}

		n, err := e.solve(ctx, size-1, idx+1, out)
		total += n
		e.cellmap[p] = reachable
		e.untried = e.untried[:usz]
		if err != nil {
			return total, err
		}
	}

	for idx := from; idx < usz; idx++ {
		delete(e.cellmap, e.untried[idx])
	}

	return total, nil
}

func containsPoint(pts []geom.Point, p geom.Point) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}

// CanonicalForm returns the lexicographically smallest untranslated
// image of shp over every orientation of its grid. Two shapes are the
// same free polyform exactly when their canonical forms are Equal.
func CanonicalForm(shp *shape.Shape) *shape.Shape {
	grid := shp.Grid()
	var canon *shape.Shape
	tmp := shape.New(grid)

	for _, T := range grid.Orientations() {
		tmp.Reset(shp, T)
		cand := tmp.Untranslate()
		if canon == nil || cand.Compare(canon) < 0 {
			canon = cand
		}
	}
	return canon
}

// SortUnique canonicalizes every shape in shapes, sorts the results,
// and drops duplicates, returning one representative per distinct free
// polyform. It trades the cheaper per-shape symmetry check FreeFilter
// uses for a flat, order-independent dedup; useful when shapes arrive
// from more than one generator and FreeFilter's running symmetry table
// can't be shared between them.
func SortUnique(shapes []*shape.Shape) []*shape.Shape {
	canon := make([]*shape.Shape, len(shapes))
	for i, s := range shapes {
		canon[i] = CanonicalForm(s)
	}
	sort.Slice(canon, func(i, j int) bool { return canon[i].Compare(canon[j]) < 0 })

	out := canon[:0:0]
	for i, c := range canon {
		if i == 0 || canon[i-1].Compare(c) != 0 {
			out = append(out, c)
		}
	}
	return out
}
