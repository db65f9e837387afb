package holefinder

import (
	"github.com/heeschnum/heesch/geom"
	"github.com/heeschnum/heesch/shape"
)

// TileIndex identifies a placed copy of the tile shape by position in
// the solver's placement arena.
type TileIndex int

// Finder accumulates placed copies of a fixed tile shape and reports
// the holes enclosed by their union. Copies are added with AddCopy;
// GetHoles computes the result once all copies of interest have been
// added.
type Finder struct {
	shape *shape.Shape
	cells map[geom.Point]TileIndex

	halo        map[geom.Point]bool
	haloMin     geom.Point
	haveHaloMin bool
}

// New returns a Finder for copies of shape. shape must already be
// complete.
func New(s *shape.Shape) *Finder {
	return &Finder{
		shape: s,
		cells: map[geom.Point]TileIndex{},
	}
}

// AddCopy records a copy of the tile placed by transform T, owned by
// idx. Copies may overlap in principle, but a valid corona placement
// never does; the last write wins for any shared cell.
func (f *Finder) AddCopy(idx TileIndex, T geom.Transform) {
	for _, p := range f.shape.Points() {
		f.cells[T.Apply(p)] = idx
	}
}

// computeHalo recomputes the set of cells adjacent to some placed
// cell but not themselves placed, and tracks the lexicographically
// smallest such cell. That cell is guaranteed to lie on the outer
// boundary of the whole placement, since no interior hole can contain
// the global minimum of the halo.
func (f *Finder) computeHalo() {
	f.halo = make(map[geom.Point]bool, len(f.cells))
	f.haveHaloMin = false

	for p := range f.cells {
		for _, pn := range f.shape.Grid().Neighbors(p) {
			q := p.Add(pn)
			if _, ok := f.cells[q]; ok {
				continue
			}
			f.halo[q] = true
			if !f.haveHaloMin || q.Less(f.haloMin) {
				f.haloMin = q
				f.haveHaloMin = true
			}
		}
	}
}

// search flood-fills the halo component containing cell via
// edge-adjacency, marking every visited cell and recording the owners
// of every placed cell adjacent to the component. It reports whether
// the component is a hole: a component is a hole exactly when it
// never reaches haloMin, the known outer-boundary cell.
func (f *Finder) search(cell geom.Point, visited map[geom.Point]bool, owners map[TileIndex]bool) bool {
	working := []geom.Point{cell}
	wasOuter := false

	for len(working) > 0 {
		p := working[len(working)-1]
		working = working[:len(working)-1]

		if visited[p] {
			continue
		}
		visited[p] = true

		if p == f.haloMin {
			wasOuter = true
		}

		for _, pn := range f.shape.Grid().EdgeNeighbors(p) {
			q := p.Add(pn)
			if f.halo[q] && !visited[q] {
				working = append(working, q)
			}
		}

		for _, pn := range f.shape.Grid().Neighbors(p) {
			q := p.Add(pn)
			if idx, ok := f.cells[q]; ok {
				owners[idx] = true
			}
		}
	}

	return !wasOuter
}

// GetHoles partitions the halo into connected components under
// edge-adjacency, and reports the tile owners bordering each component
// that never reaches the outer boundary: these are the holes. It
// returns the hole owner sets and whether any hole was found.
func (f *Finder) GetHoles() ([][]TileIndex, bool) {
	f.computeHalo()

	var holes [][]TileIndex
	visited := map[geom.Point]bool{}
	foundOne := false

	for p := range f.halo {
		if visited[p] {
			continue
		}
		owners := map[TileIndex]bool{}
		if f.search(p, visited, owners) {
			foundOne = true
			hole := make([]TileIndex, 0, len(owners))
			for idx := range owners {
				hole = append(hole, idx)
			}
			holes = append(holes, hole)
		}
	}

	return holes, foundOne
}
