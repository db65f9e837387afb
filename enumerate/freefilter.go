package enumerate

import "github.com/heeschnum/heesch/shape"

// FreeFilter wraps an Enumerator (or any fixed-polyform source) and
// thins its output down to one representative per free polyform: a
// shape is free if rotations and reflections of it are considered the
// same polyform. A shape is emitted the first time it's seen in
// canonical position; later fixed copies that are symmetric images of
// an already-emitted shape are suppressed by a running table of seen
// symmetric forms, so the filter need not buffer the whole stream.
type FreeFilter struct {
	syms []*shape.Shape
}

// NewFreeFilter returns an empty filter.
func NewFreeFilter() *FreeFilter {
	return &FreeFilter{}
}

// Wrap returns a Callback that forwards to out only the shapes that
// pass the free-polyform canonicity check. Intended to be passed as
// the out argument to Enumerator.Run.
func (f *FreeFilter) Wrap(out Callback) Callback {
	return func(shp *shape.Shape) {
		if f.check(shp) {
			out(shp)
		}
	}
}

// check reports whether shp is canonical among its own orientations:
// either it's asymmetric and lexicographically first among its
// transformed copies, or it's symmetric and this is the first time
// this particular symmetric shape has been seen.
func (f *FreeFilter) check(shp *shape.Shape) bool {
	grid := shp.Grid()
	orientations := grid.Orientations()

	cshape := shp.Untranslate()
	symmetric := false
	tmp := shape.New(grid)

	for i := 1; i < len(orientations); i++ {
		tmp.Reset(cshape, orientations[i])
		tshape := tmp.Untranslate()

		cmp := tshape.Compare(cshape)
		if cmp < 0 {
			return false
		}
		if cmp == 0 {
			symmetric = true
			break
		}
	}

	if !symmetric {
		return true
	}

	minShape := cshape
	for i := 1; i < len(orientations); i++ {
		tmp.Reset(cshape, orientations[i])
		tshape := tmp.Untranslate()
		if tshape.Compare(minShape) < 0 {
			minShape = tshape
		}
	}

	for _, seen := range f.syms {
		if seen.Compare(minShape) == 0 {
			return false
		}
	}

	f.syms = append(f.syms, minShape)
	return true
}
