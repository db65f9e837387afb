package enumerate

import (
	"context"

	"github.com/heeschnum/heesch/geom"
	"github.com/heeschnum/heesch/shape"
)

// unitAdj names one oriented copy of a unit shape within a compound:
// which unit, and the transform carrying its identity placement to
// this one.
type unitAdj struct {
	Idx int
	T   geom.Transform
}

// shapeInfo is one inequivalent orientation of one unit, with its
// transformed edge halo precomputed for adjacency testing.
type shapeInfo struct {
	idx   int
	T     geom.Transform
	shape *shape.Shape
	halo  *shape.Shape
}

// CompoundEnumerator grows fixed polyforms whose "cells" are
// themselves polyforms over the underlying grid (units read from the
// -units input). It recapitulates the single-cell Enumerator's
// boundary-extension search, but the frontier is made of (unit,
// transform) placements instead of bare grid cells, and adjacency
// between units has to be discovered up front since it isn't implicit
// in the grid the way cell edge-adjacency is.
type CompoundEnumerator struct {
	units []*shape.Shape
	adjs  [][]unitAdj

	cellmap map[unitAdj]cellStatus
	untried []unitAdj
}

// NewCompound prepares a compound enumerator over units, precomputing
// every pairwise adjacency between oriented unit copies.
func NewCompound(units []*shape.Shape) *CompoundEnumerator {
	ce := &CompoundEnumerator{
		units:   units,
		adjs:    make([][]unitAdj, len(units)),
		cellmap: make(map[unitAdj]cellStatus),
	}
	ce.calculateAdjacencies()
	return ce
}

// Run generates every fixed compound of exactly size units, invoking
// out once per assembled shape, and returns the total count. A
// candidate compound whose units happen to overlap in the underlying
// grid is silently dropped, matching the source algorithm's handling
// of that case.
func (ce *CompoundEnumerator) Run(ctx context.Context, size int, out Callback) (int, error) {
	total := 0
	for idx := range ce.units {
		for k := range ce.cellmap {
			delete(ce.cellmap, k)
		}
		ce.untried = ce.untried[:0]
		ce.untried = append(ce.untried, unitAdj{Idx: idx, T: geom.Identity})

		n, err := ce.solve(ctx, size, 0, out)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (ce *CompoundEnumerator) contains(a unitAdj) bool {
	_, ok := ce.cellmap[a]
	return ok
}

func containsAdj(s []unitAdj, a unitAdj) bool {
	for _, b := range s {
		if b == a {
			return true
		}
	}
	return false
}

func (ce *CompoundEnumerator) solve(ctx context.Context, size, from int, out Callback) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if size == 0 {
		res := shape.New(ce.units[0].Grid())
		seen := make(map[geom.Point]bool)
		for a, st := range ce.cellmap {
			if st != occupied {
				continue
			}
			for _, p := range ce.units[a.Idx].Points() {
				np := a.T.Apply(p)
				if seen[np] {
					return 0, nil
				}
				seen[np] = true
				res.Add(np)
			}
		}
		res.Complete()
		out(res)
		return 1, nil
	}

	total := 0
	usz := len(ce.untried)

	for idx := from; idx < usz; idx++ {
		utadj := ce.untried[idx]
		sidx := utadj.Idx
		ce.cellmap[utadj] = occupied

		for _, oa := range ce.adjs[sidx] {
			nadj := unitAdj{Idx: oa.Idx, T: utadj.T.Compose(oa.T)}
			if !ce.contains(nadj) && !containsAdj(ce.untried, nadj) {
				ce.untried = append(ce.untried, nadj)
			}
		}

		n, err := ce.solve(ctx, size-1, idx+1, out)
		total += n
		ce.cellmap[utadj] = reachable
		ce.untried = ce.untried[:usz]
		if err != nil {
			return total, err
		}
	}

	for idx := from; idx < usz; idx++ {
		delete(ce.cellmap, ce.untried[idx])
	}

	return total, nil
}

// calculateInequivalentOrientations returns the subset of grid
// orientations that produce geometrically distinct placements of shp,
// one representative per equivalence class.
func calculateInequivalentOrientations(shp *shape.Shape) []geom.Transform {
	grid := shp.Grid()
	var Ts []geom.Transform
	var canon []*shape.Shape
	tmp := shape.New(grid)

	for _, T := range grid.Orientations() {
		tmp.Reset(shp, T)
		ok := true
		for _, sh := range canon {
			if tmp.Equivalent(sh) {
				ok = false
				break
			}
		}
		if ok {
			Ts = append(Ts, T)
			copied := shape.New(grid)
			copied.Reset(shp, T)
			canon = append(canon, copied)
		}
	}
	return Ts
}

func (ce *CompoundEnumerator) calculateAdjacencies() {
	var all []shapeInfo

	for idx, sh := range ce.units {
		all = append(all, shapeInfo{idx: idx, T: geom.Identity, shape: sh, halo: sh.GetEdgeHalo()})
	}

	for idx, sh := range ce.units {
		orientations := calculateInequivalentOrientations(sh)
		grid := sh.Grid()
		for tidx := 1; tidx < len(orientations); tidx++ {
			T := orientations[tidx]
			oshape := shape.New(grid)
			oshape.Reset(sh, T)
			ohalo := shape.New(grid)
			ohalo.Reset(all[idx].halo, T)
			all = append(all, shapeInfo{idx: idx, T: T, shape: oshape, halo: ohalo})
		}
	}

	for idx := range ce.units {
		sh := all[idx].shape
		halo := all[idx].halo
		grid := sh.Grid()

		for _, oa := range all {
			osh := oa.shape
			seenDp := make(map[geom.Point]bool)

			for _, hp := range halo.Points() {
				for _, osp := range osh.Points() {
					if !grid.Translatable(osp, hp) {
						continue
					}
					dp := hp.Sub(osp)
					if seenDp[dp] {
						continue
					}
					seenDp[dp] = true

					translated := shape.New(grid)
					translated.Reset(osh, geom.Identity.Translate(dp))

					if sh.Intersects(translated) {
						continue
					}

					union := shape.New(grid)
					union.AddShape(translated)
					union.AddShape(sh)
					if !union.SimplyConnected() {
						continue
					}

					Tnew := oa.T.Translate(dp)
					ce.adjs[idx] = append(ce.adjs[idx], unitAdj{Idx: oa.idx, T: Tnew})
				}
			}
		}
	}
}
