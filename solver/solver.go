package solver

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/heeschnum/heesch/cloud"
	"github.com/heeschnum/heesch/geom"
	"github.com/heeschnum/heesch/holefinder"
	"github.com/heeschnum/heesch/satoracle"
	"github.com/heeschnum/heesch/shape"
)

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithOracleFactory overrides the SAT backend used for each query.
// The default is satoracle.NewDPLL, the reference in-process solver.
func WithOracleFactory(f func() satoracle.Oracle) Option {
	return func(sv *Solver) { sv.newOracle = f }
}

// WithReduce enables placement-count reduction: before allocating a
// new tile for a transform, the solver checks whether the transform
// covers a cell set some existing tile already covers (the shape's
// own symmetry makes this possible) and reuses that tile's variables
// instead of declaring a redundant one.
func WithReduce() Option {
	return func(sv *Solver) { sv.reduce = true }
}

// Solver is the Heesch-number search for one fixed shape. It owns the
// shape's cloud, a growing arena of tile placements and cells, and a
// monotonic SAT-variable counter; all cross-references between
// placements and cells go through integer indices rather than direct
// pointers.
type Solver struct {
	shape *shape.Shape
	cloud *cloud.Cloud

	tiles []*TileInfo
	cells []*CellInfo

	tileMap map[geom.Transform]TileIndex
	cellMap map[geom.Point]CellIndex

	level   int
	nextVar int

	newOracle func() satoracle.Oracle

	reduce       bool
	cellSetIndex map[string]TileIndex
}

// New builds a Solver over shape, which must already be complete. The
// level-0 kernel is materialized immediately.
func New(s *shape.Shape, opts ...Option) *Solver {
	sv := &Solver{
		shape:     s,
		cloud:     cloud.New(s),
		tileMap:   map[geom.Transform]TileIndex{},
		cellMap:   map[geom.Point]CellIndex{},
		newOracle: func() satoracle.Oracle { return satoracle.NewDPLL() },
	}
	for _, opt := range opts {
		opt(sv)
	}
	if sv.reduce {
		sv.cellSetIndex = map[string]TileIndex{}
	}

	sv.getShapeVariable(s.Grid().Orientations()[0], 0)
	return sv
}

// Level returns the current corona level.
func (sv *Solver) Level() int { return sv.level }

// TileCount returns the number of distinct tile placements the solver
// has materialized so far.
func (sv *Solver) TileCount() int { return len(sv.tiles) }

// Surroundable reports whether the shape's cloud found an adjacency
// for every halo cell; if false, no corona beyond level 0 can exist.
func (sv *Solver) Surroundable() bool { return sv.cloud.Surroundable }

func (sv *Solver) declareVariable() satoracle.VarID {
	sv.nextVar++
	return satoracle.VarID(sv.nextVar)
}

func (sv *Solver) getTile(T geom.Transform) (TileIndex, bool) {
	idx, ok := sv.tileMap[T]
	return idx, ok
}

func (sv *Solver) getCell(p geom.Point, create bool) (CellIndex, bool) {
	if idx, ok := sv.cellMap[p]; ok {
		return idx, true
	}
	if !create {
		return 0, false
	}
	idx := CellIndex(len(sv.cells))
	ci := &CellInfo{Pos: p, Index: idx, Var: sv.declareVariable()}
	sv.cells = append(sv.cells, ci)
	sv.cellMap[p] = idx
	return idx, true
}

// getCellVariable looks up an existing cell's variable without
// creating one. Used by clause generation, which must only reference
// cells some placement has already touched.
func (sv *Solver) getCellVariable(p geom.Point) (satoracle.VarID, bool) {
	idx, ok := sv.getCell(p, false)
	if !ok {
		return 0, false
	}
	return sv.cells[idx].Var, true
}

func (sv *Solver) createNewTile(T geom.Transform) TileIndex {
	if sv.reduce {
		if idx, ok := sv.reusableTile(T); ok {
			sv.tileMap[T] = idx
			return idx
		}
	}

	idx := TileIndex(len(sv.tiles))
	ti := &TileInfo{T: T, Index: idx, Vars: map[int]satoracle.VarID{}}
	sv.tiles = append(sv.tiles, ti)
	sv.tileMap[T] = idx

	for _, p := range sv.shape.Points() {
		tp := T.Apply(p)
		cidx, _ := sv.getCell(tp, true)
		ti.Cells = append(ti.Cells, cidx)
		sv.cells[cidx].Tiles = append(sv.cells[cidx].Tiles, idx)
	}

	if sv.reduce {
		sv.cellSetIndex[cellSetKey(ti.Cells)] = idx
	}

	return idx
}

// reusableTile reports whether T's placement covers exactly the same
// cells as some already-created tile — possible when the shape has a
// self-symmetry, so two distinct transforms place it congruently onto
// the same cell set. If every one of T's cells already exists, it
// checks the registry; a brand-new cell means T cannot match anything
// on record yet.
func (sv *Solver) reusableTile(T geom.Transform) (TileIndex, bool) {
	cells := make([]CellIndex, 0, sv.shape.Len())
	for _, p := range sv.shape.Points() {
		cidx, ok := sv.getCell(T.Apply(p), false)
		if !ok {
			return 0, false
		}
		cells = append(cells, cidx)
	}
	idx, ok := sv.cellSetIndex[cellSetKey(cells)]
	return idx, ok
}

// cellSetKey builds an order-independent key for a set of cell
// indices, used to detect two placements that cover the same cells.
func cellSetKey(cells []CellIndex) string {
	sorted := append([]CellIndex(nil), cells...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	var b strings.Builder
	for _, c := range sorted {
		b.WriteString(strconv.Itoa(int(c)))
		b.WriteByte(',')
	}
	return b.String()
}

// getShapeVariable returns the variable for placement T at level,
// creating the placement and/or the variable if either is missing.
func (sv *Solver) getShapeVariable(T geom.Transform, level int) satoracle.VarID {
	idx, ok := sv.tileMap[T]
	if !ok {
		idx = sv.createNewTile(T)
	}
	ti := sv.tiles[idx]

	if v, ok := ti.Vars[level]; ok {
		return v
	}
	v := sv.declareVariable()
	ti.Vars[level] = v
	return v
}

func (sv *Solver) extendLevelWithTransforms(lev int, Ts map[geom.Transform]bool) {
	sz := len(sv.tiles)
	for idx := 0; idx < sz; idx++ {
		ti := sv.tiles[idx]
		if !ti.HasLevel(lev) {
			continue
		}
		told := ti.T
		for T := range Ts {
			tnew := told.Compose(T)
			if tnew.IsIdentity() {
				continue
			}
			sv.getShapeVariable(tnew, lev+1)
		}
	}
}

// IncreaseLevel advances the corona level by one, materializing every
// placement reachable by one more edge-adjacency hop from the
// previous level.
func (sv *Solver) IncreaseLevel() {
	sv.level++
	if sv.level == 1 {
		for T := range sv.cloud.Adjacent {
			sv.getShapeVariable(T, 1)
		}
	} else {
		sv.extendLevelWithTransforms(sv.level-1, sv.cloud.Adjacent)
	}
}

func (sv *Solver) addHolesToLevel() {
	sv.extendLevelWithTransforms(sv.level-1, sv.cloud.AdjacentHole)
}

// getClauses emits every clause of 4.6.2 against oracle for the
// current level. When allowHoles is false, the outer corona additionally
// forbids adjacency-hole placements (clause 8).
func (sv *Solver) getClauses(o satoracle.Oracle, allowHoles bool) {
	o.AddClause([]satoracle.Lit{satoracle.Pos(sv.tiles[0].Vars[0])})

	// Placement implies its cells.
	for _, ti := range sv.tiles {
		for _, p := range sv.shape.Points() {
			tp := ti.T.Apply(p)
			cellVar, ok := sv.getCellVariable(tp)
			if !ok {
				continue
			}
			for _, v := range ti.Vars {
				o.AddClause([]satoracle.Lit{satoracle.Neg(v), satoracle.Pos(cellVar)})
			}
		}
	}

	// Cell implies some placement.
	for _, ci := range sv.cells {
		clause := []satoracle.Lit{satoracle.Neg(ci.Var)}
		for _, tidx := range ci.Tiles {
			ti := sv.tiles[tidx]
			for _, v := range ti.Vars {
				clause = append(clause, satoracle.Pos(v))
			}
		}
		o.AddClause(clause)
	}

	// Interior corona halo coverage. A placement whose halo can't be
	// fully referenced is forced unused at that level: its surround
	// could never be completed, so it can never legally appear here.
	for _, ti := range sv.tiles {
		for level, v := range ti.Vars {
			if level >= sv.level {
				continue
			}
			for _, p := range sv.cloud.Halo.Points() {
				tp := ti.T.Apply(p)
				cellVar, ok := sv.getCellVariable(tp)
				if !ok {
					o.AddClause([]satoracle.Lit{satoracle.Neg(v)})
					break
				}
				o.AddClause([]satoracle.Lit{satoracle.Neg(v), satoracle.Pos(cellVar)})
			}
		}
	}

	// No overlap between any two used placements.
	for _, ti := range sv.tiles {
		for M := range sv.cloud.Overlapping {
			tn := ti.T.Compose(M)
			tjIdx, ok := sv.getTile(tn)
			if !ok {
				continue
			}
			tj := sv.tiles[tjIdx]
			for _, vi := range ti.Vars {
				for _, vj := range tj.Vars {
					o.AddClause([]satoracle.Lit{satoracle.Neg(vi), satoracle.Neg(vj)})
				}
			}
		}
	}

	// Corona connectivity, no backward jumps, and (optionally) no
	// adjacency holes in the outer corona.
	for _, ti := range sv.tiles {
		for k, v := range ti.Vars {
			if k < 1 {
				continue
			}
			clause := []satoracle.Lit{satoracle.Neg(v)}
			for M := range sv.cloud.Adjacent {
				tn := ti.T.Compose(M)
				tjIdx, ok := sv.getTile(tn)
				if !ok {
					continue
				}
				tj := sv.tiles[tjIdx]
				for m, w := range tj.Vars {
					switch {
					case m == k-1:
						clause = append(clause, satoracle.Pos(w))
					case m < k-1:
						o.AddClause([]satoracle.Lit{satoracle.Neg(v), satoracle.Neg(w)})
					}
				}
			}
			if len(clause) > 1 {
				o.AddClause(clause)
			}

			if !allowHoles && k == sv.level {
				for M := range sv.cloud.AdjacentHole {
					tn := ti.T.Compose(M)
					tjIdx, ok := sv.getTile(tn)
					if !ok {
						continue
					}
					tj := sv.tiles[tjIdx]
					if w, ok := tj.Vars[k]; ok {
						o.AddClause([]satoracle.Lit{satoracle.Neg(v), satoracle.Neg(w)})
					}
				}
			}
		}
	}
}

func (sv *Solver) getSolution(model map[satoracle.VarID]satoracle.TriState) []Placement {
	var out []Placement
	for _, ti := range sv.tiles {
		for _, level := range ti.SortedLevels() {
			if model[ti.Vars[level]] == satoracle.True {
				out = append(out, Placement{Level: level, T: ti.T})
				break
			}
		}
	}
	return out
}

func (sv *Solver) modelHoleFinder(model map[satoracle.VarID]satoracle.TriState) *holefinder.Finder {
	finder := holefinder.New(sv.shape)
	for _, ti := range sv.tiles {
		for _, level := range ti.SortedLevels() {
			if model[ti.Vars[level]] == satoracle.True {
				finder.AddCopy(holefinder.TileIndex(ti.Index), ti.T)
				break
			}
		}
	}
	return finder
}

// HasCorona answers whether a corona at the current level exists,
// following 4.6.3's refinement loop: find a satisfying model, check it
// for holes, and if holes are found, forbid them and re-solve until
// either a hole-free model appears or the instance goes UNSAT (in
// which case the last hole-containing model is kept). If the
// strictly-hole-free encoding is UNSAT from the start, a second pass
// allows adjacency holes in the outer corona.
func (sv *Solver) HasCorona(ctx context.Context, wantSolution bool) (CoronaResult, error) {
	if sv.level == 0 {
		res := CoronaResult{Kind: HoleFree}
		if wantSolution {
			res.Patch = []Placement{{Level: 0, T: sv.shape.Grid().Orientations()[0]}}
		}
		return res, nil
	}

	if !sv.cloud.Surroundable {
		return CoronaResult{Kind: None}, nil
	}

	o := sv.newOracle()
	o.NewVars(sv.nextVar)
	sv.getClauses(o, false)

	status, err := o.Solve(ctx)
	if err != nil {
		return CoronaResult{Kind: Inconclusive}, err
	}
	if status == satoracle.Unknown {
		return CoronaResult{Kind: Inconclusive}, nil
	}

	if status == satoracle.SAT {
		model, err := o.GetModel()
		if err != nil {
			return CoronaResult{Kind: Inconclusive}, err
		}
		res := CoronaResult{Kind: HasHoles}
		if wantSolution {
			res.Patch = sv.getSolution(model)
		}

		for {
			finder := sv.modelHoleFinder(model)
			holes, found := finder.GetHoles()
			if !found {
				res.Kind = HoleFree
				if wantSolution {
					res.Patch = sv.getSolution(model)
				}
				return res, nil
			}

			for _, hole := range holes {
				clause := make([]satoracle.Lit, 0, len(hole))
				for _, idx := range hole {
					clause = append(clause, satoracle.Neg(sv.tiles[idx].Vars[sv.level]))
				}
				o.AddClause(clause)
			}

			status, err = o.Solve(ctx)
			if err != nil {
				return CoronaResult{Kind: Inconclusive}, err
			}
			if status == satoracle.Unknown {
				return CoronaResult{Kind: Inconclusive}, nil
			}
			if status == satoracle.UNSAT {
				// Ran out of hole-free options; keep the last captured
				// hole-containing solution.
				return res, nil
			}
			model, err = o.GetModel()
			if err != nil {
				return CoronaResult{Kind: Inconclusive}, err
			}
			if wantSolution {
				res.Patch = sv.getSolution(model)
			}
		}
	}

	// No solution at all without adjacency holes; try once more
	// allowing them in the outer corona.
	sv.addHolesToLevel()

	o2 := sv.newOracle()
	o2.NewVars(sv.nextVar)
	sv.getClauses(o2, true)

	status2, err := o2.Solve(ctx)
	if err != nil {
		return CoronaResult{Kind: Inconclusive}, err
	}
	if status2 == satoracle.Unknown {
		return CoronaResult{Kind: Inconclusive}, nil
	}
	if status2 == satoracle.UNSAT {
		return CoronaResult{Kind: None}, nil
	}

	res := CoronaResult{Kind: HasHoles}
	if wantSolution {
		model, err := o2.GetModel()
		if err != nil {
			return CoronaResult{Kind: Inconclusive}, err
		}
		res.Patch = sv.getSolution(model)
	}
	return res, nil
}

// AllCoronas enumerates every hole-free corona patch at the current
// level by repeatedly forbidding the just-found solution and
// re-solving until UNSAT.
func (sv *Solver) AllCoronas(ctx context.Context) ([][]Placement, error) {
	if !sv.cloud.Surroundable {
		return nil, nil
	}

	o := sv.newOracle()
	o.NewVars(sv.nextVar)
	sv.getClauses(o, false)

	var solutions [][]Placement
	for {
		status, err := o.Solve(ctx)
		if err != nil {
			return solutions, err
		}
		if status != satoracle.SAT {
			return solutions, nil
		}

		model, err := o.GetModel()
		if err != nil {
			return solutions, err
		}

		finder := holefinder.New(sv.shape)
		forbid := make([]satoracle.Lit, 0)
		for _, ti := range sv.tiles {
			for _, v := range ti.Vars {
				if model[v] == satoracle.True {
					finder.AddCopy(holefinder.TileIndex(ti.Index), ti.T)
					forbid = append(forbid, satoracle.Neg(v))
				}
			}
		}

		if _, found := finder.GetHoles(); !found {
			solutions = append(solutions, sv.getSolution(model))
		}

		o.AddClause(forbid)
	}
}

// IsIsohedral implements the 4.6.4 Conway-style shortcut: it looks for
// two adjacent translations T1, T2 (with their inverses also
// adjacent) such that T2·T1⁻¹ is adjacent and the eight placements
// {T1, T1⁻¹, T2, T2⁻¹, T1·T2⁻¹, T2·T1⁻¹, T1·T2, T1⁻¹·T2⁻¹} jointly
// cover every halo cell of the kernel. It only detects this
// translation-based case; half-turn and glide isohedral tilings are
// not covered (see DESIGN.md).
func (sv *Solver) IsIsohedral() bool {
	if !sv.cloud.Surroundable {
		return false
	}

	var translations []geom.Transform
	for T := range sv.cloud.Adjacent {
		if T.IsTranslation() && sv.cloud.Adjacent[T.Invert()] {
			translations = append(translations, T)
		}
	}

	for _, t1 := range translations {
		for _, t2 := range translations {
			if t1 == t2 {
				continue
			}
			if !sv.cloud.Adjacent[t2.Compose(t1.Invert())] {
				continue
			}
			placements := [8]geom.Transform{
				t1, t1.Invert(), t2, t2.Invert(),
				t1.Compose(t2.Invert()), t2.Compose(t1.Invert()),
				t1.Compose(t2), t1.Invert().Compose(t2.Invert()),
			}
			if sv.coversHalo(placements[:]) {
				return true
			}
		}
	}
	return false
}

func (sv *Solver) coversHalo(Ts []geom.Transform) bool {
	covered := make(map[geom.Point]bool, sv.cloud.Halo.Len()*2)
	for _, T := range Ts {
		for _, p := range sv.shape.Points() {
			covered[T.Apply(p)] = true
		}
	}
	for _, hp := range sv.cloud.Halo.Points() {
		if !covered[hp] {
			return false
		}
	}
	return true
}
