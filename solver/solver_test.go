package solver_test

import (
	"context"
	"testing"

	"github.com/heeschnum/heesch/geom"
	"github.com/heeschnum/heesch/gridfamily"
	"github.com/heeschnum/heesch/satoracle"
	"github.com/heeschnum/heesch/shape"
	"github.com/heeschnum/heesch/solver"
)

// unknownOracle always reports Unknown with a nil error, simulating a
// backend that gave up within its budget (e.g. a canceled context)
// rather than proving SAT or UNSAT.
type unknownOracle struct{}

func (unknownOracle) NewVars(n int) []satoracle.VarID { return make([]satoracle.VarID, n) }
func (unknownOracle) AddClause(lits []satoracle.Lit)  {}
func (unknownOracle) Solve(ctx context.Context) (satoracle.Status, error) {
	return satoracle.Unknown, nil
}
func (unknownOracle) GetModel() (map[satoracle.VarID]satoracle.TriState, error) {
	return nil, satoracle.ErrNoModel
}

func ominoShape(coords ...int32) *shape.Shape {
	g, _ := gridfamily.ByCode('O')
	s := shape.New(g)
	for i := 0; i+1 < len(coords); i += 2 {
		s.Add(geom.Point{X: coords[i], Y: coords[i+1]})
	}
	s.Complete()
	return s
}

func hexShape(coords ...int32) *shape.Shape {
	g, _ := gridfamily.ByCode('H')
	s := shape.New(g)
	for i := 0; i+1 < len(coords); i += 2 {
		s.Add(geom.Point{X: coords[i], Y: coords[i+1]})
	}
	s.Complete()
	return s
}

func TestLevel0AlwaysHoleFree(t *testing.T) {
	sv := solver.New(ominoShape(0, 0))
	res, err := sv.HasCorona(context.Background(), true)
	if err != nil {
		t.Fatalf("HasCorona: %v", err)
	}
	if res.Kind != solver.HoleFree {
		t.Fatalf("level 0 result kind = %v; want HoleFree", res.Kind)
	}
	if len(res.Patch) != 1 || res.Patch[0].Level != 0 {
		t.Errorf("level 0 patch = %+v; want single level-0 placement", res.Patch)
	}
}

func TestSingleSquareIsohedral(t *testing.T) {
	sv := solver.New(ominoShape(0, 0))
	sv.IncreaseLevel()
	if !sv.IsIsohedral() {
		t.Error("a single square should tile isohedrally")
	}
}

func TestStraightTriominoIsohedral(t *testing.T) {
	sv := solver.New(ominoShape(0, 0, 1, 0, 2, 0))
	sv.IncreaseLevel()
	if !sv.IsIsohedral() {
		t.Error("a straight triomino should tile isohedrally")
	}
}

func TestLTetrominoIsohedral(t *testing.T) {
	sv := solver.New(ominoShape(0, 0, 1, 0, 2, 0, 0, 1))
	sv.IncreaseLevel()
	if !sv.IsIsohedral() {
		t.Error("an L-tetromino should tile isohedrally")
	}
}

// validatePatch checks the invariants of §8: every placement at level
// i < k has its halo covered, no two placements overlap, and the
// union is simply connected.
func validatePatch(t *testing.T, s *shape.Shape, patch []solver.Placement, level int) {
	t.Helper()

	union := shape.New(s.Grid())
	for _, pl := range patch {
		copyShape := shape.New(s.Grid())
		copyShape.Reset(s, pl.T)
		if union.Intersects(copyShape) {
			t.Errorf("placement at level %d transform %+v overlaps existing union", pl.Level, pl.T)
		}
		union.AddShape(copyShape)
	}
	union.Complete()

	halo, border := shape.New(s.Grid()), shape.New(s.Grid())
	s.GetHaloAndBorder(halo, border)
	covered := make(map[geom.Point]bool, union.Len())
	for _, p := range union.Points() {
		covered[p] = true
	}
	for _, pl := range patch {
		if pl.Level >= level {
			continue
		}
		for _, hp := range halo.Points() {
			if q := pl.T.Apply(hp); !covered[q] {
				t.Errorf("placement at level %d transform %+v leaves halo cell %+v uncovered", pl.Level, pl.T, q)
			}
		}
	}

	if !union.SimplyConnected() {
		t.Error("patch union is not simply connected")
	}
}

func TestTTetrominoHasCoronaAtLevel2(t *testing.T) {
	s := ominoShape(0, 0, 1, 0, 2, 0, 1, 1)
	sv := solver.New(s)
	sv.IncreaseLevel()
	sv.IncreaseLevel()

	res, err := sv.HasCorona(context.Background(), true)
	if err != nil {
		t.Fatalf("HasCorona: %v", err)
	}
	if res.Kind == solver.None {
		t.Fatal("expected a corona of some kind at level 2 for the T-tetromino")
	}
	if res.Kind == solver.HoleFree {
		validatePatch(t, s, res.Patch, 2)
	}
}

func TestPropellerHexLevel2(t *testing.T) {
	s := hexShape(0, 0, 1, 0, 0, 1, 2, 0, -1, 1)
	sv := solver.New(s)
	sv.IncreaseLevel()
	sv.IncreaseLevel()

	res, err := sv.HasCorona(context.Background(), true)
	if err != nil {
		t.Fatalf("HasCorona: %v", err)
	}
	if res.Kind == solver.None {
		t.Fatal("expected a level-2 corona for the propeller polyhex")
	}
}

func TestNotSurroundableReturnsNone(t *testing.T) {
	// A degenerate shape whose halo contains a cell no adjacency can
	// cover should report Hc = 0 without ever invoking the oracle.
	g, _ := gridfamily.ByCode('O')
	s := shape.New(g)
	s.Add(geom.Point{X: 0, Y: 0})
	s.Add(geom.Point{X: 5, Y: 5})
	s.Complete()

	sv := solver.New(s)
	if sv.Surroundable() {
		t.Skip("this grid family happened to surround a disconnected shape; skip")
	}
	sv.IncreaseLevel()
	res, err := sv.HasCorona(context.Background(), false)
	if err != nil {
		t.Fatalf("HasCorona: %v", err)
	}
	if res.Kind != solver.None {
		t.Errorf("result kind = %v; want None for an unsurroundable shape", res.Kind)
	}
}

func TestReduceDedupesSymmetricPlacements(t *testing.T) {
	// A single cell has no internal orientation to distinguish: every
	// adjacency transform that lands it on the same neighboring cell
	// is a redundant placement, regardless of the rotation it carries.
	plain := solver.New(ominoShape(0, 0))
	plain.IncreaseLevel()

	reduced := solver.New(ominoShape(0, 0), solver.WithReduce())
	reduced.IncreaseLevel()

	if reduced.TileCount() >= plain.TileCount() {
		t.Errorf("reduced tile count = %d; want fewer than unreduced %d", reduced.TileCount(), plain.TileCount())
	}
}

func TestUnknownOracleStatusIsInconclusiveNotNone(t *testing.T) {
	sv := solver.New(ominoShape(0, 0), solver.WithOracleFactory(func() satoracle.Oracle {
		return unknownOracle{}
	}))
	sv.IncreaseLevel()
	res, err := sv.HasCorona(context.Background(), false)
	if err != nil {
		t.Fatalf("HasCorona: %v", err)
	}
	if res.Kind != solver.Inconclusive {
		t.Fatalf("result kind = %v; want Inconclusive for an Unknown oracle status", res.Kind)
	}
}
