package shape_test

import (
	"testing"

	"github.com/heeschnum/heesch/geom"
	"github.com/heeschnum/heesch/gridfamily"
	"github.com/heeschnum/heesch/shape"
)

func ominoShape(pts ...geom.Point) *shape.Shape {
	g, _ := gridfamily.ByCode('O')
	s := shape.New(g)
	for _, p := range pts {
		s.Add(p)
	}
	s.Complete()
	return s
}

func TestCompleteSortsLexicographically(t *testing.T) {
	s := ominoShape(geom.Point{X: 1, Y: 0}, geom.Point{X: 0, Y: 0}, geom.Point{X: 0, Y: -1})
	got := s.Points()
	want := []geom.Point{{X: 0, Y: -1}, {X: 0, Y: 0}, {X: 1, Y: 0}}
	if len(got) != len(want) {
		t.Fatalf("len = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pts[%d] = %+v; want %+v", i, got[i], want[i])
		}
	}
}

func TestIntersectsAndEqual(t *testing.T) {
	a := ominoShape(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0})
	b := ominoShape(geom.Point{X: 1, Y: 0}, geom.Point{X: 2, Y: 0})
	c := ominoShape(geom.Point{X: 5, Y: 5})

	if !a.Intersects(b) {
		t.Error("expected a, b to intersect at (1,0)")
	}
	if a.Intersects(c) {
		t.Error("expected a, c to not intersect")
	}
	if a.Equal(b) {
		t.Error("a, b should not be equal")
	}
	d := ominoShape(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0})
	if !a.Equal(d) {
		t.Error("a, d should be equal")
	}
}

func TestResetAppliesTransform(t *testing.T) {
	s := ominoShape(geom.Point{X: 1, Y: 0}, geom.Point{X: 0, Y: 0})
	rot90 := geom.Transform{A: 0, B: -1, D: 1, E: 0}

	out := shape.New(nil)
	out.Reset(s, rot90)

	want := ominoShape(geom.Point{X: 0, Y: 1}, geom.Point{X: 0, Y: 0})
	if !out.Equal(want) {
		t.Errorf("Reset result = %+v; want %+v", out.Points(), want.Points())
	}
}

func TestUntranslateAndEquivalent(t *testing.T) {
	a := ominoShape(geom.Point{X: 5, Y: 5}, geom.Point{X: 6, Y: 5})
	b := ominoShape(geom.Point{X: -3, Y: -3}, geom.Point{X: -2, Y: -3})

	if !a.Equivalent(b) {
		t.Error("expected a, b to be translation-equivalent")
	}

	c := ominoShape(geom.Point{X: 0, Y: 0}, geom.Point{X: 0, Y: 1})
	if a.Equivalent(c) {
		t.Error("a, c have different shapes and should not be equivalent")
	}
}

func TestCompareOrdersByLengthThenLex(t *testing.T) {
	small := ominoShape(geom.Point{X: 0, Y: 0})
	big := ominoShape(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0})

	if small.Compare(big) >= 0 {
		t.Error("expected smaller shape to compare less than bigger shape")
	}
	if big.Compare(small) <= 0 {
		t.Error("expected bigger shape to compare greater than smaller shape")
	}
	if small.Compare(small) != 0 {
		t.Error("expected shape to compare equal to itself")
	}
}

func TestGetHaloAndBorderSingleCell(t *testing.T) {
	s := ominoShape(geom.Point{X: 0, Y: 0})
	halo, border := shape.New(s.Grid()), shape.New(s.Grid())
	s.GetHaloAndBorder(halo, border)

	if border.Len() != 1 {
		t.Errorf("border.Len() = %d; want 1 (single cell is always border)", border.Len())
	}
	if halo.Len() != 8 {
		t.Errorf("halo.Len() = %d; want 8 vertex-neighbors of a lone omino cell", halo.Len())
	}
}

func TestSimplyConnectedSolidShapeIsTrue(t *testing.T) {
	s := ominoShape(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0},
		geom.Point{X: 0, Y: 1}, geom.Point{X: 1, Y: 1},
	)
	if !s.SimplyConnected() {
		t.Error("solid 2x2 square should be simply connected")
	}
}

func TestSimplyConnectedRingEnclosesHole(t *testing.T) {
	// A 3x3 square with the center cell missing: an annular ring whose
	// halo has an unreachable interior component (the hole), so the
	// halo splits into two components and the shape is not simply
	// connected.
	s := ominoShape(
		geom.Point{X: -1, Y: -1}, geom.Point{X: 0, Y: -1}, geom.Point{X: 1, Y: -1},
		geom.Point{X: -1, Y: 0}, geom.Point{X: 1, Y: 0},
		geom.Point{X: -1, Y: 1}, geom.Point{X: 0, Y: 1}, geom.Point{X: 1, Y: 1},
	)
	if s.SimplyConnected() {
		t.Error("ring with a missing center cell should enclose a hole")
	}
}

func TestGetEdgeHaloExcludesShapeCells(t *testing.T) {
	s := ominoShape(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0})
	halo := s.GetEdgeHalo()
	for _, p := range halo.Points() {
		if s.Intersects(ominoShape(p)) {
			t.Errorf("edge halo contains shape cell %+v", p)
		}
	}
	if halo.Len() == 0 {
		t.Error("expected nonempty edge halo for a 2-cell shape")
	}
}
