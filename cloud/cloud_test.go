package cloud_test

import (
	"testing"

	"github.com/heeschnum/heesch/cloud"
	"github.com/heeschnum/heesch/geom"
	"github.com/heeschnum/heesch/gridfamily"
	"github.com/heeschnum/heesch/shape"
)

func omino(pts ...geom.Point) *shape.Shape {
	g, _ := gridfamily.ByCode('O')
	s := shape.New(g)
	for _, p := range pts {
		s.Add(p)
	}
	s.Complete()
	return s
}

func TestSingleSquareIsSurroundable(t *testing.T) {
	s := omino(geom.Point{X: 0, Y: 0})
	c := cloud.New(s)

	if !c.Surroundable {
		t.Fatal("a single square should always be surroundable")
	}
	if len(c.Adjacent) == 0 {
		t.Error("expected at least one adjacency for a single square")
	}
}

func TestStraightTriominoIsSurroundable(t *testing.T) {
	s := omino(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, geom.Point{X: 2, Y: 0})
	c := cloud.New(s)

	if !c.Surroundable {
		t.Fatal("a straight triomino should be surroundable")
	}
}

func TestAdjacentClosedUnderInversion(t *testing.T) {
	s := omino(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0})
	c := cloud.New(s)

	for T := range c.Adjacent {
		if !c.Adjacent[T.Invert()] {
			t.Errorf("adjacent transform %+v not closed under inversion", T)
		}
	}
	for T := range c.AdjacentHole {
		if !c.AdjacentHole[T.Invert()] {
			t.Errorf("hole-adjacent transform %+v not closed under inversion", T)
		}
	}
}

func TestOverlapAdjacentDisjoint(t *testing.T) {
	s := omino(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, geom.Point{X: 0, Y: 1})
	c := cloud.New(s)

	for T := range c.Overlapping {
		if c.Adjacent[T] || c.AdjacentHole[T] {
			t.Errorf("transform %+v classified as both overlapping and adjacent", T)
		}
	}
}
