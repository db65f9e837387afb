package holefinder_test

import (
	"testing"

	"github.com/heeschnum/heesch/geom"
	"github.com/heeschnum/heesch/gridfamily"
	"github.com/heeschnum/heesch/holefinder"
	"github.com/heeschnum/heesch/shape"
)

func singleCell() *shape.Shape {
	g, _ := gridfamily.ByCode('O')
	s := shape.New(g)
	s.Add(geom.Point{X: 0, Y: 0})
	s.Complete()
	return s
}

func TestNoHolesWithoutRing(t *testing.T) {
	f := holefinder.New(singleCell())
	f.AddCopy(0, geom.Identity)

	holes, found := f.GetHoles()
	if found {
		t.Errorf("a lone cell should have no holes, got %v", holes)
	}
}

func TestRingOfCellsEnclosesHole(t *testing.T) {
	s := singleCell()
	f := holefinder.New(s)

	// Place 8 copies forming the ring around (0,0), leaving (0,0) itself
	// empty: a one-cell hole surrounded by 8 owners.
	offsets := []geom.Point{
		{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
		{X: -1, Y: 0}, {X: 1, Y: 0},
		{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
	}
	for i, off := range offsets {
		f.AddCopy(holefinder.TileIndex(i), geom.Identity.Translate(off))
	}

	holes, found := f.GetHoles()
	if !found {
		t.Fatal("expected the ring to enclose a hole at the origin")
	}
	if len(holes) != 1 {
		t.Fatalf("expected exactly one hole, got %d", len(holes))
	}
	if len(holes[0]) == 0 {
		t.Error("expected the hole to have at least one owner")
	}
}
