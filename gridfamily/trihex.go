package gridfamily

import "github.com/heeschnum/heesch/geom"

func init() {
	register('T', func() Grid { return trihexGrid{} })
}

// trihexGrid is the poly-[3.6.3.6] family: three translation classes
// (one hexagon, two triangle orientations) keyed by (x-y) mod 3.
// Hexagon cells have 12 vertex / 6 edge neighbors; triangle cells have
// 6 vertex / 3 edge neighbors. Reuses the hex orientation group (12
// orientations), since the tiling shares the hexagonal lattice's
// rotation/reflection symmetries.
type trihexGrid struct{}

func (trihexGrid) Code() byte   { return 'T' }
func (trihexGrid) Name() string { return "trihex" }

func (trihexGrid) Orientations() []geom.Transform {
	return hexGrid{}.Orientations()
}

func (trihexGrid) Origins() []geom.Point {
	return []geom.Point{pt(0, 0), pt(1, 0), pt(2, 0)}
}

func trihexType(p geom.Point) int {
	return int((((p.X-p.Y)%3)+3)%3)
}

var trihexAllByType = [3][]geom.Point{
	pts(
		0, -1, 1, -1, -1, 0, 1, 0, -1, 1, 0, 1,
		-2, 1, -1, 2, 1, 1, 2, -1, 1, -2, -1, -1,
	),
	pts(1, 0, -1, 1, 0, -1, 0, 1, 1, -1, -1, 0),
	pts(1, 0, -1, 1, 0, -1, 0, 1, 1, -1, -1, 0),
}

var trihexEdgeByType = [3][]geom.Point{
	pts(0, -1, 0, 1, 1, 0, -1, 0, 1, -1, -1, 1),
	pts(0, 1, 1, -1, -1, 0),
	pts(1, 0, -1, 1, 0, -1),
}

func (trihexGrid) Neighbors(p geom.Point) []geom.Point {
	return trihexAllByType[trihexType(p)]
}

func (trihexGrid) EdgeNeighbors(p geom.Point) []geom.Point {
	return trihexEdgeByType[trihexType(p)]
}

func (trihexGrid) Translatable(p, q geom.Point) bool {
	return trihexType(p) == trihexType(q)
}
