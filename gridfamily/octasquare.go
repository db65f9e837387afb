package gridfamily

import "github.com/heeschnum/heesch/geom"

func init() {
	register('o', func() Grid { return octasquareGrid{} })
}

// octasquareGrid mixes square and octagon cells: the two translation
// classes are distinguished by parity of x+y. A square cell has 4
// neighbors (both vertex- and edge-); an octagon cell has 8. 8
// orientations.
type octasquareGrid struct{}

func (octasquareGrid) Code() byte   { return 'o' }
func (octasquareGrid) Name() string { return "octasquare" }

func (octasquareGrid) Orientations() []geom.Transform {
	return []geom.Transform{
		xf(1, 0, 0, 0, 1, 0), xf(0, -1, 0, 1, 0, 0),
		xf(-1, 0, 0, 0, -1, 0), xf(0, 1, 0, -1, 0, 0),
		xf(-1, 0, 0, 0, 1, 0), xf(0, -1, 0, -1, 0, 0),
		xf(1, 0, 0, 0, -1, 0), xf(0, 1, 0, 1, 0, 0),
	}
}

func (octasquareGrid) Origins() []geom.Point {
	return []geom.Point{pt(0, 0), pt(1, 0)}
}

var octasquareAll = pts(
	-1, -1, 0, -1, 1, -1,
	-1, 0, 1, 0,
	-1, 1, 0, 1, 1, 1,
)

var octasquareSquareOnly = pts(0, -1, -1, 0, 1, 0, 0, 1)

func octasquareIsSquare(p geom.Point) bool {
	return (((p.X+p.Y)%2)+2)%2 == 0
}

func (octasquareGrid) Neighbors(p geom.Point) []geom.Point {
	if octasquareIsSquare(p) {
		return octasquareSquareOnly
	}
	return octasquareAll
}

func (g octasquareGrid) EdgeNeighbors(p geom.Point) []geom.Point {
	return g.Neighbors(p)
}

func octasquareType(p geom.Point) int {
	return int(((p.X+p.Y)%2 + 2) % 2)
}

func (octasquareGrid) Translatable(p, q geom.Point) bool {
	return octasquareType(p) == octasquareType(q)
}
