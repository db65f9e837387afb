package gridfamily

import "github.com/heeschnum/heesch/geom"

func init() {
	register('I', func() Grid { return iamondGrid{} })
}

// iamondGrid is the triangular-cell family (polyiamonds): cells split
// into two translation classes ("black" upward and "grey" downward
// triangles) distinguished by x mod 3, each with its own neighbor
// vectors; 12 orientations, 12 vertex neighbors, 3 edge neighbors.
type iamondGrid struct{}

func (iamondGrid) Code() byte   { return 'I' }
func (iamondGrid) Name() string { return "iamond" }

func (iamondGrid) Orientations() []geom.Transform {
	return []geom.Transform{
		xf(1, 0, 0, 0, 1, 0),
		xf(-1, -1, 0, 1, 0, 0),
		xf(0, 1, 0, -1, -1, 0),
		xf(1, 0, 0, -1, -1, 0),
		xf(0, 1, 0, 1, 0, 0),
		xf(-1, -1, 0, 0, 1, 0),
		xf(0, -1, 1, -1, 0, 1),
		xf(-1, 0, 1, 1, 1, 1),
		xf(1, 1, 1, 0, -1, 1),
		xf(1, 1, 1, -1, 0, 1),
		xf(-1, 0, 1, 0, -1, 1),
		xf(0, -1, 1, 1, 1, 1),
	}
}

func (iamondGrid) Origins() []geom.Point {
	return []geom.Point{pt(0, 0), pt(1, 0)}
}

func isBlack(p geom.Point) bool {
	return ((p.X % 3) + 3) % 3 == 0
}

var iamondAllBlack = pts(
	3, 0, 0, 3, -3, 3, -3, 0, 0, -3, 3, -3,
	1, 1, -2, 4, -2, 1, -2, -2, 1, -2, 4, -2,
)

var iamondAllGrey = pts(
	3, 0, 0, 3, -3, 3, -3, 0, 0, -3, 3, -3,
	2, 2, 2, -1, 2, -4, -1, -1, -4, 2, -1, 2,
)

var iamondEdgeBlack = pts(1, 1, -2, 1, 1, -2)
var iamondEdgeGrey = pts(-1, -1, 2, -1, -1, 2)

func (iamondGrid) Neighbors(p geom.Point) []geom.Point {
	if isBlack(p) {
		return iamondAllBlack
	}
	return iamondAllGrey
}

func (iamondGrid) EdgeNeighbors(p geom.Point) []geom.Point {
	if isBlack(p) {
		return iamondEdgeBlack
	}
	return iamondEdgeGrey
}

func (iamondGrid) Translatable(p, q geom.Point) bool {
	return ((p.X-q.X)%3+3)%3 == 0
}
