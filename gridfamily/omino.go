package gridfamily

import "github.com/heeschnum/heesch/geom"

func init() {
	register('O', func() Grid { return ominoGrid{} })
}

// ominoGrid is the square-cell family (polyominoes): one translation
// class, 8 orientations (4 rotations x 2 reflections), 8 vertex
// neighbors, 4 edge neighbors.
type ominoGrid struct{}

func (ominoGrid) Code() byte   { return 'O' }
func (ominoGrid) Name() string { return "omino" }

func (ominoGrid) Orientations() []geom.Transform {
	return []geom.Transform{
		xf(1, 0, 0, 0, 1, 0), xf(0, -1, 0, 1, 0, 0),
		xf(-1, 0, 0, 0, -1, 0), xf(0, 1, 0, -1, 0, 0),
		xf(-1, 0, 0, 0, 1, 0), xf(0, -1, 0, -1, 0, 0),
		xf(1, 0, 0, 0, -1, 0), xf(0, 1, 0, 1, 0, 0),
	}
}

func (ominoGrid) Origins() []geom.Point {
	return []geom.Point{pt(0, 0)}
}

var ominoAllNeighbours = pts(
	-1, -1, 0, -1, 1, -1,
	-1, 0, 1, 0,
	-1, 1, 0, 1, 1, 1,
)

var ominoEdgeNeighbours = pts(
	0, -1, -1, 0, 1, 0, 0, 1,
)

func (ominoGrid) Neighbors(geom.Point) []geom.Point     { return ominoAllNeighbours }
func (ominoGrid) EdgeNeighbors(geom.Point) []geom.Point { return ominoEdgeNeighbours }
func (ominoGrid) Translatable(p, q geom.Point) bool     { return true }
