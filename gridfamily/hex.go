package gridfamily

import "github.com/heeschnum/heesch/geom"

func init() {
	register('H', func() Grid { return hexGrid{} })
}

// hexGrid is the hexagonal-cell family (polyhexes): one translation
// class, 12 orientations, 6 neighbors serving as both vertex- and
// edge-neighbors (every hex neighbor shares an edge).
type hexGrid struct{}

func (hexGrid) Code() byte   { return 'H' }
func (hexGrid) Name() string { return "hex" }

func (hexGrid) Orientations() []geom.Transform {
	return []geom.Transform{
		xf(1, 0, 0, 0, 1, 0),
		xf(0, -1, 0, 1, 1, 0),
		xf(-1, -1, 0, 1, 0, 0),
		xf(-1, 0, 0, 0, -1, 0),
		xf(0, 1, 0, -1, -1, 0),
		xf(1, 1, 0, -1, 0, 0),

		xf(0, 1, 0, 1, 0, 0),
		xf(-1, 0, 0, 1, 1, 0),
		xf(-1, -1, 0, 0, 1, 0),
		xf(0, -1, 0, -1, 0, 0),
		xf(1, 0, 0, -1, -1, 0),
		xf(1, 1, 0, 0, -1, 0),
	}
}

func (hexGrid) Origins() []geom.Point {
	return []geom.Point{pt(0, 0)}
}

var hexNeighbours = pts(
	0, -1, 0, 1, 1, 0, -1, 0, 1, -1, -1, 1,
)

func (hexGrid) Neighbors(geom.Point) []geom.Point     { return hexNeighbours }
func (hexGrid) EdgeNeighbors(geom.Point) []geom.Point { return hexNeighbours }
func (hexGrid) Translatable(p, q geom.Point) bool     { return true }
