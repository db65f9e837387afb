package gridfamily

import "github.com/heeschnum/heesch/geom"

func init() {
	register('A', func() Grid { return aboloGrid{} })
}

// aboloGrid is the right-triangle family (polyaboloes): four
// translation classes laid out on a period-2x2 block, keyed by
// (x mod 2, y mod 2) after a row-parity shift. 8 orientations, 14
// vertex neighbors, 3 edge neighbors.
type aboloGrid struct{}

func (aboloGrid) Code() byte   { return 'A' }
func (aboloGrid) Name() string { return "abolo" }

func (aboloGrid) Orientations() []geom.Transform {
	return []geom.Transform{
		xf(1, 0, 0, 0, 1, 0),
		xf(0, -1, 1, 1, 0, 0),
		xf(-1, 0, 1, 0, -1, 1),
		xf(0, 1, 0, -1, 0, 1),

		xf(-1, 0, 1, 0, 1, 0),
		xf(0, -1, 1, -1, 0, 1),
		xf(1, 0, 0, 0, -1, 1),
		xf(0, 1, 0, 1, 0, 0),
	}
}

func (aboloGrid) Origins() []geom.Point {
	return []geom.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)}
}

func aboloType(p geom.Point) int {
	x := p.X
	if (((p.Y/2)%2)+2)%2 == 0 {
		x -= 2
	}
	cx := ((x % 2) + 2) % 2
	cy := ((p.Y % 2) + 2) % 2
	switch {
	case cx == 0 && cy == 0:
		return 0
	case cx == 1 && cy == 0:
		return 1
	case cx == 1 && cy == 1:
		return 2
	default:
		return 3
	}
}

var aboloAllByType = [4][]geom.Point{
	pts(1, 0, 0, 1, -1, -1, 2, -1, 2, -2, 1, -3, 0, -3, -1, -2, -2, -1, -3, 0, -3, 1, -2, 2, -1, 2, 1, 1),
	pts(-1, 0, 0, 1, 1, -1, 1, 2, 2, 2, 3, 1, 3, 0, 2, -1, 1, -2, 0, -3, -1, -3, -2, -2, -2, -1, -1, 1),
	pts(-1, 0, 0, -1, 1, 1, -2, 1, -2, 2, -1, 3, 0, 3, 1, 2, 2, 1, 3, 0, 3, -1, 2, -2, 1, -2, -1, -1),
	pts(1, 0, 0, -1, -1, 1, -1, -2, -2, -2, -3, -1, -3, 0, -2, 1, -1, 2, 0, 3, 1, 3, 2, 2, 2, 1, 1, -1),
}

var aboloEdgeByType = [4][]geom.Point{
	pts(1, 0, 0, 1, -1, -1),
	pts(-1, 0, 0, 1, 1, -1),
	pts(-1, 0, 0, -1, 1, 1),
	pts(1, 0, 0, -1, -1, 1),
}

func (aboloGrid) Neighbors(p geom.Point) []geom.Point {
	return aboloAllByType[aboloType(p)]
}

func (aboloGrid) EdgeNeighbors(p geom.Point) []geom.Point {
	return aboloEdgeByType[aboloType(p)]
}

func (aboloGrid) Translatable(p, q geom.Point) bool {
	return aboloType(p) == aboloType(q)
}
