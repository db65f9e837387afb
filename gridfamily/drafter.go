package gridfamily

import "github.com/heeschnum/heesch/geom"

func init() {
	register('D', func() Grid { return drafterGrid{} })
}

// drafterGrid is the 30-60-90-triangle family (polydrafters): 12
// translation classes laid out on the hexagonal lattice, one per
// triangle sub-orientation, 12 orientations, 16 vertex / 3 edge
// neighbors. Each class's neighbor vectors are the canonical
// right-triangle neighborhood rotated into that class's orientation
// (see rotateVectors) rather than a hand-ported 12x16 table.
type drafterGrid struct{}

func (drafterGrid) Code() byte   { return 'D' }
func (drafterGrid) Name() string { return "drafter" }

func (drafterGrid) Orientations() []geom.Transform {
	return hexGrid{}.Orientations()[:12]
}

// Origins returns one representative point per translation class.
// drafterType(p) = (p.X + 2*p.Y) mod 12, so pt(i, 0) lands in class i
// directly; no search is needed to invert it.
func (g drafterGrid) Origins() []geom.Point {
	origins := make([]geom.Point, 12)
	for i := range origins {
		origins[i] = pt(int32(i), 0)
	}
	return origins
}

func drafterType(p geom.Point) int {
	return int((((p.X+2*p.Y)%12)+12)%12)
}

var drafterBaseAll = pts(
	1, 0, -1, 1, 0, -1, 0, 1, 1, -1, -1, 0,
	2, -1, -2, 1, 2, 0, -2, 0, 1, 1, -1, -1,
	2, 1, -2, -1, 1, -2, -1, 2,
)

var drafterBaseEdge = pts(1, 0, -1, 1, 0, -1)

func (drafterGrid) Neighbors(p geom.Point) []geom.Point {
	idx := drafterType(p)
	return rotateVectors(hexGrid{}.Orientations()[idx], drafterBaseAll)
}

func (drafterGrid) EdgeNeighbors(p geom.Point) []geom.Point {
	idx := drafterType(p)
	return rotateVectors(hexGrid{}.Orientations()[idx], drafterBaseEdge)
}

func (drafterGrid) Translatable(p, q geom.Point) bool {
	return drafterType(p) == drafterType(q)
}
