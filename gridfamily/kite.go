package gridfamily

import "github.com/heeschnum/heesch/geom"

func init() {
	register('K', func() Grid { return kiteGrid{} })
}

// kiteGrid is the kite-quadrilateral family (polykites): 6
// translation classes on a period-6 parallelogram, 6 orientations
// (rotations only - kites have no reflection symmetry, per the design's
// grid-interface note), 9 vertex / 4 edge neighbors. Each class's
// vectors are the canonical kite neighborhood rotated through the
// class's 1-of-6 rotation (see rotateVectors).
type kiteGrid struct{}

func (kiteGrid) Code() byte   { return 'K' }
func (kiteGrid) Name() string { return "kite" }

// kiteRotations is the pure-rotation subgroup (no reflections) of the
// hexagonal lattice's symmetry group: 6 rotations by 60 degrees.
func kiteRotations() []geom.Transform {
	return hexGrid{}.Orientations()[:6]
}

func (kiteGrid) Orientations() []geom.Transform {
	return kiteRotations()
}

// Origins returns one representative point per translation class.
// kiteType(p) = (p.X + 2*p.Y) mod 6, so pt(i, 0) lands in class i
// directly; no search is needed to invert it.
func (kiteGrid) Origins() []geom.Point {
	origins := make([]geom.Point, 6)
	for i := range origins {
		origins[i] = pt(int32(i), 0)
	}
	return origins
}

func kiteType(p geom.Point) int {
	return int((((p.X+2*p.Y)%6)+6)%6)
}

var kiteBaseAll = pts(
	1, 0, 0, 1, -1, 1, -1, 0, 0, -1, 1, -1,
	1, 1, -1, 2, -2, 1,
)

var kiteBaseEdge = pts(1, 0, 0, 1, -1, 0, 0, -1)

func (kiteGrid) Neighbors(p geom.Point) []geom.Point {
	rs := kiteRotations()
	idx := kiteType(p)
	return rotateVectors(rs[idx], kiteBaseAll)
}

func (kiteGrid) EdgeNeighbors(p geom.Point) []geom.Point {
	rs := kiteRotations()
	idx := kiteType(p)
	return rotateVectors(rs[idx], kiteBaseEdge)
}

func (kiteGrid) Translatable(p, q geom.Point) bool {
	return kiteType(p) == kiteType(q)
}
