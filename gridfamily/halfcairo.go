package gridfamily

import "github.com/heeschnum/heesch/geom"

func init() {
	register('h', func() Grid { return halfCairoGrid{} })
}

// halfCairoGrid is the poly-halfcairo family: 8 translation classes
// (4 triangle orientations, 4 kite orientations) on a period-3
// lattice, keyed by (x mod 3, y mod 3). Triangle cells have 10
// vertex / 3 edge neighbors; kite cells have 12 vertex / 4 edge
// neighbors. 8 orientations. Each class's vectors are the canonical
// triangle/kite neighborhood rotated into the class's orientation.
type halfCairoGrid struct{}

func (halfCairoGrid) Code() byte   { return 'h' }
func (halfCairoGrid) Name() string { return "halfcairo" }

func (halfCairoGrid) Orientations() []geom.Transform {
	return ominoGrid{}.Orientations()
}

// halfCairoOrigins is halfCairoTypeTable inverted: one (x mod 3, y
// mod 3) representative per class, indexed by class.
var halfCairoOrigins = [8]geom.Point{
	pt(1, 0), // class 0
	pt(1, 1), // class 1
	pt(0, 1), // class 2
	pt(2, 1), // class 3
	pt(2, 0), // class 4
	pt(2, 2), // class 5
	pt(0, 2), // class 6
	pt(1, 2), // class 7
}

func (halfCairoGrid) Origins() []geom.Point {
	return halfCairoOrigins[:]
}

// halfCairoTypeTable mirrors the original's `types[(ym*3)+xm]` lookup,
// with slot 0 (xm=0,ym=0, the grid hub, never a cell) mapped to type 0.
var halfCairoTypeTable = [9]int{0, 0, 4, 2, 1, 3, 6, 7, 5}

func halfCairoType(p geom.Point) int {
	xm := int(((p.X % 3) + 3) % 3)
	ym := int(((p.Y % 3) + 3) % 3)
	return halfCairoTypeTable[ym*3+xm]
}

func halfCairoIsTriangle(class int) bool { return class%2 == 0 }

var halfCairoTriangleAll = pts(
	1, 0, -1, 0, 0, 1, 0, -1, 1, 1,
	-1, 1, 1, -1, -1, -1, 1, -2, -2, 1,
)

var halfCairoKiteAll = pts(
	1, 0, -1, 0, 0, 1, 0, -1, 1, 1,
	-1, 1, 1, -1, -1, -1, 1, -2, -2, 1, 2, -1, -1, 2,
)

var halfCairoTriangleEdge = pts(1, 0, 0, 1, -1, -1)
var halfCairoKiteEdge = pts(1, 0, -1, 0, 0, 1, 0, -1)

func (halfCairoGrid) Neighbors(p geom.Point) []geom.Point {
	class := halfCairoType(p)
	t := ominoGrid{}.Orientations()[class]
	if halfCairoIsTriangle(class) {
		return rotateVectors(t, halfCairoTriangleAll)
	}
	return rotateVectors(t, halfCairoKiteAll)
}

func (halfCairoGrid) EdgeNeighbors(p geom.Point) []geom.Point {
	class := halfCairoType(p)
	t := ominoGrid{}.Orientations()[class]
	if halfCairoIsTriangle(class) {
		return rotateVectors(t, halfCairoTriangleEdge)
	}
	return rotateVectors(t, halfCairoKiteEdge)
}

func (halfCairoGrid) Translatable(p, q geom.Point) bool {
	return halfCairoType(p) == halfCairoType(q)
}
