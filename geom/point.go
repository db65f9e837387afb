package geom

// Point is a cell coordinate in a grid's native integer coordinate
// system. Zero value is the origin.
type Point struct {
	X, Y int32
}

// Add returns p+q component-wise.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q component-wise.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Less orders points lexicographically by (Y, X), matching the sort
// order shape.Shape.Complete relies on.
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// LessEq is Less or equal, used by halo/border boundary scans.
func (p Point) LessEq(q Point) bool {
	return p == q || p.Less(q)
}
