package cloud

import (
	"github.com/heeschnum/heesch/geom"
	"github.com/heeschnum/heesch/shape"
)

// Orientation is one oriented copy of the central shape: the transform
// T applied to it, and the resulting shape/halo/border.
type Orientation struct {
	T      geom.Transform
	Shape  *shape.Shape
	Halo   *shape.Shape
	Border *shape.Shape
}

// Cloud classifies every transform that places a copy of a shape
// relative to a fixed central copy of itself. A transform falls into
// exactly one of three sets: Overlapping (the two copies share a
// cell), Adjacent (the union of the two copies is simply connected),
// or AdjacentHole (the union touches but encloses a hole). Both
// Adjacent and AdjacentHole are closed under inversion: if T places a
// neighbor, T^-1 places the center relative to that neighbor.
type Cloud struct {
	Shape  *shape.Shape
	Halo   *shape.Shape
	Border *shape.Shape

	Orientations []Orientation

	Adjacent     map[geom.Transform]bool
	AdjacentHole map[geom.Transform]bool
	Overlapping  map[geom.Transform]bool

	// Surroundable is false if some halo cell of Shape admits no legal
	// adjacency at all, which makes any corona impossible regardless of
	// level: callers should stop looking for a corona immediately.
	Surroundable bool
}

// New builds the Cloud for s. s must already be complete.
func New(s *shape.Shape) *Cloud {
	c := &Cloud{
		Shape:        s,
		Halo:         shape.New(s.Grid()),
		Border:       shape.New(s.Grid()),
		Adjacent:     map[geom.Transform]bool{},
		AdjacentHole: map[geom.Transform]bool{},
		Overlapping:  map[geom.Transform]bool{},
		Surroundable: true,
	}

	s.GetHaloAndBorder(c.Halo, c.Border)
	c.calcOrientations()

	// Overlaps: a cell covered by a border cell of both the central
	// shape and an oriented copy. Checking every (border, oriented
	// border) pair is redundant work, but it makes the adjacency pass
	// below cheap: no overlap means a candidate translate can only be
	// an adjacency or a hole adjacency, with no intersection test
	// needed.
	for _, bp := range c.Border.Points() {
		for _, ori := range c.Orientations {
			for _, obp := range ori.Border.Points() {
				if !s.Grid().Translatable(obp, bp) {
					continue
				}
				tNew := ori.T.Translate(bp.Sub(obp))
				if !tNew.IsIdentity() {
					c.Overlapping[tNew] = true
				}
			}
		}
	}

	// Adjacencies: translate a border point of an oriented copy onto a
	// halo point of the central shape.
	newShape := shape.New(s.Grid())
	for _, hp := range c.Halo.Points() {
		found := false

		for _, ori := range c.Orientations {
			for _, tbp := range ori.Border.Points() {
				if !s.Grid().Translatable(hp, tbp) {
					continue
				}

				tNew := ori.T.Translate(hp.Sub(tbp))

				if c.Overlapping[tNew] {
					continue
				}
				if c.Adjacent[tNew] {
					found = true
					continue
				}
				if c.AdjacentHole[tNew] {
					continue
				}

				newShape.Reset(s, tNew)
				newShape.AddShape(s)
				newShape.Complete()

				if newShape.SimplyConnected() {
					found = true
					c.Adjacent[tNew] = true
					c.Adjacent[tNew.Invert()] = true
				} else {
					c.AdjacentHole[tNew] = true
					c.AdjacentHole[tNew.Invert()] = true
				}
			}
		}

		if !found {
			c.Surroundable = false
			return c
		}
	}

	return c
}

// calcOrientations constructs one Orientation per symmetry of the
// grid family, without factoring out orientations that happen to
// produce an identical placement: at higher corona levels the same
// placement can be reached through two different matrix products, and
// those copies need to find each other under their own transform.
func (c *Cloud) calcOrientations() {
	c.Orientations = make([]Orientation, 0, len(c.Shape.Grid().Orientations()))
	for _, T := range c.Shape.Grid().Orientations() {
		oshape := shape.New(c.Shape.Grid())
		ohalo := shape.New(c.Shape.Grid())
		oborder := shape.New(c.Shape.Grid())
		oshape.Reset(c.Shape, T)
		ohalo.Reset(c.Halo, T)
		oborder.Reset(c.Border, T)
		c.Orientations = append(c.Orientations, Orientation{
			T: T, Shape: oshape, Halo: ohalo, Border: oborder,
		})
	}
}

// IsOverlap reports whether T places a copy overlapping the center.
func (c *Cloud) IsOverlap(T geom.Transform) bool { return c.Overlapping[T] }

// IsAdjacent reports whether T places a copy cleanly adjacent to the
// center (simply connected union).
func (c *Cloud) IsAdjacent(T geom.Transform) bool { return c.Adjacent[T] }

// IsHoleAdjacent reports whether T places a copy adjacent to the
// center but enclosing a hole.
func (c *Cloud) IsHoleAdjacent(T geom.Transform) bool { return c.AdjacentHole[T] }

// IsAnyAdjacent reports IsAdjacent(T) || IsHoleAdjacent(T).
func (c *Cloud) IsAnyAdjacent(T geom.Transform) bool {
	return c.IsAdjacent(T) || c.IsHoleAdjacent(T)
}

// IsAny reports whether T falls into any of the three classified sets.
func (c *Cloud) IsAny(T geom.Transform) bool {
	return c.IsOverlap(T) || c.IsAdjacent(T) || c.IsHoleAdjacent(T)
}
