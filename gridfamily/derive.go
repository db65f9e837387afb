package gridfamily

import "github.com/heeschnum/heesch/geom"

// rotateVectors applies T to every point in base, producing a
// class-specific neighbor vector set from a single canonical one.
// Used by the geometrically intricate multi-class families (drafter,
// kite, halfcairo) to derive each translation class's neighbor
// vectors from the class's own orientation, rather than hand-porting
// a full per-class vector table: the class's local neighborhood is
// the canonical neighborhood rotated into that class's frame.
func rotateVectors(t geom.Transform, base []geom.Point) []geom.Point {
	out := make([]geom.Point, len(base))
	for i, p := range base {
		out[i] = t.Apply(p)
	}
	return out
}
