// Package gridfamily supplies the per-family static data the rest of
// this module consumes through the Grid interface: the finite
// orientation (symmetry) group, canonical per-class origin cells,
// vertex- and edge-neighbor vectors, and the translatability
// predicate used to classify cells into orbits under pure
// translation.
//
// Nine families are registered, one per grid code accepted on the
// tile-record input boundary (§4.7 / §6.1 of the design):
//
//	O  Omino       (polyomino, square cells)
//	H  Hex         (polyhex, hexagonal cells)
//	I  Iamond      (polyiamond, triangular cells)
//	o  Octasquare  (squares + octagons)
//	T  Trihex      (poly-[3.6.3.6], hexagons + triangles)
//	A  Abolo       (polyabolo, right triangles)
//	D  Drafter     (polydrafter, 30-60-90 triangles)
//	K  Kite        (polykite, kite quadrilaterals)
//	h  HalfCairo   (poly-halfcairo, pentagons)
//
// The core packages (shape, cloud, holefinder, solver) never compute
// neighbors or orientations themselves; they call through this
// interface, per the design's "the core must not compute neighbors by
// enumerating all transforms" contract.
package gridfamily
