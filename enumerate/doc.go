// Package enumerate generates polyforms of a given cell count by
// recursive growth from each of a grid's canonical origins, following
// the classic Redelmeier boundary-extension scheme: each partial shape
// tracks its own "untried" frontier of candidate cells, and recursion
// only ever considers frontier cells at or after the index that
// introduced the current cell, so every fixed polyform is generated
// exactly once.
//
// Enumerator produces fixed polyforms (every rotation/reflection of a
// shape counts separately). FreeFilter thins that stream down to one
// representative per free polyform (shapes equal up to a symmetry of
// the grid are considered the same). CanonicalForm exposes the
// heavier, from-scratch canonicalization used to deduplicate polyforms
// arriving from more than one source (e.g. compound enumeration).
package enumerate
