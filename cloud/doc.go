// Package cloud computes, for a fixed shape, every oriented placement
// of a copy of that shape that overlaps it, sits cleanly adjacent to
// it, or is adjacent but encloses a hole between the two copies. The
// solver package consumes this classification to build its placement
// variables and no-overlap clauses.
package cloud
