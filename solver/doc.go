// Package solver computes Heesch numbers: the SAT-encoded k-corona
// existence search, its hole-exclusion refinement loop, and the
// isohedral shortcut that can short-circuit the search entirely. It
// is the largest package in this module, consuming cloud, holefinder,
// and satoracle to answer one question per shape: how many hole-free
// coronas can surround it, and does it tile the plane isohedrally.
package solver
