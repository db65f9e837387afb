// Package holefinder detects holes left behind by a set of placed
// tile copies: cavities in the union of copies that are not reachable
// from the placement's outer boundary. The solver package uses this
// to refine its corona search away from hole-containing candidate
// solutions.
package holefinder
