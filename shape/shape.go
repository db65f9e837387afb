package shape

import (
	"sort"

	"github.com/heeschnum/heesch/geom"
	"github.com/heeschnum/heesch/gridfamily"
)

// Shape is a finite, sorted set of grid cells. Sorting is by
// (geom.Point).Less, matching the order every merge-style algorithm in
// this package relies on. A Shape is only "complete" (safe to compare
// or intersect) after a call to Complete; New and Reset produce
// complete shapes directly.
type Shape struct {
	grid gridfamily.Grid
	pts  []geom.Point
}

// New returns an empty Shape over grid.
func New(grid gridfamily.Grid) *Shape {
	return &Shape{grid: grid}
}

// Grid returns the grid family this shape is defined over.
func (s *Shape) Grid() gridfamily.Grid { return s.grid }

// Len returns the number of cells.
func (s *Shape) Len() int { return len(s.pts) }

// Points returns the shape's cells in their current order. The caller
// must not mutate the returned slice.
func (s *Shape) Points() []geom.Point { return s.pts }

// Add appends a single cell. The shape is no longer guaranteed sorted
// until Complete is called.
func (s *Shape) Add(p geom.Point) {
	s.pts = append(s.pts, p)
}

// AddShape appends every cell of other.
func (s *Shape) AddShape(other *Shape) {
	s.pts = append(s.pts, other.pts...)
}

// Complete sorts the shape's cells into canonical order. Every
// algorithm below that assumes sortedness (Intersects, Equal, Compare)
// requires both operands to have been completed since their last
// mutation.
func (s *Shape) Complete() {
	sort.Slice(s.pts, func(i, j int) bool { return s.pts[i].Less(s.pts[j]) })
}

// Reset replaces this shape's cells with other's cells transformed by
// T, leaving the result complete.
func (s *Shape) Reset(other *Shape, T geom.Transform) {
	s.grid = other.grid
	s.pts = s.pts[:0]
	for _, p := range other.pts {
		s.pts = append(s.pts, T.Apply(p))
	}
	s.Complete()
}

// Translate shifts every cell by dp in place. Order is unaffected,
// since translation preserves the (Y,X) ordering of point differences.
func (s *Shape) Translate(dp geom.Point) {
	for i := range s.pts {
		s.pts[i] = s.pts[i].Add(dp)
	}
}

// Untranslate returns a new, complete Shape shifted so its
// lexicographically smallest cell sits at the origin. Used to bring a
// shape into canonical position before comparing it against another
// candidate placement.
func (s *Shape) Untranslate() *Shape {
	out := New(s.grid)
	if len(s.pts) == 0 {
		return out
	}
	min := s.pts[0]
	for _, p := range s.pts[1:] {
		if p.Less(min) {
			min = p
		}
	}
	for _, p := range s.pts {
		out.pts = append(out.pts, p.Sub(min))
	}
	out.Complete()
	return out
}

// Intersects reports whether s and other share any cell. Both shapes
// must be complete; this is a merge, not a search.
func (s *Shape) Intersects(other *Shape) bool {
	i, j := 0, 0
	for i < len(s.pts) && j < len(other.pts) {
		switch {
		case s.pts[i] == other.pts[j]:
			return true
		case s.pts[i].Less(other.pts[j]):
			i++
		default:
			j++
		}
	}
	return false
}

// Equal reports whether s and other contain exactly the same cells in
// the same order. Both shapes must be complete.
func (s *Shape) Equal(other *Shape) bool {
	if len(s.pts) != len(other.pts) {
		return false
	}
	for i := range s.pts {
		if s.pts[i] != other.pts[i] {
			return false
		}
	}
	return true
}

// Compare gives a total order over complete shapes: first by cell
// count, then lexicographically by cell. Used by enumerate to
// canonicalize and deduplicate generated polyforms.
func (s *Shape) Compare(other *Shape) int {
	if len(s.pts) != len(other.pts) {
		if len(s.pts) < len(other.pts) {
			return -1
		}
		return 1
	}
	for i := range s.pts {
		if s.pts[i] == other.pts[i] {
			continue
		}
		if s.pts[i].Less(other.pts[i]) {
			return -1
		}
		return 1
	}
	return 0
}

// Equivalent reports whether other is a translate of s: the same
// shape of cells, up to a shift. It compares untranslated forms so
// callers don't need to search for the translating vector themselves.
func (s *Shape) Equivalent(other *Shape) bool {
	return s.Untranslate().Equal(other.Untranslate())
}

// GetHaloAndBorder fills halo with every cell that is a vertex-neighbor
// of some cell in s but not itself in s, and border with every cell of
// s that has at least one such neighbor (i.e. sits on the shape's
// boundary). Both outputs are left complete.
func (s *Shape) GetHaloAndBorder(halo, border *Shape) {
	halo.grid, border.grid = s.grid, s.grid
	halo.pts = halo.pts[:0]
	border.pts = border.pts[:0]

	counts := make(map[geom.Point]int, len(s.pts)*4)
	for _, p := range s.pts {
		counts[p]++
		for _, pn := range s.grid.Neighbors(p) {
			counts[p.Add(pn)]++
		}
	}

	for _, p := range s.pts {
		if counts[p] < len(s.grid.Neighbors(p))+1 {
			border.Add(p)
		}
		delete(counts, p)
	}

	for p := range counts {
		halo.Add(p)
	}

	halo.Complete()
	border.Complete()
}

// GetEdgeHalo returns the set of cells that are edge-neighbors of some
// cell in s but not themselves in s. Unlike GetHaloAndBorder's halo,
// which uses full vertex-adjacency, this uses only edge-adjacency, the
// narrower relation SimplyConnected needs to test halo connectivity.
func (s *Shape) GetEdgeHalo() *Shape {
	out := New(s.grid)
	in := make(map[geom.Point]bool, len(s.pts))
	for _, p := range s.pts {
		in[p] = true
	}
	seen := make(map[geom.Point]bool)
	for _, p := range s.pts {
		for _, pn := range s.grid.EdgeNeighbors(p) {
			q := p.Add(pn)
			if in[q] || seen[q] {
				continue
			}
			seen[q] = true
			out.Add(q)
		}
	}
	out.Complete()
	return out
}

// SimplyConnected reports whether s encloses no holes: its halo, taken
// as a single connected region under edge-adjacency, forms one
// connected component. A halo split into multiple components means
// some region is unreachable from the shape's exterior, i.e. a hole.
func (s *Shape) SimplyConnected() bool {
	halo, border := New(s.grid), New(s.grid)
	s.GetHaloAndBorder(halo, border)

	if halo.Len() == 0 {
		return true
	}

	haloSet := make(map[geom.Point]bool, halo.Len())
	for _, p := range halo.pts {
		haloSet[p] = true
	}

	visited := make(map[geom.Point]bool, halo.Len())
	working := []geom.Point{halo.pts[0]}

	for len(working) > 0 {
		p := working[len(working)-1]
		working = working[:len(working)-1]

		if visited[p] {
			continue
		}
		visited[p] = true

		for _, pn := range s.grid.EdgeNeighbors(p) {
			q := p.Add(pn)
			if haloSet[q] && !visited[q] {
				working = append(working, q)
			}
		}
	}

	return len(visited) == halo.Len()
}
