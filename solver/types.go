package solver

import (
	"github.com/heeschnum/heesch/geom"
	"github.com/heeschnum/heesch/satoracle"
)

// TileIndex identifies a placement in the solver's tile arena.
type TileIndex int

// CellIndex identifies a cell record in the solver's cell arena.
type CellIndex int

// TileInfo is one placement: a transform and the set of corona-level
// variables that could make it "used" at that level. Most placements
// carry only one level's variable; a map keeps memory proportional to
// that, instead of a dense per-level vector.
type TileInfo struct {
	T     geom.Transform
	Index TileIndex
	Vars  map[int]satoracle.VarID
	Cells []CellIndex
}

// HasLevel reports whether this placement carries a variable at level.
func (ti *TileInfo) HasLevel(level int) bool {
	_, ok := ti.Vars[level]
	return ok
}

// SortedLevels returns this placement's levels in ascending order, for
// callers that need deterministic iteration (clause generation order
// doesn't matter to the oracle, but solution extraction and tests
// benefit from it).
func (ti *TileInfo) SortedLevels() []int {
	levels := make([]int, 0, len(ti.Vars))
	for lv := range ti.Vars {
		levels = append(levels, lv)
	}
	for i := 1; i < len(levels); i++ {
		for j := i; j > 0 && levels[j-1] > levels[j]; j-- {
			levels[j-1], levels[j] = levels[j], levels[j-1]
		}
	}
	return levels
}

// CellInfo is one grid cell reachable by some placement.
type CellInfo struct {
	Pos   geom.Point
	Index CellIndex
	Var   satoracle.VarID
	Tiles []TileIndex
}

// Placement is one entry of a returned corona patch: the corona level
// a copy belongs to, and the transform that places it.
type Placement struct {
	Level int
	T     geom.Transform
}

// CoronaKind tags the outcome of a hasCorona query.
type CoronaKind int

const (
	// None means no corona of the requested level exists at all, hole
	// or not: the shape's Heesch number is below the requested level.
	None CoronaKind = iota
	// HoleFree means a corona of the requested level exists with every
	// interior copy's halo fully covered.
	HoleFree
	// HasHoles means only a corona containing an adjacency hole in the
	// outer ring could be found.
	HasHoles
	// Inconclusive means the query could not be answered within its
	// resource budget (oracle timeout or cancellation).
	Inconclusive
)

// CoronaResult is the tagged-union result of a hasCorona query.
type CoronaResult struct {
	Kind  CoronaKind
	Patch []Placement
}
