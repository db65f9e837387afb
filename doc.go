// Package heesch computes Heesch numbers of polyform shapes: how many
// concentric layers ("coronas") of congruent copies a shape can be
// surrounded by before no further corona exists.
//
// The module is organized as:
//
//	geom/       — integer affine transforms and points
//	gridfamily/ — the nine supported polyform grids
//	shape/      — cell-set algebra: translate, compare, hole detection
//	cloud/      — a shape's adjacency/overlap classification
//	holefinder/ — hole detection over an assembled corona
//	satoracle/  — the SAT oracle contract and a reference DPLL backend
//	solver/     — the corona search itself, encoded as incremental SAT
//	enumerate/  — polyform and compound-polyform enumeration
//	tilerecord/ — the line-oriented record format
//	config/     — resolved run configuration shared by the CLI
//	cmd/heesch/ — the gen/sat/report/surrounds command-line tool
package heesch
