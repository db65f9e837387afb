// Package geom provides the integer point and affine-transform primitives
// shared by every grid family in this module.
//
// A Point is a pair of signed coordinates ordered lexicographically by
// (Y, X); a Transform is a 2x3 integer matrix composing a grid symmetry
// with a translation. These two types are the load-bearing currency of
// shape, cloud, holefinder and solver: every one of those packages only
// ever adds, subtracts, composes and inverts values of these two types.
//
//	go get github.com/heeschnum/heesch/geom
package geom
