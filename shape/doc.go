// Package shape represents a finite set of grid cells as a sorted
// point list, together with the halo/border/simple-connectedness
// operations that the cloud and holefinder packages build on.
package shape
