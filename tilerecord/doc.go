// Package tilerecord reads and writes the line-oriented tile record
// format: one shape per record, an optional result line classifying
// its Heesch number, and optional corona patch blocks. It is the text
// boundary between the solver/enumerate packages and the command-line
// tools in cmd/heesch.
package tilerecord
