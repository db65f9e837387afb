// Command heesch computes Heesch numbers of polyform shapes. It
// exposes four subcommands over the tilerecord line format: gen
// enumerates polyforms, sat computes their Heesch numbers, report
// summarizes a record stream, and surrounds enumerates the distinct
// level-k surrounds of a single shape.
package main
