package tilerecord

import (
	"errors"

	"github.com/heeschnum/heesch/geom"
)

// Sentinel errors for malformed records.
var (
	// ErrEmptyLine indicates a record was expected but the input had
	// no more non-blank lines.
	ErrEmptyLine = errors.New("tilerecord: expected a record line, found none")
	// ErrMalformedLine1 indicates line 1 failed to parse as a grid
	// code followed by an even count of integers.
	ErrMalformedLine1 = errors.New("tilerecord: malformed line 1")
	// ErrMalformedLine2 indicates line 2's leading character did not
	// match any known record kind, or its trailing fields were
	// malformed.
	ErrMalformedLine2 = errors.New("tilerecord: malformed line 2")
	// ErrMalformedPatch indicates a patch block's count line or one
	// of its entries failed to parse.
	ErrMalformedPatch = errors.New("tilerecord: malformed patch block")
)

// Kind is a record's classification, the leading character of line 2.
type Kind byte

const (
	// KindNaked marks a record with no line 2 at all (line 1 carried a
	// trailing '?'): unknown status, not yet processed.
	KindNaked Kind = 0
	KindUnknown      Kind = '?'
	KindHasHole      Kind = 'O'
	KindInconclusive Kind = '!'
	KindNonTiler     Kind = '~'
	KindIsohedral    Kind = 'I'
	KindAnisohedral  Kind = '#'
	KindAperiodic    Kind = '$'
)

// PatchEntry is one placement within a patch block: its corona level
// and transform.
type PatchEntry struct {
	Level int
	T     geom.Transform
}

// Record is one parsed tile record.
type Record struct {
	GridCode byte
	Cells    []geom.Point

	Kind Kind

	// Hc, Hh, and HasPatches apply to KindNonTiler.
	Hc, Hh     int
	HasPatches bool
	HcPatch    []PatchEntry
	HhPatch    []PatchEntry

	// TransitivityClasses applies to KindIsohedral.
	TransitivityClasses int
}
