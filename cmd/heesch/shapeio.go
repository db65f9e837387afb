package main

import (
	"errors"
	"fmt"

	"github.com/heeschnum/heesch/gridfamily"
	"github.com/heeschnum/heesch/shape"
	"github.com/heeschnum/heesch/tilerecord"
)

// ErrEmptyRecord indicates a tile record carried a grid code but zero
// cells, which no subcommand can turn into a usable shape.
var ErrEmptyRecord = errors.New("heesch: record has no cells")

// shapeFromRecord resolves rec's grid code and cells into a complete
// Shape, ready for cloud/solver construction.
func shapeFromRecord(rec *tilerecord.Record) (*shape.Shape, error) {
	grid, err := gridfamily.ByCode(rec.GridCode)
	if err != nil {
		return nil, fmt.Errorf("heesch: %w", err)
	}
	if len(rec.Cells) == 0 {
		return nil, ErrEmptyRecord
	}

	s := shape.New(grid)
	for _, p := range rec.Cells {
		s.Add(p)
	}
	s.Complete()
	return s, nil
}

// recordFromShape builds a naked record (a bare shape, no result line)
// from s, for gen's output stream.
func recordFromShape(s *shape.Shape) *tilerecord.Record {
	return &tilerecord.Record{
		GridCode: s.Grid().Code(),
		Cells:    s.Points(),
		Kind:     tilerecord.KindNaked,
	}
}
