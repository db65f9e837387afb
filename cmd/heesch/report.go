package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heeschnum/heesch/tilerecord"
)

// reportSummary tallies a record stream by its classification. runID
// tags each summary so operators correlating report output against
// logs from the same batch have a stable handle to grep for.
type reportSummary struct {
	runID               string
	total               int
	naked               int
	unknown             int
	hasHole             int
	inconclusive        int
	nonTiler            int
	isohedral           int
	anisohedral         int
	aperiodic           int
	maxNonTilerHc       int
	maxNonTilerHh       int
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize a tile record stream by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := tilerecord.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("heesch: reading records: %w", err)
			}

			s := summarize(recs)
			return writeSummary(cmd.OutOrStdout(), s)
		},
	}
	return cmd
}

func summarize(recs []*tilerecord.Record) reportSummary {
	s := reportSummary{runID: uuid.NewString()}
	for _, rec := range recs {
		s.total++
		switch rec.Kind {
		case tilerecord.KindNaked:
			s.naked++
		case tilerecord.KindUnknown:
			s.unknown++
		case tilerecord.KindHasHole:
			s.hasHole++
		case tilerecord.KindInconclusive:
			s.inconclusive++
		case tilerecord.KindNonTiler:
			s.nonTiler++
			if rec.Hc > s.maxNonTilerHc {
				s.maxNonTilerHc = rec.Hc
			}
			if rec.Hh > s.maxNonTilerHh {
				s.maxNonTilerHh = rec.Hh
			}
		case tilerecord.KindIsohedral:
			s.isohedral++
		case tilerecord.KindAnisohedral:
			s.anisohedral++
		case tilerecord.KindAperiodic:
			s.aperiodic++
		}
	}
	return s
}

func writeSummary(w interface{ Write([]byte) (int, error) }, s reportSummary) error {
	lines := []string{
		fmt.Sprintf("run: %s", s.runID),
		fmt.Sprintf("total: %d", s.total),
		fmt.Sprintf("naked: %d", s.naked),
		fmt.Sprintf("unknown: %d", s.unknown),
		fmt.Sprintf("has_hole: %d", s.hasHole),
		fmt.Sprintf("inconclusive: %d", s.inconclusive),
		fmt.Sprintf("non_tiler: %d (max Hc=%d, max Hh=%d)", s.nonTiler, s.maxNonTilerHc, s.maxNonTilerHh),
		fmt.Sprintf("isohedral: %d", s.isohedral),
		fmt.Sprintf("anisohedral: %d", s.anisohedral),
		fmt.Sprintf("aperiodic: %d", s.aperiodic),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
