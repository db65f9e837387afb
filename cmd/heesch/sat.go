package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/heeschnum/heesch/cmd/heesch/rundriver"
	"github.com/heeschnum/heesch/config"
	"github.com/heeschnum/heesch/solver"
	"github.com/heeschnum/heesch/tilerecord"
)

func newSatCmd() *cobra.Command {
	var (
		show         bool
		maxLevel     int
		translations bool
		rotations    bool
		isohedral    bool
		hh           bool
		reduce       bool
		update       bool
		outFile      string
	)

	cmd := &cobra.Command{
		Use:   "sat",
		Short: "Compute Heesch numbers for a stream of tile records",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []config.RunOption{config.WithLevelCap(maxLevel)}
			switch {
			case translations:
				opts = append(opts, config.WithTranslationsOnly())
			case rotations:
				opts = append(opts, config.WithRotationsOnly())
			}
			if isohedral {
				opts = append(opts, config.WithIsohedral())
			}
			if hh {
				opts = append(opts, config.WithHoleFreeOuter())
			}
			if reduce {
				opts = append(opts, config.WithReduce())
			}
			if update {
				opts = append(opts, config.WithUpdateOnly())
			}
			if show {
				opts = append(opts, config.WithShowPatches())
			}
			if outFile != "" {
				opts = append(opts, config.WithOutFile(outFile))
			}
			cfg := config.NewRunConfig(opts...)
			logger := newLogger()

			w := cmd.OutOrStdout()
			if cfg.OutFile != "" {
				f, err := os.Create(cfg.OutFile)
				if err != nil {
					return fmt.Errorf("heesch: opening -o %s: %w", cfg.OutFile, err)
				}
				defer f.Close()
				w = f
			}

			recs, err := tilerecord.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("heesch: reading records: %w", err)
			}

			out := make([]*tilerecord.Record, len(recs))
			var toRun []*tilerecord.Record
			var toRunIdx []int
			for i, rec := range recs {
				if cfg.UpdateOnly && rec.Kind != tilerecord.KindUnknown &&
					rec.Kind != tilerecord.KindInconclusive && rec.Kind != tilerecord.KindNaked {
					out[i] = rec
					continue
				}
				toRun = append(toRun, rec)
				toRunIdx = append(toRunIdx, i)
			}

			// Fan the records that still need a corona search out across
			// a worker pool (rundriver), each call owning its own solver;
			// records bypassed above by -update are written back as-is.
			processed, err := rundriver.Run(cmd.Context(), toRun, func(ctx context.Context, rec *tilerecord.Record) (*tilerecord.Record, error) {
				return processRecord(ctx, rec, cfg, logger)
			})
			if err != nil {
				return err
			}
			for j, idx := range toRunIdx {
				out[idx] = processed[j]
			}

			for _, rec := range out {
				if err := tilerecord.Write(w, rec); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "emit corona patches alongside the result")
	cmd.Flags().IntVar(&maxLevel, "maxlevel", 7, "maximum corona level to attempt")
	cmd.Flags().BoolVar(&translations, "translations", false, "select the translations-only orientation subset (not applied by the corona search, which uses every grid orientation)")
	cmd.Flags().BoolVar(&rotations, "rotations", false, "select the proper (non-reflecting) orientation subset (not applied by the corona search, which uses every grid orientation)")
	cmd.Flags().BoolVar(&isohedral, "isohedral", false, "enable the translation-pair isohedral shortcut")
	cmd.Flags().BoolVar(&hh, "hh", false, "require a hole-free outer corona when possible")
	cmd.Flags().BoolVar(&reduce, "reduce", false, "enable placement-reduction optimizations")
	cmd.Flags().BoolVar(&update, "update", false, "only reprocess records currently Unknown or Inconclusive")
	cmd.Flags().StringVar(&outFile, "o", "", "output file (default stdout)")

	return cmd
}

// processRecord runs the corona search for one shape up to cfg's level
// cap, following 4.6.3: climb levels, recording the last HoleFree and
// last HasHoles level seen, until hasCorona returns None (the shape
// cannot be surrounded further), Inconclusive (the oracle ran out of
// budget), or the level cap is hit.
func processRecord(ctx context.Context, rec *tilerecord.Record, cfg *config.RunConfig, logger zerolog.Logger) (*tilerecord.Record, error) {
	s, err := shapeFromRecord(rec)
	if err != nil {
		return nil, err
	}

	var svOpts []solver.Option
	if cfg.Reduce {
		svOpts = append(svOpts, solver.WithReduce())
	}
	sv := solver.New(s, svOpts...)
	hc, hh := -1, -1
	var hcPatch, hhPatch []solver.Placement

	if cfg.Isohedral && sv.IsIsohedral() {
		out := &tilerecord.Record{GridCode: rec.GridCode, Cells: rec.Cells, Kind: tilerecord.KindIsohedral, TransitivityClasses: 1}
		return out, nil
	}

	for level := 0; level <= cfg.LevelCap; level++ {
		if level > 0 {
			sv.IncreaseLevel()
		}

		qctx, cancel := ctx, context.CancelFunc(func() {})
		if cfg.Timeout > 0 {
			qctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		}
		res, err := sv.HasCorona(qctx, cfg.ShowPatches || cfg.RequireHoleFreeOuter)
		cancel()
		if err != nil {
			logger.Warn().Err(err).Int("level", level).Msg("sat oracle budget exceeded")
			out := &tilerecord.Record{GridCode: rec.GridCode, Cells: rec.Cells, Kind: tilerecord.KindInconclusive}
			return out, nil
		}

		switch res.Kind {
		case solver.None:
			return nonTilerRecord(rec, hc, hh, hcPatch, hhPatch, cfg.ShowPatches), nil
		case solver.HoleFree:
			hc, hh = level, level
			hcPatch, hhPatch = res.Patch, res.Patch
		case solver.HasHoles:
			hh = level
			hhPatch = res.Patch
		case solver.Inconclusive:
			out := &tilerecord.Record{GridCode: rec.GridCode, Cells: rec.Cells, Kind: tilerecord.KindInconclusive}
			return out, nil
		}
	}

	logger.Warn().Err(fmt.Errorf("heesch: level %d: %w", cfg.LevelCap, solver.ErrLevelCapReached)).
		Int("hc", max(hc, 0)).Int("hh", max(hh, 0)).Msg("level cap reached before UNSAT")
	return &tilerecord.Record{GridCode: rec.GridCode, Cells: rec.Cells, Kind: tilerecord.KindInconclusive}, nil
}

func nonTilerRecord(rec *tilerecord.Record, hc, hh int, hcPatch, hhPatch []solver.Placement, show bool) *tilerecord.Record {
	if hc < 0 {
		hc = 0
	}
	if hh < 0 {
		hh = 0
	}
	out := &tilerecord.Record{
		GridCode: rec.GridCode,
		Cells:    rec.Cells,
		Kind:     tilerecord.KindNonTiler,
		Hc:       hc,
		Hh:       hh,
	}
	if show {
		out.HasPatches = true
		out.HcPatch = toPatchEntries(hcPatch)
		if hh > hc {
			out.HhPatch = toPatchEntries(hhPatch)
		}
	}
	return out
}

func toPatchEntries(placements []solver.Placement) []tilerecord.PatchEntry {
	out := make([]tilerecord.PatchEntry, len(placements))
	for i, p := range placements {
		out[i] = tilerecord.PatchEntry{Level: p.Level, T: p.T}
	}
	return out
}
