package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heeschnum/heesch/solver"
	"github.com/heeschnum/heesch/tilerecord"
)

func newSurroundsCmd() *cobra.Command {
	var (
		level         int
		noReflections bool
		extremes      bool
	)

	cmd := &cobra.Command{
		Use:   "surrounds",
		Short: "Enumerate the distinct level-k surrounds of a single shape",
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := tilerecord.NewReader(cmd.InOrStdin()).Read()
			if err != nil {
				return fmt.Errorf("heesch: reading shape: %w", err)
			}
			s, err := shapeFromRecord(rec)
			if err != nil {
				return err
			}

			sv := solver.New(s)
			for lv := 1; lv <= level; lv++ {
				sv.IncreaseLevel()
			}

			solutions, err := sv.AllCoronas(cmd.Context())
			if err != nil {
				return err
			}

			count := 0
			for _, patch := range solutions {
				if noReflections && patchHasReflection(patch) {
					continue
				}
				count++
				if extremes && count > 1 {
					continue
				}
				out := &tilerecord.Record{
					GridCode: s.Grid().Code(),
					Cells:    s.Points(),
					Kind:     tilerecord.KindNonTiler,
					Hc:       level,
					Hh:       level,
				}
				if err := tilerecord.Write(cmd.OutOrStdout(), out); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&level, "level", 1, "corona level to surround")
	cmd.Flags().BoolVar(&noReflections, "noreflections", false, "skip surrounds that contain a placement with a reflecting transform")
	cmd.Flags().BoolVar(&extremes, "extremes", false, "emit only the first distinct surround found")

	return cmd
}

// patchHasReflection reports whether any placement in patch uses an
// orientation with negative determinant.
func patchHasReflection(patch []solver.Placement) bool {
	for _, p := range patch {
		if p.T.Det() < 0 {
			return true
		}
	}
	return false
}
