package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heeschnum/heesch/enumerate"
	"github.com/heeschnum/heesch/gridfamily"
	"github.com/heeschnum/heesch/shape"
	"github.com/heeschnum/heesch/tilerecord"
)

func newGenCmd() *cobra.Command {
	var (
		size  int
		free  bool
		units bool
		holes bool
	)

	cmd := &cobra.Command{
		Use:   "gen <gridcode>",
		Short: "Enumerate polyforms of a given size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 {
				return fmt.Errorf("heesch: -size must be positive")
			}
			code := args[0][0]
			grid, err := gridfamily.ByCode(code)
			if err != nil {
				return err
			}
			logger := newLogger()

			emit := func(s *shape.Shape) {
				rec := recordFromShape(s)
				if holes && !s.SimplyConnected() {
					logger.Debug().Msg("shape encloses a hole")
				}
				if err := tilerecord.Write(cmd.OutOrStdout(), rec); err != nil {
					logger.Error().Err(err).Msg("writing record")
				}
			}

			var out enumerate.Callback = emit
			if free {
				ff := enumerate.NewFreeFilter()
				out = ff.Wrap(emit)
			}

			if units {
				unitRecs, err := tilerecord.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("heesch: reading units: %w", err)
				}
				unitShapes := make([]*shape.Shape, 0, len(unitRecs))
				for _, r := range unitRecs {
					s, err := shapeFromRecord(r)
					if err != nil {
						return err
					}
					unitShapes = append(unitShapes, s)
				}
				ce := enumerate.NewCompound(unitShapes)
				total, err := ce.Run(context.Background(), size, out)
				if err != nil {
					return err
				}
				logger.Info().Int("total", total).Msg("compound enumeration complete")
				return nil
			}

			e := enumerate.New(grid)
			total, err := e.Run(context.Background(), size, out)
			if err != nil {
				return err
			}
			logger.Info().Int("total", total).Msg("enumeration complete")
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 0, "number of cells per generated polyform")
	cmd.Flags().BoolVar(&free, "free", false, "emit one canonical representative per free polyform")
	cmd.Flags().BoolVar(&units, "units", false, "read compound units from stdin instead of enumerating single cells")
	cmd.Flags().BoolVar(&holes, "holes", false, "log shapes that enclose a hole")

	return cmd
}
