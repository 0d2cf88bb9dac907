package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/younsl/jaws/internal/models"
	"github.com/younsl/jaws/pkg/aws"
	"github.com/younsl/jaws/pkg/formatter"
	"github.com/younsl/jaws/pkg/reservation"
)

func newResCmd(a *app) *cobra.Command {
	var (
		showUnused     bool
		preferExpiring bool
	)

	cmd := &cobra.Command{
		Use:   "res",
		Short: "Calculate reservation costs and fleet coverage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := a.connect(ctx)
			if err != nil {
				return err
			}
			defer s.notifier.Clear()
			h := s.handler

			reservations, err := h.ActiveReservations(ctx)
			if err != nil {
				return err
			}

			report := formatter.ReservationReport{Title: "active reservations"}
			priced := reservations

			var (
				instances []models.Instance
				result    models.CoverageResult
			)
			if showUnused {
				instances, err = h.Instances(ctx, aws.StateRunning)
				if err != nil {
					return err
				}
				result = reservation.Match(instances, reservations, reservation.MatchOptions{
					PreferSoonestExpiry: preferExpiring,
				})
				priced = result.Residual
				report.Title = "unused reservations"
			}

			report.Cost, err = reservation.Calculate(ctx, priced, h.Cache(), time.Now())
			if err != nil {
				return err
			}

			if showUnused {
				inv := h.Inventory()
				covered, err := inv.Describe(ctx, aws.Select(instances, result.Covered), true)
				if err != nil {
					return err
				}
				uncovered, err := inv.Describe(ctx, aws.Select(instances, result.Uncovered), true)
				if err != nil {
					return err
				}
				report.Coverage = &formatter.Coverage{Covered: covered, Uncovered: uncovered}
			}

			s.notifier.Clear()
			r, err := a.renderer(h.Region())
			if err != nil {
				return err
			}
			if err := r.RenderReservations(report); err != nil {
				return err
			}
			return a.printStats(h)
		},
	}

	cmd.Flags().BoolVarP(&showUnused, "show-unused", "s", false, "Match running instances and report only unused reservations")
	cmd.Flags().BoolVar(&preferExpiring, "prefer-expiring", false, "Let running instances consume the soonest-expiring reservations first")
	return cmd
}
