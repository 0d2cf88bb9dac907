package main

import (
	"github.com/spf13/cobra"
)

func newEC2Cmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ec2",
		Short: "List inventory of EC2 instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			s, err := a.connect(ctx)
			if err != nil {
				return err
			}
			defer s.notifier.Clear()

			instances, err := s.handler.Instances(ctx)
			if err != nil {
				return err
			}
			details, err := s.handler.Inventory().Describe(ctx, instances, a.settings.Wide)
			if err != nil {
				return err
			}

			s.notifier.Clear()
			r, err := a.renderer(s.handler.Region())
			if err != nil {
				return err
			}
			if err := r.RenderInstances(details, a.settings.Wide); err != nil {
				return err
			}
			return a.printStats(s.handler)
		},
	}
}
