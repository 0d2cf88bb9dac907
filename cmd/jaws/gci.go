package main

import (
	"github.com/spf13/cobra"
)

func newGCICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gci",
		Short: "Get the caller identity from the Security Token Service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			s.notifier.Clear()

			r, err := a.renderer(s.handler.Region())
			if err != nil {
				return err
			}
			return r.RenderIdentity(s.identity)
		},
	}
}
