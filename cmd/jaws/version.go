package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/younsl/jaws/internal/config"
	"github.com/younsl/jaws/internal/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()

			switch a.settings.Output {
			case config.OutputJSON:
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(a.out, string(data))
				return err
			case config.OutputYAML:
				return yaml.NewEncoder(a.out).Encode(info)
			default:
				_, err := fmt.Fprintln(a.out, info.Line(programName))
				return err
			}
		},
	}
}
