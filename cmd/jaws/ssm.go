package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/younsl/jaws/internal/logging"
)

// sessionCommand builds the AWS CLI call that opens a Session Manager shell.
// The session-manager-plugin has to be installed next to the AWS CLI.
func sessionCommand(ctx context.Context, instanceID, region string) *exec.Cmd {
	c := exec.CommandContext(ctx, "aws", "ssm", "start-session", "--target", instanceID, "--region", region)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c
}

func newSSMCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ssm <instance-id>",
		Short: "Start an SSM (login) session with an instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			instanceID := args[0]

			s, err := a.connect(ctx)
			if err != nil {
				return err
			}
			s.notifier.Clear()

			c := sessionCommand(ctx, instanceID, s.handler.Region())
			logging.Debug("starting session", zap.Strings("args", c.Args))
			if err := c.Run(); err != nil {
				return fmt.Errorf("ssm session with %s: %w", instanceID, err)
			}
			return nil
		},
	}
}
