package main

import (
	"context"
	"io"
	"os"
	"os/user"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/younsl/jaws/internal/config"
	"github.com/younsl/jaws/internal/logging"
	"github.com/younsl/jaws/internal/models"
	"github.com/younsl/jaws/internal/progress"
	"github.com/younsl/jaws/internal/version"
	"github.com/younsl/jaws/pkg/aws"
	"github.com/younsl/jaws/pkg/formatter"
	"github.com/younsl/jaws/pkg/utils"
)

const programName = "jaws"

// app holds what the subcommands of one invocation share
type app struct {
	v          *viper.Viper
	configFile string
	settings   config.Settings
	out        io.Writer
}

// session is a connected, identity-checked command context
type session struct {
	handler  *aws.Handler
	identity models.CallerIdentity
	notifier progress.Notifier
}

func newApp(out io.Writer) *app {
	return &app{v: config.New(), out: out}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   programName,
		Short: "Reconcile EC2 reserved instances against the running fleet",
		Long: `jaws lists EC2 inventory and prices Reserved Instance coverage,
showing unused reservations and the yearly saving against on-demand rates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("region", "r", "", "AWS region to inspect (default: the AWS SDK region)")
	flags.BoolP("wide", "w", false, "Output wider, more detailed data; may be slower")
	flags.StringP("output", "o", config.OutputTable, "Output format: table, json or yaml")
	flags.String("pricing-region", utils.DefaultPricingRegion, "Region the AWS Pricing API is called in")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.StringVar(&a.configFile, "config", "", "Config file (default: $HOME/.jaws.yaml)")

	rootCmd.AddCommand(
		newResCmd(a),
		newEC2Cmd(a),
		newGCICmd(a),
		newSSMCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// init resolves settings once flags are parsed
func (a *app) init(cmd *cobra.Command) error {
	if err := config.ReadFile(a.v, a.configFile); err != nil {
		return err
	}
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}

	settings, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.settings = settings

	logCfg := logging.DefaultConfig()
	logCfg.Level = settings.LogLevel
	return logging.Initialize(logCfg)
}

func (a *app) newNotifier() progress.Notifier {
	if !a.settings.SupportsFreeText() {
		return progress.Discard{}
	}
	return progress.NewSpinner(os.Stderr)
}

// connect creates the AWS clients and checks the caller identity before
// anything else is called
func (a *app) connect(ctx context.Context) (*session, error) {
	notifier := a.newNotifier()

	clients, region, err := aws.NewClients(ctx, a.settings.Region, a.settings.PricingRegion)
	if err != nil {
		notifier.Clear()
		return nil, err
	}

	if !utils.IsKnownRegion(region) {
		logging.Warn("unrecognized region", zap.String("region", region))
	}

	handler := aws.NewHandler(clients, aws.CacheOptions{
		Region:    region,
		Currency:  a.settings.Currency,
		SSMPolicy: a.settings.SSMPolicy,
	}, notifier)

	identity, err := handler.CallerIdentity(ctx)
	if err != nil {
		notifier.Clear()
		return nil, err
	}

	return &session{handler: handler, identity: identity, notifier: notifier}, nil
}

func (a *app) renderer(region string) (formatter.Renderer, error) {
	return formatter.New(a.settings.Output, a.out, formatter.Meta{
		Program:   programName,
		Version:   version.Get().Version,
		Region:    region,
		Generated: time.Now(),
		User:      userAtHost(),
	})
}

// printStats prints the cache counters after a table report in wide or
// debug mode
func (a *app) printStats(handler *aws.Handler) error {
	if !a.settings.SupportsFreeText() {
		return nil
	}
	if !a.settings.Wide && a.settings.LogLevel != "debug" {
		return nil
	}
	return formatter.PrintCacheStats(a.out, handler.Cache().Stats().Lines())
}

func userAtHost() string {
	name := "unknown"
	if u, err := user.Current(); err == nil {
		name = u.Username
	}
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return name + "@" + host
}
