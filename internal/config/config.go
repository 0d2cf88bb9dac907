// Package config resolves jaws settings from flags, environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/younsl/jaws/pkg/pricing"
	"github.com/younsl/jaws/pkg/utils"
)

// Keys used in the config file and as JAWS_* environment variables
const (
	KeyRegion        = "region"
	KeyPricingRegion = "pricing_region"
	KeyCurrency      = "currency"
	KeySSMPolicy     = "ssm_policy"
	KeyOutput        = "output"
	KeyWide          = "wide"
	KeyLogLevel      = "log_level"
)

// DefaultSSMPolicy is the managed policy that lets Session Manager reach an instance
const DefaultSSMPolicy = "AmazonSSMManagedInstanceCore"

// Output formats
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Settings is the resolved configuration for one command invocation
type Settings struct {
	// Region is the operating region; empty defers to the AWS SDK chain
	Region string

	// PricingRegion is the hub region the Pricing API is called in
	PricingRegion string

	// Currency is the pricePerUnit key read from price list documents
	Currency string

	// SSMPolicy is the managed policy name that marks a role as SSM capable
	SSMPolicy string

	Output   string
	Wide     bool
	LogLevel string
}

// SupportsFreeText reports whether progress and banners may be printed
// alongside the report
func (s Settings) SupportsFreeText() bool {
	return s.Output == OutputTable
}

// Validate checks settings that cannot be resolved by defaults
func (s Settings) Validate() error {
	switch s.Output {
	case OutputTable, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("unsupported output format %q (want %s, %s or %s)", s.Output, OutputTable, OutputJSON, OutputYAML)
	}
	if s.PricingRegion == "" {
		return errors.New("pricing region must not be empty")
	}
	return nil
}

// New returns a viper instance carrying the jaws defaults and environment binding
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("JAWS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyRegion, "")
	v.SetDefault(KeyPricingRegion, utils.DefaultPricingRegion)
	v.SetDefault(KeyCurrency, pricing.DefaultCurrency)
	v.SetDefault(KeySSMPolicy, DefaultSSMPolicy)
	v.SetDefault(KeyOutput, OutputTable)
	v.SetDefault(KeyWide, false)
	v.SetDefault(KeyLogLevel, "warn")
	return v
}

// BindFlags binds command line flags to their keys. Flag names use dashes.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyRegion, KeyPricingRegion, KeyOutput, KeyWide, KeyLogLevel} {
		if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("error binding flag %s: %w", f.Name, err)
			}
		}
	}
	return nil
}

// ReadFile loads configFile, or $HOME/.jaws.yaml when configFile is empty.
// A missing default file is not an error.
func ReadFile(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	v.SetConfigFile(filepath.Join(home, ".jaws.yaml"))
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Load reads the resolved settings out of v
func Load(v *viper.Viper) (Settings, error) {
	s := Settings{
		Region:        v.GetString(KeyRegion),
		PricingRegion: v.GetString(KeyPricingRegion),
		Currency:      v.GetString(KeyCurrency),
		SSMPolicy:     v.GetString(KeySSMPolicy),
		Output:        strings.ToLower(v.GetString(KeyOutput)),
		Wide:          v.GetBool(KeyWide),
		LogLevel:      v.GetString(KeyLogLevel),
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
