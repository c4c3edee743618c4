// Root command for the iaconvert CLI.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/denshoproject/ddr-iaconvert/internal/logging"
	"github.com/denshoproject/ddr-iaconvert/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagLogLevel  string
	flagLogFormat string
)

// Set by PersistentPreRunE so all subcommands can use them.
var (
	cfg *viper.Viper
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:     "iaconvert",
	Short:   "Convert DDR CSV exports into Internet Archive bulk-upload rows",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		cfg, err = loadConfig(configDir)
		if err != nil {
			return err
		}

		log, err = logging.New(os.Stderr, logOptions())
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "log format: console or json")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(schemaCmd)
}

// logOptions applies flag > config file > built-in default precedence to the
// logger settings.
func logOptions() logging.Options {
	opts := logging.Options{
		Level:  cfg.GetString(cfgKeyLogLevel),
		Format: cfg.GetString(cfgKeyLogFormat),
	}
	if flagLogLevel != "" {
		opts.Level = flagLogLevel
	}
	if flagLogFormat != "" {
		opts.Format = flagLogFormat
	}
	return opts
}
