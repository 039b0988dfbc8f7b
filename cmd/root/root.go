// Package root contains the root command for the application.
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"mrossi/rendiconti/internal/config"
	"mrossi/rendiconti/internal/logging"
	"mrossi/rendiconti/internal/report"
	"mrossi/rendiconti/internal/store"
)

// CommonFlags represents the flags shared by multiple commands.
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// SharedFlags are accessible to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "rendiconti",
		Short: "Manage rental properties, monthly statements and annual summaries.",
		Long: `rendiconti computes per-property monthly rental statements from raw
figures, aggregates them into annual tables and reconciles bulk CSV imports
against the stored property and record collections.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to rendiconti!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLogging(cfg)
			store.SetLogger(GetLogger())
			if d := cfg.CSV.Delimiter; len(d) == 1 {
				report.SetDelimiter(rune(d[0]))
			}
		},
	}
)

// GetLogger returns the shared logger behind the logging abstraction.
func GetLogger() logging.Logger {
	return logging.FromLogrus(Log)
}

// GetStore builds the snapshot store from the configured data directory.
func GetStore() *store.Store {
	dir := ""
	if Cfg != nil {
		dir = Cfg.Data.Directory
	}
	return store.New(dir)
}

// Init initializes the root command and all shared flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}
