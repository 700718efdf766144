package main

import (
	"github.com/spf13/cobra"

	"vclassroom/local-app/internal/config"
)

var (
	flagConfig    string
	flagEnvFile   string
	flagLogLevel  string
	flagLogFormat string
	flagNoColor   bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vclassroom [script...]",
		Short: "Virtual Classroom Manager",
		Long: "vclassroom manages classrooms, student enrollment and assignment submissions " +
			"from an interactive prompt. Script files given as arguments run before the prompt.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return bootstrap(cfg, args)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Configuration file (.json or .toml)")
	root.PersistentFlags().StringVar(&flagEnvFile, "env-file", "", "Load VCLASSROOM_* variables from this file")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format (text, json)")
	root.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newJournalCmd(),
		newLogsCmd(),
	)

	return root
}

// loadConfig reads the configuration file, then applies the environment and
// finally the flags set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.ConfigLoad(flagConfig)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg, flagEnvFile); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = flagLogFormat
	}
	if flagNoColor {
		cfg.Color = config.ColorNever
	}
	return cfg, nil
}
