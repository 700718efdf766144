package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vclassroom/local-app/internal/log"
	"vclassroom/local-app/internal/ui"
)

func newLogsCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the records of the configured log folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.LogFolder == "" {
				return fmt.Errorf("no log folder configured")
			}

			viewer := &log.Viewer{
				Dir:      cfg.LogFolder,
				Filter:   filter,
				UseColor: ui.ColorEnabled(cfg.Color, os.Stdout),
			}
			n, err := viewer.Print(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matching log records.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Only print records containing this text")
	return cmd
}
