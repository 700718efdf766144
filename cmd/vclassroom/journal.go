package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vclassroom/local-app/internal/config"
	"vclassroom/local-app/internal/storage"
)

func newJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Inspect the command journal",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Print every journal entry",
			Args:  cobra.NoArgs,
			RunE: withJournal(func(cmd *cobra.Command, store storage.JournalStore, _ []string) error {
				entries, err := store.JournalList(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "Journal is empty.")
					return nil
				}
				for _, e := range entries {
					fmt.Fprintf(out, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
						e.ID, e.Timestamp.Format("2006-01-02 15:04:05"), e.RunID, e.Event, e.Classroom, e.Student, e.Details)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "verify",
			Short: "Check the journal hash chain",
			Args:  cobra.NoArgs,
			RunE: withJournal(func(cmd *cobra.Command, store storage.JournalStore, _ []string) error {
				n, err := store.JournalVerify(cmd.Context())
				var chainErr *storage.ChainError
				if errors.As(err, &chainErr) {
					return fmt.Errorf("journal is corrupt after %d valid entries: %w", n, err)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Journal intact: %d entries verified.\n", n)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "export <file.xlsx>",
			Short: "Export the journal to a spreadsheet",
			Args:  cobra.ExactArgs(1),
			RunE: withJournal(func(cmd *cobra.Command, store storage.JournalStore, args []string) error {
				entries, err := store.JournalList(cmd.Context())
				if err != nil {
					return err
				}
				if err := storage.JournalExportXLSX(entries, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s.\n", len(entries), args[0])
				return nil
			}),
		},
	)

	return cmd
}

// withJournal opens the configured journal for the duration of run. The
// journal file must already exist.
func withJournal(run func(*cobra.Command, storage.JournalStore, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		store, err := openJournal(cfg)
		if err != nil {
			return err
		}
		defer store.Close()
		return run(cmd, store, args)
	}
}

func openJournal(cfg *config.Config) (storage.JournalStore, error) {
	if _, err := os.Stat(cfg.JournalPath); err != nil {
		return nil, fmt.Errorf("no journal at %s: %w", cfg.JournalPath, err)
	}
	return storage.Open(cfg.JournalDriver, cfg.JournalPath)
}
