package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sourcescore/internal/services/reliability"
)

func importCmd(configPath *string) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "import <rsp_cache.json>",
		Short: "Merge a curated reliability export into the store",
		Long: `Merge a curated reliability export into the store. The file maps domains to
{"label": ..., "notes": ...}. Existing domains are updated; others are added.
Entries with an empty label or keyed on a public suffix are skipped, or fail
the import with --strict.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			logger := stderrLogger(cfg)
			ctx := cmd.Context()

			records, err := reliability.ReadCacheFile(args[0])
			if err != nil {
				return err
			}
			valid, problems := reliability.ValidateRecords(records)
			for _, p := range problems {
				logger.Warn("skipping entry", "error", p)
			}
			if strict && len(problems) > 0 {
				return fmt.Errorf("%d invalid entries in %s", len(problems), args[0])
			}

			st, closeStore, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			merged, err := st.Merge(ctx, valid)
			if err != nil {
				return fmt.Errorf("merge: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "merged %d entries (%d skipped)\n", merged, len(problems))
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail instead of skipping invalid entries")
	return cmd
}
