package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sourcescore/internal/config"
	"sourcescore/internal/csl"
	"sourcescore/internal/domain"
	"sourcescore/internal/rules"
	"sourcescore/internal/services/reliability"
	"sourcescore/internal/services/scoring"
)

type databaseFlags struct {
	rspFile string
	format  string
}

func (f *databaseFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.rspFile, "rsp-file", "", "Read ratings from a cache export instead of the store")
	cmd.Flags().StringVarP(&f.format, "format", "f", "text", "Output format (text|json)")
}

// openDatabase loads a snapshot from --rsp-file when given, else from the
// configured store.
func (f *databaseFlags) openDatabase(ctx context.Context, cfg config.Config, r *rules.Rules) (*reliability.Database, error) {
	logger := stderrLogger(cfg)
	if f.rspFile != "" {
		records, err := reliability.ReadCacheFile(f.rspFile)
		if err != nil {
			return nil, err
		}
		return reliability.New(r, logger, records...), nil
	}
	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer closeStore()
	db := reliability.New(r, logger)
	if _, err := db.Load(ctx, st); err != nil {
		return nil, err
	}
	return db, nil
}

func scoreCmd(configPath *string) *cobra.Command {
	var (
		dbFlags databaseFlags
		req     domain.ScoreRequest
		cslPath string
	)

	cmd := &cobra.Command{
		Use:   "score [domain]",
		Short: "Score a single source",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				req.Domain = args[0]
			}
			if cslPath != "" {
				data, err := os.ReadFile(cslPath)
				if err != nil {
					return fmt.Errorf("read csl file: %w", err)
				}
				md, problems, err := csl.Decode(data)
				if err != nil {
					return err
				}
				for _, p := range problems {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", p)
				}
				req.Metadata = &md
			}

			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			r, err := loadRules(cfg)
			if err != nil {
				return err
			}
			db, err := dbFlags.openDatabase(cmd.Context(), cfg, r)
			if err != nil {
				return err
			}

			res, err := scoring.New(db, r, scoring.WithLogger(stderrLogger(cfg))).Score(req)
			if err != nil {
				return err
			}
			if dbFlags.format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderScore(res))
			return nil
		},
	}
	dbFlags.register(cmd)
	cmd.Flags().StringVar(&req.URL, "url", "", "Source URL (used when no domain is given)")
	cmd.Flags().StringVar(&req.Context, "context", "", "Text of the claim the source supports")
	cmd.Flags().StringVar(&cslPath, "csl", "", "Path to a CSL-JSON item describing the source")
	return cmd
}

func lookupCmd(configPath *string) *cobra.Command {
	var dbFlags databaseFlags

	cmd := &cobra.Command{
		Use:   "lookup <domain>",
		Short: "Show the database entry for a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			r, err := loadRules(cfg)
			if err != nil {
				return err
			}
			db, err := dbFlags.openDatabase(cmd.Context(), cfg, r)
			if err != nil {
				return err
			}
			info := db.Lookup(args[0])
			if dbFlags.format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderLookup(info))
			return nil
		},
	}
	dbFlags.register(cmd)
	return cmd
}
