package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "sourcescore",
		Short: "Source reliability scoring service",
		Long: `sourcescore rates how reliable a cited source is for a Wikipedia-style
article. Scores combine a curated reliability database with heuristics over
the domain, citation metadata and the claim being supported.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (yaml, json or toml)")

	cmd.AddCommand(
		serveCmd(&configPath),
		migrateCmd(&configPath),
		importCmd(&configPath),
		scoreCmd(&configPath),
		lookupCmd(&configPath),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "sourcescore version %s\n", Version)
			},
		},
	)
	return cmd
}
