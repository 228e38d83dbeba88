// Package main provides the entry point for the wikiwalk CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/wikiwalk/internal/config"
)

// NewRootCmd creates the root command for wikiwalk.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wikiwalk <seed-url> <depth>",
		Short: "Bounded-depth breadth-first Wikipedia article crawler",
		Long: `wikiwalk crawls Wikipedia breadth-first from a seed article URL,
recording every reachable article link up to the given depth (1-3).

Each fetched page contributes at most 10 article links; pages that fail to
fetch are reported as warnings and skipped without aborting the crawl.

Examples:
  # Crawl two levels from the Cat article
  wikiwalk https://en.wikipedia.org/wiki/Cat 2

  # Write the result to results.json in the working directory
  wikiwalk https://en.wikipedia.org/wiki/Cat 1 --out json`,
		Args:          cobra.ExactArgs(2),
		RunE:          runCrawlCmd,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.Flags().StringP("out", "o", "",
		`Write the full result to the working directory ("csv", "json", or "md")`)
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Fetch timeout applied to each request independently")
	cmd.Flags().IntP("workers", "w", config.DefaultWorkers,
		"Concurrent fetches per crawl level (1 = sequential)")
	cmd.Flags().StringP("user-agent", "u", config.DefaultUserAgent,
		"User-Agent header sent with every request")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .wikiwalk in current or home directory)")

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
