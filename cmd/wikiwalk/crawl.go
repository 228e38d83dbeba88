package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/wikiwalk/internal/config"
	"github.com/nao1215/wikiwalk/internal/crawler"
	"github.com/nao1215/wikiwalk/internal/log"
	"github.com/nao1215/wikiwalk/internal/model"
	"github.com/nao1215/wikiwalk/internal/report"
)

// Result file names written to the working directory by --out.
const (
	resultFileCSV      = "results.csv"
	resultFileJSON     = "results.json"
	resultFileMarkdown = "results.md"
)

// runCrawlCmd executes the crawl. All validation happens before any network
// activity; validation failures return an error and a non-zero exit, while
// per-fetch failures during the crawl only produce warnings.
func runCrawlCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Seed validation uses the same rule the extractor applies mid-crawl.
	validator := crawler.NewValidator(cfg.Site)
	if !validator.IsArticleURL(cfg.Seed) {
		return fmt.Errorf("invalid seed URL %q: must be an http(s) %s link on %s",
			cfg.Seed, cfg.Site.ArticlePrefix+"...", cfg.Site.Domain)
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Cancel the crawl on SIGINT/SIGTERM; in-flight fetches are abandoned.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Warn("received shutdown signal, cancelling crawl...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runCrawl(ctx, cmd, cfg, logger)
}

// buildConfig creates a Config from positional arguments, flags, and the
// optional configuration file. Precedence: flags > config file > defaults.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	cfg.Seed = args[0]

	depth, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not an integer", config.ErrInvalidDepth, args[1])
	}
	cfg.Depth = depth

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user explicitly specified a config file, it must exist.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Flags override file values only when changed, so a config-file
	// timeout survives the flag default.
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers, err = cmd.Flags().GetInt("workers")
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("user-agent") {
		cfg.UserAgent, err = cmd.Flags().GetString("user-agent")
		if err != nil {
			return nil, err
		}
	}

	cfg.OutputFormat, err = cmd.Flags().GetString("out")
	if err != nil {
		return nil, err
	}

	cfg.Verbose, err = cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// runCrawl builds the crawl components, runs the traversal, and dispatches
// the result to stdout and the optional result file.
func runCrawl(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	extractor, err := crawler.NewLinkExtractor(cfg.Site, cfg.FanOut)
	if err != nil {
		return err
	}

	fetcher := crawler.NewFetcher(
		crawler.WithTimeout(cfg.Timeout),
		crawler.WithUserAgent(cfg.UserAgent),
		crawler.WithMaxBodySize(cfg.MaxBodySize),
	)

	spider := crawler.NewSpider(fetcher, extractor,
		crawler.WithWorkers(cfg.Workers),
		crawler.WithLogger(logger),
	)

	fmt.Fprintf(cmd.OutOrStdout(), "Starting crawl from: %s\n", cfg.Seed)

	result, err := spider.Crawl(ctx, cfg.Seed, cfg.Depth)
	if err != nil {
		return fmt.Errorf("crawl aborted: %w", err)
	}

	if _, err := report.NewSummaryWriter(cmd.OutOrStdout()).Write(result); err != nil {
		return err
	}

	if cfg.OutputFormat == "" {
		return nil
	}
	return writeResultFile(cmd, cfg.OutputFormat, result)
}

// writeResultFile serializes the result to a fixed filename in the working
// directory and announces it on stdout.
func writeResultFile(cmd *cobra.Command, format string, result *model.CrawlResult) error {
	var fileName string
	switch format {
	case config.OutputCSV:
		fileName = resultFileCSV
	case config.OutputJSON:
		fileName = resultFileJSON
	case config.OutputMarkdown:
		fileName = resultFileMarkdown
	default:
		return fmt.Errorf("%w: %s", config.ErrInvalidOutputFormat, format)
	}

	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", fileName, err)
	}
	defer f.Close()

	var writer report.Writer
	switch format {
	case config.OutputCSV:
		writer = report.NewCSVWriter(f)
	case config.OutputJSON:
		writer = report.NewJSONWriter(f, report.WithPrettyPrint())
	case config.OutputMarkdown:
		writer = report.NewMarkdownWriter(f)
	}

	if _, err := writer.Write(result); err != nil {
		return fmt.Errorf("failed to write %s: %w", fileName, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "→ %s written\n", fileName)
	return nil
}
