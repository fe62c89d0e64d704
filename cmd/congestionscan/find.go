package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/congestionscan/internal/config"
	"github.com/nao1215/congestionscan/internal/database"
	"github.com/nao1215/congestionscan/internal/manic"
	"github.com/nao1215/congestionscan/internal/model"
	"github.com/nao1215/congestionscan/internal/names"
	"github.com/nao1215/congestionscan/internal/pipeline"
	"github.com/nao1215/congestionscan/internal/report"
	"github.com/nao1215/congestionscan/internal/viz"
)

// NewFindCmd creates the find command.
func NewFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find congestion events between the configured network pairs",
		Long: `Find queries the MANIC measurement API for historical congestion events
between every configured near network and every far ASN.

The lookback period is split into 30-day windows (the API's range limit)
and one query is issued per window per pair, strictly sequentially. For
each near network with at least one detected event, a spreadsheet workbook
named after the network is written into a new run directory
(congestion-<timestamp>), one sheet per far ASN with events.

Each event row carries two visualization links: a 3-day view anchored on
the event day, and a 30-day view centered on it.

Examples:
  # Scan the built-in network tables over the default 60-month lookback
  congestionscan find

  # Shorter lookback, write reports under ./out, add a Markdown summary
  congestionscan find --months 24 --output-dir out --markdown

  # Keep scanning remaining pairs when a query fails
  congestionscan find --keep-going

  # Use a custom configuration file
  congestionscan find -c myconfig.yaml

Configuration file (.congestionscan) example:
  months: 24
  networks:
    "7018": AT&T
    "7922": COMCAST
  asns:
    "16509": AMAZON-02
    "40027": NETFLIX`,
		Args: cobra.NoArgs,
		RunE: runFindCmd,
	}

	// Scan scope flags
	cmd.Flags().IntP("months", "m", config.DefaultMonths,
		"Lookback length in 30-day months")
	cmd.Flags().DurationP("timeout", "t", manic.DefaultTimeout,
		"Timeout for each API request")

	// Failure scope
	cmd.Flags().BoolP("keep-going", "k", false,
		"Skip a (near, far) pair on query failure instead of aborting the run")

	// Output flags
	cmd.Flags().StringP("output-dir", "o", ".",
		"Directory to create the per-run congestion-<timestamp> directory in")
	cmd.Flags().Bool("markdown", false,
		"Also write a Markdown run summary into the run directory")

	// Name cache
	cmd.Flags().Bool("no-cache", false,
		"Disable the persistent ASN-name cache for this run")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .congestionscan in current or home directory)")

	return cmd
}

// runFindCmd executes the find command.
func runFindCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runFind(ctx, cfg, logger, cmd)
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file. Flag values that the user set explicitly win over
// the file's values.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load configuration file overrides before flags so explicit flags win.
	// An explicitly specified path comes back from FindConfigFile as-is, so
	// a missing explicit file surfaces as a load error; without an explicit
	// path a missing file silently keeps the defaults.
	if configPath := config.FindConfigFile(cfg.ConfigFilePath); configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	}

	if cmd.Flags().Changed("months") {
		cfg.Months, err = cmd.Flags().GetInt("months")
		if err != nil {
			return nil, err
		}
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.KeepGoing, err = cmd.Flags().GetBool("keep-going")
	if err != nil {
		return nil, err
	}

	cfg.OutputDir, err = cmd.Flags().GetString("output-dir")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownSummary, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.NoCache, err = cmd.Flags().GetBool("no-cache")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// runFind executes the scan: one report per near network, each built from
// one pair sheet per far network, each sheet from one query per window.
func runFind(ctx context.Context, cfg *config.Config, logger *slog.Logger, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	anchor := time.Now()

	logger.Info("starting congestion scan",
		"months", cfg.Months,
		"nearNetworks", len(cfg.NearNetworks),
		"farNetworks", len(cfg.FarNetworks),
		"keepGoing", cfg.KeepGoing,
	)

	// Create the per-run output directory up front; failing here is
	// cheaper than failing after the first network's worth of queries.
	runDir := filepath.Join(cfg.OutputDir, config.RunDirPrefix+anchor.Format(config.RunDirTimeFormat))
	if err := os.MkdirAll(runDir, 0750); err != nil {
		return fmt.Errorf("failed to create run directory %s: %w", runDir, err)
	}

	client := manic.NewClient(
		manic.WithBaseURL(cfg.APIBaseURL),
		manic.WithTimeout(cfg.Timeout),
	)

	finder := pipeline.NewFinder(client, cfg.Months,
		pipeline.WithAnchor(anchor),
		pipeline.WithLinkBuilder(viz.NewBuilder(viz.WithBaseURL(cfg.VizBaseURL))),
		pipeline.WithNameResolver(newResolver(ctx, cfg, client, logger)),
		pipeline.WithLogger(logger),
		pipeline.WithProgress(out),
		pipeline.WithKeepGoing(cfg.KeepGoing),
	)

	writer := report.NewWorkbookWriter(runDir)
	summary := &model.RunSummary{Started: anchor, Months: cfg.Months}
	fars := cfg.MergeNearIntoFar()

	for _, near := range cfg.NearNetworks {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		networkStart := time.Now()

		rep, results, err := finder.BuildReport(ctx, near, fars)
		summary.Pairs = append(summary.Pairs, results...)
		if err != nil {
			return err
		}

		if rep.HasEvents() {
			path, err := writer.Write(rep)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\nReport written: %s\n", path)
		} else {
			logger.Info("no congestion events, report not written", "network", near.Name)
		}

		fmt.Fprintf(out, "\nExecution time: %s\n", time.Since(networkStart).Round(time.Millisecond))
	}

	if cfg.MarkdownSummary {
		if err := writeSummary(runDir, summary); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "\n--------------------------------\n")
	fmt.Fprintf(out, "\nTotal execution time: %s\n", time.Since(anchor).Round(time.Millisecond))

	return nil
}

// newResolver builds the registered-name resolver: the remote /asns lookup
// backed by the persistent cache (unless disabled). A cache that fails to
// open is logged and skipped; the cache only saves lookups.
func newResolver(ctx context.Context, cfg *config.Config, client *manic.Client, logger *slog.Logger) *names.Resolver {
	opts := []names.ResolverOption{
		names.WithLogger(logger),
	}

	if !cfg.NoCache {
		db, err := database.Open(config.XDGCacheDir(), database.DefaultOptions())
		if err != nil {
			logger.Warn("name cache unavailable", "error", err)
		} else {
			opts = append(opts, names.WithCache(db))
			context.AfterFunc(ctx, func() {
				if err := db.Close(); err != nil {
					logger.Error("failed to close name cache", "error", err)
				}
			})
		}
	}

	return names.NewResolver(client, opts...)
}

// writeSummary renders the Markdown run summary into the run directory.
func writeSummary(runDir string, summary *model.RunSummary) error {
	path := filepath.Join(runDir, config.DefaultSummaryFileName)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}

	if err := report.NewSummaryWriter(f).Write(summary); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write summary: %w", err)
	}

	// Close errors matter here: a short write to summary.md would otherwise
	// vanish silently.
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write summary file %s: %w", path, err)
	}

	return nil
}
