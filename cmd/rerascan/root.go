package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/odisha-tools/rerascan/config"
	"github.com/odisha-tools/rerascan/export"
	"github.com/odisha-tools/rerascan/scraper"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for rerascan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rerascan",
		Short: "Extract project records from the RERA Odisha portal",
		Long: `rerascan drives a browser session against the RERA Odisha project
listing, extracts per-project basic and promoter details, and exports the
result to a timestamped spreadsheet with an accompanying log file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.Flags().IntP("max-projects", "n", 0, "Maximum number of projects to scrape (0 = config default)")
	cmd.Flags().Bool("headless", true, "Run the browser without a visible window")
	cmd.Flags().String("listing-url", "", "Override the project listing URL")
	cmd.Flags().String("out-dir", "", "Directory for the exported spreadsheet")
	cmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	applyFlags(cmd, cfg)

	verbose, _ := cmd.Flags().GetBool("verbose")
	logFile, err := initLogger(cfg.Log, verbose)
	if err != nil {
		return err
	}
	defer logFile.Close()

	slog.Info("rerascan starting",
		"listingURL", cfg.Portal.ListingURL,
		"maxProjects", cfg.Portal.MaxProjects,
		"headless", cfg.Browser.Headless,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Reachability probe before paying browser startup cost.
	preflightCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	res, err := scraper.Preflight(preflightCtx, cfg.Portal.ListingURL)
	cancel()
	if err != nil {
		slog.Warn("preflight failed, attempting browser run anyway", "error", err)
	} else {
		slog.Info("listing reachable",
			"title", res.Title,
			"jsRequired", res.JSRequired,
			"bytes", res.BodyBytes,
		)
	}

	sess, err := scraper.NewSession(cfg.Browser)
	if err != nil {
		slog.Error("failed to start browser session", "error", err)
		return err
	}
	defer sess.Close()

	nav := scraper.NewNavigator(sess.Page(), cfg.Portal)
	orch := scraper.NewOrchestrator(nav, cfg.Portal)

	records, runErr := orch.Run(ctx)
	if runErr != nil {
		slog.Error("run ended with error", "error", runErr, "records", len(records))
	}

	// Whatever was accumulated is persisted, even after a fatal error.
	if _, err := export.WriteExcel(records, cfg.Export); err != nil {
		slog.Error("export failed", "error", err)
		if runErr == nil {
			runErr = err
		}
	}
	export.Display(os.Stdout, records)

	return runErr
}

// applyFlags overrides config fields with explicitly set CLI flags.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("max-projects") {
		if n, err := cmd.Flags().GetInt("max-projects"); err == nil && n > 0 {
			cfg.Portal.MaxProjects = n
		}
	}
	if cmd.Flags().Changed("headless") {
		if h, err := cmd.Flags().GetBool("headless"); err == nil {
			cfg.Browser.Headless = h
		}
	}
	if cmd.Flags().Changed("listing-url") {
		if u, err := cmd.Flags().GetString("listing-url"); err == nil && u != "" {
			cfg.Portal.ListingURL = u
		}
	}
	if cmd.Flags().Changed("out-dir") {
		if d, err := cmd.Flags().GetString("out-dir"); err == nil && d != "" {
			cfg.Export.Dir = d
		}
	}
}
