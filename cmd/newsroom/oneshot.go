package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Run one collection in the foreground",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := signalContext(setupLogger("info"))
		defer cancel()

		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		locker, err := a.Locker(ctx)
		if err != nil {
			return err
		}

		ctx, cancelRun := context.WithTimeout(ctx, a.Config.Collection.RunTimeout)
		defer cancelRun()

		stats, err := a.Collector(locker).Run(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "found %d articles, summarized %d, failed %d, skipped %d, source errors %d\n",
			stats.ArticlesFound, stats.Summarized, stats.SummaryFailed, stats.Skipped, stats.SourceErrors)
		return nil
	},
}

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Generate a trend report for the current window",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := signalContext(setupLogger("info"))
		defer cancel()

		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		report, err := a.Trends.Run(ctx, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "stored trend report v%d over %d articles\n", report.Version, report.TotalArticles)
		return nil
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "migrate-status",
	Short: "Rewrite legacy and missing article statuses to published",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := signalContext(setupLogger("info"))
		defer cancel()

		a, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		n, err := a.Articles.MigrateLegacyStatus(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "updated %d articles\n", n)
		return nil
	},
}
