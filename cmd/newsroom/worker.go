package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"newsroom/internal/domain"
	"newsroom/internal/scheduler"
	"newsroom/internal/service"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consume queued jobs and schedule periodic collection and trend reports",
	RunE:  runWorker,
}

func init() {
	workerCmd.Flags().Bool("no-schedule", false, "only consume queued jobs")
}

func runWorker(cmd *cobra.Command, _ []string) error {
	noSchedule, _ := cmd.Flags().GetBool("no-schedule")

	ctx, cancel := signalContext(setupLogger("info"))
	defer cancel()

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	cfg := a.Config

	jobs, err := a.Queue()
	if err != nil {
		return err
	}
	locker, err := a.Locker(ctx)
	if err != nil {
		return err
	}

	runner := service.NewJobRunner(a.Collector(locker), a.Trends, a.Logger)
	moderation := a.Moderation(jobs)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return jobs.Consume(ctx, func(ctx context.Context, job domain.Job) error {
			timeout := cfg.Collection.RunTimeout
			if job.Type == domain.JobTrend {
				timeout = cfg.AI.Timeout * 2
			}
			jobCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			return runner.Handle(jobCtx, job)
		})
	})

	if !noSchedule {
		sched := scheduler.NewScheduler(a.Logger,
			scheduler.Task{
				Name:       "collection",
				Interval:   cfg.Collection.Interval,
				Timeout:    10 * time.Second,
				RunOnStart: true,
				Run: func(ctx context.Context) error {
					_, err := moderation.TriggerCollection(ctx)
					if errors.Is(err, domain.ErrCollectionInProgress) {
						return nil
					}
					return err
				},
			},
			scheduler.Task{
				Name:     "trend-report",
				Interval: cfg.Trend.Interval,
				Timeout:  10 * time.Second,
				Run: func(ctx context.Context) error {
					_, err := moderation.TriggerTrendReport(ctx)
					return err
				},
			},
		)
		g.Go(func() error {
			return sched.Start(ctx)
		})
	}

	a.Logger.Info("worker started",
		"sources", len(cfg.Sources),
		"collection_interval", cfg.Collection.Interval,
		"trend_interval", cfg.Trend.Interval,
	)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
