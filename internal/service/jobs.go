package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"newsroom/internal/domain"
	"newsroom/internal/metrics"
)

// ErrUnknownJob is returned for messages with a job type no runner handles.
var ErrUnknownJob = errors.New("unknown job type")

// JobRunner executes queued jobs in the worker process.
type JobRunner struct {
	collector Collector
	trends    TrendRunner
	logger    *slog.Logger
	now       func() time.Time
}

func NewJobRunner(collector Collector, trends TrendRunner, logger *slog.Logger) *JobRunner {
	return &JobRunner{
		collector: collector,
		trends:    trends,
		logger:    logger.With("component", "jobs"),
		now:       time.Now,
	}
}

// Handle runs job. A collection that finds another run in progress and a
// trend report over too few articles are skipped rather than failed.
func (r *JobRunner) Handle(ctx context.Context, job domain.Job) error {
	logger := r.logger.With("type", job.Type, "request_id", job.RequestID)
	logger.Info("job started", "requested_at", job.RequestedAt)

	err := r.run(ctx, job)
	switch {
	case errors.Is(err, domain.ErrCollectionInProgress):
		logger.Info("collection already running, job dropped")
		metrics.RecordJob(string(job.Type), "skipped")
		return nil
	case errors.Is(err, domain.ErrNotEnoughArticles):
		logger.Info("trend report skipped", "reason", err)
		metrics.RecordJob(string(job.Type), "skipped")
		return nil
	case err != nil:
		metrics.RecordJob(string(job.Type), "error")
		return err
	}

	metrics.RecordJob(string(job.Type), "success")
	logger.Info("job finished")
	return nil
}

func (r *JobRunner) run(ctx context.Context, job domain.Job) error {
	switch job.Type {
	case domain.JobCollect:
		_, err := r.collector.Run(ctx)
		return err
	case domain.JobTrend:
		_, err := r.trends.Run(ctx, r.now())
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownJob, job.Type)
	}
}
