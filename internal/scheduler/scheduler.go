package scheduler

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Task is a periodic unit of work.
type Task struct {
	Name     string
	Interval time.Duration
	Timeout  time.Duration
	// RunOnStart fires the task once before the first tick.
	RunOnStart bool
	Run        func(ctx context.Context) error
}

type Scheduler struct {
	tasks  []Task
	logger *slog.Logger
}

func NewScheduler(logger *slog.Logger, tasks ...Task) *Scheduler {
	return &Scheduler{
		tasks:  tasks,
		logger: logger.With("component", "scheduler"),
	}
}

// Start runs every task on its own ticker until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, task := range s.tasks {
		if task.Interval <= 0 {
			s.logger.Warn("task disabled", "task", task.Name)
			continue
		}
		task := task
		g.Go(func() error {
			return s.loop(ctx, task)
		})
	}

	s.logger.Info("scheduler started", "tasks", len(s.tasks))
	err := g.Wait()
	s.logger.Info("scheduler stopped")
	return err
}

func (s *Scheduler) loop(ctx context.Context, task Task) error {
	s.logger.Info("task scheduled", "task", task.Name, "interval", task.Interval)

	if task.RunOnStart {
		s.runTask(ctx, task)
	}

	ticker := time.NewTicker(task.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.runTask(ctx, task)
		}
	}
}

func (s *Scheduler) runTask(ctx context.Context, task Task) {
	if task.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, task.Timeout)
		defer cancel()
	}

	if err := task.Run(ctx); err != nil {
		s.logger.Error("task failed", "task", task.Name, "error", err)
	}
}
