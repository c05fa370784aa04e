package source

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"newsroom/internal/domain"
	"newsroom/internal/metrics"
)

// Strategy retrieves the items of one feed source.
type Strategy interface {
	Name() string
	Fetch(ctx context.Context, src domain.FeedSource) ([]domain.FeedItem, error)
}

// Registry maps strategy names to implementations.
type Registry struct {
	strategies map[string]Strategy
}

func NewRegistry(strategies ...Strategy) *Registry {
	r := &Registry{strategies: map[string]Strategy{}}
	for _, s := range strategies {
		r.Register(s)
	}
	return r
}

// Register adds or replaces a strategy.
func (r *Registry) Register(s Strategy) {
	r.strategies[s.Name()] = s
}

// Resolve returns the strategy registered under name.
func (r *Registry) Resolve(name string) (Strategy, error) {
	if s, ok := r.strategies[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("strategy %s is not registered", name)
}

// Fetcher runs every configured source with bounded parallelism. A failing
// source is recorded in its result and never aborts the others.
type Fetcher struct {
	registry    *Registry
	concurrency int
	logger      *slog.Logger
}

func NewFetcher(registry *Registry, concurrency int, logger *slog.Logger) *Fetcher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Fetcher{
		registry:    registry,
		concurrency: concurrency,
		logger:      logger.With("component", "fetcher"),
	}
}

// FetchAll returns exactly one result per source, in source order.
func (f *Fetcher) FetchAll(ctx context.Context, sources []domain.FeedSource) []domain.SourceResult {
	results := make([]domain.SourceResult, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.concurrency)

	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			results[i] = f.fetchOne(gctx, src)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (f *Fetcher) fetchOne(ctx context.Context, src domain.FeedSource) domain.SourceResult {
	logger := f.logger.With("source", src.ID)
	result := domain.SourceResult{SourceID: src.ID, Name: src.Name}
	start := time.Now()

	items, err := f.fetch(ctx, src)
	metrics.RecordSourceFetch(src.ID, err != nil, time.Since(start).Seconds())
	if err != nil {
		logger.Error("source fetch failed", "strategy", src.Strategy, "error", err)
		result.Error = err.Error()
		return result
	}

	if src.MaxItems > 0 && len(items) > src.MaxItems {
		items = items[:src.MaxItems]
	}
	result.Items = items
	result.Fetched = len(items)

	logger.Info("source fetched", "items", len(items), "duration", time.Since(start))
	return result
}

func (f *Fetcher) fetch(ctx context.Context, src domain.FeedSource) (items []domain.FeedItem, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("strategy panic: %v", r)
		}
	}()

	strategy, err := f.registry.Resolve(src.Strategy)
	if err != nil {
		return nil, err
	}
	return strategy.Fetch(ctx, src)
}
