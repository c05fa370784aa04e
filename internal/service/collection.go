package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"newsroom/internal/domain"
	"newsroom/internal/metrics"
	"newsroom/internal/source"
	"newsroom/internal/tagging"
)

type CollectionConfig struct {
	Sources        []domain.FeedSource
	SummarizeLimit int
	LockKey        string
	LockTTL        time.Duration
}

// CollectionService runs one collection: fetch every source, merge the items
// into the store, then summarize what still lacks a summary.
type CollectionService struct {
	fetcher   Fetcher
	articles  ArticleStore
	status    CollectionStatusStore
	txManager TransactionManager
	enricher  Enricher
	locker    Locker
	tagger    *tagging.Engine
	logger    *slog.Logger
	config    CollectionConfig
	now       func() time.Time
}

func NewCollectionService(
	fetcher Fetcher,
	articles ArticleStore,
	status CollectionStatusStore,
	txManager TransactionManager,
	enricher Enricher,
	locker Locker,
	tagger *tagging.Engine,
	logger *slog.Logger,
	cfg CollectionConfig,
) *CollectionService {
	return &CollectionService{
		fetcher:   fetcher,
		articles:  articles,
		status:    status,
		txManager: txManager,
		enricher:  enricher,
		locker:    locker,
		tagger:    tagger,
		logger:    logger.With("component", "collection"),
		config:    cfg,
		now:       time.Now,
	}
}

// Run executes a collection. It returns domain.ErrCollectionInProgress when
// another run holds the lock.
func (s *CollectionService) Run(ctx context.Context) (*domain.CollectionStats, error) {
	release, ok, err := s.locker.Acquire(ctx, s.config.LockKey, s.config.LockTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, domain.ErrCollectionInProgress
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warn("failed to release run lock", "error", err)
		}
	}()

	startTime := s.now()
	s.logger.Info("starting collection", "sources", len(s.config.Sources))

	if err := s.status.Put(ctx, &domain.CollectionStatus{
		LastRunAt: &startTime,
		Status:    domain.RunStatusRunning,
	}); err != nil {
		return nil, fmt.Errorf("mark run started: %w", err)
	}

	stats, runErr := s.collect(ctx, startTime)
	stats.Duration = s.now().Sub(startTime)

	final := &domain.CollectionStatus{
		LastRunAt:     &startTime,
		ArticlesFound: stats.ArticlesFound,
		SuccessCount:  stats.Summarized,
		FailCount:     stats.SummaryFailed,
		DurationMs:    stats.Duration.Milliseconds(),
		Status:        domain.RunStatusSuccess,
		Sources:       stats.Sources,
	}
	if runErr != nil {
		final.Status = domain.RunStatusFailed
		final.Error = runErr.Error()
	}
	if err := s.status.Put(context.WithoutCancel(ctx), final); err != nil {
		s.logger.Error("failed to record run result", "error", err)
	}
	metrics.RecordCollectionRun(string(final.Status), stats.ArticlesFound)

	if runErr != nil {
		s.logger.Error("collection failed", "error", runErr, "duration", stats.Duration)
		return stats, runErr
	}

	s.logger.Info("collection completed",
		"found", stats.ArticlesFound,
		"source_errors", stats.SourceErrors,
		"summarized", stats.Summarized,
		"summary_failed", stats.SummaryFailed,
		"skipped", stats.Skipped,
		"duration", stats.Duration,
	)
	return stats, nil
}

func (s *CollectionService) collect(ctx context.Context, now time.Time) (*domain.CollectionStats, error) {
	stats := &domain.CollectionStats{}

	results := s.fetcher.FetchAll(ctx, s.config.Sources)
	stats.Sources = results

	articles := s.normalize(results, now, stats)
	stats.ArticlesFound = len(articles)
	if len(articles) == 0 {
		return stats, nil
	}

	ids := make([]string, len(articles))
	for i, a := range articles {
		ids[i] = a.ID
	}

	existing, err := s.articles.ExistingIDs(ctx, ids)
	if err != nil {
		return stats, fmt.Errorf("load existing articles: %w", err)
	}

	patches := make([]domain.ArticlePatch, len(articles))
	for i, a := range articles {
		if existing[a.ID] {
			patches[i] = source.RefreshPatch(a)
		} else {
			patches[i] = source.InitialPatch(a)
		}
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.articles.UpsertBatch(txCtx, patches)
	})
	if err != nil {
		return stats, fmt.Errorf("upsert articles: %w", err)
	}
	s.logger.Info("articles merged", "new", len(articles)-len(existing), "existing", len(existing))

	toSummarize, err := s.articles.FilterWithoutSummary(ctx, ids)
	if err != nil {
		return stats, fmt.Errorf("filter articles without summary: %w", err)
	}
	if limit := s.config.SummarizeLimit; limit > 0 && len(toSummarize) > limit {
		toSummarize = toSummarize[:limit]
	}
	if len(toSummarize) == 0 {
		return stats, nil
	}

	bulk, err := s.enricher.BulkSummarize(ctx, toSummarize)
	if bulk != nil {
		stats.Summarized = bulk.Succeeded
		stats.SummaryFailed = bulk.Failed
		stats.Skipped = bulk.Skipped
	}
	if err != nil {
		return stats, fmt.Errorf("summarize articles: %w", err)
	}
	return stats, nil
}

// normalize maps fetched items to articles, dropping duplicates across and
// within sources. The first occurrence of a link wins.
func (s *CollectionService) normalize(results []domain.SourceResult, now time.Time, stats *domain.CollectionStats) []domain.Article {
	sources := make(map[string]domain.FeedSource, len(s.config.Sources))
	for _, src := range s.config.Sources {
		sources[src.ID] = src
	}

	seen := make(map[string]bool)
	var articles []domain.Article
	for _, res := range results {
		if res.Failed() {
			stats.SourceErrors++
			continue
		}
		src := sources[res.SourceID]
		for _, item := range res.Items {
			a := source.Normalize(item, src, now)
			if a.Link == "" || seen[a.ID] {
				continue
			}
			seen[a.ID] = true

			var text string
			if a.Description != nil {
				text = *a.Description
			}
			a.Tags = tagging.Merge(a.Tags, s.tagger.Tags(a.Title, text))
			articles = append(articles, a)
		}
	}
	return articles
}
