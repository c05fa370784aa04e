package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"newsroom/internal/domain"
)

type ArticleStore interface {
	Get(ctx context.Context, id string) (*domain.Article, error)
	Upsert(ctx context.Context, patch domain.ArticlePatch) (*domain.Article, error)
	UpsertBatch(ctx context.Context, patches []domain.ArticlePatch) error
	ExistingIDs(ctx context.Context, ids []string) (map[string]bool, error)
	FilterWithoutSummary(ctx context.Context, ids []string) ([]string, error)
	ListByStatus(ctx context.Context, status domain.Status, limit int) ([]domain.Article, error)
	ListWithoutSummary(ctx context.Context, limit int) ([]domain.Article, error)
	CountByStatus(ctx context.Context, status domain.Status) (int, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.Status) (bool, error)
	MigrateLegacyStatus(ctx context.Context) (int64, error)
}

type CollectionStatusStore interface {
	Get(ctx context.Context) (*domain.CollectionStatus, error)
	Put(ctx context.Context, status *domain.CollectionStatus) error
}

type TrendReportStore interface {
	Latest(ctx context.Context) (*domain.TrendReport, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Fetcher interface {
	FetchAll(ctx context.Context, sources []domain.FeedSource) []domain.SourceResult
}

type Enricher interface {
	BulkSummarize(ctx context.Context, ids []string) (*domain.BulkResult, error)
	TranslateTitle(ctx context.Context, id string) (domain.StageResult, error)
	RevertTitle(ctx context.Context, id string) (domain.StageResult, error)
	GenerateThumbnail(ctx context.Context, id string) (domain.StageResult, error)
	ExtractThumbnail(ctx context.Context, id string) (domain.StageResult, error)
}

// Locker hands out a named lock. ok is false when someone else holds it.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, ok bool, err error)
}

type JobQueue interface {
	Enqueue(ctx context.Context, job domain.Job) error
}

type Collector interface {
	Run(ctx context.Context) (*domain.CollectionStats, error)
}

type TrendRunner interface {
	Run(ctx context.Context, now time.Time) (*domain.TrendReport, error)
}
