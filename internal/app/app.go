// Package app assembles the components shared by the newsroom commands.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"newsroom/internal/ai"
	"newsroom/internal/config"
	"newsroom/internal/enrich"
	"newsroom/internal/extract"
	"newsroom/internal/lock"
	"newsroom/internal/objectstore"
	"newsroom/internal/queue"
	"newsroom/internal/service"
	"newsroom/internal/source"
	"newsroom/internal/source/browser"
	"newsroom/internal/source/rss"
	"newsroom/internal/storage/postgres"
	"newsroom/internal/tagging"
	"newsroom/internal/trend"
)

type App struct {
	Config *config.Config
	Logger *slog.Logger
	DB     *sqlx.DB

	Articles  *postgres.ArticleStore
	Status    *postgres.CollectionStatusStore
	Reports   *postgres.TrendReportStore
	TxManager *postgres.TransactionManager

	Tagger   *tagging.Engine
	Provider ai.Provider
	Pipeline *enrich.Pipeline
	Trends   *trend.Aggregator

	chrome  *browser.Chrome
	closers []func() error
}

// New connects to the database and builds the enrichment stack.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	provider, err := ai.New(ai.Config{
		Provider:     cfg.AI.Provider,
		BaseURL:      cfg.AI.BaseURL,
		APIKey:       cfg.AI.APIKey,
		Model:        cfg.AI.Model,
		ImageModel:   cfg.AI.ImageModel,
		TargetLocale: cfg.AI.TargetLocale,
		Timeout:      cfg.AI.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("create ai provider: %w", err)
	}

	// Without an endpoint generated thumbnails are unavailable; every other stage still runs.
	var objects enrich.ObjectStore
	if cfg.ObjectStore.Endpoint != "" {
		store, err := objectstore.New(objectstore.Config{
			Endpoint:      cfg.ObjectStore.Endpoint,
			AccessKey:     cfg.ObjectStore.AccessKey,
			SecretKey:     cfg.ObjectStore.SecretKey,
			Bucket:        cfg.ObjectStore.Bucket,
			Region:        cfg.ObjectStore.Region,
			UseSSL:        cfg.ObjectStore.UseSSL,
			PublicBaseURL: cfg.ObjectStore.PublicBaseURL,
		})
		if err != nil {
			return nil, err
		}
		objects = store
	} else {
		logger.Warn("object store endpoint not set, thumbnail generation disabled")
	}

	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("connected to database")

	a := &App{
		Config:    cfg,
		Logger:    logger,
		DB:        db,
		Articles:  postgres.NewArticleStore(db),
		Status:    postgres.NewCollectionStatusStore(db),
		Reports:   postgres.NewTrendReportStore(db),
		TxManager: postgres.NewTransactionManager(db),
		Tagger:    tagging.NewEngine(cfg.TagRules),
		Provider:  provider,
		closers:   []func() error{db.Close},
		chrome: browser.NewChrome(browser.Config{
			ExecPath:  cfg.Browser.ExecPath,
			UserAgent: cfg.HTTP.UserAgent,
			Timeout:   cfg.Browser.Timeout,
			LazyWait:  cfg.Browser.LazyWait,
		}, logger),
	}

	var loader extract.PageLoader = extract.NewHTTPLoader(cfg.HTTP.Timeout, cfg.HTTP.UserAgent)
	if cfg.Browser.UsePageLoads {
		loader = a.chrome
	}

	a.Pipeline = enrich.NewPipeline(
		a.Articles,
		extract.New(loader, logger),
		provider,
		objects,
		a.Tagger,
		enrich.Config{
			MinInputChars:         cfg.Enrichment.MinInputChars,
			MaxInputChars:         cfg.Enrichment.MaxInputChars,
			RequestDelay:          cfg.Enrichment.RequestDelay,
			TargetLocale:          cfg.AI.TargetLocale,
			TargetScriptThreshold: cfg.Enrichment.TargetScriptThreshold,
		},
		logger,
	)

	a.Trends = trend.NewAggregator(a.Articles, a.Reports, provider, logger, trend.Config{
		Lookback:     cfg.Trend.Lookback,
		MinArticles:  cfg.Trend.MinArticles,
		TopTags:      cfg.Trend.TopTags,
		PromptTitles: cfg.Trend.PromptTitles,
		PromptTags:   cfg.Trend.PromptTags,
		Categories:   cfg.CategoryLabels(),
	})

	return a, nil
}

// Fetcher builds the feed fetcher with both retrieval strategies registered.
func (a *App) Fetcher() *source.Fetcher {
	cfg := a.Config
	registry := source.NewRegistry(
		rss.New(rss.Config{
			UserAgent:      cfg.HTTP.UserAgent,
			Timeout:        cfg.HTTP.Timeout,
			MaxAttempts:    cfg.HTTP.Retry.MaxAttempts,
			InitialBackoff: cfg.HTTP.Retry.InitialBackoff,
			MaxBackoff:     cfg.HTTP.Retry.MaxBackoff,
		}, a.Logger),
		browser.NewStrategy(a.chrome, a.Logger),
	)
	return source.NewFetcher(registry, cfg.Collection.Concurrency, a.Logger)
}

// Locker connects to Redis for the collection run lock.
func (a *App) Locker(ctx context.Context) (*lock.RedisLocker, error) {
	locker, err := lock.NewRedisLockerWithURL(a.Config.Redis.URL)
	if err != nil {
		return nil, err
	}
	if err := locker.Ping(ctx); err != nil {
		locker.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	a.closers = append(a.closers, locker.Close)
	return locker, nil
}

// Queue connects to RabbitMQ.
func (a *App) Queue() (*queue.RabbitMQ, error) {
	q, err := queue.NewRabbitMQ(queue.Config{
		URL:        a.Config.RabbitMQ.URL,
		Exchange:   a.Config.RabbitMQ.Exchange,
		RoutingKey: a.Config.RabbitMQ.RoutingKey,
		QueueName:  a.Config.RabbitMQ.QueueName,
	}, a.Logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, q.Close)
	return q, nil
}

func (a *App) Collector(locker service.Locker) *service.CollectionService {
	cfg := a.Config
	return service.NewCollectionService(
		a.Fetcher(),
		a.Articles,
		a.Status,
		a.TxManager,
		a.Pipeline,
		locker,
		a.Tagger,
		a.Logger,
		service.CollectionConfig{
			Sources:        cfg.Sources,
			SummarizeLimit: cfg.Collection.SummarizeLimit,
			LockKey:        cfg.Redis.LockKey,
			LockTTL:        cfg.Redis.LockTTL,
		},
	)
}

func (a *App) Moderation(jobs service.JobQueue) *service.ModerationService {
	return service.NewModerationService(
		a.Articles,
		a.Status,
		a.Reports,
		a.Pipeline,
		jobs,
		a.Logger,
		service.ModerationConfig{
			MaxBulkItems: a.Config.Enrichment.MaxBulkItems,
			StaleAfter:   a.Config.Redis.LockTTL,
		},
	)
}

// Close releases connections in reverse order of creation.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.Logger.Warn("failed to close resource", "error", err)
		}
	}
}
