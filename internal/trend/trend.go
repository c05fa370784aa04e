package trend

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"newsroom/internal/ai"
	"newsroom/internal/domain"
)

type ArticleSource interface {
	ListPublishedBetween(ctx context.Context, from, to time.Time) ([]domain.Article, error)
}

type ReportStore interface {
	Append(ctx context.Context, r *domain.TrendReport) (*domain.TrendReport, error)
}

type Config struct {
	Lookback     time.Duration
	MinArticles  int
	TopTags      int
	PromptTitles int
	PromptTags   int
	// Categories maps category ids to display labels.
	Categories map[string]string
}

type Aggregator struct {
	articles ArticleSource
	reports  ReportStore
	provider ai.Provider
	logger   *slog.Logger
	config   Config
}

func NewAggregator(articles ArticleSource, reports ReportStore, provider ai.Provider, logger *slog.Logger, cfg Config) *Aggregator {
	if cfg.Lookback <= 0 {
		cfg.Lookback = 7 * 24 * time.Hour
	}
	if cfg.MinArticles <= 0 {
		cfg.MinArticles = 5
	}
	if cfg.TopTags <= 0 {
		cfg.TopTags = 15
	}
	if cfg.PromptTitles <= 0 {
		cfg.PromptTitles = 50
	}
	if cfg.PromptTags <= 0 {
		cfg.PromptTags = 10
	}
	return &Aggregator{
		articles: articles,
		reports:  reports,
		provider: provider,
		logger:   logger.With("component", "trend"),
		config:   cfg,
	}
}

// Run analyzes the published articles of the window ending at now and
// appends a new report.
func (a *Aggregator) Run(ctx context.Context, now time.Time) (*domain.TrendReport, error) {
	end := now.UTC()
	start := end.Add(-a.config.Lookback)

	articles, err := a.articles.ListPublishedBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}
	if len(articles) < a.config.MinArticles {
		a.logger.Info("skipping trend report", "articles", len(articles), "min", a.config.MinArticles)
		return nil, fmt.Errorf("%d articles in window: %w", len(articles), domain.ErrNotEnoughArticles)
	}

	tags := TopTags(articles, a.config.TopTags)
	categories := CategoryDistribution(articles, a.config.Categories)

	prompt := buildPrompt(articles, tags, a.config.PromptTitles, a.config.PromptTags)
	text, err := a.provider.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate trend analysis: %w", err)
	}
	summary, topics := ParseResponse(text)

	report, err := a.reports.Append(ctx, &domain.TrendReport{
		StartDate:            start,
		EndDate:              end,
		TotalArticles:        len(articles),
		TopTags:              tags,
		CategoryDistribution: categories,
		Summary:              summary,
		EmergingTopics:       topics,
	})
	if err != nil {
		return nil, fmt.Errorf("store trend report: %w", err)
	}

	a.logger.Info("trend report stored",
		"version", report.Version,
		"articles", report.TotalArticles,
		"topics", len(report.EmergingTopics),
	)
	return report, nil
}

// TopTags counts lowercased, trimmed tags and returns the n most frequent.
// Ties keep the order in which the tags were first seen.
func TopTags(articles []domain.Article, n int) []domain.TagCount {
	var counts []domain.TagCount
	index := make(map[string]int)
	for _, a := range articles {
		for _, tag := range a.Tags {
			tag = strings.ToLower(strings.TrimSpace(tag))
			if tag == "" {
				continue
			}
			if i, ok := index[tag]; ok {
				counts[i].Count++
				continue
			}
			index[tag] = len(counts)
			counts = append(counts, domain.TagCount{Tag: tag, Count: 1})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	if counts == nil {
		counts = []domain.TagCount{}
	}
	return counts
}

// CategoryDistribution counts articles per category. Ids without a label
// are shown as-is.
func CategoryDistribution(articles []domain.Article, labels map[string]string) []domain.CategoryCount {
	var counts []domain.CategoryCount
	index := make(map[string]int)
	for _, a := range articles {
		if i, ok := index[a.Category]; ok {
			counts[i].Count++
			continue
		}
		label, ok := labels[a.Category]
		if !ok || label == "" {
			label = a.Category
		}
		index[a.Category] = len(counts)
		counts = append(counts, domain.CategoryCount{ID: a.Category, Label: label, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if counts == nil {
		counts = []domain.CategoryCount{}
	}
	return counts
}
