package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"newsroom/internal/domain"
)

type TrendReportStore struct {
	db *sqlx.DB
}

func NewTrendReportStore(db *sqlx.DB) *TrendReportStore {
	return &TrendReportStore{db: db}
}

type trendReportRow struct {
	ID                   int64          `db:"id"`
	Version              int            `db:"version"`
	StartDate            time.Time      `db:"start_date"`
	EndDate              time.Time      `db:"end_date"`
	TotalArticles        int            `db:"total_articles"`
	TopTags              []byte         `db:"top_tags"`
	CategoryDistribution []byte         `db:"category_distribution"`
	Summary              string         `db:"summary"`
	EmergingTopics       pq.StringArray `db:"emerging_topics"`
	CreatedAt            time.Time      `db:"created_at"`
}

func (r trendReportRow) toDomain() (*domain.TrendReport, error) {
	report := &domain.TrendReport{
		ID:             r.ID,
		Version:        r.Version,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		TotalArticles:  r.TotalArticles,
		Summary:        r.Summary,
		EmergingTopics: []string(r.EmergingTopics),
		CreatedAt:      r.CreatedAt,
	}
	if err := json.Unmarshal(r.TopTags, &report.TopTags); err != nil {
		return nil, fmt.Errorf("decode top tags: %w", err)
	}
	if err := json.Unmarshal(r.CategoryDistribution, &report.CategoryDistribution); err != nil {
		return nil, fmt.Errorf("decode category distribution: %w", err)
	}
	if report.EmergingTopics == nil {
		report.EmergingTopics = []string{}
	}
	return report, nil
}

// Append stores r as a new report with the next version number. Prior
// reports are never modified.
func (s *TrendReportStore) Append(ctx context.Context, r *domain.TrendReport) (*domain.TrendReport, error) {
	topTags, err := json.Marshal(nonNil(r.TopTags))
	if err != nil {
		return nil, fmt.Errorf("encode top tags: %w", err)
	}
	categories, err := json.Marshal(nonNil(r.CategoryDistribution))
	if err != nil {
		return nil, fmt.Errorf("encode category distribution: %w", err)
	}
	topics := r.EmergingTopics
	if topics == nil {
		topics = []string{}
	}

	query := `
		INSERT INTO trend_reports (
			version, start_date, end_date, total_articles, top_tags,
			category_distribution, summary, emerging_topics
		)
		SELECT COALESCE(MAX(version), 0) + 1, $1, $2, $3, $4, $5, $6, $7
		FROM trend_reports
		RETURNING id, version, start_date, end_date, total_articles, top_tags,
			category_distribution, summary, emerging_topics, created_at`

	var row trendReportRow
	err = sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query,
		r.StartDate,
		r.EndDate,
		r.TotalArticles,
		string(topTags),
		string(categories),
		r.Summary,
		pq.Array(topics),
	)
	if err != nil {
		return nil, fmt.Errorf("insert trend report: %w", err)
	}
	return row.toDomain()
}

func (s *TrendReportStore) Latest(ctx context.Context) (*domain.TrendReport, error) {
	query := `
		SELECT id, version, start_date, end_date, total_articles, top_tags,
			category_distribution, summary, emerging_topics, created_at
		FROM trend_reports
		ORDER BY version DESC
		LIMIT 1`

	var row trendReportRow
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get latest trend report: %w", err)
	}
	return row.toDomain()
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
