package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"newsroom/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const articleColumns = `id, title, original_title, link, description, summary, has_summary, image,
	source, source_id, category, tags, pub_date, status, bookmarked, is_video,
	title_locked, image_locked, created_at, updated_at`

type articleRow struct {
	ID            string         `db:"id"`
	Title         string         `db:"title"`
	OriginalTitle sql.NullString `db:"original_title"`
	Link          string         `db:"link"`
	Description   sql.NullString `db:"description"`
	Summary       sql.NullString `db:"summary"`
	HasSummary    bool           `db:"has_summary"`
	Image         sql.NullString `db:"image"`
	Source        string         `db:"source"`
	SourceID      string         `db:"source_id"`
	Category      string         `db:"category"`
	Tags          pq.StringArray `db:"tags"`
	PubDate       time.Time      `db:"pub_date"`
	Status        sql.NullString `db:"status"`
	Bookmarked    bool           `db:"bookmarked"`
	IsVideo       bool           `db:"is_video"`
	TitleLocked   bool           `db:"title_locked"`
	ImageLocked   bool           `db:"image_locked"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     sql.NullTime   `db:"updated_at"`
}

func (r articleRow) toDomain() domain.Article {
	a := domain.Article{
		ID:            r.ID,
		Title:         r.Title,
		OriginalTitle: nullString(r.OriginalTitle),
		Link:          r.Link,
		Description:   nullString(r.Description),
		Summary:       nullString(r.Summary),
		HasSummary:    r.HasSummary,
		Image:         nullString(r.Image),
		Source:        r.Source,
		SourceID:      r.SourceID,
		Category:      r.Category,
		Tags:          []string(r.Tags),
		PubDate:       r.PubDate,
		Status:        domain.Status(r.Status.String),
		Bookmarked:    r.Bookmarked,
		IsVideo:       r.IsVideo,
		TitleLocked:   r.TitleLocked,
		ImageLocked:   r.ImageLocked,
		CreatedAt:     r.CreatedAt,
	}
	if a.Tags == nil {
		a.Tags = []string{}
	}
	if r.UpdatedAt.Valid {
		t := r.UpdatedAt.Time
		a.UpdatedAt = &t
	}
	return a
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	s := ns.String
	return &s
}

// nullable stores "" as NULL so clearing an optional field removes it.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

func (s *ArticleStore) Get(ctx context.Context, id string) (*domain.Article, error) {
	var row articleRow
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	a := row.toDomain()
	return &a, nil
}

// Upsert merges p into the stored article, creating it when absent, and
// returns the stored result.
func (s *ArticleStore) Upsert(ctx context.Context, p domain.ArticlePatch) (*domain.Article, error) {
	query, args, err := buildUpsert(p)
	if err != nil {
		return nil, fmt.Errorf("build upsert: %w", err)
	}

	var row articleRow
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, args...); err != nil {
		return nil, fmt.Errorf("upsert article %s: %w", p.ID, err)
	}
	a := row.toDomain()
	return &a, nil
}

// UpsertBatch applies every patch with the executor in ctx. Callers wrap it
// in a transaction to make the batch atomic.
func (s *ArticleStore) UpsertBatch(ctx context.Context, patches []domain.ArticlePatch) error {
	for _, p := range patches {
		if _, err := s.Upsert(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// buildUpsert turns a patch into INSERT ... ON CONFLICT DO UPDATE touching
// only the columns present in the patch. status and created_at are written on
// insert only; locked title/image columns keep their stored values unless the
// patch comes from an editor.
func buildUpsert(p domain.ArticlePatch) (string, []any, error) {
	if p.ID == "" {
		return "", nil, fmt.Errorf("patch without id: %w", domain.ErrInvalidInput)
	}

	cols := []string{"id"}
	vals := []any{p.ID}
	var updates []string

	add := func(col string, v any, update string) {
		cols = append(cols, col)
		vals = append(vals, v)
		if update != "" {
			updates = append(updates, update)
		}
	}
	excluded := func(col string) string {
		return fmt.Sprintf("%s = EXCLUDED.%s", col, col)
	}
	guarded := func(col, lock string) string {
		if p.Editor {
			return excluded(col)
		}
		return fmt.Sprintf("%s = CASE WHEN articles.%s THEN articles.%s ELSE EXCLUDED.%s END", col, lock, col, col)
	}

	if p.Title != nil {
		add("title", *p.Title, guarded("title", "title_locked"))
	}
	if p.OriginalTitle != nil {
		add("original_title", nullable(*p.OriginalTitle), guarded("original_title", "title_locked"))
	}
	if p.Link != nil {
		add("link", *p.Link, excluded("link"))
	}
	if p.Description != nil {
		add("description", nullable(*p.Description), excluded("description"))
	}
	if p.Summary != nil {
		add("summary", nullable(*p.Summary), excluded("summary"))
		add("has_summary", domain.SummaryPresent(p.Summary), excluded("has_summary"))
	}
	if p.Image != nil {
		add("image", nullable(*p.Image), guarded("image", "image_locked"))
	}
	if p.Source != nil {
		add("source", *p.Source, excluded("source"))
	}
	if p.SourceID != nil {
		add("source_id", *p.SourceID, excluded("source_id"))
	}
	if p.Category != nil {
		add("category", *p.Category, excluded("category"))
	}
	if p.Tags != nil {
		tags := *p.Tags
		if tags == nil {
			tags = []string{}
		}
		add("tags", pq.Array(tags), excluded("tags"))
	}
	if p.PubDate != nil {
		add("pub_date", *p.PubDate, excluded("pub_date"))
	}
	if p.Bookmarked != nil {
		add("bookmarked", *p.Bookmarked, excluded("bookmarked"))
	}
	if p.IsVideo != nil {
		add("is_video", *p.IsVideo, excluded("is_video"))
	}
	if p.TitleLocked != nil {
		add("title_locked", *p.TitleLocked, excluded("title_locked"))
	}
	if p.ImageLocked != nil {
		add("image_locked", *p.ImageLocked, excluded("image_locked"))
	}
	if p.InitialStatus != nil {
		add("status", string(*p.InitialStatus), "")
	}
	if p.CreatedAt != nil {
		add("created_at", *p.CreatedAt, "")
	}
	updates = append(updates, "updated_at = NOW()")

	return psql.Insert("articles").
		Columns(cols...).
		Values(vals...).
		Suffix("ON CONFLICT (id) DO UPDATE SET " + strings.Join(updates, ", ") + " RETURNING " + articleColumns).
		ToSql()
}

// ExistingIDs returns the subset of ids already stored.
func (s *ArticleStore) ExistingIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	result := make(map[string]bool)
	if len(ids) == 0 {
		return result, nil
	}

	var found []string
	query := `SELECT id FROM articles WHERE id = ANY($1)`
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &found, query, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("select existing ids: %w", err)
	}
	for _, id := range found {
		result[id] = true
	}
	return result, nil
}

// FilterWithoutSummary returns the ids among ids whose article has no
// summary yet, keeping the input order.
func (s *ArticleStore) FilterWithoutSummary(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var found []string
	query := `SELECT id FROM articles WHERE id = ANY($1) AND has_summary = FALSE`
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &found, query, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("select articles without summary: %w", err)
	}

	missing := make(map[string]bool, len(found))
	for _, id := range found {
		missing[id] = true
	}
	out := make([]string, 0, len(found))
	for _, id := range ids {
		if missing[id] {
			out = append(out, id)
			delete(missing, id)
		}
	}
	return out, nil
}

// ListByStatus returns the newest articles in status.
func (s *ArticleStore) ListByStatus(ctx context.Context, status domain.Status, limit int) ([]domain.Article, error) {
	return s.list(ctx, psql.Select(articleColumns).
		From("articles").
		Where(sq.Eq{"status": string(status)}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)))
}

// ListWithoutSummary returns the newest articles that still lack a summary.
func (s *ArticleStore) ListWithoutSummary(ctx context.Context, limit int) ([]domain.Article, error) {
	return s.list(ctx, psql.Select(articleColumns).
		From("articles").
		Where(sq.Eq{"has_summary": false}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)))
}

// ListPublishedBetween returns published articles, legacy approved ones
// included, whose pub_date falls in [from, to].
func (s *ArticleStore) ListPublishedBetween(ctx context.Context, from, to time.Time) ([]domain.Article, error) {
	return s.list(ctx, psql.Select(articleColumns).
		From("articles").
		Where(sq.And{
			publishedCondition,
			sq.GtOrEq{"pub_date": from},
			sq.LtOrEq{"pub_date": to},
		}).
		OrderBy("pub_date DESC"))
}

var publishedCondition = sq.Or{
	sq.Eq{"status": []string{string(domain.StatusPublished), string(domain.StatusLegacyApproved), ""}},
	sq.Eq{"status": nil},
}

func (s *ArticleStore) CountByStatus(ctx context.Context, status domain.Status) (int, error) {
	var n int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &n, `SELECT COUNT(*) FROM articles WHERE status = $1`, string(status))
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return n, nil
}

// UpdateStatus moves an article from one status to another. It reports false
// when the stored status was no longer from, so concurrent decisions cannot
// overwrite each other.
func (s *ArticleStore) UpdateStatus(ctx context.Context, id string, from, to domain.Status) (bool, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE articles SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		string(to), id, string(from),
	)
	if err != nil {
		return false, fmt.Errorf("update status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update status: %w", err)
	}
	return n == 1, nil
}

// MigrateLegacyStatus publishes rows written before moderation existed.
// Rows already pending, published or rejected are never touched.
func (s *ArticleStore) MigrateLegacyStatus(ctx context.Context) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE articles SET status = $1, updated_at = NOW()
		 WHERE status IS NULL OR status = '' OR status = $2`,
		string(domain.StatusPublished), string(domain.StatusLegacyApproved),
	)
	if err != nil {
		return 0, fmt.Errorf("migrate legacy status: %w", err)
	}
	return res.RowsAffected()
}

func (s *ArticleStore) list(ctx context.Context, b sq.SelectBuilder) ([]domain.Article, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []articleRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	articles := make([]domain.Article, 0, len(rows))
	for _, r := range rows {
		articles = append(articles, r.toDomain())
	}
	return articles, nil
}
