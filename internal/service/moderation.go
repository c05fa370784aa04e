package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"newsroom/internal/domain"
)

type ModerationConfig struct {
	DefaultLimit int
	MaxLimit     int
	MaxBulkItems int
	// StaleAfter lets a trigger through when a "running" record is older,
	// which happens when a worker died mid-run.
	StaleAfter time.Duration
}

// ModerationService is the boundary the admin API talks to.
type ModerationService struct {
	articles ArticleStore
	status   CollectionStatusStore
	reports  TrendReportStore
	enricher Enricher
	queue    JobQueue
	logger   *slog.Logger
	config   ModerationConfig
	now      func() time.Time
}

func NewModerationService(
	articles ArticleStore,
	status CollectionStatusStore,
	reports TrendReportStore,
	enricher Enricher,
	queue JobQueue,
	logger *slog.Logger,
	cfg ModerationConfig,
) *ModerationService {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 50
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = 200
	}
	if cfg.MaxBulkItems <= 0 {
		cfg.MaxBulkItems = 100
	}
	return &ModerationService{
		articles: articles,
		status:   status,
		reports:  reports,
		enricher: enricher,
		queue:    queue,
		logger:   logger.With("component", "moderation"),
		config:   cfg,
		now:      time.Now,
	}
}

func (s *ModerationService) limit(n int) int {
	if n <= 0 {
		return s.config.DefaultLimit
	}
	return min(n, s.config.MaxLimit)
}

// PendingArticles returns the newest pending articles and the total pending count.
func (s *ModerationService) PendingArticles(ctx context.Context, limit int) ([]domain.Article, int, error) {
	articles, err := s.articles.ListByStatus(ctx, domain.StatusPending, s.limit(limit))
	if err != nil {
		return nil, 0, err
	}
	total, err := s.articles.CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (s *ModerationService) NoSummaryArticles(ctx context.Context, limit int) ([]domain.Article, error) {
	return s.articles.ListWithoutSummary(ctx, s.limit(limit))
}

// UpdateStatus applies a moderation decision. Repeating the current status is
// a no-op; anything but pending -> published|rejected is refused.
func (s *ModerationService) UpdateStatus(ctx context.Context, id, status string) (*domain.Article, error) {
	to, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	a, err := s.articles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status == to {
		return a, nil
	}
	if !domain.CanTransition(a.Status, to) {
		return nil, fmt.Errorf("%s -> %s: %w", a.Status, to, domain.ErrInvalidTransition)
	}

	ok, err := s.articles.UpdateStatus(ctx, id, a.Status, to)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("status changed concurrently: %w", domain.ErrInvalidTransition)
	}

	s.logger.Info("article status updated", "article_id", id, "from", a.Status, "to", to)
	a.Status = to
	return a, nil
}

func (s *ModerationService) BulkSummarize(ctx context.Context, ids []string) (*domain.BulkResult, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	if len(unique) == 0 {
		return nil, fmt.Errorf("articleIds must not be empty: %w", domain.ErrInvalidInput)
	}
	if len(unique) > s.config.MaxBulkItems {
		return nil, fmt.Errorf("at most %d articles per request: %w", s.config.MaxBulkItems, domain.ErrInvalidInput)
	}
	return s.enricher.BulkSummarize(ctx, unique)
}

const (
	ThumbnailGenerate = "generate"
	ThumbnailExtract  = "extract"
)

func (s *ModerationService) GenerateThumbnail(ctx context.Context, id, mode string) (domain.StageResult, error) {
	switch mode {
	case "", ThumbnailGenerate:
		return s.enricher.GenerateThumbnail(ctx, id)
	case ThumbnailExtract:
		return s.enricher.ExtractThumbnail(ctx, id)
	default:
		return domain.StageResult{}, fmt.Errorf("unknown thumbnail mode %q: %w", mode, domain.ErrInvalidInput)
	}
}

func (s *ModerationService) TranslateArticle(ctx context.Context, id string) (domain.StageResult, error) {
	return s.enricher.TranslateTitle(ctx, id)
}

func (s *ModerationService) RevertTitle(ctx context.Context, id string) (domain.StageResult, error) {
	return s.enricher.RevertTitle(ctx, id)
}

// SetTitle stores an editor title and locks it against machine writes.
func (s *ModerationService) SetTitle(ctx context.Context, id, title string) (*domain.Article, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("title must not be empty: %w", domain.ErrInvalidInput)
	}
	if _, err := s.articles.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.articles.Upsert(ctx, domain.ArticlePatch{
		ID:            id,
		Title:         &title,
		OriginalTitle: domain.Ptr(""),
		TitleLocked:   domain.Ptr(true),
		Editor:        true,
	})
}

// SetImage stores an editor thumbnail and locks it against machine writes.
func (s *ModerationService) SetImage(ctx context.Context, id, imageURL string) (*domain.Article, error) {
	u, err := url.Parse(strings.TrimSpace(imageURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("image must be an absolute http(s) url: %w", domain.ErrInvalidInput)
	}
	if _, err := s.articles.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.articles.Upsert(ctx, domain.ArticlePatch{
		ID:          id,
		Image:       domain.Ptr(u.String()),
		ImageLocked: domain.Ptr(true),
		Editor:      true,
	})
}

// TriggerCollection enqueues a collection job unless the status record says
// a run is in progress.
func (s *ModerationService) TriggerCollection(ctx context.Context) (*domain.Job, error) {
	st, err := s.status.Get(ctx)
	if err != nil {
		return nil, err
	}
	if st.Status == domain.RunStatusRunning && !s.stale(st) {
		return nil, domain.ErrCollectionInProgress
	}
	return s.enqueue(ctx, domain.JobCollect)
}

func (s *ModerationService) TriggerTrendReport(ctx context.Context) (*domain.Job, error) {
	return s.enqueue(ctx, domain.JobTrend)
}

func (s *ModerationService) stale(st *domain.CollectionStatus) bool {
	if s.config.StaleAfter <= 0 || st.LastRunAt == nil {
		return false
	}
	return s.now().Sub(*st.LastRunAt) > s.config.StaleAfter
}

func (s *ModerationService) enqueue(ctx context.Context, t domain.JobType) (*domain.Job, error) {
	job := domain.Job{
		Type:        t,
		RequestID:   uuid.NewString(),
		RequestedAt: s.now().UTC(),
	}
	if err := s.queue.Enqueue(ctx, job); err != nil {
		return nil, fmt.Errorf("enqueue %s job: %w", t, err)
	}
	s.logger.Info("job enqueued", "type", t, "request_id", job.RequestID)
	return &job, nil
}

func (s *ModerationService) CollectionStatus(ctx context.Context) (*domain.CollectionStatus, error) {
	return s.status.Get(ctx)
}

func (s *ModerationService) LatestTrendReport(ctx context.Context) (*domain.TrendReport, error) {
	return s.reports.Latest(ctx)
}

func (s *ModerationService) MigrateLegacyStatus(ctx context.Context) (int64, error) {
	n, err := s.articles.MigrateLegacyStatus(ctx)
	if err != nil {
		return 0, err
	}
	s.logger.Info("legacy statuses migrated", "updated", n)
	return n, nil
}
