package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"newsroom/internal/ai"
	"newsroom/internal/domain"
	"newsroom/internal/extract"
	"newsroom/internal/metrics"
	"newsroom/internal/tagging"
)

type ArticleStore interface {
	Get(ctx context.Context, id string) (*domain.Article, error)
	Upsert(ctx context.Context, patch domain.ArticlePatch) (*domain.Article, error)
}

type PageExtractor interface {
	Extract(ctx context.Context, link, imageHint string) (*extract.Page, error)
}

type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type Config struct {
	MinInputChars         int
	MaxInputChars         int
	RequestDelay          time.Duration
	TargetLocale          string
	TargetScriptThreshold int
}

// Pipeline runs the enrichment stages. Every stage reads the current record,
// calls out, and writes back only the fields it owns.
type Pipeline struct {
	articles  ArticleStore
	extractor PageExtractor
	provider  ai.Provider
	objects   ObjectStore
	tagger    *tagging.Engine
	limiter   *rate.Limiter
	cfg       Config
	logger    *slog.Logger
	now       func() time.Time
}

func NewPipeline(
	articles ArticleStore,
	extractor PageExtractor,
	provider ai.Provider,
	objects ObjectStore,
	tagger *tagging.Engine,
	cfg Config,
	logger *slog.Logger,
) *Pipeline {
	limit := rate.Inf
	if cfg.RequestDelay > 0 {
		limit = rate.Every(cfg.RequestDelay)
	}
	if cfg.TargetScriptThreshold < 1 {
		cfg.TargetScriptThreshold = 1
	}
	return &Pipeline{
		articles:  articles,
		extractor: extractor,
		provider:  provider,
		objects:   objects,
		tagger:    tagger,
		limiter:   rate.NewLimiter(limit, 1),
		cfg:       cfg,
		logger:    logger.With("component", "enrichment"),
		now:       time.Now,
	}
}

// Summarize builds the summary input from the article page (or the feed
// description when the page yields nothing), asks the provider for a summary
// and stores it together with rule tags and, when still missing, a thumbnail.
func (p *Pipeline) Summarize(ctx context.Context, a *domain.Article) domain.StageResult {
	res := domain.StageResult{ArticleID: a.ID, Stage: domain.StageSummarize}
	logger := p.logger.With("article_id", a.ID)

	var hint string
	if a.Image != nil {
		hint = *a.Image
	}

	var body, image string
	page, err := p.extractor.Extract(ctx, a.Link, hint)
	if err != nil {
		logger.Warn("page extraction failed, using feed description", "error", err)
	} else {
		body = page.Text
		image = page.Image
	}
	if body == "" && a.Description != nil {
		body = *a.Description
	}

	input := truncateRunes(strings.TrimSpace(a.Title+"\n\n"+body), p.cfg.MaxInputChars)
	if n := len([]rune(input)); n < p.cfg.MinInputChars {
		return p.finish(res, domain.OutcomeSkipped, fmt.Sprintf("input too short: %d chars", n))
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return p.finish(res, domain.OutcomeFailed, err.Error())
	}
	summary, err := p.provider.Summarize(ctx, input)
	if err != nil {
		logger.Warn("summarize failed", "error", err)
		return p.finish(res, domain.OutcomeFailed, err.Error())
	}

	patch := domain.ArticlePatch{
		ID:      a.ID,
		Summary: &summary,
		Tags:    domain.Ptr(tagging.Merge(a.Tags, p.tagger.Tags(a.Title, summary+"\n"+body))),
	}
	if a.Image == nil && image != "" {
		patch.Image = &image
	}

	stored, err := p.articles.Upsert(ctx, patch)
	if err != nil {
		return p.finish(res, domain.OutcomeFailed, fmt.Sprintf("store summary: %v", err))
	}
	res.Article = stored
	return p.finish(res, domain.OutcomeSucceeded, "")
}

// BulkSummarize summarizes ids one after another. A failing item is reported
// and the batch moves on; only cancellation stops it early.
func (p *Pipeline) BulkSummarize(ctx context.Context, ids []string) (*domain.BulkResult, error) {
	result := &domain.BulkResult{Results: make([]domain.StageResult, 0, len(ids))}

	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		a, err := p.articles.Get(ctx, id)
		if err != nil {
			result.Add(p.finish(domain.StageResult{ArticleID: id, Stage: domain.StageSummarize}, domain.OutcomeFailed, err.Error()))
			continue
		}

		result.Add(p.Summarize(ctx, a))
		p.logger.Debug("bulk summarize progress", "current", i+1, "total", len(ids))
	}

	p.logger.Info("bulk summarize completed",
		"total", len(ids),
		"succeeded", result.Succeeded,
		"failed", result.Failed,
		"skipped", result.Skipped,
	)
	return result, nil
}

// TranslateTitle translates the title into the target locale and keeps the
// original for RevertTitle.
func (p *Pipeline) TranslateTitle(ctx context.Context, id string) (domain.StageResult, error) {
	a, err := p.articles.Get(ctx, id)
	if err != nil {
		return domain.StageResult{}, err
	}
	res := domain.StageResult{ArticleID: id, Stage: domain.StageTranslateTitle, Article: a}

	if a.TitleLocked {
		return p.finish(res, domain.OutcomeSkipped, "title is locked"), nil
	}
	if ScriptRunes(a.Title, p.cfg.TargetLocale) >= p.cfg.TargetScriptThreshold {
		return p.finish(res, domain.OutcomeSkipped, "title already in target language"), nil
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return p.finish(res, domain.OutcomeFailed, err.Error()), nil
	}
	translated, err := p.provider.TranslateTitle(ctx, a.Title)
	if err != nil {
		return p.finish(res, domain.OutcomeFailed, err.Error()), nil
	}
	translated = strings.TrimSpace(translated)
	if translated == "" || translated == strings.TrimSpace(a.Title) {
		return p.finish(res, domain.OutcomeFailed, "translation returned the original title"), nil
	}

	// a second translation keeps the first original so revert still restores it
	original := a.Title
	if a.OriginalTitle != nil && *a.OriginalTitle != "" {
		original = *a.OriginalTitle
	}
	stored, err := p.articles.Upsert(ctx, domain.ArticlePatch{
		ID:            id,
		Title:         &translated,
		OriginalTitle: &original,
	})
	if err != nil {
		return p.finish(res, domain.OutcomeFailed, fmt.Sprintf("store title: %v", err)), nil
	}
	res.Article = stored
	return p.finish(res, domain.OutcomeSucceeded, ""), nil
}

// RevertTitle restores the pre-translation title.
func (p *Pipeline) RevertTitle(ctx context.Context, id string) (domain.StageResult, error) {
	a, err := p.articles.Get(ctx, id)
	if err != nil {
		return domain.StageResult{}, err
	}
	if a.OriginalTitle == nil || *a.OriginalTitle == "" {
		return domain.StageResult{}, domain.ErrNothingToRevert
	}
	res := domain.StageResult{ArticleID: id, Stage: domain.StageRevertTitle, Article: a}

	if a.TitleLocked {
		return p.finish(res, domain.OutcomeSkipped, "title is locked"), nil
	}

	stored, err := p.articles.Upsert(ctx, domain.ArticlePatch{
		ID:            id,
		Title:         a.OriginalTitle,
		OriginalTitle: domain.Ptr(""),
	})
	if err != nil {
		return domain.StageResult{}, fmt.Errorf("store title: %w", err)
	}
	res.Article = stored
	return p.finish(res, domain.OutcomeSucceeded, ""), nil
}

const imagePromptTemplate = `Write one prompt for an image generator that illustrates this news headline as an editorial thumbnail.
No text, letters or logos in the image. Describe subject, composition and style in under 60 words.
Return only the prompt.

Headline: %s`

// GenerateThumbnail asks the provider for an illustration, uploads it and
// points the article at it.
func (p *Pipeline) GenerateThumbnail(ctx context.Context, id string) (domain.StageResult, error) {
	a, err := p.articles.Get(ctx, id)
	if err != nil {
		return domain.StageResult{}, err
	}
	res := domain.StageResult{ArticleID: id, Stage: domain.StageGenerateThumbnail, Article: a}

	if a.ImageLocked {
		return p.finish(res, domain.OutcomeSkipped, "image is locked"), nil
	}
	if p.objects == nil {
		return p.finish(res, domain.OutcomeFailed, "object storage is not configured"), nil
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return p.finish(res, domain.OutcomeFailed, err.Error()), nil
	}
	prompt, err := p.provider.GenerateText(ctx, fmt.Sprintf(imagePromptTemplate, a.Title))
	if err != nil {
		return p.finish(res, domain.OutcomeFailed, fmt.Sprintf("image prompt: %v", err)), nil
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return p.finish(res, domain.OutcomeFailed, err.Error()), nil
	}
	img, err := p.provider.GenerateImage(ctx, prompt)
	if err != nil {
		return p.finish(res, domain.OutcomeFailed, fmt.Sprintf("generate image: %v", err)), nil
	}

	key := ThumbnailKey(id, p.now())
	url, err := p.objects.Put(ctx, key, img, "image/png")
	if err != nil {
		return p.finish(res, domain.OutcomeFailed, err.Error()), nil
	}

	return p.storeImage(ctx, res, url)
}

// ExtractThumbnail takes the thumbnail from the article page, no AI involved.
func (p *Pipeline) ExtractThumbnail(ctx context.Context, id string) (domain.StageResult, error) {
	a, err := p.articles.Get(ctx, id)
	if err != nil {
		return domain.StageResult{}, err
	}
	res := domain.StageResult{ArticleID: id, Stage: domain.StageExtractThumbnail, Article: a}

	if a.ImageLocked {
		return p.finish(res, domain.OutcomeSkipped, "image is locked"), nil
	}

	page, err := p.extractor.Extract(ctx, a.Link, "")
	if err != nil {
		return p.finish(res, domain.OutcomeFailed, err.Error()), nil
	}
	if page.Image == "" {
		return p.finish(res, domain.OutcomeFailed, "no image found on page"), nil
	}

	return p.storeImage(ctx, res, page.Image)
}

func (p *Pipeline) storeImage(ctx context.Context, res domain.StageResult, url string) (domain.StageResult, error) {
	stored, err := p.articles.Upsert(ctx, domain.ArticlePatch{ID: res.ArticleID, Image: &url})
	if err != nil {
		return p.finish(res, domain.OutcomeFailed, fmt.Sprintf("store image: %v", err)), nil
	}
	res.Article = stored
	return p.finish(res, domain.OutcomeSucceeded, ""), nil
}

func (p *Pipeline) finish(res domain.StageResult, outcome domain.Outcome, detail string) domain.StageResult {
	res.Outcome = outcome
	res.Detail = detail
	metrics.RecordStage(string(res.Stage), string(outcome))
	if outcome == domain.OutcomeFailed {
		p.logger.Warn("enrichment stage failed", "article_id", res.ArticleID, "stage", res.Stage, "detail", detail)
	}
	return res
}

// ThumbnailKey is unique per generation so CDN caches never serve a stale image.
func ThumbnailKey(id string, at time.Time) string {
	return fmt.Sprintf("thumbnails/%s/%d.png", id, at.UnixMilli())
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
