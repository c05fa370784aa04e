package browser

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"newsroom/internal/domain"
	"newsroom/internal/source/rss"
)

const StrategyName = "scripted"

// Renderer returns the serialized document a browser shows for url.
type Renderer interface {
	Document(ctx context.Context, url string) (string, error)
}

// Strategy fetches feeds that only respond to a real browser.
type Strategy struct {
	renderer Renderer
	logger   *slog.Logger
}

func NewStrategy(renderer Renderer, logger *slog.Logger) *Strategy {
	return &Strategy{
		renderer: renderer,
		logger:   logger.With("strategy", StrategyName),
	}
}

func (s *Strategy) Name() string {
	return StrategyName
}

func (s *Strategy) Fetch(ctx context.Context, src domain.FeedSource) ([]domain.FeedItem, error) {
	doc, err := s.renderer.Document(ctx, src.RSSURL)
	if err != nil {
		return nil, err
	}

	items, err := rss.ParseFeed([]byte(feedXML(doc)), src.MaxItems)
	if err != nil {
		return nil, fmt.Errorf("scripted source %s: %w", src.ID, err)
	}
	s.logger.Debug("parsed feed", "source", src.ID, "items", len(items))
	return items, nil
}

// feedXML unwraps the <pre> block browsers use to display raw XML.
func feedXML(doc string) string {
	trimmed := strings.TrimSpace(doc)
	if !strings.Contains(trimmed, "<pre") {
		return trimmed
	}
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(trimmed))
	if err != nil {
		return trimmed
	}
	if pre := parsed.Find("pre").First(); pre.Length() > 0 {
		return strings.TrimSpace(pre.Text())
	}
	return trimmed
}
