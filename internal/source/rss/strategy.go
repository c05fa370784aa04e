package rss

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"newsroom/internal/domain"
)

const StrategyName = "direct"

// maxFeedBytes caps how much of a feed response is read.
const maxFeedBytes = 10 << 20

type Config struct {
	UserAgent      string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Strategy fetches a feed with a plain HTTP GET.
type Strategy struct {
	httpClient     *http.Client
	userAgent      string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Strategy {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Strategy{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		userAgent:      cfg.UserAgent,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("strategy", StrategyName),
	}
}

func (s *Strategy) Name() string {
	return StrategyName
}

// Fetch downloads and parses the feed of src.
func (s *Strategy) Fetch(ctx context.Context, src domain.FeedSource) ([]domain.FeedItem, error) {
	var body []byte
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		body, err = s.doRequest(ctx, src.RSSURL)
		if err == nil {
			break
		}

		if attempt == s.maxAttempts {
			return nil, fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"source", src.ID,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	items, err := ParseFeed(body, src.MaxItems)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("parsed feed", "source", src.ID, "items", len(items))
	return items, nil
}

func (s *Strategy) doRequest(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

func (s *Strategy) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}
