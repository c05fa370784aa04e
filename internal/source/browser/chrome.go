package browser

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/chromedp"
)

type Config struct {
	ExecPath  string
	UserAgent string
	Timeout   time.Duration
	LazyWait  time.Duration
}

// Chrome renders pages in a headless browser. Every call gets its own browser
// process, which is torn down when the call returns.
type Chrome struct {
	execPath  string
	userAgent string
	timeout   time.Duration
	lazyWait  time.Duration
	logger    *slog.Logger
}

func NewChrome(cfg Config, logger *slog.Logger) *Chrome {
	return &Chrome{
		execPath:  cfg.ExecPath,
		userAgent: cfg.UserAgent,
		timeout:   cfg.Timeout,
		lazyWait:  cfg.LazyWait,
		logger:    logger.With("component", "browser"),
	}
}

const serializeDocument = `new XMLSerializer().serializeToString(document)`

// Document returns the serialized document at url. For feeds this is the raw
// XML when the browser keeps it as an XML document, or the viewer HTML
// wrapping it in a <pre> otherwise.
func (c *Chrome) Document(ctx context.Context, url string) (string, error) {
	var doc string
	err := c.run(ctx,
		chromedp.Navigate(url),
		chromedp.Evaluate(serializeDocument, &doc),
	)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", url, err)
	}
	return doc, nil
}

// Load renders an article page, scrolls once so lazy images get a chance to
// resolve, and returns the resulting HTML and the final URL.
func (c *Chrome) Load(ctx context.Context, url string) (string, string, error) {
	var html, finalURL string
	err := c.run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
		chromedp.Sleep(c.lazyWait),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
		chromedp.Location(&finalURL),
	)
	if err != nil {
		return "", "", fmt.Errorf("render %s: %w", url, err)
	}
	c.logger.Debug("page rendered", "url", url, "final_url", finalURL, "bytes", len(html))
	return html, finalURL, nil
}

func (c *Chrome) run(ctx context.Context, actions ...chromedp.Action) error {
	opts := chromedp.DefaultExecAllocatorOptions[:]
	if c.userAgent != "" {
		opts = append(opts, chromedp.UserAgent(c.userAgent))
	}
	if c.execPath != "" {
		opts = append(opts, chromedp.ExecPath(c.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		taskCtx, cancel = context.WithTimeout(taskCtx, c.timeout)
		defer cancel()
	}

	return chromedp.Run(taskCtx, actions...)
}
