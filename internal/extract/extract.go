package extract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// PageLoader fetches the HTML of an article page and reports the URL the
// content finally came from.
type PageLoader interface {
	Load(ctx context.Context, url string) (html string, finalURL string, err error)
}

// Page is what the extractor learned about an article page.
type Page struct {
	URL         string
	Title       string
	Description string
	SiteName    string
	Canonical   string
	Image       string
	Text        string
}

type Extractor struct {
	loader PageLoader
	logger *slog.Logger
}

func New(loader PageLoader, logger *slog.Logger) *Extractor {
	return &Extractor{
		loader: loader,
		logger: logger.With("component", "extractor"),
	}
}

// Extract loads link and parses it. imageHint, when set, wins the thumbnail
// cascade.
func (e *Extractor) Extract(ctx context.Context, link, imageHint string) (*Page, error) {
	html, finalURL, err := e.loader.Load(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("load page: %w", err)
	}
	if finalURL == "" {
		finalURL = link
	}

	page, err := Parse(html, finalURL, imageHint)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("page extracted",
		"url", finalURL,
		"has_image", page.Image != "",
		"text_len", len(page.Text),
	)
	return page, nil
}

var metaImageKeys = []string{"og:image", "twitter:image", "og:image:secure_url"}

var contentContainers = []string{
	"article",
	"main",
	"[role=main]",
	"[role=article]",
	".post-content",
	".entry-content",
	".article-body",
	".article-content",
	".content",
}

const nonContent = "script, style, noscript, nav, header, footer, aside, iframe, form"

// Parse extracts metadata, thumbnail and body text from an HTML document.
func Parse(html, pageURL, imageHint string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	base, _ := url.Parse(pageURL)

	page := &Page{
		URL:         pageURL,
		Title:       firstNonEmpty(metaContent(doc, "og:title"), strings.TrimSpace(doc.Find("title").First().Text())),
		Description: firstNonEmpty(metaContent(doc, "og:description"), metaContent(doc, "description")),
		SiteName:    metaContent(doc, "og:site_name"),
	}
	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok {
		page.Canonical = resolve(base, href)
	}

	doc.Find(nonContent).Remove()
	page.Image = thumbnail(doc, base, imageHint)
	page.Text = bodyText(doc)

	return page, nil
}

// thumbnail runs the cascade: feed hint, social meta tags, then the first
// visible image inside the main content container.
func thumbnail(doc *goquery.Document, base *url.URL, hint string) string {
	if hint = strings.TrimSpace(hint); hint != "" {
		return resolve(base, hint)
	}

	for _, key := range metaImageKeys {
		if v := metaContent(doc, key); v != "" {
			return resolve(base, v)
		}
	}

	for _, sel := range contentContainers {
		container := doc.Find(sel).First()
		if container.Length() == 0 {
			continue
		}
		if src := visibleImage(container, base); src != "" {
			return src
		}
	}
	return ""
}

// visibleImage returns the first img under s that is neither hidden nor a tracking pixel.
func visibleImage(s *goquery.Selection, base *url.URL) string {
	var found string
	s.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		if hidden(img) {
			return true
		}
		if src := imageSource(img); src != "" {
			found = resolve(base, src)
			return false
		}
		return true
	})
	return found
}

func contentContainer(doc *goquery.Document) *goquery.Selection {
	for _, sel := range contentContainers {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			return s
		}
	}
	return nil
}

func bodyText(doc *goquery.Document) string {
	if c := contentContainer(doc); c != nil {
		if text := collapse(c.Text()); text != "" {
			return text
		}
	}
	return collapse(doc.Find("body").Text())
}

// imageSource prefers src and falls back to the attributes lazy loaders use.
func imageSource(img *goquery.Selection) string {
	for _, attr := range []string{"src", "data-src", "data-lazy-src"} {
		v := strings.TrimSpace(img.AttrOr(attr, ""))
		if v != "" && !strings.HasPrefix(v, "data:") {
			return v
		}
	}
	if srcset := strings.TrimSpace(img.AttrOr("srcset", "")); srcset != "" {
		first := strings.TrimSpace(strings.Split(srcset, ",")[0])
		if fields := strings.Fields(first); len(fields) > 0 {
			return fields[0]
		}
	}
	return ""
}

func hidden(img *goquery.Selection) bool {
	if _, ok := img.Attr("hidden"); ok {
		return true
	}
	if strings.EqualFold(img.AttrOr("aria-hidden", ""), "true") {
		return true
	}
	style := strings.ReplaceAll(strings.ToLower(img.AttrOr("style", "")), " ", "")
	if strings.Contains(style, "display:none") {
		return true
	}
	return tiny(img.AttrOr("width", "")) || tiny(img.AttrOr("height", ""))
}

func tiny(dim string) bool {
	dim = strings.TrimSuffix(strings.TrimSpace(dim), "px")
	return dim == "0" || dim == "1"
}

func metaContent(doc *goquery.Document, key string) string {
	sel := fmt.Sprintf(`meta[property="%s"], meta[name="%s"]`, key, key)
	return strings.TrimSpace(doc.Find(sel).First().AttrOr("content", ""))
}

func resolve(base *url.URL, ref string) string {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ""
	}
	if base == nil {
		return u.String()
	}
	return base.ResolveReference(u).String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// HTTPLoader loads pages with a plain GET.
type HTTPLoader struct {
	httpClient *http.Client
	userAgent  string
}

func NewHTTPLoader(timeout time.Duration, userAgent string) *HTTPLoader {
	return &HTTPLoader{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

const maxPageBytes = 5 << 20

func (l *HTTPLoader) Load(ctx context.Context, link string) (string, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", l.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", "", fmt.Errorf("read response: %w", err)
	}
	return string(body), resp.Request.URL.String(), nil
}
