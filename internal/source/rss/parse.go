package rss

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"

	"newsroom/internal/domain"
)

// ParseFeed parses an RSS, Atom or JSON feed document. Items without a link
// are dropped. maxItems <= 0 means no limit.
func ParseFeed(data []byte, maxItems int) ([]domain.FeedItem, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := make([]domain.FeedItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		if it == nil || strings.TrimSpace(it.Link) == "" {
			continue
		}
		items = append(items, toFeedItem(it))
		if maxItems > 0 && len(items) >= maxItems {
			break
		}
	}
	return items, nil
}

func toFeedItem(it *gofeed.Item) domain.FeedItem {
	item := domain.FeedItem{
		Link:        strings.TrimSpace(it.Link),
		Title:       it.Title,
		Description: it.Description,
		Categories:  it.Categories,
	}
	if item.Description == "" {
		item.Description = it.Content
	}

	switch {
	case it.PublishedParsed != nil:
		item.PubDate = it.PublishedParsed
	case it.UpdatedParsed != nil:
		item.PubDate = it.UpdatedParsed
	}

	if hint, ok := ImageHint(it); ok {
		item.ImageHint = hint
	}
	return item
}

// ImageHint returns the first image URL the item itself advertises. The
// probes run in a fixed order and the first hit wins.
func ImageHint(it *gofeed.Item) (string, bool) {
	probes := []func(*gofeed.Item) (string, bool){
		mediaContent,
		mediaThumbnail,
		imageEnclosure,
		itemImage,
		embeddedImage,
	}
	for _, probe := range probes {
		if u, ok := probe(it); ok {
			return u, true
		}
	}
	return "", false
}

func mediaContent(it *gofeed.Item) (string, bool) {
	for _, el := range mediaElements(it, "content") {
		medium := el.Attrs["medium"]
		if medium != "" && medium != "image" {
			continue
		}
		if u := el.Attrs["url"]; isHTTPURL(u) {
			return u, true
		}
	}
	return "", false
}

func mediaThumbnail(it *gofeed.Item) (string, bool) {
	for _, el := range mediaElements(it, "thumbnail") {
		if u := el.Attrs["url"]; isHTTPURL(u) {
			return u, true
		}
	}
	return "", false
}

// mediaElements also looks one level down, where media:group nests them.
func mediaElements(it *gofeed.Item, name string) []ext.Extension {
	media, ok := it.Extensions["media"]
	if !ok {
		return nil
	}
	out := append([]ext.Extension(nil), media[name]...)
	for _, group := range media["group"] {
		out = append(out, group.Children[name]...)
	}
	return out
}

func imageEnclosure(it *gofeed.Item) (string, bool) {
	for _, enc := range it.Enclosures {
		if enc == nil {
			continue
		}
		if strings.HasPrefix(enc.Type, "image/") && isHTTPURL(enc.URL) {
			return enc.URL, true
		}
	}
	return "", false
}

func itemImage(it *gofeed.Item) (string, bool) {
	if it.Image != nil && isHTTPURL(it.Image.URL) {
		return it.Image.URL, true
	}
	return "", false
}

func embeddedImage(it *gofeed.Item) (string, bool) {
	for _, fragment := range []string{it.Content, it.Description} {
		if !strings.Contains(fragment, "<img") {
			continue
		}
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
		if err != nil {
			continue
		}
		var found string
		doc.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if src, _ := s.Attr("src"); isHTTPURL(src) {
				found = src
				return false
			}
			return true
		})
		if found != "" {
			return found, true
		}
	}
	return "", false
}

func isHTTPURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
