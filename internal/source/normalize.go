package source

import (
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"newsroom/internal/domain"
	"newsroom/internal/tagging"
)

var stripPolicy = bluemonday.StrictPolicy()

// Normalize maps a feed item onto a new article record. Source, SourceID and
// Category always come from the feed config, never from the item.
func Normalize(item domain.FeedItem, src domain.FeedSource, now time.Time) domain.Article {
	link := strings.TrimSpace(item.Link)

	pubDate := now
	if item.PubDate != nil && !item.PubDate.IsZero() {
		pubDate = item.PubDate.UTC()
	}

	a := domain.Article{
		ID:        domain.ComputeID(link),
		Title:     collapse(item.Title),
		Link:      link,
		Source:    src.Name,
		SourceID:  src.ID,
		Category:  src.Category,
		Tags:      tagging.Merge(item.Categories),
		PubDate:   pubDate,
		Status:    domain.StatusPending,
		CreatedAt: now,
	}
	if a.Title == "" {
		a.Title = link
	}
	if desc := StripHTML(item.Description); desc != "" {
		a.Description = &desc
	}
	if hint := strings.TrimSpace(item.ImageHint); hint != "" {
		a.Image = &hint
	}
	return a
}

// StripHTML reduces an HTML fragment to collapsed plain text.
func StripHTML(s string) string {
	return collapse(html.UnescapeString(stripPolicy.Sanitize(s)))
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// InitialPatch is the write a collection run makes for an article it has
// not stored before.
func InitialPatch(a domain.Article) domain.ArticlePatch {
	p := RefreshPatch(a)
	p.Title = domain.Ptr(a.Title)
	p.Tags = domain.Ptr(a.Tags)
	p.InitialStatus = domain.Ptr(domain.StatusPending)
	p.CreatedAt = domain.Ptr(a.CreatedAt)
	if a.Image != nil {
		p.Image = a.Image
	}
	return p
}

// RefreshPatch is the write for an already stored article. Only feed-owned
// fields are present, so enrichment results (including a translated title)
// and editor edits survive a re-fetch.
func RefreshPatch(a domain.Article) domain.ArticlePatch {
	p := domain.ArticlePatch{
		ID:       a.ID,
		Link:     domain.Ptr(a.Link),
		Source:   domain.Ptr(a.Source),
		SourceID: domain.Ptr(a.SourceID),
		Category: domain.Ptr(a.Category),
		PubDate:  domain.Ptr(a.PubDate),
	}
	if a.Description != nil {
		p.Description = a.Description
	}
	return p
}
