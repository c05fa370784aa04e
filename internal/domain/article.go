package domain

import (
	"strings"
	"time"
)

type Article struct {
	ID            string
	Title         string
	OriginalTitle *string
	Link          string
	Description   *string
	Summary       *string
	HasSummary    bool
	Image         *string
	Source        string // display name from the feed config
	SourceID      string
	Category      string
	Tags          []string
	PubDate       time.Time
	Status        Status // empty for legacy rows written before moderation existed
	Bookmarked    bool
	IsVideo       bool
	TitleLocked   bool
	ImageLocked   bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// ArticlePatch is a partial article write keyed by ID. Nil fields are left
// untouched by the store. An empty string clears an optional text field.
type ArticlePatch struct {
	ID            string
	Title         *string
	OriginalTitle *string
	Link          *string
	Description   *string
	Summary       *string
	Image         *string
	Source        *string
	SourceID      *string
	Category      *string
	Tags          *[]string
	PubDate       *time.Time
	Bookmarked    *bool
	IsVideo       *bool
	TitleLocked   *bool
	ImageLocked   *bool

	// InitialStatus and CreatedAt only apply when the patch creates the record.
	InitialStatus *Status
	CreatedAt     *time.Time

	// Editor writes bypass title/image locks.
	Editor bool
}

// SummaryPresent reports whether a summary holds visible text.
func SummaryPresent(summary *string) bool {
	return summary != nil && strings.TrimSpace(*summary) != ""
}

// Merge applies p to existing the way the store does. A nil existing article
// means the patch creates the record.
func Merge(existing *Article, p ArticlePatch, now time.Time) Article {
	var a Article
	if existing != nil {
		a = *existing
		a.Tags = append([]string(nil), existing.Tags...)
	} else {
		a.ID = p.ID
		a.PubDate = now
		a.CreatedAt = now
		if p.CreatedAt != nil {
			a.CreatedAt = *p.CreatedAt
		}
		if p.InitialStatus != nil {
			a.Status = *p.InitialStatus
		}
		a.Tags = []string{}
	}

	titleWritable := p.Editor || !a.TitleLocked
	imageWritable := p.Editor || !a.ImageLocked

	if p.Title != nil && titleWritable {
		a.Title = *p.Title
	}
	if p.OriginalTitle != nil && titleWritable {
		a.OriginalTitle = optional(*p.OriginalTitle)
	}
	if p.Link != nil {
		a.Link = *p.Link
	}
	if p.Description != nil {
		a.Description = optional(*p.Description)
	}
	if p.Summary != nil {
		a.Summary = optional(*p.Summary)
		a.HasSummary = SummaryPresent(p.Summary)
	}
	if p.Image != nil && imageWritable {
		a.Image = optional(*p.Image)
	}
	if p.Source != nil {
		a.Source = *p.Source
	}
	if p.SourceID != nil {
		a.SourceID = *p.SourceID
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.Tags != nil {
		a.Tags = append([]string{}, (*p.Tags)...)
	}
	if p.PubDate != nil {
		a.PubDate = *p.PubDate
	}
	if p.Bookmarked != nil {
		a.Bookmarked = *p.Bookmarked
	}
	if p.IsVideo != nil {
		a.IsVideo = *p.IsVideo
	}
	if p.TitleLocked != nil {
		a.TitleLocked = *p.TitleLocked
	}
	if p.ImageLocked != nil {
		a.ImageLocked = *p.ImageLocked
	}

	if existing != nil {
		updated := now
		a.UpdatedAt = &updated
	}
	return a
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// FeedItem is one candidate article as delivered by a feed, before normalization.
type FeedItem struct {
	Link        string
	Title       string
	Description string
	PubDate     *time.Time
	ImageHint   string
	Categories  []string
}

// FeedSource is a statically configured feed.
type FeedSource struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	RSSURL   string `yaml:"rss_url"`
	Category string `yaml:"category"`
	Strategy string `yaml:"strategy"` // "direct" or "scripted"
	MaxItems int    `yaml:"max_items"`
}

// Category maps a category id to its display label.
type Category struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}
