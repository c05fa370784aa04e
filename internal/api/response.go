package api

import (
	"time"

	"newsroom/internal/domain"
)

type articleResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	OriginalTitle *string    `json:"originalTitle,omitempty"`
	Link          string     `json:"link"`
	Description   *string    `json:"description,omitempty"`
	Summary       *string    `json:"summary,omitempty"`
	HasSummary    bool       `json:"hasSummary"`
	Image         *string    `json:"image,omitempty"`
	Source        string     `json:"source"`
	SourceID      string     `json:"sourceId"`
	Category      string     `json:"category"`
	Tags          []string   `json:"tags"`
	PubDate       time.Time  `json:"pubDate"`
	Status        string     `json:"status"`
	Bookmarked    bool       `json:"bookmarked"`
	IsVideo       bool       `json:"isVideo"`
	TitleLocked   bool       `json:"titleLocked"`
	ImageLocked   bool       `json:"imageLocked"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

func toResponse(a domain.Article) articleResponse {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return articleResponse{
		ID:            a.ID,
		Title:         a.Title,
		OriginalTitle: a.OriginalTitle,
		Link:          a.Link,
		Description:   a.Description,
		Summary:       a.Summary,
		HasSummary:    a.HasSummary,
		Image:         a.Image,
		Source:        a.Source,
		SourceID:      a.SourceID,
		Category:      a.Category,
		Tags:          tags,
		PubDate:       a.PubDate,
		Status:        string(a.Status),
		Bookmarked:    a.Bookmarked,
		IsVideo:       a.IsVideo,
		TitleLocked:   a.TitleLocked,
		ImageLocked:   a.ImageLocked,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func toResponses(articles []domain.Article) []articleResponse {
	out := make([]articleResponse, len(articles))
	for i, a := range articles {
		out[i] = toResponse(a)
	}
	return out
}

type stageResponse struct {
	domain.StageResult
	Article *articleResponse `json:"article,omitempty"`
}

func toStageResponse(r domain.StageResult) stageResponse {
	resp := stageResponse{StageResult: r}
	if r.Article != nil {
		a := toResponse(*r.Article)
		resp.Article = &a
	}
	return resp
}
