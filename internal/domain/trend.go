package domain

import "time"

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type CategoryCount struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TrendReport is immutable once written; every run appends a new one.
type TrendReport struct {
	ID                   int64           `json:"id"`
	StartDate            time.Time       `json:"startDate"`
	EndDate              time.Time       `json:"endDate"`
	CreatedAt            time.Time       `json:"createdAt"`
	TotalArticles        int             `json:"totalArticles"`
	TopTags              []TagCount      `json:"topTags"`
	CategoryDistribution []CategoryCount `json:"categoryDistribution"`
	Summary              string          `json:"summary"`
	EmergingTopics       []string        `json:"emergingTopics"`
	Version              int             `json:"version"`
}
