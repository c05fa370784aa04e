package domain

import "time"

type RunStatus string

const (
	RunStatusNone    RunStatus = "none"
	RunStatusRunning RunStatus = "running"
	RunStatusSuccess RunStatus = "success"
	RunStatusFailed  RunStatus = "failed"
)

// SourceResult is the outcome of fetching one configured source.
type SourceResult struct {
	SourceID string     `json:"sourceId"`
	Name     string     `json:"name"`
	Fetched  int        `json:"fetched"`
	Error    string     `json:"error,omitempty"`
	Items    []FeedItem `json:"-"`
}

// Failed reports whether the source could not be fetched or parsed.
func (r SourceResult) Failed() bool {
	return r.Error != ""
}

// CollectionStatus is the single well-known run record polled by clients.
type CollectionStatus struct {
	LastRunAt     *time.Time     `json:"lastRunAt,omitempty"`
	ArticlesFound int            `json:"articlesFound"`
	SuccessCount  int            `json:"successCount"`
	FailCount     int            `json:"failCount"`
	DurationMs    int64          `json:"durationMs"`
	Status        RunStatus      `json:"status"`
	Sources       []SourceResult `json:"sources,omitempty"`
	Error         string         `json:"error,omitempty"`
}

// CollectionStats holds statistics about one collection run.
type CollectionStats struct {
	Sources       []SourceResult
	SourceErrors  int
	ArticlesFound int
	Summarized    int
	SummaryFailed int
	Skipped       int
	Duration      time.Duration
}

type JobType string

const (
	JobCollect JobType = "collect"
	JobTrend   JobType = "trend"
)

// Job is a unit of out-of-band work delivered through the job queue.
type Job struct {
	Type        JobType   `json:"type"`
	RequestID   string    `json:"requestId"`
	RequestedAt time.Time `json:"requestedAt"`
}
