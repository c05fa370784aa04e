package domain

type Stage string

const (
	StageSummarize         Stage = "summarize"
	StageTranslateTitle    Stage = "translate_title"
	StageRevertTitle       Stage = "revert_title"
	StageGenerateThumbnail Stage = "generate_thumbnail"
	StageExtractThumbnail  Stage = "extract_thumbnail"
)

type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeSkipped   Outcome = "skipped"
	OutcomeFailed    Outcome = "failed"
)

// StageResult reports what one enrichment stage did to one article.
type StageResult struct {
	ArticleID string   `json:"articleId"`
	Stage     Stage    `json:"stage"`
	Outcome   Outcome  `json:"outcome"`
	Detail    string   `json:"detail,omitempty"`
	Article   *Article `json:"-"`
}

// BulkResult aggregates per-item results of a bulk enrichment.
type BulkResult struct {
	Results   []StageResult `json:"results"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Skipped   int           `json:"skipped"`
}

// Add records r and updates the counters.
func (b *BulkResult) Add(r StageResult) {
	b.Results = append(b.Results, r)
	switch r.Outcome {
	case OutcomeSucceeded:
		b.Succeeded++
	case OutcomeSkipped:
		b.Skipped++
	default:
		b.Failed++
	}
}
