package domain

import "errors"

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrReportNotFound  = errors.New("trend report not found")

	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNothingToRevert   = errors.New("article has no original title")

	// ErrCollectionInProgress is returned when another collection run holds the lock.
	ErrCollectionInProgress = errors.New("collection already in progress")

	// ErrNotEnoughArticles means the trend window held too few articles to analyze.
	ErrNotEnoughArticles = errors.New("not enough articles for trend analysis")
)
