package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"newsroom/internal/domain"
	"newsroom/internal/service/mocks"
)

func newTestJobRunner(t *testing.T) (*JobRunner, *mocks.MockCollector, *mocks.MockTrendRunner) {
	ctrl := gomock.NewController(t)
	collector := mocks.NewMockCollector(ctrl)
	trends := mocks.NewMockTrendRunner(ctrl)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewJobRunner(collector, trends, logger), collector, trends
}

func TestJobRunner_Collect(t *testing.T) {
	runner, collector, _ := newTestJobRunner(t)
	collector.EXPECT().Run(gomock.Any()).Return(&domain.CollectionStats{}, nil)

	err := runner.Handle(context.Background(), domain.Job{Type: domain.JobCollect, RequestID: "r1"})

	assert.NoError(t, err)
}

func TestJobRunner_CollectInProgressIsDropped(t *testing.T) {
	runner, collector, _ := newTestJobRunner(t)
	collector.EXPECT().Run(gomock.Any()).Return(nil, domain.ErrCollectionInProgress)

	err := runner.Handle(context.Background(), domain.Job{Type: domain.JobCollect})

	assert.NoError(t, err)
}

func TestJobRunner_Trend(t *testing.T) {
	runner, _, trends := newTestJobRunner(t)
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	runner.now = func() time.Time { return now }
	trends.EXPECT().Run(gomock.Any(), now).Return(nil, errors.New("provider down"))

	err := runner.Handle(context.Background(), domain.Job{Type: domain.JobTrend})

	assert.EqualError(t, err, "provider down")
}

func TestJobRunner_TrendTooFewArticlesIsSkipped(t *testing.T) {
	runner, _, trends := newTestJobRunner(t)
	trends.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("2 articles in window: %w", domain.ErrNotEnoughArticles))

	err := runner.Handle(context.Background(), domain.Job{Type: domain.JobTrend})

	assert.NoError(t, err)
}

func TestJobRunner_UnknownType(t *testing.T) {
	runner, _, _ := newTestJobRunner(t)

	err := runner.Handle(context.Background(), domain.Job{Type: "reindex"})

	assert.ErrorIs(t, err, ErrUnknownJob)
}
