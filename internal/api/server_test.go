package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsroom/internal/domain"
)

type fakeModeration struct {
	Moderation

	articles  []domain.Article
	statusErr error
	gotIDs    []string
	gotMode   string
	triggered int
}

func (f *fakeModeration) PendingArticles(_ context.Context, limit int) ([]domain.Article, int, error) {
	return f.articles, 42, nil
}

func (f *fakeModeration) UpdateStatus(_ context.Context, id, status string) (*domain.Article, error) {
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return &domain.Article{ID: id, Status: domain.Status(status)}, nil
}

func (f *fakeModeration) BulkSummarize(_ context.Context, ids []string) (*domain.BulkResult, error) {
	f.gotIDs = ids
	res := &domain.BulkResult{}
	for _, id := range ids {
		res.Add(domain.StageResult{ArticleID: id, Stage: domain.StageSummarize, Outcome: domain.OutcomeSucceeded})
	}
	return res, nil
}

func (f *fakeModeration) GenerateThumbnail(_ context.Context, id, mode string) (domain.StageResult, error) {
	f.gotMode = mode
	return domain.StageResult{
		ArticleID: id,
		Stage:     domain.StageExtractThumbnail,
		Outcome:   domain.OutcomeSucceeded,
		Article:   &domain.Article{ID: id, Image: domain.Ptr("https://img.example.com/a.png")},
	}, nil
}

func (f *fakeModeration) RevertTitle(context.Context, string) (domain.StageResult, error) {
	return domain.StageResult{}, domain.ErrNothingToRevert
}

func (f *fakeModeration) TriggerCollection(context.Context) (*domain.Job, error) {
	f.triggered++
	if f.triggered > 1 {
		return nil, domain.ErrCollectionInProgress
	}
	return &domain.Job{Type: domain.JobCollect, RequestID: "req-1"}, nil
}

func (f *fakeModeration) LatestTrendReport(context.Context) (*domain.TrendReport, error) {
	return nil, fmt.Errorf("load: %w", domain.ErrReportNotFound)
}

func (f *fakeModeration) MigrateLegacyStatus(context.Context) (int64, error) {
	return 0, errors.New("connection reset")
}

func newTestServer(mod Moderation, checks map[string]HealthCheck) http.Handler {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewServer(mod, checks, logger)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorDetail {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestPendingArticles(t *testing.T) {
	mod := &fakeModeration{articles: []domain.Article{{ID: "a", Title: "T", Status: domain.StatusPending}}}
	srv := newTestServer(mod, nil)

	rec := do(t, srv, http.MethodGet, "/api/admin/articles/pending?limit=10", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Articles []map[string]any `json:"articles"`
		Total    int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 42, body.Total)
	require.Len(t, body.Articles, 1)
	assert.Equal(t, "pending", body.Articles[0]["status"])
	assert.Equal(t, []any{}, body.Articles[0]["tags"])
}

func TestPendingArticles_BadLimit(t *testing.T) {
	srv := newTestServer(&fakeModeration{}, nil)

	rec := do(t, srv, http.MethodGet, "/api/admin/articles/pending?limit=abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, codeBadInput, decodeError(t, rec).Code)
}

func TestUpdateStatus(t *testing.T) {
	srv := newTestServer(&fakeModeration{}, nil)

	rec := do(t, srv, http.MethodPatch, "/api/admin/articles/abc/status", `{"status":"published"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"abc"`)
	assert.Contains(t, rec.Body.String(), `"status":"published"`)
}

func TestUpdateStatus_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrArticleNotFound, http.StatusNotFound, codeNotFound},
		{domain.ErrInvalidStatus, http.StatusBadRequest, codeBadInput},
		{fmt.Errorf("published -> rejected: %w", domain.ErrInvalidTransition), http.StatusConflict, codeConflict},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			srv := newTestServer(&fakeModeration{statusErr: tt.err}, nil)

			rec := do(t, srv, http.MethodPatch, "/api/admin/articles/abc/status", `{"status":"rejected"}`)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestUpdateStatus_MalformedBody(t *testing.T) {
	srv := newTestServer(&fakeModeration{}, nil)

	rec := do(t, srv, http.MethodPatch, "/api/admin/articles/abc/status", `{"status":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBulkSummarize(t *testing.T) {
	mod := &fakeModeration{}
	srv := newTestServer(mod, nil)

	rec := do(t, srv, http.MethodPost, "/api/admin/articles/summarize", `{"articleIds":["a","b"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"a", "b"}, mod.gotIDs)
	var res domain.BulkResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 2, res.Succeeded)
	assert.Len(t, res.Results, 2)
}

func TestGenerateThumbnail_ExtractMode(t *testing.T) {
	mod := &fakeModeration{}
	srv := newTestServer(mod, nil)

	rec := do(t, srv, http.MethodPost, "/api/admin/articles/abc/thumbnail?mode=extract", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "extract", mod.gotMode)
	assert.Contains(t, rec.Body.String(), `"outcome":"succeeded"`)
	assert.Contains(t, rec.Body.String(), `"image":"https://img.example.com/a.png"`)
}

func TestRevertTitle_NothingToRevert(t *testing.T) {
	srv := newTestServer(&fakeModeration{}, nil)

	rec := do(t, srv, http.MethodPost, "/api/admin/articles/abc/revert-title", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"bad_input"`)
}

func TestTriggerCollection(t *testing.T) {
	srv := newTestServer(&fakeModeration{}, nil)

	rec := do(t, srv, http.MethodPost, "/api/admin/collection", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `"requestId":"req-1"`)

	rec = do(t, srv, http.MethodPost, "/api/admin/collection", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, codeConflict, decodeError(t, rec).Code)
}

func TestLatestTrendReport_NotFound(t *testing.T) {
	srv := newTestServer(&fakeModeration{}, nil)

	rec := do(t, srv, http.MethodGet, "/api/admin/trends/latest", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInternalErrorHidesDetail(t *testing.T) {
	srv := newTestServer(&fakeModeration{}, nil)

	rec := do(t, srv, http.MethodPost, "/api/admin/maintenance/migrate-status", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, codeInternal, detail.Code)
	assert.NotContains(t, detail.Detail, "connection reset")
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(&fakeModeration{}, nil)

	rec := do(t, srv, http.MethodGet, "/api/admin/nope", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, codeNotFound, decodeError(t, rec).Code)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(&fakeModeration{}, map[string]HealthCheck{
		"postgres": func(context.Context) error { return nil },
		"redis":    func(context.Context) error { return errors.New("dial tcp: refused") },
	})

	rec := do(t, srv, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"postgres":"ok"`)
	assert.Contains(t, rec.Body.String(), "refused")
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(&fakeModeration{}, nil)

	rec := do(t, srv, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
