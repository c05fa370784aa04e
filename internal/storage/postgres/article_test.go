package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsroom/internal/domain"
)

func TestBuildUpsert_OnlyPresentColumns(t *testing.T) {
	query, args, err := buildUpsert(domain.ArticlePatch{
		ID:      "abc",
		Summary: domain.Ptr("A summary"),
	})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO articles (id,summary,has_summary) VALUES ($1,$2,$3)")
	assert.Contains(t, query, "ON CONFLICT (id) DO UPDATE SET summary = EXCLUDED.summary, has_summary = EXCLUDED.has_summary, updated_at = NOW()")
	assert.NotContains(t, query, "title = ")
	assert.Equal(t, []any{"abc", "A summary", true}, args)
}

func TestBuildUpsert_HasSummaryDerived(t *testing.T) {
	_, args, err := buildUpsert(domain.ArticlePatch{ID: "abc", Summary: domain.Ptr("   ")})
	require.NoError(t, err)

	assert.Equal(t, []any{"abc", "   ", false}, args)

	_, args, err = buildUpsert(domain.ArticlePatch{ID: "abc", Summary: domain.Ptr("")})
	require.NoError(t, err)

	assert.Equal(t, []any{"abc", nil, false}, args)
}

func TestBuildUpsert_InsertOnlyColumns(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	query, _, err := buildUpsert(domain.ArticlePatch{
		ID:            "abc",
		Title:         domain.Ptr("T"),
		InitialStatus: domain.Ptr(domain.StatusPending),
		CreatedAt:     &created,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "(id,title,status,created_at)")
	assert.NotContains(t, query, "status = EXCLUDED.status")
	assert.NotContains(t, query, "created_at = EXCLUDED.created_at")
}

func TestBuildUpsert_Locks(t *testing.T) {
	query, _, err := buildUpsert(domain.ArticlePatch{ID: "abc", Title: domain.Ptr("T"), Image: domain.Ptr("https://i/x.png")})
	require.NoError(t, err)

	assert.Contains(t, query, "title = CASE WHEN articles.title_locked THEN articles.title ELSE EXCLUDED.title END")
	assert.Contains(t, query, "image = CASE WHEN articles.image_locked THEN articles.image ELSE EXCLUDED.image END")

	query, _, err = buildUpsert(domain.ArticlePatch{ID: "abc", Title: domain.Ptr("T"), TitleLocked: domain.Ptr(true), Editor: true})
	require.NoError(t, err)

	assert.Contains(t, query, "title = EXCLUDED.title")
	assert.Contains(t, query, "title_locked = EXCLUDED.title_locked")
}

func TestBuildUpsert_RequiresID(t *testing.T) {
	_, _, err := buildUpsert(domain.ArticlePatch{Title: domain.Ptr("T")})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
