package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"newsroom/internal/domain"
)

// collectionStatusID is the key of the single well-known status record.
const collectionStatusID = "collection"

type CollectionStatusStore struct {
	db *sqlx.DB
}

func NewCollectionStatusStore(db *sqlx.DB) *CollectionStatusStore {
	return &CollectionStatusStore{db: db}
}

type collectionStatusRow struct {
	LastRunAt     sql.NullTime `db:"last_run_at"`
	ArticlesFound int          `db:"articles_found"`
	SuccessCount  int          `db:"success_count"`
	FailCount     int          `db:"fail_count"`
	DurationMs    int64        `db:"duration_ms"`
	Status        string       `db:"status"`
	Sources       []byte       `db:"sources"`
	Error         string       `db:"error"`
}

// Get returns the status record, or a "none" status before the first run.
func (s *CollectionStatusStore) Get(ctx context.Context) (*domain.CollectionStatus, error) {
	var row collectionStatusRow
	query := `
		SELECT last_run_at, articles_found, success_count, fail_count, duration_ms,
			status, sources, error
		FROM collection_status
		WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, collectionStatusID)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.CollectionStatus{Status: domain.RunStatusNone}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get collection status: %w", err)
	}

	status := &domain.CollectionStatus{
		ArticlesFound: row.ArticlesFound,
		SuccessCount:  row.SuccessCount,
		FailCount:     row.FailCount,
		DurationMs:    row.DurationMs,
		Status:        domain.RunStatus(row.Status),
		Error:         row.Error,
	}
	if row.LastRunAt.Valid {
		t := row.LastRunAt.Time
		status.LastRunAt = &t
	}
	if err := json.Unmarshal(row.Sources, &status.Sources); err != nil {
		return nil, fmt.Errorf("decode source results: %w", err)
	}
	return status, nil
}

// Put replaces the status record.
func (s *CollectionStatusStore) Put(ctx context.Context, st *domain.CollectionStatus) error {
	sources, err := json.Marshal(nonNil(st.Sources))
	if err != nil {
		return fmt.Errorf("encode source results: %w", err)
	}

	query := `
		INSERT INTO collection_status (
			id, last_run_at, articles_found, success_count, fail_count,
			duration_ms, status, sources, error
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			last_run_at = EXCLUDED.last_run_at,
			articles_found = EXCLUDED.articles_found,
			success_count = EXCLUDED.success_count,
			fail_count = EXCLUDED.fail_count,
			duration_ms = EXCLUDED.duration_ms,
			status = EXCLUDED.status,
			sources = EXCLUDED.sources,
			error = EXCLUDED.error,
			updated_at = NOW()`

	_, err = GetExecutor(ctx, s.db).ExecContext(ctx, query,
		collectionStatusID,
		st.LastRunAt,
		st.ArticlesFound,
		st.SuccessCount,
		st.FailCount,
		st.DurationMs,
		string(st.Status),
		string(sources),
		st.Error,
	)
	if err != nil {
		return fmt.Errorf("put collection status: %w", err)
	}
	return nil
}
