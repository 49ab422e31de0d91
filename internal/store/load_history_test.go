package store

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoadHistoryStore(t *testing.T) (*LoadHistoryStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &LoadHistoryStore{db: sqlx.NewDb(db, "postgres")}, mock
}

func TestLoadHistoryStore_InsertLoadHistory(t *testing.T) {
	query := regexp.QuoteMeta("INSERT INTO load_history ( source_file, status, rows_loaded, message ) VALUES ( $1, $2, $3, $4 ) RETURNING id, processed_at")

	t.Run("fills generated fields", func(t *testing.T) {
		lh, mock := newLoadHistoryStore(t)
		processedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		mock.ExpectQuery(query).
			WithArgs("cnae.csv", LoadStatusSuccess, int64(1301), "").
			WillReturnRows(sqlmock.NewRows([]string{"id", "processed_at"}).AddRow(7, processedAt))

		h := &LoadHistory{SourceFile: "cnae.csv", Status: LoadStatusSuccess, RowsLoaded: 1301}
		require.NoError(t, lh.InsertLoadHistory(context.Background(), h))

		assert.Equal(t, int64(7), h.ID)
		assert.Equal(t, processedAt, h.ProcessedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		lh, mock := newLoadHistoryStore(t)
		mock.ExpectQuery(query).WillReturnError(errors.New("relation load_history does not exist"))

		err := lh.InsertLoadHistory(context.Background(), &LoadHistory{SourceFile: "cnae.csv"})
		assert.ErrorContains(t, err, "failed to record load of cnae.csv")
	})
}

func TestLoadHistoryStore_GetLatest(t *testing.T) {
	lh, mock := newLoadHistoryStore(t)
	processedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM load_history ORDER BY processed_at DESC, id DESC LIMIT $1")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "source_file", "status", "rows_loaded", "message", "processed_at"}).
			AddRow(2, "cnae.csv", LoadStatusFailure, 0, "feed is empty", processedAt).
			AddRow(1, "cnae.csv", LoadStatusSuccess, 1301, "", processedAt.Add(-time.Hour)))

	got, err := lh.GetLatest(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, LoadStatusFailure, got[0].Status)
	assert.Equal(t, "feed is empty", got[0].Message)
	assert.Equal(t, int64(1301), got[1].RowsLoaded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadHistoryStore_GetLatestEmpty(t *testing.T) {
	lh, mock := newLoadHistoryStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM load_history")).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "source_file", "status", "rows_loaded", "message", "processed_at"}))

	got, err := lh.GetLatest(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	body, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))
}
