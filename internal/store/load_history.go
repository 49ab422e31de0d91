package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Load outcomes recorded by the feed loader.
const (
	LoadStatusSuccess = "success"
	LoadStatusFailure = "failure"
)

// LoadHistory represents the 'load_history' table: one row per feed load.
type LoadHistory struct {
	ID          int64     `db:"id" json:"id"`
	SourceFile  string    `db:"source_file" json:"source_file"`
	Status      string    `db:"status" json:"status"`
	RowsLoaded  int64     `db:"rows_loaded" json:"rows_loaded"`
	Message     string    `db:"message" json:"message,omitempty"`
	ProcessedAt time.Time `db:"processed_at" json:"processed_at"`
}

type LoadHistoryStore struct {
	db *sqlx.DB
}

const insertLoadHistoryQuery = `INSERT INTO load_history (
		source_file,
		status,
		rows_loaded,
		message
	) VALUES (
		:source_file,
		:status,
		:rows_loaded,
		:message
	) RETURNING id, processed_at`

// InsertLoadHistory stores h and fills in its generated ID and ProcessedAt.
func (lh *LoadHistoryStore) InsertLoadHistory(ctx context.Context, h *LoadHistory) error {
	rows, err := lh.db.NamedQueryContext(ctx, insertLoadHistoryQuery, h)
	if err != nil {
		return fmt.Errorf("failed to record load of %s: %w", h.SourceFile, err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&h.ID, &h.ProcessedAt); err != nil {
			return fmt.Errorf("failed to read load history id: %w", err)
		}
	}
	return rows.Err()
}

// GetLatest returns up to limit loads, newest first.
func (lh *LoadHistoryStore) GetLatest(ctx context.Context, limit int) ([]LoadHistory, error) {
	query := `
		SELECT id, source_file, status, rows_loaded, message, processed_at
		FROM load_history
		ORDER BY processed_at DESC, id DESC
		LIMIT $1`

	result := []LoadHistory{}
	if err := lh.db.SelectContext(ctx, &result, query, limit); err != nil {
		return nil, fmt.Errorf("failed to query load history: %w", err)
	}
	return result, nil
}
