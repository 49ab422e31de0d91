package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ClassificationStore maintains the 'cnae' reference table. It is only used
// by the offline feed loader; request handling never writes.
type ClassificationStore struct {
	db *sqlx.DB
}

const upsertClassificationQuery = `INSERT INTO cnae (
		codigo,
		descricao
	) VALUES (
		:codigo,
		:descricao
	)
	ON CONFLICT (codigo) DO UPDATE SET descricao = EXCLUDED.descricao`

// UpsertClassifications writes all items in one transaction and returns the
// number of affected rows.
func (cs *ClassificationStore) UpsertClassifications(ctx context.Context, items []Classification) (int64, error) {
	tx, err := cs.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var total int64
	for _, item := range items {
		result, err := tx.NamedExecContext(ctx, upsertClassificationQuery, item)
		if err != nil {
			return 0, fmt.Errorf("failed to upsert classification %d: %w", item.Code, err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to read affected rows: %w", err)
		}
		total += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit classifications: %w", err)
	}

	return total, nil
}
