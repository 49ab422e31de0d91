package db

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Schema holds the DDL of the registry tables. Every statement is
// idempotent, so it is safe to apply on each run.
//
//go:embed schema.sql
var Schema string

// Migrate applies Schema in a single round trip.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
