package db

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaCreatesRegistryTables(t *testing.T) {
	for _, table := range []string{"cnae", "empresa", "cnae_secundaria", "socio", "load_history"} {
		assert.Contains(t, Schema, "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}

func TestMigrate(t *testing.T) {
	t.Run("applies schema", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer sqlDB.Close()

		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS cnae (")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, Migrate(context.Background(), sqlx.NewDb(sqlDB, "postgres")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec failure", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer sqlDB.Close()

		mock.ExpectExec("CREATE TABLE").WillReturnError(errors.New("permission denied for schema public"))

		err = Migrate(context.Background(), sqlx.NewDb(sqlDB, "postgres"))
		assert.ErrorContains(t, err, "failed to apply schema")
	})
}
