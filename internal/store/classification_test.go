package store

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

func TestClassificationStore_UpsertClassifications(t *testing.T) {
	query := regexp.QuoteMeta("INSERT INTO cnae ( codigo, descricao ) VALUES ( $1, $2 ) ON CONFLICT (codigo)")
	items := []Classification{
		{Code: 6204000, Description: "Consultoria em tecnologia da informação"},
		{Code: 9430800, Description: "Atividades de associações de defesa de direitos sociais"},
	}

	t.Run("writes every item in one transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		cs := &ClassificationStore{db: sqlx.NewDb(db, "postgres")}

		mock.ExpectBegin()
		for _, item := range items {
			mock.ExpectExec(query).
				WithArgs(item.Code, item.Description).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}
		mock.ExpectCommit()

		n, err := cs.UpsertClassifications(context.Background(), items)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		cs := &ClassificationStore{db: sqlx.NewDb(db, "postgres")}

		mock.ExpectBegin()
		mock.ExpectExec(query).
			WithArgs(items[0].Code, items[0].Description).
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		n, err := cs.UpsertClassifications(context.Background(), items)
		assert.Error(t, err)
		assert.Zero(t, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
