package store

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when the registry holds no company for a CNPJ.
var ErrNotFound = errors.New("record not found")

type Storage struct {
	Companies interface {
		GetCompany(ctx context.Context, cnpj string) (*CompanyRecord, error)
		GetSecondaryActivities(ctx context.Context, cnpj string) ([]SecondaryActivity, error)
		GetPartners(ctx context.Context, cnpj string) ([]Partner, error)
	}

	Classifications interface {
		UpsertClassifications(ctx context.Context, items []Classification) (int64, error)
	}

	LoadHistory interface {
		InsertLoadHistory(ctx context.Context, h *LoadHistory) error
		GetLatest(ctx context.Context, limit int) ([]LoadHistory, error)
	}
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{
		Companies:       &CompanyStore{db: db},
		Classifications: &ClassificationStore{db: db},
		LoadHistory:     &LoadHistoryStore{db: db},
	}
}
