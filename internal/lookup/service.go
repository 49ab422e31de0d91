package lookup

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/farxc/cnpj_registry/internal/metrics"
	"github.com/farxc/cnpj_registry/internal/store"
)

//go:generate mockgen -source=service.go -destination=mocks/registry_mock.go -package=mocks

// ErrNotFound is returned by Lookup when the registry has no company for a
// structurally valid CNPJ.
var ErrNotFound = errors.New("company not found")

// Registry is the read side of the company registry.
type Registry interface {
	GetCompany(ctx context.Context, cnpj string) (*store.CompanyRecord, error)
	GetSecondaryActivities(ctx context.Context, cnpj string) ([]store.SecondaryActivity, error)
	GetPartners(ctx context.Context, cnpj string) ([]store.Partner, error)
}

type Service struct {
	registry Registry
	metrics  *metrics.Metrics
}

// NewService builds a lookup service. m may be nil.
func NewService(registry Registry, m *metrics.Metrics) *Service {
	return &Service{registry: registry, metrics: m}
}

// Lookup normalizes raw and assembles the company document for it.
//
// It returns *InvalidIdentifierError without touching the registry when raw
// is malformed, and ErrNotFound without fetching dependents when the company
// does not exist. Any registry failure fails the whole lookup.
func (s *Service) Lookup(ctx context.Context, raw string) (*store.CompanyDocument, error) {
	cnpj, err := Normalize(raw)
	if err != nil {
		s.metrics.IncrementOutcome(metrics.OutcomeInvalid)
		return nil, err
	}

	doc, err := s.fetch(ctx, cnpj)
	switch {
	case errors.Is(err, ErrNotFound):
		s.metrics.IncrementOutcome(metrics.OutcomeNotFound)
	case err != nil:
		s.metrics.IncrementOutcome(metrics.OutcomeError)
	default:
		s.metrics.IncrementOutcome(metrics.OutcomeFound)
	}
	return doc, err
}

func (s *Service) fetch(ctx context.Context, cnpj string) (*store.CompanyDocument, error) {
	start := time.Now()
	company, err := s.registry.GetCompany(ctx, cnpj)
	s.metrics.ObserveFetchLatency("company", time.Since(start))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var (
		activities []store.SecondaryActivity
		partners   []store.Partner
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		start := time.Now()
		defer func() { s.metrics.ObserveFetchLatency("secondary_activities", time.Since(start)) }()

		var err error
		activities, err = s.registry.GetSecondaryActivities(gctx, cnpj)
		return err
	})
	g.Go(func() error {
		start := time.Now()
		defer func() { s.metrics.ObserveFetchLatency("partners", time.Since(start)) }()

		var err error
		partners, err = s.registry.GetPartners(gctx, cnpj)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &store.CompanyDocument{
		CompanyRecord:       *company,
		SecondaryActivities: nonEmpty(activities),
		Partners:            nonEmpty(partners),
	}, nil
}

// nonEmpty folds an empty collection into nil so both render as null.
func nonEmpty[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	return items
}
