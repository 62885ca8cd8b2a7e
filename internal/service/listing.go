package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ledgerdash/ledgerdash/internal/cache"
	"github.com/ledgerdash/ledgerdash/internal/metrics"
	"github.com/ledgerdash/ledgerdash/internal/model"
)

// listingStore reads the rows behind the cached listing views.
type listingStore interface {
	ListInvoices(ctx context.Context) ([]*model.InvoiceRow, error)
	ListCustomers(ctx context.Context) ([]*model.Customer, error)
	GetDashboardStats(ctx context.Context) (*model.DashboardStats, error)
}

// viewCache is the cache-aside surface for rendered listing views.
type viewCache interface {
	GetView(ctx context.Context, path string) ([]byte, error)
	SetView(ctx context.Context, path string, data []byte, ttl time.Duration) error
}

// ListingService serves the dashboard read side. Views are rendered to
// JSON once, cached under their path, and recomputed after a mutation
// invalidates them.
type ListingService struct {
	store   listingStore
	views   viewCache
	ttl     time.Duration
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewListingService creates a new ListingService.
func NewListingService(store listingStore, views viewCache, ttl time.Duration, logger *slog.Logger, recorder metrics.Recorder) *ListingService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ListingService{
		store:   store,
		views:   views,
		ttl:     ttl,
		logger:  logger,
		metrics: recorder,
	}
}

// InvoicesView returns the invoices listing as rendered JSON.
func (s *ListingService) InvoicesView(ctx context.Context) ([]byte, error) {
	return s.view(ctx, PathInvoices, func() (any, error) {
		invoices, err := s.store.ListInvoices(ctx)
		if err != nil {
			return nil, err
		}
		if invoices == nil {
			invoices = []*model.InvoiceRow{}
		}
		return map[string]any{"data": invoices}, nil
	})
}

// CustomersView returns the customers listing as rendered JSON.
func (s *ListingService) CustomersView(ctx context.Context) ([]byte, error) {
	return s.view(ctx, PathCustomers, func() (any, error) {
		customers, err := s.store.ListCustomers(ctx)
		if err != nil {
			return nil, err
		}
		if customers == nil {
			customers = []*model.Customer{}
		}
		return map[string]any{"data": customers}, nil
	})
}

// OverviewView returns the dashboard overview figures as rendered JSON.
func (s *ListingService) OverviewView(ctx context.Context) ([]byte, error) {
	return s.view(ctx, PathDashboard, func() (any, error) {
		return s.store.GetDashboardStats(ctx)
	})
}

// view implements the cache-aside read: serve the cached rendering if
// present, otherwise compute, cache, and serve.
func (s *ListingService) view(ctx context.Context, path string, compute func() (any, error)) ([]byte, error) {
	data, err := s.views.GetView(ctx, path)
	if err == nil {
		s.metrics.IncViewCacheHit()
		return data, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		// Cache trouble is not fatal to reads; fall through to the database.
		s.logger.Warn("view cache read failed", "path", path, "error", err)
	}
	s.metrics.IncViewCacheMiss()

	payload, err := compute()
	if err != nil {
		return nil, err
	}

	data, err = json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("render view %s: %w", path, err)
	}

	if err := s.views.SetView(ctx, path, data, s.ttl); err != nil {
		s.logger.Warn("view cache write failed", "path", path, "error", err)
	}

	return data, nil
}
