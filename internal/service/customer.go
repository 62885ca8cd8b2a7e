package service

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ledgerdash/ledgerdash/internal/form"
	"github.com/ledgerdash/ledgerdash/internal/metrics"
	"github.com/ledgerdash/ledgerdash/internal/model"
)

// customerStore is the persistence surface the customer pipeline needs.
type customerStore interface {
	CreateCustomer(ctx context.Context, c *model.Customer) error
	UpdateCustomer(ctx context.Context, c *model.Customer) error
	DeleteCustomer(ctx context.Context, id string) error
}

// CustomerService runs the mutation pipeline for customers.
type CustomerService struct {
	store   customerStore
	views   viewInvalidator
	logger  *slog.Logger
	metrics metrics.Recorder
	now     func() time.Time
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(store customerStore, views viewInvalidator, logger *slog.Logger, recorder metrics.Recorder) *CustomerService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &CustomerService{
		store:   store,
		views:   views,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// Create validates and persists a new customer from a form submission.
func (s *CustomerService) Create(ctx context.Context, values url.Values) Result {
	f, errs := form.ParseCreateCustomer(values)
	if errs != nil {
		s.metrics.IncValidationFailed("customer")
		return ValidationFailed(errs, missingFieldsMsg("Create", "Customer"))
	}

	now := s.now().UTC()
	c := &model.Customer{
		ID:        ulid.Make().String(),
		Name:      f.Name,
		Email:     f.Email,
		ImageURL:  f.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreateCustomer(ctx, c); err != nil {
		s.logger.Error("customer create failed", "error", err)
		s.metrics.IncPersistFailed("customer")
		return PersistFailed(dbErrorMsg("Create", "Customer"))
	}

	s.metrics.IncCreated("customer")
	s.invalidate(ctx, PathCustomers)

	return Redirect(PathCustomers)
}

// Update validates and persists changes to an existing customer.
func (s *CustomerService) Update(ctx context.Context, id string, values url.Values) Result {
	f, errs := form.ParseUpdateCustomer(values)
	if errs != nil {
		s.metrics.IncValidationFailed("customer")
		return ValidationFailed(errs, missingFieldsMsg("Update", "Customer"))
	}

	c := &model.Customer{
		ID:       id,
		Name:     f.Name,
		Email:    f.Email,
		ImageURL: f.ImageURL,
	}

	if err := s.store.UpdateCustomer(ctx, c); err != nil {
		s.logger.Error("customer update failed", "error", err, "customer_id", id)
		s.metrics.IncPersistFailed("customer")
		return PersistFailed(dbErrorMsg("Update", "Customer"))
	}

	s.metrics.IncUpdated("customer")
	s.invalidate(ctx, PathCustomers)

	return Redirect(PathCustomers)
}

// Delete removes a customer by id.
func (s *CustomerService) Delete(ctx context.Context, id string) Result {
	if err := s.store.DeleteCustomer(ctx, id); err != nil {
		s.logger.Error("customer delete failed", "error", err, "customer_id", id)
		s.metrics.IncPersistFailed("customer")
		return PersistFailed(dbErrorMsg("Delete", "Customer"))
	}

	s.metrics.IncDeleted("customer")
	s.invalidate(ctx, PathCustomers)

	return Deleted(deletedMsg("Customer"))
}

func (s *CustomerService) invalidate(ctx context.Context, path string) {
	if err := s.views.InvalidateView(ctx, path); err != nil {
		s.logger.Warn("view invalidation failed", "path", path, "error", err)
	}
}
