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

// invoiceStore is the persistence surface the invoice pipeline needs.
type invoiceStore interface {
	CreateInvoice(ctx context.Context, inv *model.Invoice) error
	UpdateInvoice(ctx context.Context, inv *model.Invoice) error
	DeleteInvoice(ctx context.Context, id string) error
}

// viewInvalidator marks cached listing views stale after a mutation.
type viewInvalidator interface {
	InvalidateView(ctx context.Context, path string) error
}

// InvoiceService runs the mutation pipeline for invoices.
type InvoiceService struct {
	store   invoiceStore
	views   viewInvalidator
	logger  *slog.Logger
	metrics metrics.Recorder
	now     func() time.Time
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(store invoiceStore, views viewInvalidator, logger *slog.Logger, recorder metrics.Recorder) *InvoiceService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &InvoiceService{
		store:   store,
		views:   views,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

// Create validates and persists a new invoice from a form submission.
// The id and date are server-generated; a date in the submission is ignored.
func (s *InvoiceService) Create(ctx context.Context, values url.Values) Result {
	f, errs := form.ParseCreateInvoice(values)
	if errs != nil {
		s.metrics.IncValidationFailed("invoice")
		return ValidationFailed(errs, missingFieldsMsg("Create", "Invoice"))
	}

	now := s.now().UTC()
	inv := &model.Invoice{
		ID:          ulid.Make().String(),
		CustomerID:  f.CustomerID,
		AmountCents: form.AmountCents(f.Amount),
		Status:      model.InvoiceStatus(f.Status),
		Date:        now.Format(time.DateOnly),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.CreateInvoice(ctx, inv); err != nil {
		s.logger.Error("invoice create failed", "error", err, "customer_id", f.CustomerID)
		s.metrics.IncPersistFailed("invoice")
		return PersistFailed(dbErrorMsg("Create", "Invoice"))
	}

	s.metrics.IncCreated("invoice")
	s.invalidate(ctx, PathInvoices)

	return Redirect(PathInvoices)
}

// Update validates and persists changes to an existing invoice.
// The target id is path-supplied, never read from the submission.
func (s *InvoiceService) Update(ctx context.Context, id string, values url.Values) Result {
	f, errs := form.ParseUpdateInvoice(values)
	if errs != nil {
		s.metrics.IncValidationFailed("invoice")
		return ValidationFailed(errs, missingFieldsMsg("Update", "Invoice"))
	}

	inv := &model.Invoice{
		ID:          id,
		CustomerID:  f.CustomerID,
		AmountCents: form.AmountCents(f.Amount),
		Status:      model.InvoiceStatus(f.Status),
	}

	if err := s.store.UpdateInvoice(ctx, inv); err != nil {
		s.logger.Error("invoice update failed", "error", err, "invoice_id", id)
		s.metrics.IncPersistFailed("invoice")
		return PersistFailed(dbErrorMsg("Update", "Invoice"))
	}

	s.metrics.IncUpdated("invoice")
	s.invalidate(ctx, PathInvoices)

	return Redirect(PathInvoices)
}

// Delete removes an invoice by id. No input validation is needed since
// only the path-supplied id is consumed.
func (s *InvoiceService) Delete(ctx context.Context, id string) Result {
	if err := s.store.DeleteInvoice(ctx, id); err != nil {
		s.logger.Error("invoice delete failed", "error", err, "invoice_id", id)
		s.metrics.IncPersistFailed("invoice")
		return PersistFailed(dbErrorMsg("Delete", "Invoice"))
	}

	s.metrics.IncDeleted("invoice")
	s.invalidate(ctx, PathInvoices)

	return Deleted(deletedMsg("Invoice"))
}

// invalidate marks a listing view stale. Failures are logged, not
// surfaced - the view expires on its own TTL.
func (s *InvoiceService) invalidate(ctx context.Context, path string) {
	if err := s.views.InvalidateView(ctx, path); err != nil {
		s.logger.Warn("view invalidation failed", "path", path, "error", err)
	}
}
