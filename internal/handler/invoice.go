package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ledgerdash/ledgerdash/internal/handler/dto"
	"github.com/ledgerdash/ledgerdash/internal/service"
)

// InvoiceHandler handles HTTP requests for invoice mutations and listings.
type InvoiceHandler struct {
	svc     *service.InvoiceService
	listing *service.ListingService
	logger  *slog.Logger
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(svc *service.InvoiceService, listing *service.ListingService, logger *slog.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		svc:     svc,
		listing: listing,
		logger:  logger,
	}
}

// Create handles POST /dashboard/invoices.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseSubmission(w, r) {
		return
	}

	res := h.svc.Create(r.Context(), r.PostForm)
	writeResult(w, r, res)
}

// Update handles POST /dashboard/invoices/{id}.
func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invoice ID is required",
			Code:  "MISSING_ID",
		})
		return
	}
	if !parseSubmission(w, r) {
		return
	}

	res := h.svc.Update(r.Context(), id, r.PostForm)
	writeResult(w, r, res)
}

// Delete handles DELETE /dashboard/invoices/{id}.
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invoice ID is required",
			Code:  "MISSING_ID",
		})
		return
	}

	res := h.svc.Delete(r.Context(), id)
	writeResult(w, r, res)
}

// List handles GET /dashboard/invoices.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	data, err := h.listing.InvoicesView(r.Context())
	if err != nil {
		h.logger.Error("invoices view failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
