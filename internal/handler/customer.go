package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ledgerdash/ledgerdash/internal/handler/dto"
	"github.com/ledgerdash/ledgerdash/internal/service"
)

// CustomerHandler handles HTTP requests for customer mutations and listings.
type CustomerHandler struct {
	svc     *service.CustomerService
	listing *service.ListingService
	logger  *slog.Logger
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(svc *service.CustomerService, listing *service.ListingService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		svc:     svc,
		listing: listing,
		logger:  logger,
	}
}

// Create handles POST /dashboard/customers.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseSubmission(w, r) {
		return
	}

	res := h.svc.Create(r.Context(), r.PostForm)
	writeResult(w, r, res)
}

// Update handles POST /dashboard/customers/{id}.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error: "Customer ID is required",
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

// Delete handles DELETE /dashboard/customers/{id}.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error: "Customer ID is required",
			Code:  "MISSING_ID",
		})
		return
	}

	res := h.svc.Delete(r.Context(), id)
	writeResult(w, r, res)
}

// List handles GET /dashboard/customers.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	data, err := h.listing.CustomersView(r.Context())
	if err != nil {
		h.logger.Error("customers view failed", "error", err)
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
