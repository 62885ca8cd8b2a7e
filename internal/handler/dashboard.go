package handler

import (
	"log/slog"
	"net/http"

	"github.com/ledgerdash/ledgerdash/internal/handler/dto"
	"github.com/ledgerdash/ledgerdash/internal/service"
)

// DashboardHandler serves the dashboard overview figures.
type DashboardHandler struct {
	listing *service.ListingService
	logger  *slog.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(listing *service.ListingService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		listing: listing,
		logger:  logger,
	}
}

// Overview handles GET /dashboard.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	data, err := h.listing.OverviewView(r.Context())
	if err != nil {
		h.logger.Error("overview view failed", "error", err)
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
