package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pillpal/pillpal-api/internal/domain"
	"github.com/pillpal/pillpal-api/internal/service"
	"github.com/pillpal/pillpal-api/pkg/problem"
)

type ExportHandler struct {
	service service.ExportService
}

func NewExportHandler(service service.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// AdherenceCSV handles GET /v1/users/{userId}/export/adherence.csv
// @Summary Export adherence history as CSV
// @Description Download the last 30 days of dosing history as a CSV file, one row per dose.
// @Tags export
// @Produce text/csv
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/export/adherence.csv [get]
func (h *ExportHandler) AdherenceCSV(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="adherence.csv"`)

	if err := h.service.WriteAdherenceCSV(r.Context(), userID, w); err != nil {
		// Headers may already be written; only pre-stream failures get a
		// problem response.
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to export adherence history").Write(w)
	}
}
