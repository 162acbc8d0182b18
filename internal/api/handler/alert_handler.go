package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pillpal/pillpal-api/internal/api/validation"
	"github.com/pillpal/pillpal-api/internal/domain"
	"github.com/pillpal/pillpal-api/internal/service"
	"github.com/pillpal/pillpal-api/pkg/problem"
)

type AlertHandler struct {
	service service.AlertService
}

func NewAlertHandler(service service.AlertService) *AlertHandler {
	return &AlertHandler{service: service}
}

// Ack handles POST /v1/alerts/{alertId}/ack
// @Summary Acknowledge a missed-dose alert
// @Description Record that a caregiver has seen and acted on a missed-dose alert. Each alert can be acknowledged once.
// @Tags alerts
// @Accept json
// @Produce json
// @Param alertId path string true "Alert UUID" format(uuid)
// @Param request body domain.AckAlertRequest true "Acknowledging user"
// @Success 200 {object} domain.AlertResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Alert or user not found"
// @Failure 409 {object} problem.Problem "Alert already acknowledged"
// @Failure 500 {object} problem.Problem
// @Router /alerts/{alertId}/ack [post]
func (h *AlertHandler) Ack(w http.ResponseWriter, r *http.Request) {
	alertID, err := uuid.Parse(chi.URLParam(r, "alertId"))
	if err != nil {
		problem.BadRequest("Invalid alert ID format").Write(w)
		return
	}

	var req domain.AckAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	alert, err := h.service.Acknowledge(r.Context(), alertID, req.AckBy)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Alert or user not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrAlreadyAcked) {
			problem.Conflict("Alert already acknowledged").Write(w)
			return
		}
		problem.InternalError("Failed to acknowledge alert").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(alert.ToResponse())
}
