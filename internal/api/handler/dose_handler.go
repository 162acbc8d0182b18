package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pillpal/pillpal-api/internal/api/validation"
	"github.com/pillpal/pillpal-api/internal/domain"
	"github.com/pillpal/pillpal-api/internal/service"
	"github.com/pillpal/pillpal-api/pkg/problem"
)

type DoseHandler struct {
	service service.DoseService
}

func NewDoseHandler(service service.DoseService) *DoseHandler {
	return &DoseHandler{service: service}
}

// Create handles POST /v1/users/{userId}/doses
// @Summary Schedule a dose
// @Description Schedule a single dose of a registered medication
// @Tags doses
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateDoseRequest true "Dose data"
// @Success 201 {object} domain.DoseResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User or medication not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/doses [post]
func (h *DoseHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateDoseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	dose, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User or medication not found").Write(w)
			return
		}
		problem.InternalError("Failed to create dose").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(dose.ToResponse())
}

// Update handles PATCH /v1/users/{userId}/doses/{doseId}
// @Summary Record a dose outcome
// @Description Mark a dose taken, skipped, snoozed, or missed. Transitions into skipped/missed raise a caregiver alert.
// @Tags doses
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param doseId path string true "Dose UUID" format(uuid)
// @Param request body domain.UpdateDoseRequest true "New dose status"
// @Success 200 {object} domain.DoseResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Dose not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/doses/{doseId} [patch]
func (h *DoseHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	doseID, err := uuid.Parse(chi.URLParam(r, "doseId"))
	if err != nil {
		problem.BadRequest("Invalid dose ID format").Write(w)
		return
	}

	var req domain.UpdateDoseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	dose, err := h.service.Update(r.Context(), userID, doseID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Dose not found").Write(w)
			return
		}
		problem.InternalError("Failed to update dose").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dose.ToResponse())
}

// List handles GET /v1/users/{userId}/doses
// @Summary List doses
// @Description Fetch paginated dose history. Filter by date range and status. Sorted by scheduled_at descending.
// @Tags doses
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param from query string false "Start of date range (RFC3339)" format(date-time)
// @Param to query string false "End of date range (RFC3339)" format(date-time)
// @Param status query string false "Filter by status" Enums(pending,taken,skipped,snoozed,missed)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.DoseListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/doses [get]
func (h *DoseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, fieldErrors := parseDoseFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list doses").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Next handles GET /v1/users/{userId}/doses/next
// @Summary Get the next upcoming dose
// @Description Return the earliest pending or snoozed dose scheduled from now
// @Tags doses
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.NextDoseResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found or no upcoming dose"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/doses/next [get]
func (h *DoseHandler) Next(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	next, err := h.service.Next(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No upcoming dose").Write(w)
			return
		}
		problem.InternalError("Failed to find next dose").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(next)
}

func parseDoseFilter(r *http.Request) (domain.DoseFilter, []problem.FieldError) {
	var filter domain.DoseFilter
	var fieldErrors []problem.FieldError

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := domain.DoseStatus(statusStr)
		switch status {
		case domain.DoseStatusPending, domain.DoseStatusTaken, domain.DoseStatusSkipped,
			domain.DoseStatusSnoozed, domain.DoseStatusMissed:
			filter.Status = &status
		default:
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "status",
				Message: "must be one of: pending, taken, skipped, snoozed, missed",
			})
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
