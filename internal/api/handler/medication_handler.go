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

type MedicationHandler struct {
	service service.MedicationService
}

func NewMedicationHandler(service service.MedicationService) *MedicationHandler {
	return &MedicationHandler{service: service}
}

// Create handles POST /v1/users/{userId}/medications
// @Summary Add a medication
// @Description Register a medication with its daily schedule for a user
// @Tags medications
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateMedicationRequest true "Medication data"
// @Success 201 {object} domain.MedicationResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/medications [post]
func (h *MedicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateMedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	med, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to create medication").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(med.ToResponse())
}

// List handles GET /v1/users/{userId}/medications
// @Summary List medications
// @Description List all medications registered for a user
// @Tags medications
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {array} domain.MedicationResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/medications [get]
func (h *MedicationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	meds, err := h.service.List(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list medications").Write(w)
		return
	}

	responses := make([]domain.MedicationResponse, len(meds))
	for i := range meds {
		responses[i] = meds[i].ToResponse()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responses)
}

// Delete handles DELETE /v1/users/{userId}/medications/{medicationId}
// @Summary Remove a medication
// @Description Delete a medication and its scheduled doses
// @Tags medications
// @Param userId path string true "User UUID" format(uuid)
// @Param medicationId path string true "Medication UUID" format(uuid)
// @Success 204 "Medication deleted"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Medication not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/medications/{medicationId} [delete]
func (h *MedicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	medicationID, err := uuid.Parse(chi.URLParam(r, "medicationId"))
	if err != nil {
		problem.BadRequest("Invalid medication ID format").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), userID, medicationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Medication not found").Write(w)
			return
		}
		problem.InternalError("Failed to delete medication").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
