package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pillpal/pillpal-api/internal/domain"
	"github.com/pillpal/pillpal-api/internal/service"
	"github.com/pillpal/pillpal-api/pkg/problem"
)

type NotifyHandler struct {
	service service.NotifyService
}

func NewNotifyHandler(service service.NotifyService) *NotifyHandler {
	return &NotifyHandler{service: service}
}

// SendInsights handles POST /v1/users/{userId}/notify/insights
// @Summary Send the insights card over SMS
// @Description Generate the adherence insights card and deliver a short summary to the user's phone via Twilio.
// @Tags notify
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.NotifyInsightsResponse
// @Failure 400 {object} problem.Problem "User has no phone number"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Failure 503 {object} problem.Problem "SMS notifier not configured"
// @Router /users/{userId}/notify/insights [post]
func (h *NotifyHandler) SendInsights(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.service.SendInsights(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrNotifierDisabled) {
			problem.ServiceUnavailable("SMS notifier is not configured").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("User has no phone number on file").Write(w)
			return
		}
		problem.InternalError("Failed to send insights SMS").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
