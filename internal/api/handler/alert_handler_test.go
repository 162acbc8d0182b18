package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pillpal/pillpal-api/internal/domain"
)

type mockAlertService struct {
	acknowledgeFunc func(ctx context.Context, alertID, ackBy uuid.UUID) (*domain.Alert, error)
}

func (m *mockAlertService) Acknowledge(ctx context.Context, alertID, ackBy uuid.UUID) (*domain.Alert, error) {
	if m.acknowledgeFunc != nil {
		return m.acknowledgeFunc(ctx, alertID, ackBy)
	}
	now := time.Now().UTC()
	return &domain.Alert{
		ID:     alertID,
		DoseID: uuid.New(),
		SentAt: now.Add(-time.Hour),
		AckBy:  &ackBy,
		AckAt:  &now,
	}, nil
}

func TestAlertHandler_Ack(t *testing.T) {
	alertID := uuid.New()
	caregiverID := uuid.New()

	tests := []struct {
		name           string
		alertID        string
		body           string
		mockService    *mockAlertService
		wantStatusCode int
	}{
		{
			name:           "valid acknowledgement",
			alertID:        alertID.String(),
			body:           `{"ack_by": "` + caregiverID.String() + `"}`,
			mockService:    &mockAlertService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid alert ID",
			alertID:        "not-a-uuid",
			body:           `{"ack_by": "` + caregiverID.String() + `"}`,
			mockService:    &mockAlertService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			alertID:        alertID.String(),
			body:           `{invalid}`,
			mockService:    &mockAlertService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing ack_by",
			alertID:        alertID.String(),
			body:           `{}`,
			mockService:    &mockAlertService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:    "unknown alert",
			alertID: alertID.String(),
			body:    `{"ack_by": "` + caregiverID.String() + `"}`,
			mockService: &mockAlertService{
				acknowledgeFunc: func(ctx context.Context, alertID, ackBy uuid.UUID) (*domain.Alert, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:    "already acknowledged",
			alertID: alertID.String(),
			body:    `{"ack_by": "` + caregiverID.String() + `"}`,
			mockService: &mockAlertService{
				acknowledgeFunc: func(ctx context.Context, alertID, ackBy uuid.UUID) (*domain.Alert, error) {
					return nil, domain.ErrAlreadyAcked
				},
			},
			wantStatusCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAlertHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/alerts/"+tt.alertID+"/ack", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("alertId", tt.alertID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rec := httptest.NewRecorder()

			handler.Ack(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Ack() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}
