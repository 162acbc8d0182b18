package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pillpal/pillpal-api/internal/domain"
	"github.com/pillpal/pillpal-api/pkg/pagination"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// MockMedicationRepository is a mock implementation of MedicationRepository
type MockMedicationRepository struct {
	meds map[uuid.UUID]*domain.Medication
	err  error
}

func NewMockMedicationRepository() *MockMedicationRepository {
	return &MockMedicationRepository{
		meds: make(map[uuid.UUID]*domain.Medication),
	}
}

func (m *MockMedicationRepository) Create(ctx context.Context, med *domain.Medication) error {
	if m.err != nil {
		return m.err
	}
	if med.ID == uuid.Nil {
		med.ID = uuid.New()
	}
	med.CreatedAt = time.Now()
	m.meds[med.ID] = med
	return nil
}

func (m *MockMedicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Medication, error) {
	if m.err != nil {
		return nil, m.err
	}
	med, ok := m.meds[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return med, nil
}

func (m *MockMedicationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Medication, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Medication
	for _, med := range m.meds {
		if med.UserID == userID {
			result = append(result, *med)
		}
	}
	return result, nil
}

func (m *MockMedicationRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	count := 0
	for _, med := range m.meds {
		if med.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (m *MockMedicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.meds[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.meds, id)
	return nil
}

func (m *MockMedicationRepository) SetError(err error) {
	m.err = err
}

// MockDoseRepository is a mock implementation of DoseRepository
type MockDoseRepository struct {
	doses map[uuid.UUID]*domain.Dose
	err   error
}

func NewMockDoseRepository() *MockDoseRepository {
	return &MockDoseRepository{
		doses: make(map[uuid.UUID]*domain.Dose),
	}
}

func (m *MockDoseRepository) Create(ctx context.Context, dose *domain.Dose) error {
	if m.err != nil {
		return m.err
	}
	if dose.ID == uuid.Nil {
		dose.ID = uuid.New()
	}
	dose.CreatedAt = time.Now()
	m.doses[dose.ID] = dose
	return nil
}

func (m *MockDoseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dose, error) {
	if m.err != nil {
		return nil, m.err
	}
	dose, ok := m.doses[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return dose, nil
}

func (m *MockDoseRepository) Update(ctx context.Context, dose *domain.Dose) error {
	if m.err != nil {
		return m.err
	}
	m.doses[dose.ID] = dose
	return nil
}

func (m *MockDoseRepository) List(ctx context.Context, userID uuid.UUID, filter domain.DoseFilter) ([]domain.Dose, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Dose
	for _, dose := range m.doses {
		if dose.UserID != userID {
			continue
		}
		if filter.From != nil && dose.ScheduledAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && dose.ScheduledAt.After(*filter.To) {
			continue
		}
		if filter.Status != nil && dose.Status != *filter.Status {
			continue
		}
		result = append(result, *dose)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ScheduledAt.After(result[j].ScheduledAt)
	})
	limit := pagination.NormalizeLimit(filter.Limit)
	if len(result) > limit+1 {
		result = result[:limit+1]
	}
	return result, nil
}

func (m *MockDoseRepository) ListScheduledSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.Dose, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Dose
	for _, dose := range m.doses {
		if dose.UserID == userID && !dose.ScheduledAt.Before(since) {
			result = append(result, *dose)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ScheduledAt.Before(result[j].ScheduledAt)
	})
	return result, nil
}

func (m *MockDoseRepository) ListScheduledBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Dose, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Dose
	for _, dose := range m.doses {
		if dose.UserID == userID && !dose.ScheduledAt.Before(from) && !dose.ScheduledAt.After(to) {
			result = append(result, *dose)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ScheduledAt.Before(result[j].ScheduledAt)
	})
	return result, nil
}

func (m *MockDoseRepository) NextUpcoming(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.Dose, error) {
	if m.err != nil {
		return nil, m.err
	}
	var next *domain.Dose
	for _, dose := range m.doses {
		if dose.UserID != userID || dose.ScheduledAt.Before(now) {
			continue
		}
		if dose.Status != domain.DoseStatusPending && dose.Status != domain.DoseStatusSnoozed {
			continue
		}
		if next == nil || dose.ScheduledAt.Before(next.ScheduledAt) {
			next = dose
		}
	}
	if next == nil {
		return nil, domain.ErrNotFound
	}
	return next, nil
}

func (m *MockDoseRepository) SetError(err error) {
	m.err = err
}

// MockAlertRepository is a mock implementation of AlertRepository
type MockAlertRepository struct {
	alerts map[uuid.UUID]*domain.Alert
	err    error
}

func NewMockAlertRepository() *MockAlertRepository {
	return &MockAlertRepository{
		alerts: make(map[uuid.UUID]*domain.Alert),
	}
}

func (m *MockAlertRepository) Create(ctx context.Context, alert *domain.Alert) error {
	if m.err != nil {
		return m.err
	}
	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	alert.SentAt = time.Now()
	m.alerts[alert.ID] = alert
	return nil
}

func (m *MockAlertRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	if m.err != nil {
		return nil, m.err
	}
	alert, ok := m.alerts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return alert, nil
}

func (m *MockAlertRepository) Acknowledge(ctx context.Context, id uuid.UUID, ackBy uuid.UUID, ackAt time.Time) (*domain.Alert, error) {
	if m.err != nil {
		return nil, m.err
	}
	alert, ok := m.alerts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if alert.AckAt != nil {
		return nil, domain.ErrAlreadyAcked
	}
	alert.AckBy = &ackBy
	alert.AckAt = &ackAt
	return alert, nil
}

func (m *MockAlertRepository) CountAckedSince(ctx context.Context, since time.Time) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	count := 0
	for _, alert := range m.alerts {
		if alert.AckAt != nil && !alert.AckAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (m *MockAlertRepository) SetError(err error) {
	m.err = err
}

// MockRiskLLM is a scripted implementation of llm.RiskLLM
type MockRiskLLM struct {
	riskResult *domain.RiskResult
	riskErr    error
	narrative  *domain.NarrativeOutput
	narrateErr error

	scoreCalls   int
	narrateCalls int
}

func (m *MockRiskLLM) ScoreRisk(ctx context.Context, features *domain.FeatureVector) (*domain.RiskResult, error) {
	m.scoreCalls++
	return m.riskResult, m.riskErr
}

func (m *MockRiskLLM) Narrate(ctx context.Context, narrativeCtx *domain.NarrativeContext) (*domain.NarrativeOutput, error) {
	m.narrateCalls++
	return m.narrative, m.narrateErr
}

// MockSMSSender records sent messages
type MockSMSSender struct {
	sid  string
	err  error
	to   []string
	body []string
}

func (m *MockSMSSender) SendSMS(ctx context.Context, to, body string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.to = append(m.to, to)
	m.body = append(m.body, body)
	return m.sid, nil
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}
