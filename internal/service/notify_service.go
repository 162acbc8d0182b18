package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pillpal/pillpal-api/internal/domain"
	"github.com/pillpal/pillpal-api/internal/notify"
	"github.com/pillpal/pillpal-api/internal/repository"
)

// smsMaxLen keeps the composed message within a single concatenated SMS.
const smsMaxLen = 320

// NotifyService delivers the daily insights card over SMS.
type NotifyService interface {
	SendInsights(ctx context.Context, userID uuid.UUID) (*domain.NotifyInsightsResponse, error)
}

type notifyService struct {
	insights InsightsService
	sender   notify.SMSSender
	userRepo repository.UserRepository
}

func NewNotifyService(insights InsightsService, sender notify.SMSSender, userRepo repository.UserRepository) NotifyService {
	return &notifyService{
		insights: insights,
		sender:   sender,
		userRepo: userRepo,
	}
}

func (s *notifyService) SendInsights(ctx context.Context, userID uuid.UUID) (*domain.NotifyInsightsResponse, error) {
	if s.sender == nil {
		return nil, domain.ErrNotifierDisabled
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Phone == nil || *user.Phone == "" {
		return nil, domain.ErrInvalidInput
	}

	card, err := s.insights.Generate(ctx, userID)
	if err != nil {
		return nil, err
	}

	sid, err := s.sender.SendSMS(ctx, *user.Phone, composeInsightsSMS(card))
	if err != nil {
		return nil, err
	}

	return &domain.NotifyInsightsResponse{Success: true, Sid: sid}, nil
}

// composeInsightsSMS flattens the insights card into a short plain-text
// message: title, first highlight, next best action.
func composeInsightsSMS(card *domain.RiskInsightsResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", card.Title)
	if len(card.Highlights) > 0 {
		fmt.Fprintf(&b, "%s\n", card.Highlights[0])
	}
	if card.NextBestAction != "" {
		fmt.Fprintf(&b, "Next: %s", card.NextBestAction)
	}

	msg := strings.TrimSpace(b.String())
	if len(msg) > smsMaxLen {
		msg = msg[:smsMaxLen]
	}
	return msg
}
