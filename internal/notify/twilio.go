package notify

import (
	"context"
	"fmt"

	"github.com/pillpal/pillpal-api/internal/domain"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SMSSender delivers a text message to a phone number in E.164 form.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) (sid string, err error)
}

// TwilioSender sends SMS through the Twilio REST API.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioSender returns a configured sender, or nil when the Twilio
// credentials are absent. Callers treat a nil sender as notifications
// disabled.
func NewTwilioSender(accountSID, authToken, from string) *TwilioSender {
	if accountSID == "" || authToken == "" || from == "" {
		return nil
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioSender{client: client, from: from}
}

func (s *TwilioSender) SendSMS(ctx context.Context, to, body string) (string, error) {
	if s == nil || s.client == nil {
		return "", domain.ErrNotifierDisabled
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	msg, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("twilio send: %w", err)
	}

	if msg.Sid == nil {
		return "", fmt.Errorf("twilio send: response missing sid")
	}

	return *msg.Sid, nil
}
