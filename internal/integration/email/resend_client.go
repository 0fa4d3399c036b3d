// Package email provides email sending functionality via Resend.
package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// Send sends an email via Resend.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	from := fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		if isPermanentError(err) {
			return nil, domainerror.NewEmailError(
				domainerror.ErrCodePermanentEmailFailure,
				"permanent email failure",
				err,
			)
		}
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeTemporaryEmailFailure,
			"temporary email failure",
			err,
		)
	}

	return &adapter.SendEmailResult{
		ProviderID: resp.Id,
	}, nil
}

// isPermanentError checks if the error is a permanent error that should not be retried.
// Permanent: 401 (Unauthorized), 403 (Forbidden), 422 (Validation Error).
// Temporary: 429 (Rate Limit), 5xx (Server Errors).
func isPermanentError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	permanentPatterns := []string{
		"401",
		"403",
		"422",
		"unauthorized",
		"forbidden",
		"validation",
		"invalid",
		"bad request",
	}

	for _, pattern := range permanentPatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// MockEmailSender is a mock implementation for testing.
type MockEmailSender struct {
	SentEmails []adapter.SendEmailInput
	ShouldFail bool
	FailError  error
}

// NewMockEmailSender creates a new mock email sender.
func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{
		SentEmails: make([]adapter.SendEmailInput, 0),
	}
}

// Send implements the adapter.EmailSender interface for testing.
func (m *MockEmailSender) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if m.ShouldFail {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeTemporaryEmailFailure,
			"mock failure",
			m.FailError,
		)
	}
	m.SentEmails = append(m.SentEmails, input)
	return &adapter.SendEmailResult{ProviderID: fmt.Sprintf("mock-%d", len(m.SentEmails))}, nil
}
