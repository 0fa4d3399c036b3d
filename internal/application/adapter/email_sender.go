// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending transactional email.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}
