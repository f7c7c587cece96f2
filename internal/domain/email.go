package domain

import (
	"context"
	"time"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// JoinConfirmationEmailData holds data for the email sent after a user joins an event.
type JoinConfirmationEmailData struct {
	Email      string
	EventTitle string
	EventType  string
	Location   string
	Date       time.Time
	JoinedAt   time.Time
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendJoinConfirmation(ctx context.Context, data *JoinConfirmationEmailData) error
}
