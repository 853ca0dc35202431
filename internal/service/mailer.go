package service

import (
	"context"
	"log"
)

// LogMailer writes reset tokens to the server log instead of sending email.
// Useful for development; production wires a real transport behind the
// Mailer interface.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	log.Printf("[mailer] password reset token for %s: %s", email, token)
	return nil
}
