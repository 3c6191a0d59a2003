package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-blog-backend/internal/domain"
	"go-blog-backend/pkg/email"
	"go-blog-backend/pkg/logger"
)

// ErrMailerNotConfigured is returned when the email provider credentials are
// missing; the contact endpoint degrades to 503 instead of 500.
var ErrMailerNotConfigured = errors.New("email service is not configured")

// ContactMailer is the slice of the email service the contact pipeline needs
type ContactMailer interface {
	SendContactEmail(ctx context.Context, data email.ContactEmailData) (email.SendResult, error)
	SendContactAutoReply(ctx context.Context, data email.ContactEmailData) error
	IsConfigured() bool
}

type contactUsecase struct {
	mailer ContactMailer
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(mailer ContactMailer) domain.ContactUsecase {
	return &contactUsecase{
		mailer: mailer,
	}
}

// SendContactMessage delivers the contact form submission. The admin
// notification is awaited: its outcome decides the HTTP response. The
// auto-reply to the sender is dispatched fire-and-forget after the primary
// send succeeds; its failure is logged and swallowed, and an in-flight
// auto-reply lost to process shutdown is accepted (best-effort, no retry).
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	if !uc.mailer.IsConfigured() {
		return ErrMailerNotConfigured
	}

	data := email.ContactEmailData{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}

	// Primary send: the message is considered undelivered if this fails
	result, err := uc.mailer.SendContactEmail(ctx, data)
	if err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	logger.Log.Info("Contact email sent", "emailId", result.ID, "from", data.Email)

	// The response never waits on the auto-reply, so it runs detached from
	// the request context. Both sends are attempted exactly once.
	go func() {
		if err := uc.mailer.SendContactAutoReply(context.Background(), data); err != nil {
			logger.Log.Warn("Auto-reply failed but continuing", "to", data.Email, "error", err.Error())
			return
		}
		logger.Log.Info("Auto-reply sent", "to", data.Email)
	}()

	return nil
}
