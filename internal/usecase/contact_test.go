package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-blog-backend/internal/domain"
	"go-blog-backend/internal/usecase"
	"go-blog-backend/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func contactRequest() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:    "Jordan Reyes",
		Email:   "jordan@example.com",
		Subject: "Collaboration",
		Message: "I would love to write a guest post about Go generics.",
	}
}

func waitForAutoReply(t *testing.T, mailer *MockMailer) email.ContactEmailData {
	t.Helper()
	select {
	case data := <-mailer.autoReplyCalled:
		return data
	case <-time.After(2 * time.Second):
		t.Fatal("auto-reply was never attempted")
		return email.ContactEmailData{}
	}
}

func TestContactSendsBothEmails(t *testing.T) {
	mailer := NewMockMailer()
	uc := usecase.NewContactUsecase(mailer)

	mailer.On("IsConfigured").Return(true)
	mailer.On("SendContactEmail", mock.Anything, mock.AnythingOfType("email.ContactEmailData")).
		Return(email.SendResult{Success: true, ID: "em_123"}, nil).Once()
	mailer.On("SendContactAutoReply", mock.Anything, mock.AnythingOfType("email.ContactEmailData")).
		Return(nil).Once()

	err := uc.SendContactMessage(context.Background(), contactRequest())
	assert.NoError(t, err)

	data := waitForAutoReply(t, mailer)
	assert.Equal(t, "jordan@example.com", data.Email)

	mailer.AssertNumberOfCalls(t, "SendContactEmail", 1)
	mailer.AssertNumberOfCalls(t, "SendContactAutoReply", 1)
}

func TestContactPrimaryFailureSkipsAutoReply(t *testing.T) {
	mailer := NewMockMailer()
	uc := usecase.NewContactUsecase(mailer)

	mailer.On("IsConfigured").Return(true)
	mailer.On("SendContactEmail", mock.Anything, mock.Anything).
		Return(email.SendResult{}, errors.New("provider rejected sender")).Once()

	err := uc.SendContactMessage(context.Background(), contactRequest())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send contact email")

	// Give a wrongly spawned goroutine a chance to run before asserting
	select {
	case <-mailer.autoReplyCalled:
		t.Fatal("auto-reply must not be attempted when the primary send fails")
	case <-time.After(100 * time.Millisecond):
	}
	mailer.AssertNotCalled(t, "SendContactAutoReply", mock.Anything, mock.Anything)
}

func TestContactAutoReplyFailureIsSwallowed(t *testing.T) {
	mailer := NewMockMailer()
	uc := usecase.NewContactUsecase(mailer)

	mailer.On("IsConfigured").Return(true)
	mailer.On("SendContactEmail", mock.Anything, mock.Anything).
		Return(email.SendResult{Success: true, ID: "em_456"}, nil).Once()
	mailer.On("SendContactAutoReply", mock.Anything, mock.Anything).
		Return(errors.New("recipient bounced")).Once()

	// The sender still gets a success response
	err := uc.SendContactMessage(context.Background(), contactRequest())
	assert.NoError(t, err)

	waitForAutoReply(t, mailer)
}

func TestContactUnconfiguredMailer(t *testing.T) {
	mailer := NewMockMailer()
	uc := usecase.NewContactUsecase(mailer)

	mailer.On("IsConfigured").Return(false)

	err := uc.SendContactMessage(context.Background(), contactRequest())
	assert.ErrorIs(t, err, usecase.ErrMailerNotConfigured)

	mailer.AssertNotCalled(t, "SendContactEmail", mock.Anything, mock.Anything)
	mailer.AssertNotCalled(t, "SendContactAutoReply", mock.Anything, mock.Anything)
}

func TestContactTrimsWhitespace(t *testing.T) {
	mailer := NewMockMailer()
	uc := usecase.NewContactUsecase(mailer)

	var sent email.ContactEmailData
	mailer.On("IsConfigured").Return(true)
	mailer.On("SendContactEmail", mock.Anything, mock.Anything).
		Return(email.SendResult{Success: true, ID: "em_789"}, nil).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(email.ContactEmailData)
		}).Once()
	mailer.On("SendContactAutoReply", mock.Anything, mock.Anything).Return(nil).Once()

	req := &domain.ContactRequest{
		Name:    "  Jordan Reyes  ",
		Email:   " jordan@example.com ",
		Subject: " Hello ",
		Message: "  A message long enough to pass validation.  ",
	}
	err := uc.SendContactMessage(context.Background(), req)
	assert.NoError(t, err)

	assert.Equal(t, "Jordan Reyes", sent.Name)
	assert.Equal(t, "jordan@example.com", sent.Email)
	assert.Equal(t, "Hello", sent.Subject)
	assert.Equal(t, "A message long enough to pass validation.", sent.Message)

	waitForAutoReply(t, mailer)
}
