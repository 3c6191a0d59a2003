package domain

import "context"

// ContactRequest represents a contact form submission. It is transient:
// constructed from the request body, consumed once, never persisted.
type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"omitempty,max=200"`
	Message string `json:"message" binding:"required,min=10,max=1000"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage delivers the admin notification synchronously and
	// dispatches the sender's auto-reply without blocking the caller
	SendContactMessage(ctx context.Context, req *ContactRequest) error
}
