package domain

import "context"

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"omitempty,valid_phone"`
	Message string `json:"message" binding:"required"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the submission and dispatches the owner
	// notification plus the customer acknowledgment. Both must be accepted
	// for a nil return.
	SendContactMessage(ctx context.Context, req *ContactRequest) error
}
