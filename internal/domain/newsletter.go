package domain

import "context"

// NewsletterRequest represents a newsletter signup. There is no subscriber
// list; the signup is relayed to the owner's inbox.
type NewsletterRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// NewsletterUsecase defines the interface for newsletter signups
type NewsletterUsecase interface {
	// Subscribe validates the signup and dispatches the owner notification.
	Subscribe(ctx context.Context, req *NewsletterRequest) error
}
