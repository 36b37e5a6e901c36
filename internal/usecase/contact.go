package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"soa-bango-backend/internal/domain"
	"soa-bango-backend/internal/mailtemplate"
	"soa-bango-backend/pkg/apperror"
	"soa-bango-backend/pkg/logger"
	"soa-bango-backend/pkg/mailer"
)

type contactUsecase struct {
	sender mailer.Sender
	id     Identity
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(sender mailer.Sender, id Identity) domain.ContactUsecase {
	return &contactUsecase{
		sender: sender,
		id:     id,
	}
}

// SendContactMessage validates the submission and relays it as two emails:
// the owner notice and the customer acknowledgment. Success requires both
// dispatches to be accepted.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	// Validate input (defense in depth beyond binding)
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)
	if name == "" || email == "" || message == "" {
		return apperror.BadRequest(msgMissingFields)
	}
	if err := invalidEmail(email); err != nil {
		return err
	}

	data := mailtemplate.ContactData{
		Name:    name,
		Email:   email,
		Phone:   strings.TrimSpace(req.Phone),
		Message: message,
		Date:    time.Now(),
	}

	ownerSubject, ownerHTML, err := mailtemplate.ContactOwner(data)
	if err != nil {
		return apperror.Internal(msgContactFailed, err)
	}
	customerSubject, customerHTML, err := mailtemplate.ContactCustomer(data, uc.id.OwnerEmail)
	if err != nil {
		return apperror.Internal(msgContactFailed, err)
	}

	// Owner notice first; Reply-To points at the submitter so the owner can
	// answer directly from the inbox.
	ownerMsg := &mailer.Message{
		From:    mailer.Recipient(uc.id.FromName, uc.id.FromEmail),
		ReplyTo: email,
		To:      []string{uc.id.OwnerEmail},
		Subject: ownerSubject,
		HTML:    ownerHTML,
	}
	if err := uc.sender.Send(ctx, ownerMsg); err != nil {
		return apperror.Internal(msgContactFailed, fmt.Errorf("owner notification: %w", err))
	}

	customerMsg := &mailer.Message{
		From:    mailer.Recipient(uc.id.FromName, uc.id.FromEmail),
		To:      []string{email},
		Subject: customerSubject,
		HTML:    customerHTML,
	}
	if err := uc.sender.Send(ctx, customerMsg); err != nil {
		return apperror.Internal(msgContactFailed, fmt.Errorf("customer acknowledgment: %w", err))
	}

	logger.Log.Info("contact message relayed", "name", name, "email", email)
	return nil
}
