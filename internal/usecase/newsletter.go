package usecase

import (
	"context"
	"strings"
	"time"

	"soa-bango-backend/internal/domain"
	"soa-bango-backend/internal/mailtemplate"
	"soa-bango-backend/pkg/apperror"
	"soa-bango-backend/pkg/logger"
	"soa-bango-backend/pkg/mailer"
)

type newsletterUsecase struct {
	sender mailer.Sender
	id     Identity
}

// NewNewsletterUsecase creates a new newsletter usecase
func NewNewsletterUsecase(sender mailer.Sender, id Identity) domain.NewsletterUsecase {
	return &newsletterUsecase{
		sender: sender,
		id:     id,
	}
}

// Subscribe relays a signup to the owner's inbox. There is no subscriber
// list, no deduplication and no unsubscribe path.
func (uc *newsletterUsecase) Subscribe(ctx context.Context, req *domain.NewsletterRequest) error {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return apperror.BadRequest(msgEmailRequired)
	}
	if err := invalidEmail(email); err != nil {
		return err
	}

	subject, html, err := mailtemplate.NewsletterOwner(mailtemplate.NewsletterData{
		Email: email,
		Name:  strings.TrimSpace(req.Name),
		Date:  time.Now(),
	})
	if err != nil {
		return apperror.Internal(msgSignupFailed, err)
	}

	msg := &mailer.Message{
		From:    mailer.Recipient(uc.id.FromName, uc.id.FromEmail),
		To:      []string{uc.id.OwnerEmail},
		Subject: subject,
		HTML:    html,
	}
	if err := uc.sender.Send(ctx, msg); err != nil {
		return apperror.Internal(msgSignupFailed, err)
	}

	logger.Log.Info("newsletter signup relayed", "email", email)
	return nil
}
