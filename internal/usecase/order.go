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

type orderUsecase struct {
	sender mailer.Sender
	id     Identity
}

// NewOrderUsecase creates a new order usecase
func NewOrderUsecase(sender mailer.Sender, id Identity) domain.OrderUsecase {
	return &orderUsecase{
		sender: sender,
		id:     id,
	}
}

// SubmitOrder validates the order, derives the total and relays a single
// owner notice. No customer confirmation is sent; the owner follows up by
// phone or email.
func (uc *orderUsecase) SubmitOrder(ctx context.Context, req *domain.OrderRequest) error {
	productName := strings.TrimSpace(req.ProductName)
	customerName := strings.TrimSpace(req.CustomerName)
	customerEmail := strings.TrimSpace(req.CustomerEmail)
	customerPhone := strings.TrimSpace(req.CustomerPhone)
	if productName == "" || customerName == "" || customerEmail == "" || customerPhone == "" {
		return apperror.BadRequest(msgMissingFields)
	}
	if err := invalidEmail(customerEmail); err != nil {
		return err
	}
	if req.ProductPrice < 0 {
		return apperror.BadRequest(msgMissingFields)
	}

	quantity := req.NormalizedQuantity()
	total := req.TotalPrice()

	subject, html, err := mailtemplate.OrderOwner(mailtemplate.OrderData{
		ProductName:   productName,
		UnitPrice:     req.ProductPrice,
		Quantity:      quantity,
		Total:         total,
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		CustomerPhone: customerPhone,
		Message:       strings.TrimSpace(req.Message),
		Date:          time.Now(),
	})
	if err != nil {
		return apperror.Internal(msgOrderFailed, err)
	}

	msg := &mailer.Message{
		From:    mailer.Recipient(uc.id.FromName, uc.id.FromEmail),
		ReplyTo: customerEmail,
		To:      []string{uc.id.OwnerEmail},
		Subject: subject,
		HTML:    html,
	}
	if err := uc.sender.Send(ctx, msg); err != nil {
		return apperror.Internal(msgOrderFailed, err)
	}

	logger.Log.Info("order received", "product", productName, "customer", customerName, "quantity", quantity, "total", total)
	return nil
}
