package domain

import (
	"bytes"
	"context"
	"strconv"
)

// Quantity tolerates clients sending the value as a JSON number or a numeric
// string. Anything unparseable normalizes to zero, which downstream treats
// as "default to 1" rather than rejecting the order.
type Quantity int

func (q *Quantity) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(b), `"`))
	if s == "" || s == "null" {
		*q = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*q = 0
		return nil
	}
	*q = Quantity(int(f))
	return nil
}

// OrderRequest represents a product order placed from the site's order modal.
// Prices are in ariary, the site's single currency.
type OrderRequest struct {
	ProductName   string   `json:"productName" binding:"required"`
	ProductPrice  float64  `json:"productPrice" binding:"gte=0"`
	CustomerName  string   `json:"customerName" binding:"required"`
	CustomerEmail string   `json:"customerEmail" binding:"required,email"`
	CustomerPhone string   `json:"customerPhone" binding:"required,valid_phone"`
	Quantity      Quantity `json:"quantity"`
	Message       string   `json:"message"`
}

// NormalizedQuantity returns the order quantity, defaulting to 1 when it was
// omitted, non-numeric or non-positive.
func (r *OrderRequest) NormalizedQuantity() int {
	if r.Quantity < 1 {
		return 1
	}
	return int(r.Quantity)
}

// TotalPrice derives the order total from the unit price and quantity.
func (r *OrderRequest) TotalPrice() float64 {
	return r.ProductPrice * float64(r.NormalizedQuantity())
}

// OrderUsecase defines the interface for order submissions
type OrderUsecase interface {
	// SubmitOrder validates the order and dispatches the owner notification.
	SubmitOrder(ctx context.Context, req *OrderRequest) error
}
