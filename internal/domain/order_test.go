package domain_test

import (
	"encoding/json"
	"testing"

	"soa-bango-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantityUnmarshalTolerance(t *testing.T) {
	cases := []struct {
		in   string
		want domain.Quantity
	}{
		{`3`, 3},
		{`"3"`, 3},
		{`2.9`, 2}, // truncated, not rounded
		{`"abc"`, 0},
		{`null`, 0},
		{`""`, 0},
	}

	for _, tc := range cases {
		var q domain.Quantity
		require.NoError(t, json.Unmarshal([]byte(tc.in), &q), "input %s", tc.in)
		assert.Equal(t, tc.want, q, "input %s", tc.in)
	}
}

func TestOrderTotals(t *testing.T) {
	req := domain.OrderRequest{ProductPrice: 15000, Quantity: 3}
	assert.Equal(t, 3, req.NormalizedQuantity())
	assert.Equal(t, 45000.0, req.TotalPrice())

	// Omitted or non-positive quantity counts as one unit
	for _, q := range []domain.Quantity{0, -5} {
		req := domain.OrderRequest{ProductPrice: 15000, Quantity: q}
		assert.Equal(t, 1, req.NormalizedQuantity())
		assert.Equal(t, 15000.0, req.TotalPrice())
	}
}

func TestOrderRequestBindingShape(t *testing.T) {
	// The order modal sends quantity as a string; the request must still decode.
	body := `{"productName":"Huile de coco","productPrice":15000,"customerName":"Rina",
		"customerEmail":"rina@example.com","customerPhone":"0340000000","quantity":"3"}`

	var req domain.OrderRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, domain.Quantity(3), req.Quantity)
	assert.Equal(t, 45000.0, req.TotalPrice())
}
