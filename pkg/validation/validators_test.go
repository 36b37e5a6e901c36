package validation_test

import (
	"testing"

	"soa-bango-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestValidPhone(t *testing.T) {
	v := validator.New()
	validation.RegisterValidators(v)

	type payload struct {
		Phone string `validate:"omitempty,valid_phone"`
	}

	valid := []string{
		"",
		"0340000000",
		"+261386791294",
		"+261 38 67 912 94",
		"034.00.000.00",
	}
	for _, p := range valid {
		assert.NoError(t, v.Struct(payload{Phone: p}), "phone %q", p)
	}

	invalid := []string{
		"abc",
		"12345",     // too short
		"+",         // no digits
		"06 12 34b", // letters mixed in
	}
	for _, p := range invalid {
		assert.Error(t, v.Struct(payload{Phone: p}), "phone %q", p)
	}
}
