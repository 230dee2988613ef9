package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/crm-api/internal/domain/validation"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"", true},
		{"+1234567890", true},
		{"+1987654321", true},
		{"1234567890", true},
		{"123-456-7890", true},
		{"+573001234567", true},
		{"123", false},
		{"invalid", false},
		{"+12", false},
		{"123-4567-890", false},
		{"+1234567890123456", false},
		{"12-456-7890", false},
	}
	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.valid, validation.ValidatePhone(tt.phone))
		})
	}
}

func TestValidatePrice(t *testing.T) {
	assert.True(t, validation.ValidatePrice(decimal.RequireFromString("0.01")))
	assert.True(t, validation.ValidatePrice(decimal.RequireFromString("199.99")))
	assert.False(t, validation.ValidatePrice(decimal.Zero))
	assert.False(t, validation.ValidatePrice(decimal.RequireFromString("-10.00")))
}

func TestValidatePriceMax(t *testing.T) {
	assert.True(t, validation.ValidatePriceMax(decimal.RequireFromString("99999999.99")))
	assert.False(t, validation.ValidatePriceMax(decimal.RequireFromString("100000000.00")))
}

func TestAmountFits(t *testing.T) {
	tests := []struct {
		name string
		d    decimal.Decimal
		fits bool
	}{
		{"cero", decimal.Zero, true},
		{"cero con exponente grande", decimal.New(0, 500), true},
		{"diez dígitos enteros", decimal.RequireFromString("9999999999.99"), true},
		{"once dígitos enteros", decimal.RequireFromString("10000000000"), false},
		{"doce dígitos con decimales", decimal.RequireFromString("123456789012.50"), false},
		{"negativo acotado", decimal.RequireFromString("-1234.5"), true},
		{"exponente positivo enorme", decimal.New(1, 20000000), false},
		{"exponente negativo enorme", decimal.New(1, -20000000), false},
		{"muchos decimales dentro de escala", decimal.RequireFromString("0.0000000001"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fits, validation.AmountFits(tt.d))
		})
	}
}

func TestValidateStock(t *testing.T) {
	assert.True(t, validation.ValidateStock(0))
	assert.True(t, validation.ValidateStock(25))
	assert.False(t, validation.ValidateStock(-5))
}
