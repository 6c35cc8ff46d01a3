package dre

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
)

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual),
		append([]any{"esperado %s, obtido %s", expected, actual.String()}, msgAndArgs...)...)
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func stringPtr(v string) *string  { return &v }
func boolPtr(v bool) *bool        { return &v }

func sale(channel, payment string, gross float64, orders int) domain.SaleRow {
	return domain.SaleRow{
		Date:          "2025-01-10",
		Channel:       stringPtr(channel),
		PaymentMethod: stringPtr(payment),
		GrossAmount:   floatPtr(gross),
		OrderCount:    intPtr(orders),
	}
}

func expense(category string, amount float64) domain.ExpenseRow {
	return domain.ExpenseRow{
		Date:     "2025-01-10",
		Name:     category,
		Category: stringPtr(category),
		Amount:   floatPtr(amount),
	}
}
