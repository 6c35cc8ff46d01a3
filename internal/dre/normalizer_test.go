package dre

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
)

func TestNormalizeSales(t *testing.T) {
	tests := []struct {
		name     string
		row      domain.SaleRow
		validate func(t *testing.T, sale domain.Sale)
	}{
		{
			name: "Linha completa - deve manter todos os campos",
			row: domain.SaleRow{
				ID:            "v1",
				Date:          "2025-01-10",
				Channel:       stringPtr("Salão"),
				PaymentMethod: stringPtr("Pix"),
				GrossAmount:   floatPtr(1000),
				OrderCount:    intPtr(50),
			},
			validate: func(t *testing.T, sale domain.Sale) {
				assert.Equal(t, "v1", sale.ID)
				assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), sale.Date)
				assert.Equal(t, "Salão", sale.Channel)
				assert.Equal(t, "Pix", sale.PaymentMethod)
				assertDecimal(t, "1000", sale.GrossAmount)
				assert.Equal(t, 50, sale.OrderCount)
			},
		},
		{
			name: "Campos ausentes - deve usar zero e sentinela",
			row:  domain.SaleRow{ID: "v2", Date: "2025-01-10"},
			validate: func(t *testing.T, sale domain.Sale) {
				assert.Equal(t, UnknownValue, sale.Channel)
				assert.Equal(t, UnknownValue, sale.PaymentMethod)
				assertDecimal(t, "0", sale.GrossAmount)
				assert.Equal(t, 0, sale.OrderCount)
			},
		},
		{
			name: "Valores negativos - deve tratar como zero",
			row: domain.SaleRow{
				Date:        "2025-01-10",
				Channel:     stringPtr("   "),
				GrossAmount: floatPtr(-250),
				OrderCount:  intPtr(-3),
			},
			validate: func(t *testing.T, sale domain.Sale) {
				assert.Equal(t, UnknownValue, sale.Channel)
				assertDecimal(t, "0", sale.GrossAmount)
				assert.Equal(t, 0, sale.OrderCount)
			},
		},
		{
			name: "Data em RFC3339 - deve ser aceita",
			row:  domain.SaleRow{Date: "2025-01-10T14:30:00Z"},
			validate: func(t *testing.T, sale domain.Sale) {
				assert.Equal(t, 10, sale.Date.Day())
				assert.Equal(t, 14, sale.Date.Hour())
			},
		},
		{
			name: "Data inválida - não rejeita a linha",
			row:  domain.SaleRow{Date: "ontem", GrossAmount: floatPtr(10)},
			validate: func(t *testing.T, sale domain.Sale) {
				assert.True(t, sale.Date.IsZero())
				assertDecimal(t, "10", sale.GrossAmount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sales := NormalizeSales([]domain.SaleRow{tt.row})
			require.Len(t, sales, 1)
			tt.validate(t, sales[0])
		})
	}
}

func TestNormalizeExpenses(t *testing.T) {
	tests := []struct {
		name     string
		row      domain.ExpenseRow
		validate func(t *testing.T, expense domain.Expense)
	}{
		{
			name: "Categoria canônica com grafia alternativa",
			row:  domain.ExpenseRow{Category: stringPtr("ocupacao"), Amount: floatPtr(100)},
			validate: func(t *testing.T, expense domain.Expense) {
				assert.Equal(t, domain.CategoryOccupancy, expense.Category)
				assert.True(t, expense.Category.IsFixedExpense())
			},
		},
		{
			name: "Categoria em inglês",
			row:  domain.ExpenseRow{Category: stringPtr("Labor"), Amount: floatPtr(100)},
			validate: func(t *testing.T, expense domain.Expense) {
				assert.Equal(t, domain.CategoryLabor, expense.Category)
			},
		},
		{
			name: "Categoria livre - mantém o texto original",
			row:  domain.ExpenseRow{Category: stringPtr("Pró-labore"), Amount: floatPtr(100)},
			validate: func(t *testing.T, expense domain.Expense) {
				assert.Equal(t, domain.ExpenseCategory("Pró-labore"), expense.Category)
				assert.False(t, expense.Category.IsDRE())
			},
		},
		{
			name: "Campos ausentes - categoria e subcategoria viram Outros",
			row:  domain.ExpenseRow{Name: "  Conta de luz "},
			validate: func(t *testing.T, expense domain.Expense) {
				assert.Equal(t, "Conta de luz", expense.Name)
				assert.Equal(t, domain.ExpenseCategory(OthersValue), expense.Category)
				assert.Equal(t, OthersValue, expense.Subcategory)
				assert.Equal(t, domain.KindFixed, expense.Kind)
				assertDecimal(t, "0", expense.Amount)
				assert.False(t, expense.Paid)
				assert.Nil(t, expense.DueDate)
				assert.Nil(t, expense.PaidDate)
			},
		},
		{
			name: "Despesa paga com datas",
			row: domain.ExpenseRow{
				Category: stringPtr("Impostos"),
				Kind:     stringPtr("TAXA_AUTOMATICA"),
				Amount:   floatPtr(-10),
				Paid:     boolPtr(true),
				DueDate:  stringPtr("2025-01-15"),
				PaidDate: stringPtr("2025-01-14"),
			},
			validate: func(t *testing.T, expense domain.Expense) {
				assert.Equal(t, domain.KindAutomaticFee, expense.Kind)
				assert.True(t, expense.Kind.IsVariable())
				assertDecimal(t, "0", expense.Amount)
				assert.True(t, expense.Paid)
				require.NotNil(t, expense.DueDate)
				require.NotNil(t, expense.PaidDate)
				assert.Equal(t, 15, expense.DueDate.Day())
				assert.Equal(t, 14, expense.PaidDate.Day())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expenses := NormalizeExpenses([]domain.ExpenseRow{tt.row})
			require.Len(t, expenses, 1)
			tt.validate(t, expenses[0])
		})
	}
}
