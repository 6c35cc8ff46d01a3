package dre

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
)

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.DateTime,
}

// categoryAliases mapeia as grafias aceitas para as categorias canônicas do DRE
var categoryAliases = map[string]domain.ExpenseCategory{
	"impostos":            domain.CategoryTaxes,
	"taxes":               domain.CategoryTaxes,
	"cmv":                 domain.CategoryCMV,
	"despesas com vendas": domain.CategorySalesExpenses,
	"despesas de vendas":  domain.CategorySalesExpenses,
	"sales expenses":      domain.CategorySalesExpenses,
	"cmo":                 domain.CategoryLabor,
	"labor":               domain.CategoryLabor,
	"marketing":           domain.CategoryMarketing,
	"ocupação":            domain.CategoryOccupancy,
	"ocupacao":            domain.CategoryOccupancy,
	"occupancy":           domain.CategoryOccupancy,
}

// NormalizeSales converte as linhas de venda em vendas tipadas. Nenhuma linha é rejeitada.
func NormalizeSales(rows []domain.SaleRow) []domain.Sale {
	sales := make([]domain.Sale, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, NormalizeSale(row))
	}
	return sales
}

func NormalizeSale(row domain.SaleRow) domain.Sale {
	orders := 0
	if row.OrderCount != nil && *row.OrderCount > 0 {
		orders = *row.OrderCount
	}

	return domain.Sale{
		ID:            row.ID,
		Date:          parseDate(row.Date),
		Channel:       stringOr(row.Channel, UnknownValue),
		PaymentMethod: stringOr(row.PaymentMethod, UnknownValue),
		GrossAmount:   NonNegative(row.GrossAmount),
		OrderCount:    orders,
	}
}

// NormalizeExpenses converte as linhas de despesa em despesas tipadas. Nenhuma linha é rejeitada.
func NormalizeExpenses(rows []domain.ExpenseRow) []domain.Expense {
	expenses := make([]domain.Expense, 0, len(rows))
	for _, row := range rows {
		expenses = append(expenses, NormalizeExpense(row))
	}
	return expenses
}

func NormalizeExpense(row domain.ExpenseRow) domain.Expense {
	expense := domain.Expense{
		ID:          row.ID,
		Date:        parseDate(row.Date),
		Name:        strings.TrimSpace(row.Name),
		Category:    normalizeCategory(row.Category),
		Subcategory: stringOr(row.Subcategory, OthersValue),
		Kind:        normalizeKind(row.Kind),
		Amount:      NonNegative(row.Amount),
		Paid:        row.Paid != nil && *row.Paid,
	}

	if row.DueDate != nil {
		if due, ok := tryParseDate(*row.DueDate); ok {
			expense.DueDate = &due
		}
	}

	if row.PaidDate != nil {
		if paid, ok := tryParseDate(*row.PaidDate); ok {
			expense.PaidDate = &paid
		}
	}

	return expense
}

// NonNegative converte um valor opcional em decimal, tratando ausente ou negativo como zero
func NonNegative(v *float64) decimal.Decimal {
	if v == nil || *v <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*v)
}

func normalizeCategory(raw *string) domain.ExpenseCategory {
	value := stringOr(raw, OthersValue)
	if canonical, ok := categoryAliases[strings.ToLower(value)]; ok {
		return canonical
	}
	return domain.ExpenseCategory(value)
}

// normalizeKind assume despesa fixa quando o tipo não é informado
func normalizeKind(raw *string) domain.ExpenseKind {
	value := strings.ToLower(stringOr(raw, string(domain.KindFixed)))
	return domain.ExpenseKind(value)
}

func stringOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}

	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

func parseDate(raw string) time.Time {
	date, _ := tryParseDate(raw)
	return date
}

func tryParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, raw); err == nil {
			return date, true
		}
	}
	return time.Time{}, false
}
