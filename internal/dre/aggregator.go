package dre

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
)

// SaleKey extrai a chave de agrupamento de uma venda
type SaleKey func(domain.Sale) string

// ExpenseKey extrai a chave de agrupamento de uma despesa
type ExpenseKey func(domain.Expense) string

var (
	ByChannel       SaleKey = func(s domain.Sale) string { return s.Channel }
	ByPaymentMethod SaleKey = func(s domain.Sale) string { return s.PaymentMethod }

	ByCategory ExpenseKey = func(e domain.Expense) string { return string(e.Category) }
	ByKind     ExpenseKey = func(e domain.Expense) string { return string(e.Kind) }
)

// SumSalesBy soma o valor bruto das vendas por chave, uma entrada por chave encontrada
func SumSalesBy(sales []domain.Sale, key SaleKey) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, sale := range sales {
		k := key(sale)
		sums[k] = sums[k].Add(sale.GrossAmount)
	}
	return sums
}

// SumExpensesBy soma o valor das despesas por chave, uma entrada por chave encontrada
func SumExpensesBy(expenses []domain.Expense, key ExpenseKey) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, expense := range expenses {
		k := key(expense)
		sums[k] = sums[k].Add(expense.Amount)
	}
	return sums
}

// SumExpensesBySubcategory soma as despesas por subcategoria dentro de cada categoria
func SumExpensesBySubcategory(expenses []domain.Expense) map[string]map[string]decimal.Decimal {
	sums := make(map[string]map[string]decimal.Decimal)
	for _, expense := range expenses {
		category := string(expense.Category)
		if sums[category] == nil {
			sums[category] = make(map[string]decimal.Decimal)
		}
		sums[category][expense.Subcategory] = sums[category][expense.Subcategory].Add(expense.Amount)
	}
	return sums
}

// TotalRevenue soma o valor bruto de todas as vendas
func TotalRevenue(sales []domain.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.GrossAmount)
	}
	return total
}

// TotalOrders soma a quantidade de pedidos de todas as vendas
func TotalOrders(sales []domain.Sale) int {
	total := 0
	for _, sale := range sales {
		total += sale.OrderCount
	}
	return total
}

// AverageTicket retorna receita / pedidos, ou zero quando não há pedidos
func AverageTicket(sales []domain.Sale) decimal.Decimal {
	return ticket(TotalRevenue(sales), TotalOrders(sales))
}

// TopN ordena as somas de forma decrescente e retorna as n primeiras (todas se n <= 0).
// Empates são resolvidos pela chave em ordem crescente.
func TopN(sums map[string]decimal.Decimal, n int) []domain.RankedValue {
	ranked := make([]domain.RankedValue, 0, len(sums))
	for key, value := range sums {
		ranked = append(ranked, domain.RankedValue{Key: key, Value: value})
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Key < ranked[j].Key
	})
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value.GreaterThan(ranked[j].Value)
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// FilterSales mantém apenas as vendas dentro do período
func FilterSales(sales []domain.Sale, filters *domain.ReportFilters) []domain.Sale {
	filtered := make([]domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if filters.Contains(sale.Date) {
			filtered = append(filtered, sale)
		}
	}
	return filtered
}

// FilterExpenses mantém apenas as despesas dentro do período
func FilterExpenses(expenses []domain.Expense, filters *domain.ReportFilters) []domain.Expense {
	filtered := make([]domain.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if filters.Contains(expense.Date) {
			filtered = append(filtered, expense)
		}
	}
	return filtered
}

func ticket(revenue decimal.Decimal, orders int) decimal.Decimal {
	if orders <= 0 {
		return decimal.Zero
	}
	return revenue.Div(decimal.NewFromInt(int64(orders)))
}
