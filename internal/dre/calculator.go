package dre

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
)

// ComputeDRE monta o DRE do período a partir das vendas e despesas já filtradas.
// A receita é sempre bruta: taxas aparecem apenas como despesas.
func ComputeDRE(sales []domain.Sale, expenses []domain.Expense) *domain.DREResult {
	revenue := TotalRevenue(sales)
	orders := TotalOrders(sales)
	byCategory := SumExpensesBy(expenses, ByCategory)

	result := &domain.DREResult{
		Revenue:       revenue,
		Taxes:         categorySum(byCategory, domain.CategoryTaxes),
		CMV:           categorySum(byCategory, domain.CategoryCMV),
		SalesExpenses: categorySum(byCategory, domain.CategorySalesExpenses),
		Labor:         categorySum(byCategory, domain.CategoryLabor),
		Marketing:     categorySum(byCategory, domain.CategoryMarketing),
		Occupancy:     categorySum(byCategory, domain.CategoryOccupancy),

		AverageTicket: ticket(revenue, orders),
		TotalOrders:   orders,

		RevenueByChannel:       SumSalesBy(sales, ByChannel),
		RevenueByPaymentMethod: SumSalesBy(sales, ByPaymentMethod),
		ExpensesByCategory:     byCategory,
		ExpensesByKind:         SumExpensesBy(expenses, ByKind),

		OtherExpenses:   decimal.Zero,
		VariableByKind:  decimal.Zero,
		FixedByKind:     decimal.Zero,
		PaidExpenses:    decimal.Zero,
		PendingExpenses: decimal.Zero,
	}

	result.TotalVariableCosts = result.Taxes.Add(result.CMV).Add(result.SalesExpenses)
	result.TotalFixedExpenses = result.Labor.Add(result.Marketing).Add(result.Occupancy)
	result.TotalExpenses = result.TotalVariableCosts.Add(result.TotalFixedExpenses)

	for _, expense := range expenses {
		if !expense.Category.IsDRE() {
			result.OtherExpenses = result.OtherExpenses.Add(expense.Amount)
		}
		if expense.Kind.IsVariable() {
			result.VariableByKind = result.VariableByKind.Add(expense.Amount)
		} else {
			result.FixedByKind = result.FixedByKind.Add(expense.Amount)
		}
		if expense.Paid {
			result.PaidExpenses = result.PaidExpenses.Add(expense.Amount)
		} else {
			result.PendingExpenses = result.PendingExpenses.Add(expense.Amount)
		}
	}

	result.GrossProfit = revenue.Sub(result.TotalVariableCosts)
	result.GrossMargin = percentOf(result.GrossProfit, revenue)
	result.NetProfit = result.GrossProfit.Sub(result.TotalFixedExpenses)
	result.NetMargin = percentOf(result.NetProfit, revenue)

	return result
}

func categorySum(sums map[string]decimal.Decimal, category domain.ExpenseCategory) decimal.Decimal {
	if value, ok := sums[string(category)]; ok {
		return value
	}
	return decimal.Zero
}

// percentOf retorna value / base * 100, ou zero quando a base é zero
func percentOf(value, base decimal.Decimal) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}
	return value.Div(base).Mul(hundred)
}
