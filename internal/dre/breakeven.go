package dre

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
)

// BreakevenPolicy guarda as constantes de negócio do ponto de equilíbrio
type BreakevenPolicy struct {
	VariableRatioFallback decimal.Decimal
}

// DefaultBreakevenPolicy usa 30% de custo variável quando não há receita
var DefaultBreakevenPolicy = BreakevenPolicy{
	VariableRatioFallback: DefaultVariableRatioFallback,
}

// ComputeBreakeven calcula o ponto de equilíbrio com a política padrão
func ComputeBreakeven(fixedExpenses, variableExpenses, revenue, currentTicket, historicalTicket decimal.Decimal) *domain.BreakevenResult {
	return DefaultBreakevenPolicy.Compute(fixedExpenses, variableExpenses, revenue, currentTicket, historicalTicket)
}

// Compute calcula a receita e a quantidade de pedidos necessárias para cobrir as despesas fixas.
//
// Quando a razão de custo variável chega a 100% da receita não existe faturamento que
// cubra as despesas fixas: o resultado volta com Reachable falso e valores zerados.
func (p BreakevenPolicy) Compute(fixedExpenses, variableExpenses, revenue, currentTicket, historicalTicket decimal.Decimal) *domain.BreakevenResult {
	result := &domain.BreakevenResult{
		Revenue:   decimal.Zero,
		Ticket:    currentTicket,
		Reachable: true,
	}

	if revenue.IsPositive() {
		result.VariableRatio = variableExpenses.Div(revenue)
	} else {
		result.VariableRatio = p.VariableRatioFallback
		result.UsedFallbackRatio = true
	}

	if !currentTicket.IsPositive() {
		result.Ticket = historicalTicket
		result.UsedHistoricalTicket = historicalTicket.IsPositive()
	}

	if result.VariableRatio.GreaterThanOrEqual(one) {
		result.Reachable = false
		return result
	}

	// Com receita, fixa * receita / (receita - variável) evita arredondar a razão antes da divisão
	if result.UsedFallbackRatio {
		result.Revenue = fixedExpenses.Div(one.Sub(result.VariableRatio))
	} else {
		result.Revenue = fixedExpenses.Mul(revenue).Div(revenue.Sub(variableExpenses))
	}

	if result.Ticket.IsPositive() {
		result.Orders = result.Revenue.Round(2).Div(result.Ticket).Ceil().IntPart()
	}

	return result
}

// BreakevenFromDRE aplica a política sobre os totais de um DRE já calculado
func (p BreakevenPolicy) BreakevenFromDRE(result *domain.DREResult, historicalTicket decimal.Decimal) *domain.BreakevenResult {
	return p.Compute(
		result.TotalFixedExpenses,
		result.TotalVariableCosts,
		result.Revenue,
		result.AverageTicket,
		historicalTicket,
	)
}
