// Package dre calcula a Demonstração do Resultado do Exercício e o ponto de
// equilíbrio a partir de um retrato completo das vendas e despesas de um período.
//
// Todas as funções são puras: não fazem I/O, não guardam estado e nunca retornam erro.
// Dados sujos (valores ausentes ou negativos) degradam para zero.
package dre

import "github.com/shopspring/decimal"

const (
	// DefaultHistoricalTicketMonths é a janela, em meses, do ticket médio histórico
	DefaultHistoricalTicketMonths = 6

	// UnknownValue substitui canal ou forma de pagamento ausentes
	UnknownValue = "Desconhecido"

	// OthersValue substitui categoria ou subcategoria ausentes
	OthersValue = "Outros"
)

var (
	// DefaultVariableRatioFallback é a razão de custo variável usada quando não há receita
	DefaultVariableRatioFallback = decimal.RequireFromString("0.30")

	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)
