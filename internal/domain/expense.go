package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory é a categoria de uma despesa. As seis categorias do DRE formam um
// conjunto fechado; qualquer outro valor é livre e fica fora do resultado.
type ExpenseCategory string

const (
	CategoryTaxes         ExpenseCategory = "Impostos"
	CategoryCMV           ExpenseCategory = "CMV"
	CategorySalesExpenses ExpenseCategory = "Despesas com Vendas"
	CategoryLabor         ExpenseCategory = "CMO"
	CategoryMarketing     ExpenseCategory = "Marketing"
	CategoryOccupancy     ExpenseCategory = "Ocupação"
)

// VariableCostCategories compõem o total de custos variáveis
var VariableCostCategories = []ExpenseCategory{
	CategoryTaxes,
	CategoryCMV,
	CategorySalesExpenses,
}

// FixedExpenseCategories compõem o total de despesas fixas
var FixedExpenseCategories = []ExpenseCategory{
	CategoryLabor,
	CategoryMarketing,
	CategoryOccupancy,
}

// DRECategories lista as categorias na ordem em que aparecem no relatório
var DRECategories = append(slices.Clone(VariableCostCategories), FixedExpenseCategories...)

func (c ExpenseCategory) IsVariableCost() bool {
	return slices.Contains(VariableCostCategories, c)
}

func (c ExpenseCategory) IsFixedExpense() bool {
	return slices.Contains(FixedExpenseCategories, c)
}

// IsDRE indica se a categoria pertence ao conjunto canônico do DRE
func (c ExpenseCategory) IsDRE() bool {
	return c.IsVariableCost() || c.IsFixedExpense()
}

// ExpenseKind é o tipo de lançamento da despesa
type ExpenseKind string

const (
	KindFixed        ExpenseKind = "fixa"
	KindVariable     ExpenseKind = "variavel"
	KindMarketing    ExpenseKind = "marketing"
	KindAutomaticFee ExpenseKind = "taxa_automatica"
)

// IsVariable indica se o tipo acompanha o faturamento (variável ou taxa automática)
func (k ExpenseKind) IsVariable() bool {
	return k == KindVariable || k == KindAutomaticFee
}

// ExpenseRow representa uma linha de despesa como retornada pela camada de consulta
type ExpenseRow struct {
	ID          string   `json:"id"`
	Date        string   `json:"data"`
	Name        string   `json:"nome"`
	Category    *string  `json:"categoria"`
	Subcategory *string  `json:"subcategoria"`
	Kind        *string  `json:"tipo"`
	Amount      *float64 `json:"valor"`
	Paid        *bool    `json:"pago"`
	DueDate     *string  `json:"data_vencimento"`
	PaidDate    *string  `json:"data_pagamento"`
}

// Expense é a despesa já normalizada, com valor nunca negativo
type Expense struct {
	ID          string
	Date        time.Time
	Name        string
	Category    ExpenseCategory
	Subcategory string
	Kind        ExpenseKind
	Amount      decimal.Decimal
	Paid        bool
	DueDate     *time.Time
	PaidDate    *time.Time
}
