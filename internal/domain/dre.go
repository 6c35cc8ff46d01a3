package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DREResult é a Demonstração do Resultado do Exercício de um período.
// Nunca é persistido: é recalculado a cada consulta a partir das vendas e despesas.
type DREResult struct {
	Revenue decimal.Decimal `json:"receita_bruta"`

	Taxes         decimal.Decimal `json:"impostos"`
	CMV           decimal.Decimal `json:"cmv"`
	SalesExpenses decimal.Decimal `json:"despesas_vendas"`
	Labor         decimal.Decimal `json:"cmo"`
	Marketing     decimal.Decimal `json:"marketing"`
	Occupancy     decimal.Decimal `json:"ocupacao"`

	TotalVariableCosts decimal.Decimal `json:"total_custos_variaveis"`
	TotalFixedExpenses decimal.Decimal `json:"total_despesas_fixas"`
	TotalExpenses      decimal.Decimal `json:"total_despesas"`
	OtherExpenses      decimal.Decimal `json:"outras_despesas"`

	GrossProfit decimal.Decimal `json:"lucro_bruto"`
	GrossMargin decimal.Decimal `json:"margem_bruta"`
	NetProfit   decimal.Decimal `json:"lucro_liquido"`
	NetMargin   decimal.Decimal `json:"margem_liquida"`

	AverageTicket decimal.Decimal `json:"ticket_medio"`
	TotalOrders   int             `json:"total_pedidos"`

	RevenueByChannel       map[string]decimal.Decimal `json:"receita_por_canal"`
	RevenueByPaymentMethod map[string]decimal.Decimal `json:"receita_por_forma_pagamento"`
	ExpensesByCategory     map[string]decimal.Decimal `json:"despesas_por_categoria"`
	ExpensesByKind         map[string]decimal.Decimal `json:"despesas_por_tipo"`

	// Separação pelo tipo de lançamento, independente da categoria
	VariableByKind decimal.Decimal `json:"despesas_variaveis_por_tipo"`
	FixedByKind    decimal.Decimal `json:"despesas_fixas_por_tipo"`

	PaidExpenses    decimal.Decimal `json:"despesas_pagas"`
	PendingExpenses decimal.Decimal `json:"despesas_pendentes"`
}

// CategoryTotal retorna o total de uma das seis categorias do DRE
func (r *DREResult) CategoryTotal(category ExpenseCategory) decimal.Decimal {
	switch category {
	case CategoryTaxes:
		return r.Taxes
	case CategoryCMV:
		return r.CMV
	case CategorySalesExpenses:
		return r.SalesExpenses
	case CategoryLabor:
		return r.Labor
	case CategoryMarketing:
		return r.Marketing
	case CategoryOccupancy:
		return r.Occupancy
	}
	return decimal.Zero
}

// BreakevenResult é o ponto de equilíbrio do período
type BreakevenResult struct {
	Revenue              decimal.Decimal `json:"receita_equilibrio"`
	Orders               int64           `json:"pedidos_equilibrio"`
	VariableRatio        decimal.Decimal `json:"razao_custo_variavel"`
	Ticket               decimal.Decimal `json:"ticket_utilizado"`
	UsedFallbackRatio    bool            `json:"usou_razao_padrao"`
	UsedHistoricalTicket bool            `json:"usou_ticket_historico"`
	// Reachable é falso quando os custos variáveis consomem toda a receita
	Reachable bool `json:"atingivel"`
}

// RankedValue é uma entrada de um ranking "top N"
type RankedValue struct {
	Key   string          `json:"chave"`
	Value decimal.Decimal `json:"valor"`
}

// DREReport agrega o DRE, o ponto de equilíbrio e os detalhamentos de um restaurante
type DREReport struct {
	RestaurantID     string                                `json:"restaurant_id"`
	RestaurantName   string                                `json:"restaurant_name"`
	Filters          *ReportFilters                        `json:"filters"`
	DRE              *DREResult                            `json:"dre"`
	Breakeven        *BreakevenResult                      `json:"breakeven"`
	HistoricalTicket decimal.Decimal                       `json:"ticket_historico"`
	TopChannels      []RankedValue                         `json:"top_canais"`
	TopCategories    []RankedValue                         `json:"top_categorias"`
	Subcategories    map[string]map[string]decimal.Decimal `json:"subcategorias"`
	GeneratedAt      time.Time                             `json:"generated_at"`
}

// ExportFile é um relatório exportado pronto para download
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}
