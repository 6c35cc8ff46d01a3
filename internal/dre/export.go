package dre

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
	"github.com/vfg2006/restaurant-dre-api/pkg/utils"
)

const lineWidth = 34

// RenderText gera o relatório DRE em texto simples, no modelo fixo usado na exportação
func RenderText(report *domain.DREReport) string {
	var b strings.Builder
	r := report.DRE

	b.WriteString("DRE - DEMONSTRAÇÃO DO RESULTADO DO EXERCÍCIO\n")
	if report.RestaurantName != "" {
		fmt.Fprintf(&b, "Restaurante: %s\n", report.RestaurantName)
	}
	if report.Filters != nil && report.Filters.StartDate != nil && report.Filters.EndDate != nil {
		fmt.Fprintf(&b, "Período: %s a %s\n",
			utils.FormatDateBR(*report.Filters.StartDate),
			utils.FormatDateBR(*report.Filters.EndDate),
		)
	}
	b.WriteString("\n")

	money(&b, "RECEITA BRUTA", r.Revenue)
	for _, category := range domain.VariableCostCategories {
		money(&b, "(-) "+string(category), r.CategoryTotal(category))
	}
	money(&b, "(=) CUSTOS VARIÁVEIS", r.TotalVariableCosts)
	money(&b, "(=) LUCRO BRUTO", r.GrossProfit)
	percent(&b, "    Margem Bruta", r.GrossMargin)
	for _, category := range domain.FixedExpenseCategories {
		money(&b, "(-) "+string(category), r.CategoryTotal(category))
	}
	money(&b, "(=) DESPESAS FIXAS", r.TotalFixedExpenses)
	money(&b, "(=) LUCRO LÍQUIDO", r.NetProfit)
	percent(&b, "    Margem Líquida", r.NetMargin)
	b.WriteString("\n")

	money(&b, "Ticket Médio", r.AverageTicket)
	line(&b, "Total de Pedidos", fmt.Sprintf("%d", r.TotalOrders))

	if report.Breakeven != nil {
		b.WriteString("\nPONTO DE EQUILÍBRIO\n")
		if !report.Breakeven.Reachable {
			b.WriteString("Inatingível: custos variáveis consomem toda a receita\n")
		} else {
			money(&b, "Receita Necessária", report.Breakeven.Revenue)
			line(&b, "Pedidos Necessários", fmt.Sprintf("%d", report.Breakeven.Orders))
		}
	}

	if len(report.TopChannels) > 0 {
		b.WriteString("\nRECEITA POR CANAL\n")
		for _, channel := range report.TopChannels {
			money(&b, channel.Key, channel.Value)
		}
	}

	if len(report.TopCategories) > 0 {
		b.WriteString("\nDESPESAS POR CATEGORIA\n")
		for _, category := range report.TopCategories {
			money(&b, category.Key, category.Value)
		}
	}

	return b.String()
}

func money(b *strings.Builder, label string, value decimal.Decimal) {
	line(b, label, utils.FormatBRL(value))
}

func percent(b *strings.Builder, label string, value decimal.Decimal) {
	line(b, label, utils.FormatPercent(value))
}

func line(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-*s %s\n", lineWidth, label, value)
}
