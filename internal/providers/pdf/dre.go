// Package pdf gera a versão em PDF do relatório DRE
package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
	"github.com/vfg2006/restaurant-dre-api/pkg/utils"
)

const rowHeight = 7

var (
	labelText = props.Text{Size: 10, Top: 1}
	valueText = props.Text{Size: 10, Top: 1, Align: align.Right}
	totalText = props.Text{Size: 10, Top: 1, Style: fontstyle.Bold}
	totalVal  = props.Text{Size: 10, Top: 1, Style: fontstyle.Bold, Align: align.Right}
	titleText = props.Text{Size: 12, Top: 3, Style: fontstyle.Bold}
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderDRE monta o PDF com o mesmo conteúdo da exportação em texto
func (p *Renderer) RenderDRE(report *domain.DREReport) ([]byte, error) {
	if report == nil || report.DRE == nil {
		return nil, fmt.Errorf("relatório vazio")
	}

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)
	r := report.DRE

	m.AddRow(14,
		text.NewCol(12, "DRE - Demonstração do Resultado do Exercício", props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	header := col.New(12)
	if report.RestaurantName != "" {
		header.Add(text.New("Restaurante: "+report.RestaurantName, props.Text{Top: 0}))
	}
	if report.Filters != nil && report.Filters.StartDate != nil && report.Filters.EndDate != nil {
		header.Add(text.New(fmt.Sprintf("Período: %s a %s",
			utils.FormatDateBR(*report.Filters.StartDate),
			utils.FormatDateBR(*report.Filters.EndDate),
		), props.Text{Top: 5}))
	}
	m.AddRow(14, header)
	m.AddRow(2, line.NewCol(12))

	addMoney(m, "Receita Bruta", r.Revenue, true)
	for _, category := range domain.VariableCostCategories {
		addMoney(m, "(-) "+string(category), r.CategoryTotal(category), false)
	}
	addMoney(m, "(=) Custos Variáveis", r.TotalVariableCosts, true)
	addMoney(m, "(=) Lucro Bruto", r.GrossProfit, true)
	addValue(m, "Margem Bruta", utils.FormatPercent(r.GrossMargin), false)
	for _, category := range domain.FixedExpenseCategories {
		addMoney(m, "(-) "+string(category), r.CategoryTotal(category), false)
	}
	addMoney(m, "(=) Despesas Fixas", r.TotalFixedExpenses, true)
	addMoney(m, "(=) Lucro Líquido", r.NetProfit, true)
	addValue(m, "Margem Líquida", utils.FormatPercent(r.NetMargin), false)
	m.AddRow(2, line.NewCol(12))

	addMoney(m, "Ticket Médio", r.AverageTicket, false)
	addValue(m, "Total de Pedidos", fmt.Sprintf("%d", r.TotalOrders), false)

	if report.Breakeven != nil {
		m.AddRow(12, text.NewCol(12, "Ponto de Equilíbrio", titleText))
		if report.Breakeven.Reachable {
			addMoney(m, "Receita Necessária", report.Breakeven.Revenue, false)
			addValue(m, "Pedidos Necessários", fmt.Sprintf("%d", report.Breakeven.Orders), false)
		} else {
			m.AddRow(rowHeight, text.NewCol(12, "Inatingível: custos variáveis consomem toda a receita", labelText))
		}
	}

	addRanking(m, "Receita por Canal", report.TopChannels)
	addRanking(m, "Despesas por Categoria", report.TopCategories)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

func addRanking(m core.Maroto, title string, items []domain.RankedValue) {
	if len(items) == 0 {
		return
	}

	m.AddRow(12, text.NewCol(12, title, titleText))
	for _, item := range items {
		addMoney(m, item.Key, item.Value, false)
	}
}

func addMoney(m core.Maroto, label string, value decimal.Decimal, bold bool) {
	addValue(m, label, utils.FormatBRL(value), bold)
}

func addValue(m core.Maroto, label, value string, bold bool) {
	if bold {
		m.AddRow(rowHeight, text.NewCol(8, label, totalText), text.NewCol(4, value, totalVal))
		return
	}
	m.AddRow(rowHeight, text.NewCol(8, label, labelText), text.NewCol(4, value, valueText))
}
