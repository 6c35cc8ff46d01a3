package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
	"github.com/vfg2006/restaurant-dre-api/internal/dre"
	"github.com/vfg2006/restaurant-dre-api/internal/providers/pdf"
	"github.com/vfg2006/restaurant-dre-api/internal/usecases/reporting"
	"github.com/vfg2006/restaurant-dre-api/pkg/utils"
)

const snapshotRestaurantID = "snapshot"

type reportOptions struct {
	salesPath     string
	expensesPath  string
	name          string
	start         string
	end           string
	format        string
	output        string
	variableRatio float64
	historyMonths int
	topN          int
}

func newReportCmd() *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Calcula o DRE e o ponto de equilíbrio a partir de arquivos JSON",
		Long: `Lê as vendas (--sales) e despesas (--expenses) exportadas em JSON, no mesmo
formato das tabelas vendas e despesas, e imprime o DRE do período.`,
		Example: "drecli report --sales vendas.json --expenses despesas.json --start 2024-01-01 --end 2024-01-31",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.salesPath, "sales", "", "arquivo JSON com as vendas")
	cmd.Flags().StringVar(&opts.expensesPath, "expenses", "", "arquivo JSON com as despesas")
	cmd.Flags().StringVar(&opts.name, "name", "", "nome do restaurante exibido no relatório")
	cmd.Flags().StringVar(&opts.start, "start", "", "data inicial (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.end, "end", "", "data final (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.format, "format", "txt", "formato de saída: txt, json ou pdf")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "arquivo de saída (padrão: saída padrão)")
	cmd.Flags().Float64Var(&opts.variableRatio, "variable-ratio", dre.DefaultVariableRatioFallback.InexactFloat64(), "razão de custo variável usada quando não há receita")
	cmd.Flags().IntVar(&opts.historyMonths, "history-months", dre.DefaultHistoricalTicketMonths, "meses de histórico para o ticket médio")
	cmd.Flags().IntVar(&opts.topN, "top", reporting.DefaultSettings.TopN, "quantidade de canais e categorias no ranking")

	_ = cmd.MarkFlagRequired("sales")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func runReport(cmd *cobra.Command, opts *reportOptions) error {
	if opts.format != "txt" && opts.format != "json" && opts.format != "pdf" {
		return fmt.Errorf("formato inválido %q, use txt, json ou pdf", opts.format)
	}

	startDate, err := utils.ParseDate(opts.start)
	if err != nil {
		return err
	}
	endDate, err := utils.ParseDate(opts.end)
	if err != nil {
		return err
	}

	restaurant := &domain.Restaurant{ID: snapshotRestaurantID, Name: opts.name, Active: true}
	data, err := loadSnapshot(restaurant, opts.salesPath, opts.expensesPath)
	if err != nil {
		return err
	}

	service := reporting.NewService(
		data,
		saleSnapshot{data},
		expenseSnapshot{data},
		pdf.NewRenderer(),
		nil,
		reporting.Settings{
			VariableRatioFallback:  decimal.NewFromFloat(opts.variableRatio),
			HistoricalTicketMonths: opts.historyMonths,
			TopN:                   opts.topN,
		},
	)

	ctx := cmd.Context()
	filters := &domain.ReportFilters{StartDate: startDate, EndDate: endDate}

	var content []byte
	switch opts.format {
	case "json":
		report, err := service.GetDRE(ctx, snapshotRestaurantID, filters)
		if err != nil {
			return err
		}
		content, err = json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		content = append(content, '\n')
	case "pdf":
		file, err := service.ExportPDF(ctx, snapshotRestaurantID, filters)
		if err != nil {
			return err
		}
		content = file.Content
	default:
		file, err := service.ExportText(ctx, snapshotRestaurantID, filters)
		if err != nil {
			return err
		}
		content = file.Content
	}

	if opts.output != "" {
		return os.WriteFile(opts.output, content, 0o644)
	}

	_, err = cmd.OutOrStdout().Write(content)
	return err
}
