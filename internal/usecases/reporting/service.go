package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/restaurant-dre-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
	"github.com/vfg2006/restaurant-dre-api/internal/dre"
	"github.com/vfg2006/restaurant-dre-api/internal/metrics"
	"github.com/vfg2006/restaurant-dre-api/pkg/log"
	"github.com/vfg2006/restaurant-dre-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// Reporter monta o DRE e o ponto de equilíbrio de um restaurante em um período
type Reporter interface {
	GetDRE(ctx context.Context, restaurantID string, filters *domain.ReportFilters) (*domain.DREReport, error)
	GetBreakeven(ctx context.Context, restaurantID string, filters *domain.ReportFilters) (*domain.BreakevenResult, error)
	ExportText(ctx context.Context, restaurantID string, filters *domain.ReportFilters) (*domain.ExportFile, error)
	ExportPDF(ctx context.Context, restaurantID string, filters *domain.ReportFilters) (*domain.ExportFile, error)
}

// DocumentRenderer transforma o relatório em um documento binário (PDF)
type DocumentRenderer interface {
	RenderDRE(report *domain.DREReport) ([]byte, error)
}

// Settings são as constantes de negócio configuráveis do cálculo
type Settings struct {
	VariableRatioFallback  decimal.Decimal
	HistoricalTicketMonths int
	TopN                   int
}

// DefaultSettings usa as constantes padrão do motor do DRE
var DefaultSettings = Settings{
	VariableRatioFallback:  dre.DefaultVariableRatioFallback,
	HistoricalTicketMonths: dre.DefaultHistoricalTicketMonths,
	TopN:                   5,
}

type Service struct {
	restaurantRepo repository.RestaurantRepository
	saleRepo       repository.SaleRepository
	expenseRepo    repository.ExpenseRepository
	renderer       DocumentRenderer
	metrics        *metrics.Metrics
	settings       Settings
	now            func() time.Time
}

func NewService(
	restaurantRepo repository.RestaurantRepository,
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
	renderer DocumentRenderer,
	m *metrics.Metrics,
	settings Settings,
) *Service {
	if settings.HistoricalTicketMonths <= 0 {
		settings.HistoricalTicketMonths = dre.DefaultHistoricalTicketMonths
	}

	return &Service{
		restaurantRepo: restaurantRepo,
		saleRepo:       saleRepo,
		expenseRepo:    expenseRepo,
		renderer:       renderer,
		metrics:        m,
		settings:       settings,
		now:            time.Now,
	}
}

func (s *Service) GetDRE(ctx context.Context, restaurantID string, filters *domain.ReportFilters) (report *domain.DREReport, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveReport(metrics.ReportDRE, start, err) }()

	return s.buildReport(ctx, restaurantID, filters)
}

func (s *Service) GetBreakeven(ctx context.Context, restaurantID string, filters *domain.ReportFilters) (result *domain.BreakevenResult, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveReport(metrics.ReportBreakeven, start, err) }()

	report, err := s.buildReport(ctx, restaurantID, filters)
	if err != nil {
		return nil, err
	}
	return report.Breakeven, nil
}

func (s *Service) ExportText(ctx context.Context, restaurantID string, filters *domain.ReportFilters) (file *domain.ExportFile, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveReport(metrics.ReportText, start, err) }()

	report, err := s.buildReport(ctx, restaurantID, filters)
	if err != nil {
		return nil, err
	}

	return &domain.ExportFile{
		FileName:    fileName(report, "txt"),
		ContentType: "text/plain; charset=utf-8",
		Content:     []byte(dre.RenderText(report)),
	}, nil
}

func (s *Service) ExportPDF(ctx context.Context, restaurantID string, filters *domain.ReportFilters) (file *domain.ExportFile, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveReport(metrics.ReportPDF, start, err) }()

	report, err := s.buildReport(ctx, restaurantID, filters)
	if err != nil {
		return nil, err
	}

	content, err := s.renderer.RenderDRE(report)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar PDF do DRE")
	}

	return &domain.ExportFile{
		FileName:    fileName(report, "pdf"),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}

// buildReport busca em paralelo o restaurante, as vendas e despesas do período e o
// histórico de vendas usado no ticket médio, e então calcula o DRE.
func (s *Service) buildReport(ctx context.Context, restaurantID string, filters *domain.ReportFilters) (*domain.DREReport, error) {
	if err := ValidatePeriod(filters); err != nil {
		return nil, err
	}

	logger := log.Component("dre").WithContext(ctx).WithField("restaurant_id", restaurantID)
	startDate, endDate := *filters.StartDate, *filters.EndDate
	historyStart, historyEnd := HistoricalWindow(startDate, s.settings.HistoricalTicketMonths)

	var (
		restaurant  *domain.Restaurant
		saleRows    []domain.SaleRow
		expenseRows []domain.ExpenseRow
		historyRows []domain.SaleRow
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		restaurant, err = s.restaurantRepo.GetByID(gctx, restaurantID)
		return errors.Wrap(err, "erro ao buscar restaurante")
	})
	g.Go(func() error {
		var err error
		saleRows, err = s.saleRepo.ListByPeriod(gctx, restaurantID, startDate, endDate)
		return errors.Wrap(err, "erro ao buscar vendas")
	})
	g.Go(func() error {
		var err error
		expenseRows, err = s.expenseRepo.ListByPeriod(gctx, restaurantID, startDate, endDate)
		return errors.Wrap(err, "erro ao buscar despesas")
	})
	g.Go(func() error {
		var err error
		historyRows, err = s.saleRepo.ListByPeriod(gctx, restaurantID, historyStart, historyEnd)
		return errors.Wrap(err, "erro ao buscar histórico de vendas")
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("dre: falha ao carregar dados do período")
		return nil, err
	}

	if restaurant == nil {
		return nil, ErrRestaurantNotFound
	}

	sales := dre.FilterSales(dre.NormalizeSales(saleRows), filters)
	expenses := dre.FilterExpenses(dre.NormalizeExpenses(expenseRows), filters)
	historicalTicket := dre.AverageTicket(dre.NormalizeSales(historyRows))

	result := dre.ComputeDRE(sales, expenses)
	policy := dre.BreakevenPolicy{VariableRatioFallback: s.settings.VariableRatioFallback}
	breakeven := policy.BreakevenFromDRE(result, historicalTicket)

	logger.WithFields(log.Fields{
		"sales":    len(sales),
		"expenses": len(expenses),
	}).Debugf("dre: receita %s, lucro líquido %s", result.Revenue.StringFixed(2), result.NetProfit.StringFixed(2))

	if !breakeven.Reachable {
		logger.Warn("dre: custos variáveis consomem toda a receita, ponto de equilíbrio inatingível")
	}

	return &domain.DREReport{
		RestaurantID:     restaurant.ID,
		RestaurantName:   restaurant.Name,
		Filters:          filters,
		DRE:              result,
		Breakeven:        breakeven,
		HistoricalTicket: historicalTicket,
		TopChannels:      dre.TopN(result.RevenueByChannel, s.settings.TopN),
		TopCategories:    dre.TopN(result.ExpensesByCategory, s.settings.TopN),
		Subcategories:    dre.SumExpensesBySubcategory(expenses),
		GeneratedAt:      s.now(),
	}, nil
}

// ValidatePeriod exige as duas datas e início menor ou igual ao fim
func ValidatePeriod(filters *domain.ReportFilters) error {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return errors.Wrap(ErrInvalidPeriod, "data inicial e final são obrigatórias")
	}
	if filters.StartDate.After(*filters.EndDate) {
		return errors.Wrap(ErrInvalidPeriod, "data inicial posterior à data final")
	}
	return nil
}

// HistoricalWindow retorna os meses que antecedem o período, terminando no dia anterior ao início
func HistoricalWindow(periodStart time.Time, months int) (time.Time, time.Time) {
	end := periodStart.AddDate(0, 0, -1)
	start := periodStart.AddDate(0, -months, 0)
	return start, end
}

func fileName(report *domain.DREReport, ext string) string {
	id, err := utils.GenerateID(6)
	if err != nil {
		id = "export"
	}

	return fmt.Sprintf("dre-%s-%s-%s.%s",
		report.Filters.StartDate.Format(time.DateOnly),
		report.Filters.EndDate.Format(time.DateOnly),
		id,
		ext,
	)
}
