// Package scheduler contém os serviços agendados da API
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/restaurant-dre-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-dre-api/internal/config"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
	"github.com/vfg2006/restaurant-dre-api/internal/dre"
	"github.com/vfg2006/restaurant-dre-api/internal/metrics"
	"github.com/vfg2006/restaurant-dre-api/pkg/log"
	"github.com/vfg2006/restaurant-dre-api/pkg/utils"
)

// RankingMonthLayout é o formato do mês gravado no ranking (mm-yyyy)
const RankingMonthLayout = "01-2006"

type RestaurantRankingConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// RestaurantRankingService recalcula diariamente o ranking de faturamento do mês
// corrente, considerando as vendas até o dia anterior.
type RestaurantRankingService struct {
	scheduler           *gocron.Scheduler
	restaurantRepo      repository.RestaurantRepository
	rankingRepo         repository.RestaurantRankingRepository
	saleRepo            repository.SaleRepository
	metrics             *metrics.Metrics
	config              RestaurantRankingConfig
	logger              log.Logger
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewRestaurantRankingService(
	restaurantRepo repository.RestaurantRepository,
	rankingRepo repository.RestaurantRankingRepository,
	saleRepo repository.SaleRepository,
	m *metrics.Metrics,
	cfg *config.Config,
) *RestaurantRankingService {
	rankingConfig := RestaurantRankingConfig{
		CronSchedule: cfg.RestaurantRanking.CronSchedule,
		SyncEnabled:  cfg.RestaurantRanking.SyncEnabled,
	}

	logger := log.Component("ranking")
	logger.WithField("cron_schedule", rankingConfig.CronSchedule).Info("Configuração do agendador do ranking de restaurantes carregada")

	return &RestaurantRankingService{
		scheduler:      gocron.NewScheduler(time.Local),
		restaurantRepo: restaurantRepo,
		rankingRepo:    rankingRepo,
		saleRepo:       saleRepo,
		metrics:        m,
		config:         rankingConfig,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *RestaurantRankingService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		s.logger.Info("Cron do ranking de restaurantes desabilitada por configuração")
		return nil
	}

	s.logger.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do ranking de restaurantes")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.UpdateRanking(ctx); err != nil {
			s.logger.WithError(err).Error("Erro na atualização do ranking de restaurantes")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar ranking de restaurantes: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.logger.Info("Parando cron do ranking de restaurantes")
		s.scheduler.Stop()
	}()

	return nil
}

// UpdateRanking recalcula o ranking. Execuções concorrentes são descartadas.
func (s *RestaurantRankingService) UpdateRanking(ctx context.Context) (err error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		s.logger.Warn("Atualização do ranking de restaurantes já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastSyncError = ""
		if err != nil {
			s.lastSyncError = err.Error()
		}
		s.syncMutex.Unlock()

		s.metrics.ObserveRankingRun(err)
	}()

	restaurants, err := s.restaurantRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("erro ao listar restaurantes ativos: %w", err)
	}

	if len(restaurants) == 0 {
		s.logger.Info("Nenhum restaurante ativo para o ranking")
		return nil
	}

	_, err = s.processRanking(ctx, restaurants, s.now())
	return err
}

// processRanking calcula o faturamento do mês até ontem de cada restaurante, ordena
// e grava as posições comparando com o ranking gravado anteriormente.
// Se a leitura de qualquer restaurante falhar, nada é gravado: um ranking parcial
// deslocaria as posições dos demais.
func (s *RestaurantRankingService) processRanking(
	ctx context.Context,
	restaurants []*domain.Restaurant,
	processingDate time.Time,
) ([]*domain.RestaurantRankingItem, error) {
	yesterday := processingDate.AddDate(0, 0, -1)
	firstDayOfMonth := utils.FirstDayOfMonth(yesterday)
	month := yesterday.Format(RankingMonthLayout)

	var (
		wg        sync.WaitGroup
		mutex     sync.Mutex
		previous  = make(map[string]*domain.RestaurantRankingItem, len(restaurants))
		rankings  = make([]*domain.RestaurantRankingItem, 0, len(restaurants))
		fetchErrs []error
	)

	for _, restaurant := range restaurants {
		wg.Add(2)

		go func(restaurant *domain.Restaurant) {
			defer wg.Done()

			item, err := s.rankingRepo.GetByRestaurantID(ctx, restaurant.ID, month)
			if err != nil {
				s.logger.WithError(err).WithField("restaurant_id", restaurant.ID).Error("Erro ao buscar ranking anterior")
				mutex.Lock()
				fetchErrs = append(fetchErrs, fmt.Errorf("ranking anterior de %s: %w", restaurant.ID, err))
				mutex.Unlock()
				return
			}

			if item != nil {
				mutex.Lock()
				previous[restaurant.ID] = item
				mutex.Unlock()
			}
		}(restaurant)

		go func(restaurant *domain.Restaurant) {
			defer wg.Done()

			rows, err := s.saleRepo.ListByPeriod(ctx, restaurant.ID, firstDayOfMonth, yesterday)
			if err != nil {
				s.logger.WithError(err).WithField("restaurant_id", restaurant.ID).Error("Erro ao buscar vendas do mês")
				mutex.Lock()
				fetchErrs = append(fetchErrs, fmt.Errorf("vendas de %s: %w", restaurant.ID, err))
				mutex.Unlock()
				return
			}

			sales := dre.NormalizeSales(rows)

			mutex.Lock()
			rankings = append(rankings, &domain.RestaurantRankingItem{
				RestaurantID:   restaurant.ID,
				Month:          month,
				RestaurantName: restaurant.Name,
				Revenue:        dre.TotalRevenue(sales),
				TotalOrders:    dre.TotalOrders(sales),
			})
			mutex.Unlock()
		}(restaurant)
	}

	wg.Wait()

	if len(fetchErrs) > 0 {
		return nil, fmt.Errorf("erro ao buscar dados de %d restaurante(s), ranking não gravado: %w",
			len(fetchErrs), errors.Join(fetchErrs...))
	}

	updatePositions(rankings, previous)

	if err := s.rankingRepo.SaveOrUpdate(ctx, rankings); err != nil {
		return rankings, fmt.Errorf("erro ao salvar ranking de restaurantes: %w", err)
	}

	s.logger.WithFields(log.Fields{
		"month":       month,
		"restaurants": len(rankings),
	}).Info("Ranking de restaurantes atualizado")

	return rankings, nil
}

// updatePositions ordena por faturamento decrescente (empates pelo nome) e calcula a
// variação de posição. Valor positivo indica que o restaurante subiu.
func updatePositions(
	rankings []*domain.RestaurantRankingItem,
	previous map[string]*domain.RestaurantRankingItem,
) {
	sort.SliceStable(rankings, func(i, j int) bool {
		if !rankings[i].Revenue.Equal(rankings[j].Revenue) {
			return rankings[i].Revenue.GreaterThan(rankings[j].Revenue)
		}
		return rankings[i].RestaurantName < rankings[j].RestaurantName
	})

	for i, ranking := range rankings {
		ranking.Position = i + 1

		if before, exists := previous[ranking.RestaurantID]; exists {
			ranking.PositionChange = before.Position - ranking.Position
			ranking.PreviousPosition = before.Position
		}
	}
}

// TriggerManualSync inicia manualmente uma atualização do ranking em segundo plano
func (s *RestaurantRankingService) TriggerManualSync() {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		s.logger.Info("Ranking de restaurantes já em andamento, ignorando solicitação manual")
		return
	}

	s.logger.Info("Iniciando atualização manual do ranking de restaurantes")
	go func() {
		if err := s.UpdateRanking(context.Background()); err != nil {
			s.logger.WithError(err).Error("Erro na atualização manual do ranking de restaurantes")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *RestaurantRankingService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
