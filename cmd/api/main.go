package main

import (
	"context"

	"github.com/vfg2006/restaurant-dre-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-dre-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-dre-api/internal/api"
	"github.com/vfg2006/restaurant-dre-api/internal/api/handler"
	"github.com/vfg2006/restaurant-dre-api/internal/config"
	"github.com/vfg2006/restaurant-dre-api/internal/metrics"
	"github.com/vfg2006/restaurant-dre-api/internal/providers/pdf"
	"github.com/vfg2006/restaurant-dre-api/internal/scheduler"
	"github.com/vfg2006/restaurant-dre-api/internal/usecases/authenticating"
	"github.com/vfg2006/restaurant-dre-api/internal/usecases/ranking"
	"github.com/vfg2006/restaurant-dre-api/internal/usecases/reporting"
	"github.com/vfg2006/restaurant-dre-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logger := log.Component("main")
	logger.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("Configuração inválida")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	restaurantRepo := repository.NewRestaurantRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	expenseRepo := repository.NewExpenseRepository(pgConn)
	rankingRepo := repository.NewRestaurantRankingRepository(pgConn)

	var appMetrics *metrics.Metrics
	if cfg.Metrics.Enabled {
		appMetrics = metrics.New()
	}

	authenticator := authenticating.NewService(cfg.Auth.Secret)

	reportService := reporting.NewService(
		restaurantRepo,
		saleRepo,
		expenseRepo,
		pdf.NewRenderer(),
		appMetrics,
		reporting.Settings{
			VariableRatioFallback:  cfg.DRE.VariableRatio(),
			HistoricalTicketMonths: cfg.DRE.HistoricalTicketMonths,
			TopN:                   cfg.DRE.TopN,
		},
	)

	rankingService := ranking.NewRestaurantRankingService(rankingRepo)

	rankingSyncService := scheduler.NewRestaurantRankingService(
		restaurantRepo,
		rankingRepo,
		saleRepo,
		appMetrics,
		cfg,
	)

	if err := rankingSyncService.Start(ctx); err != nil {
		logger.WithError(err).Error("Erro ao iniciar o agendador do ranking de restaurantes")
	} else {
		logger.Info("Agendador do ranking de restaurantes iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		DB:            pgConn,
		Reporter:      reportService,
		Ranking:       rankingService,
		Authenticator: authenticator,
		CronJobs:      handler.CronJobServices{RestaurantRanking: rankingSyncService},
		Metrics:       appMetrics,
	})
	if err != nil {
		logger.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logger.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	logger := log.Component("postgres")

	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logger.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logger.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
