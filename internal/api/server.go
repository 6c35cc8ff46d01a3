package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/restaurant-dre-api/internal/api/handler"
	"github.com/vfg2006/restaurant-dre-api/internal/api/handler/router"
	"github.com/vfg2006/restaurant-dre-api/internal/config"
	"github.com/vfg2006/restaurant-dre-api/internal/metrics"
	"github.com/vfg2006/restaurant-dre-api/internal/usecases/authenticating"
	"github.com/vfg2006/restaurant-dre-api/internal/usecases/ranking"
	"github.com/vfg2006/restaurant-dre-api/internal/usecases/reporting"
	"github.com/vfg2006/restaurant-dre-api/pkg/log"
	"github.com/vfg2006/restaurant-dre-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services agrupa as dependências expostas pela API
type Services struct {
	DB            handler.Pinger
	Reporter      reporting.Reporter
	Ranking       ranking.RankingService
	Authenticator authenticating.Authenticator
	CronJobs      handler.CronJobServices
	Metrics       *metrics.Metrics
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Reporter == nil || services.Authenticator == nil {
		return nil, fmt.Errorf("serviços de relatório e autenticação são obrigatórios")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(cfg *config.Config, services Services) http.Handler {
	configs := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck(services.DB)...),
		router.WithRoutes(handler.Reports(services.Reporter)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	}

	if services.Ranking != nil {
		configs = append(configs, router.WithRoutes(handler.RestaurantRanking(services.Ranking)...))
	}

	if services.Metrics != nil {
		configs = append(configs, router.WithRoutes(handler.Metrics(services.Metrics.Handler())...))
	}

	rt := router.New(configs...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		services.Metrics.Middleware(),
		middleware.Cors(cfg.Server.CorsOrigins...),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	logger := log.Component("server")

	go func() {
		logger.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logger.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logger.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.WithField("timeout", "15s").Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logger.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
