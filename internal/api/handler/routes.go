package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-dre-api/internal/api/handler/router"
	"github.com/vfg2006/restaurant-dre-api/internal/usecases/ranking"
	"github.com/vfg2006/restaurant-dre-api/internal/usecases/reporting"
	"github.com/vfg2006/restaurant-dre-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	restaurantAccess := []func(http.Handler) http.Handler{
		middleware.AllRoles(),
		middleware.RestaurantAccess("id"),
	}

	return []router.Route{
		{
			Path:        "/v1/restaurants/:id/dre",
			Method:      http.MethodGet,
			Handler:     GetDRE(service),
			Middlewares: restaurantAccess,
		},
		{
			Path:        "/v1/restaurants/:id/dre/export",
			Method:      http.MethodGet,
			Handler:     ExportDRE(service),
			Middlewares: restaurantAccess,
		},
		{
			Path:        "/v1/restaurants/:id/breakeven",
			Method:      http.MethodGet,
			Handler:     GetBreakeven(service),
			Middlewares: restaurantAccess,
		},
	}
}

func RestaurantRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ranking/restaurants",
			Method:      http.MethodGet,
			Handler:     GetRestaurantRanking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/:type/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// Metrics expõe o endpoint do Prometheus
func Metrics(h http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: h,
		},
	}
}
