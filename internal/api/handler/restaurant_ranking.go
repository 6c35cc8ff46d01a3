package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
	"github.com/vfg2006/restaurant-dre-api/internal/usecases/ranking"
	"github.com/vfg2006/restaurant-dre-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-dre-api/pkg/log"
)

// GetRestaurantRanking retorna o ranking de faturamento dos restaurantes no mês
func GetRestaurantRanking(service ranking.RankingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var (
			result *domain.RestaurantRankingResponse
			err    error
		)

		if month := r.URL.Query().Get("month"); month != "" {
			result, err = service.GetRankingByMonth(r.Context(), month)
		} else {
			result, err = service.GetRanking(r.Context())
		}

		if err != nil {
			if errors.Is(err, ranking.ErrInvalidMonth) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar ranking dos restaurantes")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking dos restaurantes", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}
