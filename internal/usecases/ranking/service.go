package ranking

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/restaurant-dre-api/infrastructure/repository"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
)

// MonthLayout é o formato do mês usado como chave do ranking
const MonthLayout = "01-2006"

type RankingService interface {
	GetRanking(ctx context.Context) (*domain.RestaurantRankingResponse, error)
	GetRankingByMonth(ctx context.Context, month string) (*domain.RestaurantRankingResponse, error)
}

type RestaurantRankingService struct {
	rankingRepository repository.RestaurantRankingRepository
	now               func() time.Time
}

func NewRestaurantRankingService(rankingRepository repository.RestaurantRankingRepository) *RestaurantRankingService {
	return &RestaurantRankingService{
		rankingRepository: rankingRepository,
		now:               time.Now,
	}
}

// GetRanking devolve o ranking do mês corrente. O cálculo considera vendas até ontem,
// por isso no dia 1º o mês retornado ainda é o anterior.
func (s *RestaurantRankingService) GetRanking(ctx context.Context) (*domain.RestaurantRankingResponse, error) {
	month := s.now().AddDate(0, 0, -1).Format(MonthLayout)
	return s.rankingRepository.GetRanking(ctx, month)
}

// GetRankingByMonth devolve o ranking gravado para o mês informado (mm-yyyy)
func (s *RestaurantRankingService) GetRankingByMonth(ctx context.Context, month string) (*domain.RestaurantRankingResponse, error) {
	if _, err := time.Parse(MonthLayout, month); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}
	return s.rankingRepository.GetRanking(ctx, month)
}
