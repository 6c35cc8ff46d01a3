package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RestaurantRankingResponse struct {
	Ranking    []RestaurantRankingItem `json:"ranking"`
	LastUpdate time.Time               `json:"last_update"`
}

type RestaurantRankingItem struct {
	ID               int             `json:"id"`
	RestaurantID     string          `json:"restaurant_id"`
	Month            string          `json:"month"` // Formato mm-yyyy (ex: 01-2024)
	RestaurantName   string          `json:"restaurant_name"`
	Revenue          decimal.Decimal `json:"revenue"`
	TotalOrders      int             `json:"total_orders"`
	Position         int             `json:"position"`
	PositionChange   int             `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int             `json:"previous_position"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
