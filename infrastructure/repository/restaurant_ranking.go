package repository

//go:generate mockgen -source=restaurant_ranking.go -destination=mocks/restaurant_ranking.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/restaurant-dre-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
)

const (
	restaurantRankingTable = "restaurant_ranking rr"
)

var restaurantRankingColumns = []string{
	"rr.id",
	"rr.restaurant_id",
	"rr.month",
	"rr.restaurant_name",
	"rr.revenue",
	"rr.total_orders",
	"rr.position",
	"rr.position_change",
	"rr.previous_position",
	"rr.created_at",
	"rr.updated_at",
}

type RestaurantRankingRepository interface {
	GetByRestaurantID(ctx context.Context, restaurantID string, month string) (*domain.RestaurantRankingItem, error)
	GetRanking(ctx context.Context, month string) (*domain.RestaurantRankingResponse, error)
	SaveOrUpdate(ctx context.Context, rankings []*domain.RestaurantRankingItem) error
}

type restaurantRankingRepository struct {
	conn postgres.Queryer
}

func NewRestaurantRankingRepository(conn postgres.Queryer) RestaurantRankingRepository {
	return &restaurantRankingRepository{
		conn: conn,
	}
}

func (r *restaurantRankingRepository) GetRanking(ctx context.Context, month string) (*domain.RestaurantRankingResponse, error) {
	query, args, err := squirrel.
		Select(restaurantRankingColumns...).
		From(restaurantRankingTable).
		Where(squirrel.Eq{"rr.month": month}).
		OrderBy("rr.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rankings := make([]domain.RestaurantRankingItem, 0)
	var lastUpdate time.Time

	for rows.Next() {
		item, err := scanRankingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}

		rankings = append(rankings, *item)

		// Manter o último update mais recente
		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.RestaurantRankingResponse{
		Ranking:    rankings,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *restaurantRankingRepository) GetByRestaurantID(ctx context.Context, restaurantID string, month string) (*domain.RestaurantRankingItem, error) {
	query, args, err := squirrel.
		Select(restaurantRankingColumns...).
		From(restaurantRankingTable).
		Where(squirrel.Eq{"rr.restaurant_id": restaurantID, "rr.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	ranking, err := scanRankingItem(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ranking: %w", err)
	}
	return ranking, nil
}

func upsertRankingQuery(rankings []*domain.RestaurantRankingItem) squirrel.InsertBuilder {
	query := squirrel.StatementBuilder.
		Insert("restaurant_ranking").
		Columns(
			"restaurant_id",
			"month",
			"restaurant_name",
			"revenue",
			"total_orders",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, ranking := range rankings {
		query = query.Values(
			ranking.RestaurantID,
			ranking.Month,
			ranking.RestaurantName,
			ranking.Revenue,
			ranking.TotalOrders,
			ranking.Position,
			ranking.PositionChange,
			ranking.PreviousPosition,
		)
	}

	return query.Suffix(`
		ON CONFLICT (restaurant_id, month) DO UPDATE SET
			restaurant_name = EXCLUDED.restaurant_name,
			revenue = EXCLUDED.revenue,
			total_orders = EXCLUDED.total_orders,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)
}

func (r *restaurantRankingRepository) SaveOrUpdate(ctx context.Context, rankings []*domain.RestaurantRankingItem) error {
	if len(rankings) == 0 {
		return nil
	}

	sqlQuery, args, err := upsertRankingQuery(rankings).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err = r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRankingItem(row scanner) (*domain.RestaurantRankingItem, error) {
	item := &domain.RestaurantRankingItem{}

	err := row.Scan(
		&item.ID,
		&item.RestaurantID,
		&item.Month,
		&item.RestaurantName,
		&item.Revenue,
		&item.TotalOrders,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}
