// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=restaurant.go -destination=mocks/restaurant.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/restaurant-dre-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
)

const (
	restaurantsTable = "restaurantes r"
)

var restaurantColumns = []string{
	"r.id",
	"r.nome",
	"r.ativo",
	"r.created_at",
	"r.updated_at",
}

type RestaurantRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)
	ListActive(ctx context.Context) ([]*domain.Restaurant, error)
}

type restaurantRepository struct {
	conn postgres.Queryer
}

func NewRestaurantRepository(conn postgres.Queryer) RestaurantRepository {
	return &restaurantRepository{
		conn: conn,
	}
}

func (r *restaurantRepository) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	query, args, err := squirrel.
		Select(restaurantColumns...).
		From(restaurantsTable).
		Where(squirrel.Eq{"r.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	restaurant := &domain.Restaurant{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Active,
		&restaurant.CreatedAt,
		&restaurant.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear restaurante: %w", err)
	}

	return restaurant, nil
}

func (r *restaurantRepository) ListActive(ctx context.Context) ([]*domain.Restaurant, error) {
	query, args, err := squirrel.
		Select(restaurantColumns...).
		From(restaurantsTable).
		Where(squirrel.Eq{"r.ativo": true}).
		OrderBy("r.nome ASC").
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

	restaurants := make([]*domain.Restaurant, 0)
	for rows.Next() {
		restaurant := &domain.Restaurant{}
		if err := rows.Scan(
			&restaurant.ID,
			&restaurant.Name,
			&restaurant.Active,
			&restaurant.CreatedAt,
			&restaurant.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear restaurante: %w", err)
		}
		restaurants = append(restaurants, restaurant)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return restaurants, nil
}
