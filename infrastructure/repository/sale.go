package repository

//go:generate mockgen -source=sale.go -destination=mocks/sale.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/restaurant-dre-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
)

const (
	salesTable = "vendas v"
)

// SaleRepository devolve as linhas de venda sem tratamento: a normalização fica no motor do DRE
type SaleRepository interface {
	ListByPeriod(ctx context.Context, restaurantID string, startDate, endDate time.Time) ([]domain.SaleRow, error)
}

type saleRepository struct {
	conn postgres.Queryer
}

func NewSaleRepository(conn postgres.Queryer) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func salesByPeriodQuery(restaurantID string, startDate, endDate time.Time) squirrel.SelectBuilder {
	return squirrel.
		Select(
			"v.id",
			"to_char(v.data, 'YYYY-MM-DD')",
			"v.canal",
			"v.forma_pagamento",
			"v.valor_bruto",
			"v.numero_pedidos",
		).
		From(salesTable).
		Where(squirrel.Eq{"v.restaurante_id": restaurantID}).
		Where(squirrel.GtOrEq{"v.data": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"v.data": endDate.Format(time.DateOnly)}).
		OrderBy("v.data ASC", "v.id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *saleRepository) ListByPeriod(ctx context.Context, restaurantID string, startDate, endDate time.Time) ([]domain.SaleRow, error) {
	query, args, err := salesByPeriodQuery(restaurantID, startDate, endDate).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]domain.SaleRow, 0)
	for rows.Next() {
		var row domain.SaleRow
		if err := rows.Scan(
			&row.ID,
			&row.Date,
			&row.Channel,
			&row.PaymentMethod,
			&row.GrossAmount,
			&row.OrderCount,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}
