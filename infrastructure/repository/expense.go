package repository

//go:generate mockgen -source=expense.go -destination=mocks/expense.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/restaurant-dre-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
)

const (
	expensesTable = "despesas d"
)

type ExpenseRepository interface {
	ListByPeriod(ctx context.Context, restaurantID string, startDate, endDate time.Time) ([]domain.ExpenseRow, error)
}

type expenseRepository struct {
	conn postgres.Queryer
}

func NewExpenseRepository(conn postgres.Queryer) ExpenseRepository {
	return &expenseRepository{
		conn: conn,
	}
}

func expensesByPeriodQuery(restaurantID string, startDate, endDate time.Time) squirrel.SelectBuilder {
	return squirrel.
		Select(
			"d.id",
			"to_char(d.data, 'YYYY-MM-DD')",
			"d.nome",
			"d.categoria",
			"d.subcategoria",
			"d.tipo",
			"d.valor",
			"d.pago",
			"to_char(d.data_vencimento, 'YYYY-MM-DD')",
			"to_char(d.data_pagamento, 'YYYY-MM-DD')",
		).
		From(expensesTable).
		Where(squirrel.Eq{"d.restaurante_id": restaurantID}).
		Where(squirrel.GtOrEq{"d.data": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"d.data": endDate.Format(time.DateOnly)}).
		OrderBy("d.data ASC", "d.id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *expenseRepository) ListByPeriod(ctx context.Context, restaurantID string, startDate, endDate time.Time) ([]domain.ExpenseRow, error) {
	query, args, err := expensesByPeriodQuery(restaurantID, startDate, endDate).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	expenses := make([]domain.ExpenseRow, 0)
	for rows.Next() {
		var row domain.ExpenseRow
		if err := rows.Scan(
			&row.ID,
			&row.Date,
			&row.Name,
			&row.Category,
			&row.Subcategory,
			&row.Kind,
			&row.Amount,
			&row.Paid,
			&row.DueDate,
			&row.PaidDate,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear despesa: %w", err)
		}
		expenses = append(expenses, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return expenses, nil
}
