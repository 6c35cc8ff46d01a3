package main

import (
	"context"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// snapshot guarda em memória as linhas lidas dos arquivos JSON e atende as
// interfaces de repositório usadas pelo serviço de relatórios.
type snapshot struct {
	restaurant *domain.Restaurant
	sales      []domain.SaleRow
	expenses   []domain.ExpenseRow
}

func loadSnapshot(restaurant *domain.Restaurant, salesPath, expensesPath string) (*snapshot, error) {
	s := &snapshot{restaurant: restaurant}

	if err := readJSON(salesPath, &s.sales); err != nil {
		return nil, errors.Wrap(err, "erro ao ler vendas")
	}

	if expensesPath != "" {
		if err := readJSON(expensesPath, &s.expenses); err != nil {
			return nil, errors.Wrap(err, "erro ao ler despesas")
		}
	}

	return s, nil
}

func readJSON(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}

func (s *snapshot) GetByID(_ context.Context, id string) (*domain.Restaurant, error) {
	if s.restaurant == nil || s.restaurant.ID != id {
		return nil, nil
	}
	return s.restaurant, nil
}

func (s *snapshot) ListActive(context.Context) ([]*domain.Restaurant, error) {
	return []*domain.Restaurant{s.restaurant}, nil
}

type saleSnapshot struct{ *snapshot }

func (s saleSnapshot) ListByPeriod(_ context.Context, _ string, startDate, endDate time.Time) ([]domain.SaleRow, error) {
	rows := make([]domain.SaleRow, 0, len(s.sales))
	for _, row := range s.sales {
		if inWindow(row.Date, startDate, endDate) {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

type expenseSnapshot struct{ *snapshot }

func (s expenseSnapshot) ListByPeriod(_ context.Context, _ string, startDate, endDate time.Time) ([]domain.ExpenseRow, error) {
	rows := make([]domain.ExpenseRow, 0, len(s.expenses))
	for _, row := range s.expenses {
		if inWindow(row.Date, startDate, endDate) {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// inWindow compara apenas a parte de data (YYYY-MM-DD); datas inválidas ficam de fora
func inWindow(date string, startDate, endDate time.Time) bool {
	if len(date) > len(time.DateOnly) {
		date = date[:len(time.DateOnly)]
	}

	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return false
	}

	return !day.Before(startDate) && !day.After(endDate)
}
