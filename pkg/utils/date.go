package utils

import (
	"fmt"
	"time"
)

const brazilianDateLayout = "02/01/2006"

// ParseDate interpreta uma data no formato YYYY-MM-DD. String vazia retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, fmt.Errorf("data inválida %q, use o formato YYYY-MM-DD", dateStr)
	}

	return &date, nil
}

// FormatDateBR formata a data como DD/MM/YYYY
func FormatDateBR(date time.Time) string {
	return date.Format(brazilianDateLayout)
}

// FirstDayOfMonth retorna o primeiro dia do mês da data, à meia-noite
func FirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}
