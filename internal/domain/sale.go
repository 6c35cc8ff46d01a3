package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRow representa uma linha de venda como retornada pela camada de consulta
type SaleRow struct {
	ID            string   `json:"id"`
	Date          string   `json:"data"`
	Channel       *string  `json:"canal"`
	PaymentMethod *string  `json:"forma_pagamento"`
	GrossAmount   *float64 `json:"valor_bruto"`
	OrderCount    *int     `json:"numero_pedidos"`
}

// Sale é a venda já normalizada, com valor bruto nunca negativo
type Sale struct {
	ID            string
	Date          time.Time
	Channel       string
	PaymentMethod string
	GrossAmount   decimal.Decimal
	OrderCount    int
}

