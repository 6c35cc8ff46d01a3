package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
)

func TestRenderDRE(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	report := &domain.DREReport{
		RestaurantName: "Cantina Central",
		Filters:        &domain.ReportFilters{StartDate: &start, EndDate: &end},
		DRE: &domain.DREResult{
			Revenue:            decimal.NewFromInt(1500),
			CMV:                decimal.NewFromInt(300),
			Labor:              decimal.NewFromInt(200),
			TotalVariableCosts: decimal.NewFromInt(300),
			TotalFixedExpenses: decimal.NewFromInt(200),
			GrossProfit:        decimal.NewFromInt(1200),
			NetProfit:          decimal.NewFromInt(1000),
		},
		Breakeven: &domain.BreakevenResult{Revenue: decimal.NewFromInt(250), Orders: 13, Reachable: true},
		TopChannels: []domain.RankedValue{
			{Key: "Salão", Value: decimal.NewFromInt(1500)},
		},
	}

	doc, err := NewRenderer().RenderDRE(report)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestRenderDRESemDados(t *testing.T) {
	_, err := NewRenderer().RenderDRE(&domain.DREReport{})
	assert.Error(t, err)
}
