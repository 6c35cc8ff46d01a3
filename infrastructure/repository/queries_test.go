package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
)

func TestSalesByPeriodQuery(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	query, args, err := salesByPeriodQuery("rest-1", start, end).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM vendas v")
	assert.Contains(t, query, "v.restaurante_id = $1")
	assert.Contains(t, query, "v.data >= $2")
	assert.Contains(t, query, "v.data <= $3")
	assert.Equal(t, []any{"rest-1", "2025-01-01", "2025-01-31"}, args)
}

func TestExpensesByPeriodQuery(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	query, args, err := expensesByPeriodQuery("rest-1", start, end).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM despesas d")
	assert.Contains(t, query, "to_char(d.data_vencimento, 'YYYY-MM-DD')")
	assert.Contains(t, query, "ORDER BY d.data ASC, d.id ASC")
	assert.Equal(t, []any{"rest-1", "2025-01-01", "2025-01-31"}, args)
}

func TestUpsertRankingQuery(t *testing.T) {
	rankings := []*domain.RestaurantRankingItem{
		{RestaurantID: "r1", Month: "01-2025", RestaurantName: "A", Revenue: decimal.NewFromInt(100), Position: 1},
		{RestaurantID: "r2", Month: "01-2025", RestaurantName: "B", Revenue: decimal.NewFromInt(50), Position: 2},
	}

	query, args, err := upsertRankingQuery(rankings).ToSql()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO restaurant_ranking"))
	assert.Contains(t, query, "ON CONFLICT (restaurant_id, month) DO UPDATE SET")
	assert.Contains(t, query, "$16")
	assert.Len(t, args, 16)
	assert.Equal(t, "r2", args[8])
}
