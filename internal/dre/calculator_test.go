package dre

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
)

func TestComputeDRE(t *testing.T) {
	t.Run("Exemplo básico - receita, CMV e CMO", func(t *testing.T) {
		sales := NormalizeSales([]domain.SaleRow{
			sale("Salão", "Pix", 1000, 50),
			sale("Delivery", "Pix", 500, 25),
		})
		expenses := NormalizeExpenses([]domain.ExpenseRow{
			expense("CMV", 300),
			expense("CMO", 200),
		})

		result := ComputeDRE(sales, expenses)

		assertDecimal(t, "1500", result.Revenue)
		assertDecimal(t, "300", result.CMV)
		assertDecimal(t, "200", result.Labor)
		assertDecimal(t, "300", result.TotalVariableCosts)
		assertDecimal(t, "200", result.TotalFixedExpenses)
		assertDecimal(t, "500", result.TotalExpenses)
		assertDecimal(t, "1200", result.GrossProfit)
		assertDecimal(t, "80", result.GrossMargin)
		assertDecimal(t, "1000", result.NetProfit)
		assertDecimal(t, "66.7", result.NetMargin.Round(1))
		assertDecimal(t, "20", result.AverageTicket)
		assert.Equal(t, 75, result.TotalOrders)

		require.Len(t, result.RevenueByChannel, 2)
		assertDecimal(t, "1000", result.RevenueByChannel["Salão"])
		assertDecimal(t, "500", result.RevenueByChannel["Delivery"])
		assertDecimal(t, "1500", result.RevenueByPaymentMethod["Pix"])
	})

	t.Run("Sem vendas - margens e ticket zerados", func(t *testing.T) {
		expenses := NormalizeExpenses([]domain.ExpenseRow{expense("Ocupação", 100)})

		result := ComputeDRE(nil, expenses)

		assertDecimal(t, "0", result.Revenue)
		assertDecimal(t, "0", result.GrossMargin)
		assertDecimal(t, "0", result.NetMargin)
		assertDecimal(t, "0", result.AverageTicket)
		assertDecimal(t, "-100", result.NetProfit)
		assert.Equal(t, 0, result.TotalOrders)
	})

	t.Run("Categoria livre - fica fora dos totais e aparece no detalhamento", func(t *testing.T) {
		sales := NormalizeSales([]domain.SaleRow{sale("Salão", "Pix", 1000, 10)})
		expenses := NormalizeExpenses([]domain.ExpenseRow{
			expense("CMV", 100),
			expense("Pró-labore", 400),
		})

		result := ComputeDRE(sales, expenses)

		assertDecimal(t, "100", result.TotalExpenses)
		assertDecimal(t, "400", result.OtherExpenses)
		assertDecimal(t, "400", result.ExpensesByCategory["Pró-labore"])
		assertDecimal(t, "800", result.NetProfit)
	})

	t.Run("Despesas pagas e pendentes", func(t *testing.T) {
		rows := []domain.ExpenseRow{expense("CMV", 100), expense("CMO", 50)}
		rows[0].Paid = boolPtr(true)

		result := ComputeDRE(nil, NormalizeExpenses(rows))

		assertDecimal(t, "100", result.PaidExpenses)
		assertDecimal(t, "50", result.PendingExpenses)
	})

	t.Run("Separação variável e fixa pelo tipo de lançamento", func(t *testing.T) {
		rows := []domain.ExpenseRow{
			expense("Despesas com Vendas", 30),
			expense("Impostos", 20),
			expense("CMO", 100),
			expense("Marketing", 40),
			expense("Aluguel extra", 10),
		}
		rows[0].Kind = stringPtr("taxa_automatica")
		rows[1].Kind = stringPtr("VARIAVEL")
		rows[3].Kind = stringPtr("marketing")

		result := ComputeDRE(nil, NormalizeExpenses(rows))

		assertDecimal(t, "50", result.VariableByKind)
		assertDecimal(t, "150", result.FixedByKind)
		assertDecimal(t, "110", result.ExpensesByKind["fixa"])
		assertDecimal(t, "200", result.VariableByKind.Add(result.FixedByKind))
	})
}

func TestComputeDREInvariantes(t *testing.T) {
	sales := NormalizeSales([]domain.SaleRow{
		sale("Salão", "Pix", 1234.56, 40),
		sale("iFood", "Crédito", 789.10, 21),
		sale("Delivery", "Dinheiro", 99.99, 3),
	})
	expenses := NormalizeExpenses([]domain.ExpenseRow{
		expense("Impostos", 120.5),
		expense("CMV", 640.25),
		expense("Despesas com Vendas", 89.9),
		expense("CMO", 450),
		expense("Marketing", 75.3),
		expense("Ocupação", 300),
		expense("Manutenção", 60),
	})

	result := ComputeDRE(sales, expenses)

	t.Run("Partição entre variáveis e fixas", func(t *testing.T) {
		assert.True(t, result.TotalVariableCosts.Add(result.TotalFixedExpenses).Equal(result.TotalExpenses))
	})

	t.Run("Soma das categorias", func(t *testing.T) {
		sum := decimal.Zero
		for _, category := range domain.DRECategories {
			sum = sum.Add(result.CategoryTotal(category))
		}
		assert.True(t, sum.Equal(result.TotalExpenses))
	})

	t.Run("Identidades de lucro", func(t *testing.T) {
		assert.True(t, result.GrossProfit.Equal(result.Revenue.Sub(result.TotalVariableCosts)))
		assert.True(t, result.NetProfit.Equal(result.GrossProfit.Sub(result.TotalFixedExpenses)))
	})

	t.Run("Receita por canal fecha com a receita", func(t *testing.T) {
		sum := decimal.Zero
		for _, value := range result.RevenueByChannel {
			sum = sum.Add(value)
		}
		assert.True(t, sum.Equal(result.Revenue))
	})

	t.Run("Idempotência", func(t *testing.T) {
		again := ComputeDRE(sales, expenses)
		require.NotNil(t, again)
		assert.Equal(t, result, again)
	})
}
