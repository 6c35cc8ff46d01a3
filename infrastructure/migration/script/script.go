// Script de carga inicial: aplica o schema e insere restaurantes, vendas e despesas
// de demonstração para uso local.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/vfg2006/restaurant-dre-api/infrastructure/database/postgres"
	"github.com/vfg2006/restaurant-dre-api/internal/config"
	"github.com/vfg2006/restaurant-dre-api/internal/domain"
	"github.com/vfg2006/restaurant-dre-api/pkg/log"
	"github.com/vfg2006/restaurant-dre-api/pkg/utils"
)

const (
	idLength = 6
	seedDays = 120
)

var (
	channels       = []string{"Salão", "iFood", "Rappi", "Delivery Próprio"}
	paymentMethods = []string{"Pix", "Crédito", "Débito", "Dinheiro", "Vale Refeição"}
)

type restaurantSeed struct {
	ID   string
	Name string
	// base é o faturamento diário médio do restaurante
	base float64
}

type seedData struct {
	restaurants []restaurantSeed
	sales       map[string][]domain.SaleRow
	expenses    map[string][]domain.ExpenseRow
}

type monthlyExpense struct {
	name        string
	category    domain.ExpenseCategory
	subcategory string
	kind        domain.ExpenseKind
	// share é a fração do faturamento do mês
	share float64
}

var monthlyExpenses = []monthlyExpense{
	{"Simples Nacional", domain.CategoryTaxes, "DAS", domain.KindVariable, 0.06},
	{"Insumos", domain.CategoryCMV, "Hortifruti", domain.KindVariable, 0.12},
	{"Carnes", domain.CategoryCMV, "Açougue", domain.KindVariable, 0.14},
	{"Taxas de aplicativo", domain.CategorySalesExpenses, "Comissão", domain.KindVariable, 0.07},
	{"Folha de pagamento", domain.CategoryLabor, "Salários", domain.KindFixed, 0.18},
	{"Impulsionamento", domain.CategoryMarketing, "Redes sociais", domain.KindFixed, 0.02},
	{"Aluguel", domain.CategoryOccupancy, "Aluguel", domain.KindFixed, 0.08},
	{"Energia", domain.CategoryOccupancy, "Utilidades", domain.KindFixed, 0.03},
	{"Manutenção de equipamentos", "Manutenção", "", domain.KindFixed, 0.01},
}

func generateID() string {
	id, _ := utils.GenerateID(idLength)
	return id
}

// buildSeed gera os dados de demonstração dos últimos seedDays dias até today
func buildSeed(today time.Time, rng *rand.Rand) seedData {
	data := seedData{
		restaurants: []restaurantSeed{
			{ID: generateID(), Name: "Cantina Bella Nonna", base: 4200},
			{ID: generateID(), Name: "Sabor do Sertão", base: 2800},
			{ID: generateID(), Name: "Sushi Kazan", base: 5600},
		},
		sales:    make(map[string][]domain.SaleRow),
		expenses: make(map[string][]domain.ExpenseRow),
	}

	start := today.AddDate(0, 0, -seedDays)

	for _, r := range data.restaurants {
		monthRevenue := make(map[string]float64)

		for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
			for _, channel := range channels {
				amount := round2(r.base / float64(len(channels)) * (0.6 + rng.Float64()*0.8))
				orders := max(1, int(amount/(45+rng.Float64()*30)))
				payment := paymentMethods[rng.IntN(len(paymentMethods))]

				data.sales[r.ID] = append(data.sales[r.ID], domain.SaleRow{
					ID:            generateID(),
					Date:          day.Format(time.DateOnly),
					Channel:       &channel,
					PaymentMethod: &payment,
					GrossAmount:   &amount,
					OrderCount:    &orders,
				})
				monthRevenue[day.Format("2006-01")] += amount
			}
		}

		for month, revenue := range monthRevenue {
			first, _ := time.Parse("2006-01", month)
			for _, e := range monthlyExpenses {
				amount := round2(revenue * e.share)
				category, kind := string(e.category), string(e.kind)
				subcategory := e.subcategory
				dueDate := first.AddDate(0, 0, 9).Format(time.DateOnly)
				paid := first.AddDate(0, 1, 0).Before(today)

				row := domain.ExpenseRow{
					ID:       generateID(),
					Date:     first.AddDate(0, 0, 4).Format(time.DateOnly),
					Name:     e.name,
					Category: &category,
					Kind:     &kind,
					Amount:   &amount,
					Paid:     &paid,
					DueDate:  &dueDate,
				}
				if subcategory != "" {
					row.Subcategory = &subcategory
				}
				if paid {
					row.PaidDate = &dueDate
				}

				data.expenses[r.ID] = append(data.expenses[r.ID], row)
			}
		}
	}

	return data
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

func insertSeed(ctx context.Context, tx *sql.Tx, data seedData) error {
	logger := log.Component("seed")

	for _, r := range data.restaurants {
		if _, err := tx.ExecContext(ctx, `INSERT INTO restaurantes (id, nome, ativo) VALUES ($1, $2, TRUE)`, r.ID, r.Name); err != nil {
			return fmt.Errorf("erro ao inserir restaurante %s: %w", r.Name, err)
		}

		saleStmt, err := tx.PrepareContext(ctx, `INSERT INTO vendas (id, restaurante_id, data, canal, forma_pagamento, valor_bruto, numero_pedidos) VALUES ($1, $2, $3, $4, $5, $6, $7)`)
		if err != nil {
			return fmt.Errorf("erro ao preparar statement de vendas: %w", err)
		}

		for _, s := range data.sales[r.ID] {
			if _, err := saleStmt.ExecContext(ctx, s.ID, r.ID, s.Date, s.Channel, s.PaymentMethod, s.GrossAmount, s.OrderCount); err != nil {
				saleStmt.Close()
				return fmt.Errorf("erro ao inserir venda %s: %w", s.ID, err)
			}
		}
		saleStmt.Close()

		expenseStmt, err := tx.PrepareContext(ctx, `INSERT INTO despesas (id, restaurante_id, data, nome, categoria, subcategoria, tipo, valor, pago, data_vencimento, data_pagamento) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`)
		if err != nil {
			return fmt.Errorf("erro ao preparar statement de despesas: %w", err)
		}

		for _, e := range data.expenses[r.ID] {
			if _, err := expenseStmt.ExecContext(ctx, e.ID, r.ID, e.Date, e.Name, e.Category, e.Subcategory, e.Kind, e.Amount, e.Paid, e.DueDate, e.PaidDate); err != nil {
				expenseStmt.Close()
				return fmt.Errorf("erro ao inserir despesa %s: %w", e.ID, err)
			}
		}
		expenseStmt.Close()

		logger.WithFields(log.Fields{
			"restaurant_id": r.ID,
			"sales":         len(data.sales[r.ID]),
			"expenses":      len(data.expenses[r.ID]),
		}).Infof("Restaurante %s carregado", r.Name)
	}

	return nil
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	log.Setup(cfg.App.LogLevel)
	logger := log.Component("seed")
	logger.Info("Iniciando script de carga inicial...")

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("ERRO ao conectar ao banco de dados")
	}
	defer conn.Close()

	if err := conn.Migrate(ctx); err != nil {
		logger.WithError(err).Fatal("ERRO ao aplicar schema")
	}
	logger.Info("Schema aplicado com sucesso")

	startTime := time.Now()
	data := buildSeed(time.Now().UTC().Truncate(24*time.Hour), rand.New(rand.NewPCG(42, 2024)))

	if err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return insertSeed(ctx, tx, data)
	}); err != nil {
		logger.WithError(err).Error("ERRO na carga inicial, transação revertida")
		os.Exit(1)
	}

	logger.Infof("Carga inicial concluída em %v!", time.Since(startTime))
}
