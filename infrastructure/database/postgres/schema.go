package postgres

import (
	"context"
	_ "embed"
)

// Schema cria as tabelas usadas pela API. Todos os comandos são idempotentes.
//
//go:embed schema.sql
var Schema string

// Migrate aplica o Schema na conexão
func (c *Connection) Migrate(ctx context.Context) error {
	_, err := c.DB.ExecContext(ctx, Schema)
	return err
}
