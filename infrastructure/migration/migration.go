// Package migration aplica o schema do banco na inicialização
package migration

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/feasibility-api/infrastructure/database/postgres"
)

//go:embed schema.sql
var schema string

// Schema retorna o DDL embutido no binário
func Schema() string {
	return schema
}

// Apply executa o DDL. Todas as instruções são idempotentes (IF NOT EXISTS).
func Apply(ctx context.Context, conn postgres.Queryer) error {
	if _, err := conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migration: erro ao aplicar schema: %w", err)
	}

	logrus.Info("Schema do banco aplicado com sucesso")
	return nil
}
