// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/feasibility-api/infrastructure/database/postgres"
	"github.com/vfg2006/feasibility-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	analysisTable = "financial_analysis"

	defaultListLimit = 50
	maxListLimit     = 200
)

var analysisColumns = []string{
	"id",
	"customer_name",
	"investment_cost",
	"monthly_revenue",
	"contract_period",
	"otc_cost",
	"assumptions",
	"npv",
	"irr",
	"irr_converged",
	"payback_months",
	"is_viable",
	"created_by",
	"created_at",
}

type AnalysisRepository interface {
	Save(ctx context.Context, record *domain.AnalysisRecord) error
	GetByID(ctx context.Context, id string) (*domain.AnalysisRecord, error)
	List(ctx context.Context, filter domain.AnalysisFilter) ([]*domain.AnalysisRecord, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type analysisRepository struct {
	conn postgres.Queryer
}

func NewAnalysisRepository(conn postgres.Queryer) AnalysisRepository {
	return &analysisRepository{
		conn: conn,
	}
}

func (r *analysisRepository) Save(ctx context.Context, record *domain.AnalysisRecord) error {
	query, args, err := insertAnalysisQuery(record)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&record.CreatedAt); err != nil {
		return fmt.Errorf("erro ao salvar análise %s: %w", record.ID, err)
	}

	return nil
}

func (r *analysisRepository) GetByID(ctx context.Context, id string) (*domain.AnalysisRecord, error) {
	query, args, err := squirrel.
		Select(analysisColumns...).
		From(analysisTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record, err := scanAnalysis(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar análise %s: %w", id, err)
	}

	return record, nil
}

func (r *analysisRepository) List(ctx context.Context, filter domain.AnalysisFilter) ([]*domain.AnalysisRecord, error) {
	query, args, err := listAnalysesQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.AnalysisRecord, 0)
	for rows.Next() {
		record, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear análise: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *analysisRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(analysisTable).
		Where(squirrel.Lt{"created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover análises antigas: %w", err)
	}

	return result.RowsAffected()
}

// ILIKE usa barra invertida como escape padrão no Postgres. Sem isso "a_b"
// também encontraria "axb".
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func insertAnalysisQuery(record *domain.AnalysisRecord) (string, []interface{}, error) {
	assumptions, err := json.Marshal(record.Assumptions)
	if err != nil {
		return "", nil, err
	}

	// TIR sem convergência não é um valor confiável, fica nula no banco
	var irr interface{}
	if record.IRRConverged {
		irr = record.IRR
	}

	var createdBy interface{}
	if record.CreatedBy != 0 {
		createdBy = record.CreatedBy
	}

	return squirrel.
		Insert(analysisTable).
		Columns(analysisColumns[:len(analysisColumns)-1]...).
		Values(
			record.ID,
			record.CustomerName,
			record.InvestmentCost,
			record.MonthlyRevenue,
			record.ContractPeriod,
			record.OTCCost,
			string(assumptions),
			record.NPV,
			irr,
			record.IRRConverged,
			record.PaybackMonths,
			record.IsViable,
			createdBy,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func listAnalysesQuery(filter domain.AnalysisFilter) squirrel.SelectBuilder {
	limit := filter.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	queryBuilder := squirrel.
		Select(analysisColumns...).
		From(analysisTable).
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(filter.Offset).
		PlaceholderFormat(squirrel.Dollar)

	if name := strings.TrimSpace(filter.CustomerName); name != "" {
		queryBuilder = queryBuilder.Where(squirrel.ILike{"customer_name": "%" + likeEscaper.Replace(name) + "%"})
	}

	if filter.CreatedBy != 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"created_by": filter.CreatedBy})
	}

	if filter.CreatedFrom != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"created_at": *filter.CreatedFrom})
	}

	if filter.CreatedTo != nil {
		queryBuilder = queryBuilder.Where(squirrel.Lt{"created_at": filter.CreatedTo.AddDate(0, 0, 1)})
	}

	return queryBuilder
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAnalysis(row rowScanner) (*domain.AnalysisRecord, error) {
	var (
		record        domain.AnalysisRecord
		assumptions   []byte
		npv           decimal.NullDecimal
		irr           sql.NullFloat64
		paybackMonths sql.NullInt64
		createdBy     sql.NullInt64
	)

	err := row.Scan(
		&record.ID,
		&record.CustomerName,
		&record.InvestmentCost,
		&record.MonthlyRevenue,
		&record.ContractPeriod,
		&record.OTCCost,
		&assumptions,
		&npv,
		&irr,
		&record.IRRConverged,
		&paybackMonths,
		&record.IsViable,
		&createdBy,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(assumptions, &record.Assumptions); err != nil {
		return nil, fmt.Errorf("premissas inválidas na análise %s: %w", record.ID, err)
	}

	record.NPV = npv.Decimal
	record.IRR = irr.Float64
	record.PaybackMonths = int(paybackMonths.Int64)
	record.CreatedBy = int(createdBy.Int64)

	return &record, nil
}
