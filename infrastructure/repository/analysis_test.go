package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/feasibility-api/internal/domain"
)

func TestInsertAnalysisQuery(t *testing.T) {
	tests := []struct {
		name              string
		irr               float64
		converged         bool
		createdBy         int
		expectedIRR       interface{}
		expectedCreatedBy interface{}
	}{
		{
			name:              "TIR convergida é persistida",
			irr:               35.78,
			converged:         true,
			createdBy:         7,
			expectedIRR:       35.78,
			expectedCreatedBy: 7,
		},
		{
			name:              "TIR sem convergência fica nula",
			irr:               35.78,
			converged:         false,
			createdBy:         0,
			expectedIRR:       nil,
			expectedCreatedBy: nil,
		},
		{
			name:              "TIR muito alta é enviada sem truncar",
			irr:               8.942794155333207e+08,
			converged:         true,
			createdBy:         7,
			expectedIRR:       8.942794155333207e+08,
			expectedCreatedBy: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := &domain.AnalysisRecord{
				ID:             "aB3dE9",
				CustomerName:   "PT Nusantara Data",
				InvestmentCost: decimal.NewFromInt(600_000_000),
				MonthlyRevenue: decimal.NewFromInt(50_000_000),
				ContractPeriod: 24,
				OTCCost:        decimal.Zero,
				Assumptions:    domain.DefaultAssumptions(),
				NPV:            decimal.NewFromInt(70_710_378),
				IRR:            tt.irr,
				IRRConverged:   tt.converged,
				PaybackMonths:  13,
				IsViable:       tt.converged,
				CreatedBy:      tt.createdBy,
			}

			query, args, err := insertAnalysisQuery(record)
			require.NoError(t, err)

			assert.Contains(t, query, "INSERT INTO financial_analysis")
			assert.Contains(t, query, "$13")
			assert.NotContains(t, query, "$14")
			assert.Contains(t, query, "RETURNING created_at")
			require.Len(t, args, 13)

			assert.Equal(t, "aB3dE9", args[0])
			assert.Contains(t, args[6], `"wacc":0.178`)
			assert.Equal(t, tt.expectedIRR, args[8])
			assert.Equal(t, tt.expectedCreatedBy, args[12])
		})
	}
}

func TestListAnalysesQuery(t *testing.T) {
	tests := []struct {
		name         string
		filter       domain.AnalysisFilter
		contains     []string
		notContains  []string
		expectedArgs []interface{}
	}{
		{
			name:        "Sem filtros usa limite padrão",
			filter:      domain.AnalysisFilter{},
			contains:    []string{"FROM financial_analysis", "ORDER BY created_at DESC", "LIMIT 50"},
			notContains: []string{"WHERE"},
		},
		{
			name:         "Filtro por cliente e autor",
			filter:       domain.AnalysisFilter{CustomerName: " nusantara ", CreatedBy: 3, Limit: 10, Offset: 20},
			contains:     []string{"customer_name ILIKE $1", "created_by = $2", "LIMIT 10", "OFFSET 20"},
			expectedArgs: []interface{}{"%nusantara%", 3},
		},
		{
			name:         "Curingas do ILIKE no nome do cliente são literais",
			filter:       domain.AnalysisFilter{CustomerName: `a_b%c\d`},
			contains:     []string{"customer_name ILIKE $1"},
			expectedArgs: []interface{}{`%a\_b\%c\\d%`},
		},
		{
			name: "Intervalo de datas inclui o último dia",
			filter: domain.AnalysisFilter{
				CreatedFrom: timePtr(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
				CreatedTo:   timePtr(time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)),
			},
			contains: []string{"created_at >= $1", "created_at < $2"},
			expectedArgs: []interface{}{
				time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:     "Limite acima do máximo é reduzido",
			filter:   domain.AnalysisFilter{Limit: 10_000},
			contains: []string{"LIMIT 200"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := listAnalysesQuery(tt.filter).ToSql()
			require.NoError(t, err)

			for _, c := range tt.contains {
				assert.Contains(t, query, c)
			}
			for _, c := range tt.notContains {
				assert.NotContains(t, query, c)
			}
			if tt.expectedArgs != nil {
				assert.Equal(t, tt.expectedArgs, args)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
