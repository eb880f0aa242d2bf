package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalysisRecord é a análise persistida: as entradas, as premissas vigentes no
// momento do cálculo e um resumo dos indicadores
type AnalysisRecord struct {
	ID             string          `json:"id"`
	CustomerName   string          `json:"customer_name"`
	InvestmentCost decimal.Decimal `json:"investment_cost"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
	ContractPeriod int             `json:"contract_period"`
	OTCCost        decimal.Decimal `json:"otc_cost"`
	Assumptions    Assumptions     `json:"assumptions"`
	NPV            decimal.Decimal `json:"npv"`
	IRR            float64         `json:"irr"`
	IRRConverged   bool            `json:"irr_converged"`
	PaybackMonths  int             `json:"payback_months"`
	IsViable       bool            `json:"is_viable"`
	CreatedBy      int             `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
}

func (r *AnalysisRecord) Inputs() FinancialInputs {
	return FinancialInputs{
		CustomerName:   r.CustomerName,
		InvestmentCost: r.InvestmentCost,
		MonthlyRevenue: r.MonthlyRevenue,
		ContractPeriod: r.ContractPeriod,
		OTCCost:        r.OTCCost,
	}
}

// Analysis combina o registro persistido com os resultados recalculados
type Analysis struct {
	Record  *AnalysisRecord     `json:"record"`
	Results *CalculationResults `json:"results"`
}

// AnalysisFilter restringe a listagem. CreatedFrom e CreatedTo são dias
// inteiros, ambos inclusivos.
type AnalysisFilter struct {
	CustomerName string
	CreatedBy    int
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
	Limit        uint64
	Offset       uint64
}
