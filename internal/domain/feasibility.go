package domain

import (
	"github.com/shopspring/decimal"
)

// FinancialInputs são os dados informados pelo usuário para a análise de viabilidade
type FinancialInputs struct {
	CustomerName   string          `json:"customer_name"`
	InvestmentCost decimal.Decimal `json:"investment_cost"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
	ContractPeriod int             `json:"contract_period"`
	OTCCost        decimal.Decimal `json:"otc_cost"`
}

// YearlyProjection é a linha de resultado (P&L) de um período
type YearlyProjection struct {
	Year         int             `json:"year"`
	Revenue      decimal.Decimal `json:"revenue"`
	BadDebt      decimal.Decimal `json:"bad_debt"`
	Opex         decimal.Decimal `json:"opex"`
	EBITDA       decimal.Decimal `json:"ebitda"`
	Depreciation decimal.Decimal `json:"depreciation"`
	EBIT         decimal.Decimal `json:"ebit"`
	Tax          decimal.Decimal `json:"tax"`
	NetIncome    decimal.Decimal `json:"net_income"`
}

type CogsProjection struct {
	Year        int             `json:"year"`
	OTCCogs     decimal.Decimal `json:"otc_cogs"`
	MonthlyCogs decimal.Decimal `json:"monthly_cogs"`
	TotalCogs   decimal.Decimal `json:"total_cogs"`
}

type CashFlowProjection struct {
	Year                int             `json:"year"`
	NetIncome           decimal.Decimal `json:"net_income"`
	AddBackDepreciation decimal.Decimal `json:"add_back_depreciation"`
	TotalCashInflow     decimal.Decimal `json:"total_cash_inflow"`
	Capex               decimal.Decimal `json:"capex"`
	NetCashFlow         decimal.Decimal `json:"net_cash_flow"`
	CumulativeCashFlow  decimal.Decimal `json:"cumulative_cash_flow"`
}

// PaybackPeriod representa o tempo até o fluxo de caixa acumulado ficar positivo
type PaybackPeriod struct {
	Years       int `json:"years"`
	Months      int `json:"months"`
	TotalMonths int `json:"total_months"`
}

// CalculationResults agrega todos os totais, projeções e indicadores de uma análise.
// IRR é armazenado em percentual (para exibição); a comparação com o WACC é feita
// com a taxa fracionária antes da conversão.
type CalculationResults struct {
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	OTCRevenue         decimal.Decimal `json:"otc_revenue"`
	MonthlyTotal       decimal.Decimal `json:"monthly_total"`
	OTCCogs            decimal.Decimal `json:"otc_cogs"`
	MonthlyCogs        decimal.Decimal `json:"monthly_cogs"`
	TotalCogs          decimal.Decimal `json:"total_cogs"`
	CostIBL            decimal.Decimal `json:"cost_ibl"`
	CostOBL            decimal.Decimal `json:"cost_obl"`
	TotalOpex          decimal.Decimal `json:"total_opex"`
	MarketingCost      decimal.Decimal `json:"marketing_cost"`
	OperationalCost    decimal.Decimal `json:"operational_cost"`
	AnnualDepreciation decimal.Decimal `json:"annual_depreciation"`

	YearlyProjections   []YearlyProjection   `json:"yearly_projections"`
	CashFlowProjections []CashFlowProjection `json:"cash_flow_projections"`
	CogsProjections     []CogsProjection     `json:"cogs_projections"`

	NPV            decimal.Decimal `json:"npv"`
	IRR            float64         `json:"irr"`
	IRRConverged   bool            `json:"irr_converged"`
	IRRIterations  int             `json:"irr_iterations"`
	IRRFailure     string          `json:"irr_failure,omitempty"`
	PaybackPeriod  PaybackPeriod   `json:"payback_period"`
	PaybackFailure string          `json:"payback_failure,omitempty"`
	IsViable       bool            `json:"is_viable"`
}
