package feasibility

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/feasibility-api/internal/domain"
)

// ValidateInputs verifica as pré-condições do motor. Todos os campos inválidos
// são reportados de uma vez.
func ValidateInputs(inputs domain.FinancialInputs) error {
	var fields []FieldError

	if strings.TrimSpace(inputs.CustomerName) == "" {
		fields = append(fields, FieldError{Field: "customer_name", Message: "nome do cliente é obrigatório"})
	}
	if !inputs.InvestmentCost.IsPositive() {
		fields = append(fields, FieldError{Field: "investment_cost", Message: "deve ser maior que zero"})
	}
	if !inputs.MonthlyRevenue.IsPositive() {
		fields = append(fields, FieldError{Field: "monthly_revenue", Message: "deve ser maior que zero"})
	}
	if inputs.ContractPeriod <= 0 {
		fields = append(fields, FieldError{Field: "contract_period", Message: "deve ser maior que zero"})
	}
	if inputs.OTCCost.IsNegative() {
		fields = append(fields, FieldError{Field: "otc_cost", Message: "não pode ser negativo"})
	}

	if len(fields) > 0 {
		return &InputError{Fields: fields}
	}
	return nil
}

// Analyze executa a análise completa de viabilidade.
//
// Entradas ou premissas inválidas retornam erro e nenhum resultado. Falhas
// numéricas (TIR sem convergência, payback indefinido) não interrompem a análise:
// ficam registradas em IRRFailure/PaybackFailure e o investimento não é
// considerado viável sem uma TIR convergida.
func Analyze(inputs domain.FinancialInputs, assumptions domain.Assumptions) (*domain.CalculationResults, error) {
	if err := ValidateInputs(inputs); err != nil {
		return nil, err
	}
	if err := assumptions.Validate(); err != nil {
		return nil, err
	}

	projection := Project(inputs, assumptions)
	cashFlows := BuildCashFlows(projection.Yearly, inputs.InvestmentCost)
	flows := netCashFlows(cashFlows)

	results := &domain.CalculationResults{
		TotalRevenue:        projection.TotalRevenue,
		OTCRevenue:          projection.OTCRevenue,
		MonthlyTotal:        projection.MonthlyTotal,
		OTCCogs:             projection.OTCCogs,
		MonthlyCogs:         projection.MonthlyCogs,
		TotalCogs:           projection.TotalCogs,
		CostIBL:             projection.TotalRevenue,
		CostOBL:             decimal.Zero,
		TotalOpex:           projection.TotalOpex,
		MarketingCost:       projection.MarketingCost,
		OperationalCost:     projection.OperationalCost,
		AnnualDepreciation:  projection.AnnualDepreciation,
		YearlyProjections:   projection.Yearly,
		CashFlowProjections: cashFlows,
		CogsProjections:     projection.Cogs,
		NPV:                 NPV(flows, assumptions.WACC),
	}

	irr, err := IRR(flows, IRRSettingsFrom(assumptions))
	results.IRR = irr.Rate * 100
	results.IRRConverged = irr.Converged
	results.IRRIterations = irr.Iterations
	if err != nil {
		results.IRRFailure = err.Error()
	}

	payback, err := Payback(cashFlows)
	results.PaybackPeriod = payback
	if err != nil {
		results.PaybackFailure = err.Error()
	}

	results.IsViable = results.NPV.IsPositive() && irr.Converged && irr.Rate > assumptions.WACC

	return results, nil
}
