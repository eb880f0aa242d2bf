// Package feasibility contém o motor de cálculo da análise de viabilidade:
// projeções de resultado, fluxo de caixa, VPL, TIR e payback.
package feasibility

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/feasibility-api/internal/domain"
)

var twelve = decimal.NewFromInt(12)

// Projection é a saída do motor de projeção: os totais do contrato e as
// sequências anuais de resultado e de custo dos produtos vendidos
type Projection struct {
	OTCRevenue         decimal.Decimal
	MonthlyTotal       decimal.Decimal
	TotalRevenue       decimal.Decimal
	OTCCogs            decimal.Decimal
	MonthlyCogs        decimal.Decimal
	TotalCogs          decimal.Decimal
	MarketingCost      decimal.Decimal
	OperationalCost    decimal.Decimal
	TotalOpex          decimal.Decimal
	AnnualDepreciation decimal.Decimal

	Yearly []domain.YearlyProjection
	Cogs   []domain.CogsProjection
}

// Project distribui receita, COGS, opex, depreciação e imposto ao longo do horizonte.
//
// O período 0 recebe apenas a receita OTC. A receita recorrente é reconhecida em
// anos cheios limitados ao valor restante do contrato; contratos mais longos que o
// horizonte ficam truncados no último período. Opex e depreciação são distribuídos
// de forma linear nos períodos 1..N, independentemente da receita reconhecida.
func Project(inputs domain.FinancialInputs, assumptions domain.Assumptions) Projection {
	periods := decimal.NewFromInt(int64(assumptions.DepreciationPeriods))
	cogsRate := decimal.NewFromFloat(assumptions.COGSRate)
	badDebtRate := decimal.NewFromFloat(assumptions.BadDebtRate)
	taxRate := decimal.NewFromFloat(assumptions.TaxRate)

	p := Projection{}
	p.OTCRevenue = inputs.MonthlyRevenue.Mul(decimal.NewFromFloat(assumptions.OTCMultiplier))
	p.MonthlyTotal = inputs.MonthlyRevenue.Mul(decimal.NewFromInt(int64(inputs.ContractPeriod)))
	p.TotalRevenue = p.OTCRevenue.Add(p.MonthlyTotal)

	p.OTCCogs = p.OTCRevenue.Mul(cogsRate)
	p.MonthlyCogs = p.MonthlyTotal.Mul(cogsRate)
	p.TotalCogs = p.OTCCogs.Add(p.MonthlyCogs)

	p.MarketingCost = p.TotalRevenue.Mul(decimal.NewFromFloat(assumptions.MarketingRate))
	p.OperationalCost = inputs.InvestmentCost.Mul(decimal.NewFromFloat(assumptions.OperationalRate))
	p.TotalOpex = p.MarketingCost.Add(p.OperationalCost)

	p.AnnualDepreciation = inputs.InvestmentCost.Div(periods)
	periodOpex := p.TotalOpex.Div(periods)

	annualRecurring := inputs.MonthlyRevenue.Mul(twelve)
	contractYears := ceilDiv(inputs.ContractPeriod, 12)

	horizon := assumptions.ProjectionPeriods()
	p.Yearly = make([]domain.YearlyProjection, 0, horizon)
	p.Cogs = make([]domain.CogsProjection, 0, horizon)

	for year := 0; year < horizon; year++ {
		revenue := decimal.Zero
		otcCogs := decimal.Zero
		monthlyCogs := decimal.Zero

		switch {
		case year == 0:
			revenue = p.OTCRevenue
			otcCogs = p.OTCCogs
		case year <= contractYears:
			remaining := p.MonthlyTotal.Sub(annualRecurring.Mul(decimal.NewFromInt(int64(year - 1))))
			revenue = decimal.Min(annualRecurring, remaining)
			monthlyCogs = revenue.Mul(cogsRate)
		}

		opex := decimal.Zero
		depreciation := decimal.Zero
		if year > 0 {
			opex = periodOpex
			depreciation = p.AnnualDepreciation
		}

		badDebt := revenue.Mul(badDebtRate)
		ebitda := revenue.Sub(badDebt).Sub(opex)
		ebit := ebitda.Sub(depreciation)
		tax := ebit.Mul(taxRate)

		p.Yearly = append(p.Yearly, domain.YearlyProjection{
			Year:         year,
			Revenue:      revenue,
			BadDebt:      badDebt,
			Opex:         opex,
			EBITDA:       ebitda,
			Depreciation: depreciation,
			EBIT:         ebit,
			Tax:          tax,
			NetIncome:    ebit.Sub(tax),
		})

		p.Cogs = append(p.Cogs, domain.CogsProjection{
			Year:        year,
			OTCCogs:     otcCogs,
			MonthlyCogs: monthlyCogs,
			TotalCogs:   otcCogs.Add(monthlyCogs),
		})
	}

	return p
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
