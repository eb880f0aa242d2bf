package feasibility

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/feasibility-api/internal/domain"
)

// BuildCashFlows deriva o fluxo de caixa de cada período a partir do resultado:
// lucro líquido + depreciação (não-caixa) - capex. O capex é todo lançado no período 0.
func BuildCashFlows(yearly []domain.YearlyProjection, investmentCost decimal.Decimal) []domain.CashFlowProjection {
	cashFlows := make([]domain.CashFlowProjection, 0, len(yearly))
	cumulative := decimal.Zero

	for i, projection := range yearly {
		capex := decimal.Zero
		if i == 0 {
			capex = investmentCost
		}

		inflow := projection.NetIncome.Add(projection.Depreciation)
		net := inflow.Sub(capex)
		cumulative = cumulative.Add(net)

		cashFlows = append(cashFlows, domain.CashFlowProjection{
			Year:                projection.Year,
			NetIncome:           projection.NetIncome,
			AddBackDepreciation: projection.Depreciation,
			TotalCashInflow:     inflow,
			Capex:               capex,
			NetCashFlow:         net,
			CumulativeCashFlow:  cumulative,
		})
	}

	return cashFlows
}

func netCashFlows(cashFlows []domain.CashFlowProjection) []decimal.Decimal {
	flows := make([]decimal.Decimal, len(cashFlows))
	for i, cf := range cashFlows {
		flows[i] = cf.NetCashFlow
	}
	return flows
}
