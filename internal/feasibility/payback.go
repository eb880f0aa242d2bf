package feasibility

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/feasibility-api/internal/domain"
)

// Payback localiza o primeiro período com fluxo acumulado >= 0 e interpola a
// fração do ano necessária para zerar o saldo do período anterior.
//
// Se o saldo nunca fica positivo no horizonte, retorna o sentinela
// {último período, 12, horizonte*12}, ou {6, 12, 84} no horizonte padrão.
func Payback(cashFlows []domain.CashFlowProjection) (domain.PaybackPeriod, error) {
	for i, cf := range cashFlows {
		if cf.CumulativeCashFlow.IsNegative() {
			continue
		}

		if i == 0 {
			return domain.PaybackPeriod{}, nil
		}

		previous := cashFlows[i-1].CumulativeCashFlow
		current := cf.NetCashFlow
		if current.IsZero() {
			return domain.PaybackPeriod{}, &NumericalError{Err: ErrPaybackZeroFlow}
		}

		fraction := previous.Abs().Div(current)
		totalYears := decimal.NewFromInt(int64(i - 1)).Add(fraction)
		whole := totalYears.Floor()

		years := int(whole.IntPart())
		months := int(totalYears.Sub(whole).Mul(twelve).Round(0).IntPart())
		if months == 12 {
			years++
			months = 0
		}

		return domain.PaybackPeriod{
			Years:       years,
			Months:      months,
			TotalMonths: int(totalYears.Mul(twelve).Round(0).IntPart()),
		}, nil
	}

	last := len(cashFlows) - 1
	if last < 0 {
		last = 0
	}

	return domain.PaybackPeriod{
		Years:       last,
		Months:      12,
		TotalMonths: len(cashFlows) * 12,
	}, nil
}
