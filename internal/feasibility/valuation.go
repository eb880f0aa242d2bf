package feasibility

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/feasibility-api/internal/domain"
)

// NPV desconta cada fluxo ao período 0: Σ CF_t / (1+rate)^t
func NPV(cashFlows []decimal.Decimal, rate float64) decimal.Decimal {
	base := decimal.NewFromFloat(rate).Add(decimal.NewFromInt(1))
	factor := decimal.NewFromInt(1)
	npv := decimal.Zero

	for t, cf := range cashFlows {
		if t > 0 {
			factor = factor.Mul(base)
		}
		npv = npv.Add(cf.Div(factor))
	}

	return npv
}

type IRRSettings struct {
	InitialGuess  float64
	Tolerance     float64
	MaxIterations int
}

func IRRSettingsFrom(assumptions domain.Assumptions) IRRSettings {
	return IRRSettings{
		InitialGuess:  assumptions.IRRInitialGuess,
		Tolerance:     assumptions.IRRTolerance,
		MaxIterations: assumptions.IRRMaxIterations,
	}
}

// IRRResult carrega a taxa fracionária encontrada (0.21 = 21%)
type IRRResult struct {
	Rate       float64
	Iterations int
	Converged  bool
}

// IRR resolve Σ CF_t/(1+r)^t = 0 por Newton-Raphson.
//
// O resultado sempre traz a melhor estimativa disponível. Quando o método não
// converge, a derivada zera ou a taxa sai do domínio (r <= -1), o erro retornado
// é um *NumericalError e Converged fica false.
func IRR(cashFlows []decimal.Decimal, settings IRRSettings) (IRRResult, error) {
	flows := make([]float64, len(cashFlows))
	for i, cf := range cashFlows {
		flows[i] = cf.InexactFloat64()
	}

	rate := settings.InitialGuess
	for i := 1; i <= settings.MaxIterations; i++ {
		value, derivative := npvWithDerivative(flows, rate)
		if derivative == 0 || math.IsNaN(derivative) || math.IsInf(derivative, 0) {
			return IRRResult{Rate: rate, Iterations: i}, &NumericalError{Err: ErrIRRZeroDerivative, Iterations: i, Rate: rate}
		}

		next := rate - value/derivative
		if math.IsNaN(next) || math.IsInf(next, 0) || next <= -1 {
			return IRRResult{Rate: rate, Iterations: i}, &NumericalError{Err: ErrIRRDiverged, Iterations: i, Rate: rate}
		}

		if math.Abs(next-rate) < settings.Tolerance {
			return IRRResult{Rate: next, Iterations: i, Converged: true}, nil
		}

		rate = next
	}

	return IRRResult{Rate: rate, Iterations: settings.MaxIterations},
		&NumericalError{Err: ErrIRRNotConverged, Iterations: settings.MaxIterations, Rate: rate}
}

// npvWithDerivative calcula o VPL e sua derivada em relação à taxa
func npvWithDerivative(flows []float64, rate float64) (float64, float64) {
	var value, derivative float64
	for t, cf := range flows {
		factor := math.Pow(1+rate, float64(t))
		value += cf / factor
		derivative -= float64(t) * cf / (factor * (1 + rate))
	}
	return value, derivative
}
