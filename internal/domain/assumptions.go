package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidAssumptions = errors.New("premissas financeiras inválidas")

// Assumptions reúne as premissas fixas usadas pelo motor de cálculo.
// Taxas são frações (0.178 = 17,8%).
type Assumptions struct {
	WACC                float64 `json:"wacc"`
	TaxRate             float64 `json:"tax_rate"`
	BadDebtRate         float64 `json:"bad_debt_rate"`
	MarketingRate       float64 `json:"marketing_rate"`
	OperationalRate     float64 `json:"operational_rate"`
	DepreciationPeriods int     `json:"depreciation_periods"`
	OTCMultiplier       float64 `json:"otc_multiplier"`
	COGSRate            float64 `json:"cogs_rate"`
	IRRInitialGuess     float64 `json:"irr_initial_guess"`
	IRRTolerance        float64 `json:"irr_tolerance"`
	IRRMaxIterations    int     `json:"irr_max_iterations"`
}

func DefaultAssumptions() Assumptions {
	return Assumptions{
		WACC:                0.178,
		TaxRate:             0.11,
		BadDebtRate:         0.05,
		MarketingRate:       0.30,
		OperationalRate:     0.20,
		DepreciationPeriods: 6,
		OTCMultiplier:       2.5,
		COGSRate:            0.70,
		IRRInitialGuess:     0.10,
		IRRTolerance:        1e-6,
		IRRMaxIterations:    100,
	}
}

// ProjectionPeriods retorna o horizonte modelado: o período 0 (upfront) mais um
// período por ano de depreciação
func (a Assumptions) ProjectionPeriods() int {
	return a.DepreciationPeriods + 1
}

func (a Assumptions) Validate() error {
	switch {
	case a.DepreciationPeriods <= 0:
		return fmt.Errorf("%w: depreciation_periods deve ser maior que zero", ErrInvalidAssumptions)
	case a.WACC <= -1:
		return fmt.Errorf("%w: wacc deve ser maior que -1", ErrInvalidAssumptions)
	case a.TaxRate < 0, a.BadDebtRate < 0, a.MarketingRate < 0, a.OperationalRate < 0,
		a.OTCMultiplier < 0, a.COGSRate < 0:
		return fmt.Errorf("%w: taxas não podem ser negativas", ErrInvalidAssumptions)
	case a.IRRInitialGuess <= -1:
		return fmt.Errorf("%w: irr_initial_guess deve ser maior que -1", ErrInvalidAssumptions)
	case a.IRRTolerance <= 0:
		return fmt.Errorf("%w: irr_tolerance deve ser positiva", ErrInvalidAssumptions)
	case a.IRRMaxIterations <= 0:
		return fmt.Errorf("%w: irr_max_iterations deve ser maior que zero", ErrInvalidAssumptions)
	}
	return nil
}
