package feasibility

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput = errors.New("dados de entrada inválidos")

	// Falhas numéricas
	ErrIRRNotConverged   = errors.New("irr: newton-raphson não convergiu dentro do limite de iterações")
	ErrIRRZeroDerivative = errors.New("irr: derivada nula, atualização indefinida")
	ErrIRRDiverged       = errors.New("irr: iteração saiu do domínio (taxa <= -100%)")
	ErrPaybackZeroFlow   = errors.New("payback: fluxo de caixa nulo no período de recuperação")
)

// FieldError descreve um campo de entrada rejeitado
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// InputError agrupa todas as violações de pré-condição de uma requisição
type InputError struct {
	Fields []FieldError
}

func (e *InputError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput.Error(), strings.Join(parts, "; "))
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// NumericalError é uma falha local de cálculo. O resultado parcial continua válido
// para exibição, mas não deve ser tratado como indicador confiável.
type NumericalError struct {
	Err        error
	Iterations int
	Rate       float64
}

func (e *NumericalError) Error() string {
	if e.Iterations > 0 {
		return fmt.Sprintf("%s (iterações: %d, última taxa: %.6f)", e.Err.Error(), e.Iterations, e.Rate)
	}
	return e.Err.Error()
}

func (e *NumericalError) Unwrap() error {
	return e.Err
}
