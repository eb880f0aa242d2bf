package analyzing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de análises
var (
	ErrAnalysisIDRequired = errors.New("id da análise é obrigatório")
	ErrAnalysisNotFound   = errors.New("análise não encontrada")
	ErrGenerateID         = errors.New("erro ao gerar id da análise")
	ErrExport             = errors.New("erro ao gerar planilha")
)

// AnalysisError é um erro com contexto adicional para análises
type AnalysisError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	AnalysisID string // ID da análise envolvida (quando aplicável)
	Details    string
}

func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

func NewAnalysisError(err error, code string, details string) *AnalysisError {
	return &AnalysisError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewAnalysisErrorWithID(err error, code string, analysisID string, details string) *AnalysisError {
	return &AnalysisError{
		Err:        err,
		Code:       code,
		AnalysisID: analysisID,
		Details:    details,
	}
}
