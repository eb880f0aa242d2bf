package analyzing

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/feasibility-api/infrastructure/repository"
	"github.com/vfg2006/feasibility-api/internal/config"
	"github.com/vfg2006/feasibility-api/internal/domain"
	"github.com/vfg2006/feasibility-api/internal/feasibility"
	"github.com/vfg2006/feasibility-api/pkg/apiErrors"
	"github.com/vfg2006/feasibility-api/pkg/export"
	"github.com/vfg2006/feasibility-api/pkg/log"
	"github.com/vfg2006/feasibility-api/pkg/utils"
)

type Analyzer interface {
	Calculate(ctx context.Context, inputs domain.FinancialInputs) (*domain.CalculationResults, error)
	CreateAnalysis(ctx context.Context, inputs domain.FinancialInputs, userID int) (*domain.Analysis, error)
	GetAnalysis(ctx context.Context, id string) (*domain.Analysis, error)
	ListAnalyses(ctx context.Context, filter domain.AnalysisFilter) ([]*domain.AnalysisRecord, error)
	Export(ctx context.Context, w io.Writer, inputs domain.FinancialInputs) (string, error)
	ExportAnalysis(ctx context.Context, w io.Writer, id string) (string, error)
	Assumptions() domain.Assumptions
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type Service struct {
	analysisRepo repository.AnalysisRepository
	assumptions  domain.Assumptions
	generateID   func() (string, error)
}

func NewService(analysisRepo repository.AnalysisRepository, cfg *config.Config) Analyzer {
	return &Service{
		analysisRepo: analysisRepo,
		assumptions:  cfg.Finance.Assumptions(),
		generateID:   utils.GenerateID,
	}
}

// Assumptions retorna o conjunto de premissas vigente
func (s *Service) Assumptions() domain.Assumptions {
	return s.assumptions
}

// Calculate executa o motor com as premissas vigentes, sem persistir nada
func (s *Service) Calculate(ctx context.Context, inputs domain.FinancialInputs) (*domain.CalculationResults, error) {
	return s.analyze(ctx, inputs, s.assumptions)
}

func (s *Service) CreateAnalysis(ctx context.Context, inputs domain.FinancialInputs, userID int) (*domain.Analysis, error) {
	inputs.CustomerName = strings.TrimSpace(inputs.CustomerName)

	results, err := s.analyze(ctx, inputs, s.assumptions)
	if err != nil {
		return nil, err
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewAnalysisError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	record := &domain.AnalysisRecord{
		ID:             id,
		CustomerName:   inputs.CustomerName,
		InvestmentCost: inputs.InvestmentCost,
		MonthlyRevenue: inputs.MonthlyRevenue,
		ContractPeriod: inputs.ContractPeriod,
		OTCCost:        inputs.OTCCost,
		Assumptions:    s.assumptions,
		NPV:            results.NPV,
		IRR:            results.IRR,
		IRRConverged:   results.IRRConverged,
		PaybackMonths:  results.PaybackPeriod.TotalMonths,
		IsViable:       results.IsViable,
		CreatedBy:      userID,
	}

	if err := s.analysisRepo.Save(ctx, record); err != nil {
		return nil, NewAnalysisErrorWithID(errors.Wrap(err, "salvar análise"), apiErrors.ErrDatabaseOperation, id, "")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"analysis_id": record.ID,
		"customer":    record.CustomerName,
		"is_viable":   record.IsViable,
		"irr":         utils.RoundWithTwoDecimalPlace(record.IRR),
		"user_id":     userID,
	}).Info("Análise de viabilidade registrada")

	return &domain.Analysis{Record: record, Results: results}, nil
}

// GetAnalysis busca uma análise e recalcula os resultados com as entradas e as
// premissas gravadas junto com ela
func (s *Service) GetAnalysis(ctx context.Context, id string) (*domain.Analysis, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, NewAnalysisError(ErrAnalysisIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	record, err := s.analysisRepo.GetByID(ctx, id)
	if err != nil {
		return nil, NewAnalysisErrorWithID(errors.Wrapf(err, "buscar análise %s", id), apiErrors.ErrDatabaseOperation, id, "")
	}
	if record == nil {
		return nil, NewAnalysisErrorWithID(ErrAnalysisNotFound, apiErrors.ErrAnalysisNotFound, id, id)
	}

	results, err := s.analyze(ctx, record.Inputs(), record.Assumptions)
	if err != nil {
		return nil, err
	}

	return &domain.Analysis{Record: record, Results: results}, nil
}

func (s *Service) ListAnalyses(ctx context.Context, filter domain.AnalysisFilter) ([]*domain.AnalysisRecord, error) {
	records, err := s.analysisRepo.List(ctx, filter)
	if err != nil {
		return nil, NewAnalysisError(errors.Wrap(err, "listar análises"), apiErrors.ErrDatabaseOperation, "")
	}
	return records, nil
}

// Export gera a planilha de uma análise avulsa e retorna o nome sugerido do arquivo
func (s *Service) Export(ctx context.Context, w io.Writer, inputs domain.FinancialInputs) (string, error) {
	results, err := s.analyze(ctx, inputs, s.assumptions)
	if err != nil {
		return "", err
	}

	if err := writeWorkbook(w, inputs, results, s.assumptions); err != nil {
		return "", err
	}

	return export.FileName(inputs.CustomerName), nil
}

func (s *Service) ExportAnalysis(ctx context.Context, w io.Writer, id string) (string, error) {
	analysis, err := s.GetAnalysis(ctx, id)
	if err != nil {
		return "", err
	}

	record := analysis.Record
	if err := writeWorkbook(w, record.Inputs(), analysis.Results, record.Assumptions); err != nil {
		return "", err
	}

	return export.FileName(record.CustomerName), nil
}

// PurgeOlderThan remove as análises criadas antes do corte e retorna quantas foram apagadas
func (s *Service) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	removed, err := s.analysisRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, NewAnalysisError(errors.Wrap(err, "remover análises antigas"), apiErrors.ErrDatabaseOperation, "")
	}
	return removed, nil
}

func (s *Service) analyze(ctx context.Context, inputs domain.FinancialInputs, assumptions domain.Assumptions) (*domain.CalculationResults, error) {
	results, err := feasibility.Analyze(inputs, assumptions)
	switch {
	case errors.Is(err, feasibility.ErrInvalidInput):
		return nil, NewAnalysisError(err, apiErrors.ErrInvalidAnalysisInput, "")
	case errors.Is(err, domain.ErrInvalidAssumptions):
		return nil, NewAnalysisError(err, apiErrors.ErrInvalidAssumptions, "")
	case err != nil:
		return nil, NewAnalysisError(err, apiErrors.ErrInternalServer, "")
	}

	if results.IRRFailure != "" || results.PaybackFailure != "" {
		log.ForContext(ctx).WithFields(log.Fields{
			"customer":        inputs.CustomerName,
			"irr_failure":     results.IRRFailure,
			"payback_failure": results.PaybackFailure,
		}).Warn("Análise concluída com falha numérica")
	}

	return results, nil
}

func writeWorkbook(w io.Writer, inputs domain.FinancialInputs, results *domain.CalculationResults, assumptions domain.Assumptions) error {
	tables := export.BuildTables(inputs, results, assumptions)
	if err := export.WriteXLSX(w, tables); err != nil {
		return NewAnalysisError(ErrExport, apiErrors.ErrExportFailed, err.Error())
	}
	return nil
}
