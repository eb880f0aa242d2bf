package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/feasibility-api/internal/domain"
	"github.com/vfg2006/feasibility-api/internal/feasibility"
	"github.com/vfg2006/feasibility-api/internal/usecases/analyzing"
	"github.com/vfg2006/feasibility-api/pkg/apiErrors"
	"github.com/vfg2006/feasibility-api/pkg/currency"
	"github.com/vfg2006/feasibility-api/pkg/export"
	"github.com/vfg2006/feasibility-api/pkg/log"
	"github.com/vfg2006/feasibility-api/pkg/middleware"
	"github.com/vfg2006/feasibility-api/pkg/utils"
)

// Money aceita um número JSON ou um texto formatado em Rupiah ("Rp 600.000.000")
type Money struct {
	decimal.Decimal
}

func (m *Money) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		m.Decimal = decimal.Zero
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		m.Decimal = decimal.NewFromInt(currency.ParseCurrency(text))
		return nil
	}

	return m.Decimal.UnmarshalJSON(data)
}

type AnalysisRequest struct {
	CustomerName   string `json:"customer_name"`
	InvestmentCost Money  `json:"investment_cost"`
	MonthlyRevenue Money  `json:"monthly_revenue"`
	ContractPeriod int    `json:"contract_period"`
	OTCCost        Money  `json:"otc_cost"`
}

func (req AnalysisRequest) Inputs() domain.FinancialInputs {
	return domain.FinancialInputs{
		CustomerName:   req.CustomerName,
		InvestmentCost: req.InvestmentCost.Decimal,
		MonthlyRevenue: req.MonthlyRevenue.Decimal,
		ContractPeriod: req.ContractPeriod,
		OTCCost:        req.OTCCost.Decimal,
	}
}

func decodeAnalysisRequest(w http.ResponseWriter, r *http.Request) (domain.FinancialInputs, bool) {
	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return domain.FinancialInputs{}, false
	}
	return req.Inputs(), true
}

// CalculateAnalysis executa a análise sem persistir
func CalculateAnalysis(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inputs, ok := decodeAnalysisRequest(w, r)
		if !ok {
			return
		}

		results, err := service.Calculate(r.Context(), inputs)
		if err != nil {
			handleAnalysisError(w, r, err, "Erro ao calcular análise")
			return
		}

		writeJSON(w, http.StatusOK, results)
	}
}

func CreateAnalysis(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		inputs, ok := decodeAnalysisRequest(w, r)
		if !ok {
			return
		}

		analysis, err := service.CreateAnalysis(r.Context(), inputs, userClaims.UserID)
		if err != nil {
			handleAnalysisError(w, r, err, "Erro ao registrar análise")
			return
		}

		writeJSON(w, http.StatusCreated, analysis)
	}
}

func ListAnalyses(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := domain.AnalysisFilter{
			CustomerName: query.Get("customer"),
		}

		var err error
		if filter.Limit, err = parseUintQuery(query.Get("limit")); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
			return
		}
		if filter.Offset, err = parseUintQuery(query.Get("offset")); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro offset inválido", nil)
			return
		}
		if createdBy := query.Get("created_by"); createdBy != "" {
			if filter.CreatedBy, err = strconv.Atoi(createdBy); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro created_by inválido", nil)
				return
			}
		}

		if filter.CreatedFrom, err = utils.ParseDate(query.Get("from")); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro from inválido, use AAAA-MM-DD", nil)
			return
		}
		if filter.CreatedTo, err = utils.ParseDate(query.Get("to")); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro to inválido, use AAAA-MM-DD", nil)
			return
		}
		if filter.CreatedFrom != nil && filter.CreatedTo != nil && filter.CreatedTo.Before(*filter.CreatedFrom) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro to anterior a from", nil)
			return
		}

		records, err := service.ListAnalyses(r.Context(), filter)
		if err != nil {
			handleAnalysisError(w, r, err, "Erro ao listar análises")
			return
		}

		if records == nil {
			records = []*domain.AnalysisRecord{}
		}

		writeJSON(w, http.StatusOK, records)
	}
}

func GetAnalysis(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		analysis, err := service.GetAnalysis(r.Context(), id)
		if err != nil {
			handleAnalysisError(w, r, err, "Erro ao buscar análise")
			return
		}

		writeJSON(w, http.StatusOK, analysis)
	}
}

// ExportAnalysis devolve a planilha de uma análise registrada
func ExportAnalysis(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var buf bytes.Buffer
		fileName, err := service.ExportAnalysis(r.Context(), &buf, id)
		if err != nil {
			handleAnalysisError(w, r, err, "Erro ao exportar análise")
			return
		}

		writeWorkbook(w, r, fileName, &buf)
	}
}

// ExportInputs devolve a planilha de uma análise avulsa, sem persistir
func ExportInputs(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inputs, ok := decodeAnalysisRequest(w, r)
		if !ok {
			return
		}

		var buf bytes.Buffer
		fileName, err := service.Export(r.Context(), &buf, inputs)
		if err != nil {
			handleAnalysisError(w, r, err, "Erro ao exportar análise")
			return
		}

		writeWorkbook(w, r, fileName, &buf)
	}
}

func GetAssumptions(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Assumptions())
	}
}

func writeWorkbook(w http.ResponseWriter, r *http.Request, fileName string, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("export: erro ao enviar planilha")
	}
}

// parseUintQuery aceita apenas valores entre 0 e o máximo de BIGINT do Postgres
func parseUintQuery(value string) (uint64, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.Errorf("valor negativo: %d", n)
	}
	return uint64(n), nil
}

// handleAnalysisError traduz os erros do serviço de análises para a resposta da API.
// Entradas inválidas listam os campos rejeitados em details.
func handleAnalysisError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var inputErr *feasibility.InputError
	if errors.As(err, &inputErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidAnalysisInput, "Dados da análise inválidos", inputErr.Fields)
		return
	}

	var analysisErr *analyzing.AnalysisError
	if errors.As(err, &analysisErr) {
		writeCodedError(w, analysisErr.Code, analysisErr, fallback)
		return
	}

	logrus.WithError(err).WithField("path", r.URL.Path).Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
