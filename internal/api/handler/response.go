package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/feasibility-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON serializa a resposta com o status informado
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeCodedError escreve o erro com o código do serviço. Erros internos não
// expõem a mensagem original ao cliente.
func writeCodedError(w http.ResponseWriter, code string, err error, fallback string) {
	switch code {
	case apiErrors.ErrInternalServer, apiErrors.ErrDatabaseOperation, apiErrors.ErrInvalidAssumptions, apiErrors.ErrExportFailed:
		logrus.WithError(err).WithField("code", code).Error(fallback)
		apiErrors.WriteError(w, code, fallback, nil)
	default:
		apiErr := apiErrors.FromError(err, code)
		apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
	}
}

// intParam lê um parâmetro numérico da rota
func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	value := httprouter.ParamsFromContext(r.Context()).ByName(name)
	if value == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro "+name+" não fornecido", nil)
		return 0, false
	}

	id, err := strconv.Atoi(value)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro "+name+" inválido", nil)
		return 0, false
	}

	return id, true
}
