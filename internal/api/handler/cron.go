package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/feasibility-api/pkg/apiErrors"
	"github.com/vfg2006/feasibility-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeRetention = "retention"
)

// RetentionJob é a limpeza agendada de análises antigas
type RetentionJob interface {
	TriggerManualPurge() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	RetentionService RetentionJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeRetention:
			if services.RetentionService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de retenção de análises não disponível", nil)
				return
			}

			if !services.RetentionService.TriggerManualPurge() {
				writeJSON(w, http.StatusConflict, map[string]any{
					"message": "Cron job já em andamento ou sem prazo de retenção configurado",
					"type":    cronType,
				})
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: retention", nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("cron: execução manual iniciada")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.RetentionService != nil {
			status[CronJobTypeRetention] = services.RetentionService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
