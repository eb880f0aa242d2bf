package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/feasibility-api/pkg/apiErrors"
)

type stubRetentionJob struct {
	accept   bool
	triggers int
}

func (s *stubRetentionJob) TriggerManualPurge() bool {
	s.triggers++
	return s.accept
}

func (s *stubRetentionJob) GetStatus() map[string]any {
	return map[string]any{"retention_enabled": true, "retention_days": 90}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name             string
		target           string
		job              *stubRetentionJob
		expectedStatus   int
		expectedTriggers int
	}{
		{
			name:             "Limpeza iniciada",
			target:           "/v1/cron/retention/run",
			job:              &stubRetentionJob{accept: true},
			expectedStatus:   http.StatusAccepted,
			expectedTriggers: 1,
		},
		{
			name:             "Limpeza já em andamento",
			target:           "/v1/cron/retention/run",
			job:              &stubRetentionJob{accept: false},
			expectedStatus:   http.StatusConflict,
			expectedTriggers: 1,
		},
		{
			name:           "Tipo desconhecido",
			target:         "/v1/cron/meta/run",
			job:            &stubRetentionJob{accept: true},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			routes := CronJobs(CronJobServices{RetentionService: tt.job})

			rec := serve(routes, adminClaims, http.MethodPost, tt.target, "")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedTriggers, tt.job.triggers)
		})
	}

	t.Run("Serviço indisponível", func(t *testing.T) {
		rec := serve(CronJobs(CronJobServices{}), adminClaims, http.MethodPost, "/v1/cron/retention/run", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrInternalServer, decodeAPIError(t, rec).Code)
	})

	t.Run("Analista não executa cron", func(t *testing.T) {
		job := &stubRetentionJob{accept: true}
		rec := serve(CronJobs(CronJobServices{RetentionService: job}), analystClaims, http.MethodPost, "/v1/cron/retention/run", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Zero(t, job.triggers)
	})
}

func TestGetCronStatus(t *testing.T) {
	routes := CronJobs(CronJobServices{RetentionService: &stubRetentionJob{}})

	rec := serve(routes, adminClaims, http.MethodGet, "/v1/cron/status", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var status map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, true, status[CronJobTypeRetention]["retention_enabled"])
	assert.EqualValues(t, 90, status[CronJobTypeRetention]["retention_days"])
}
