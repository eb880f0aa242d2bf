package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{"Entrada de análise inválida", ErrInvalidAnalysisInput, http.StatusBadRequest},
		{"Análise não encontrada", ErrAnalysisNotFound, http.StatusNotFound},
		{"Token inválido", ErrInvalidToken, http.StatusUnauthorized},
		{"Privilégio insuficiente", ErrInsufficientPrivilege, http.StatusForbidden},
		{"Rota inexistente", ErrNotFound, http.StatusNotFound},
		{"Código desconhecido vira erro interno", "XYZ_999", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", []string{"detalhe"})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
			assert.Equal(t, []interface{}{"detalhe"}, body.Details)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrDatabaseOperation).Code)

	apiErr := FromError(errors.New("falha"), ErrDatabaseOperation)
	assert.Equal(t, APIError{Code: ErrDatabaseOperation, Message: "falha"}, apiErr)
}
