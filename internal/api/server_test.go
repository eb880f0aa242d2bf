package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/feasibility-api/internal/api/handler"
	"github.com/vfg2006/feasibility-api/internal/config"
	"github.com/vfg2006/feasibility-api/internal/domain"
	analyzingMocks "github.com/vfg2006/feasibility-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/feasibility-api/internal/usecases/authenticating"
	authMocks "github.com/vfg2006/feasibility-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/feasibility-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestNewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := analyzingMocks.NewMockAnalyzer(ctrl)
	mockAuth := authMocks.NewMockAuthenticator(ctrl)

	cfg := &config.Config{Cors: config.Cors{AllowedOrigins: []string{"https://app.example.com"}}}
	h := NewHandler(cfg, mockAnalyzer, mockAuth, handler.CronJobServices{})

	tests := []struct {
		name           string
		method         string
		target         string
		token          string
		setup          func()
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Healthcheck é público",
			method:         http.MethodGet,
			target:         "/healthcheck",
			setup:          func() {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Rota protegida sem token",
			method:         http.MethodGet,
			target:         "/v1/assumptions",
			setup:          func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:   "Token inválido",
			method: http.MethodGet,
			target: "/v1/assumptions",
			token:  "expirado",
			setup: func() {
				mockAuth.EXPECT().ValidateToken("expirado").
					Return(nil, authenticating.NewAuthError(authenticating.ErrInvalidToken, apiErrors.ErrInvalidToken, "token is expired"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:   "Token válido chega ao handler",
			method: http.MethodGet,
			target: "/v1/assumptions",
			token:  "valido",
			setup: func() {
				mockAuth.EXPECT().ValidateToken("valido").
					Return(&domain.Claims{UserID: 7, UserRoleID: domain.RoleAnalyst}, nil)
				mockAnalyzer.EXPECT().Assumptions().Return(domain.DefaultAssumptions())
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Rota inexistente",
			method: http.MethodGet,
			target: "/v1/relatorios",
			token:  "valido",
			setup: func() {
				mockAuth.EXPECT().ValidateToken("valido").
					Return(&domain.Claims{UserID: 7, UserRoleID: domain.RoleAnalyst}, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   apiErrors.ErrNotFound,
		},
		{
			name:           "Preflight CORS não exige token",
			method:         http.MethodOptions,
			target:         "/v1/analyses",
			setup:          func() {},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := httptest.NewRequest(tt.method, tt.target, nil)
			req.Header.Set("Origin", "https://app.example.com")
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
			if tt.expectedCode != "" {
				assert.Contains(t, rec.Body.String(), `"code":"`+tt.expectedCode+`"`)
			}
		})
	}
}
