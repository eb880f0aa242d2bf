package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/feasibility-api/internal/domain"
	"github.com/vfg2006/feasibility-api/internal/usecases/authenticating"
	"github.com/vfg2006/feasibility-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/feasibility-api/pkg/apiErrors"
	"github.com/vfg2006/feasibility-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func okHandler(t *testing.T, expectedClaims *domain.Claims) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if expectedClaims == nil {
			assert.False(t, ok)
		} else {
			require.True(t, ok)
			assert.Equal(t, expectedClaims.UserID, claims.UserID)
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockValidator := mocks.NewMockAuthenticator(ctrl)
	claims := &domain.Claims{UserID: 3, UserRoleID: domain.RoleAnalyst}

	tests := []struct {
		name           string
		method         string
		path           string
		authorization  string
		setup          func()
		expectedClaims *domain.Claims
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Rota pública dispensa token",
			method:         http.MethodPost,
			path:           "/v1/login",
			setup:          func() {},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Preflight dispensa token",
			method:         http.MethodOptions,
			path:           "/v1/analyses",
			setup:          func() {},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Sem cabeçalho Authorization",
			method:         http.MethodGet,
			path:           "/v1/analyses",
			setup:          func() {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Cabeçalho sem Bearer",
			method:         http.MethodGet,
			path:           "/v1/analyses",
			authorization:  "Basic abc",
			setup:          func() {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "Token inválido",
			method:        http.MethodGet,
			path:          "/v1/analyses",
			authorization: "Bearer expirado",
			setup: func() {
				mockValidator.EXPECT().ValidateToken("expirado").Return(nil, errors.New("token expirado"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "Token expirado tem código próprio",
			method:        http.MethodGet,
			path:          "/v1/analyses",
			authorization: "Bearer vencido",
			setup: func() {
				mockValidator.EXPECT().ValidateToken("vencido").
					Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrExpiredToken,
		},
		{
			name:          "Token válido grava as claims no contexto",
			method:        http.MethodGet,
			path:          "/v1/analyses",
			authorization: "Bearer valido",
			setup: func() {
				mockValidator.EXPECT().ValidateToken("valido").Return(claims, nil)
			},
			expectedClaims: claims,
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(mockValidator)(okHandler(t, tt.expectedClaims)).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusUnauthorized {
				expectedCode := tt.expectedCode
				if expectedCode == "" {
					expectedCode = apiErrors.ErrInvalidToken
				}
				assert.Contains(t, rec.Body.String(), expectedCode)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		claims         *domain.Claims
		middleware     func(http.Handler) http.Handler
		expectedStatus int
	}{
		{
			name:           "Administrador acessa rota administrativa",
			claims:         &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin},
			middleware:     AdminOnly(),
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Analista bloqueado em rota administrativa",
			claims:         &domain.Claims{UserID: 2, UserRoleID: domain.RoleAnalyst},
			middleware:     AdminOnly(),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Analista acessa rota comum",
			claims:         &domain.Claims{UserID: 2, UserRoleID: domain.RoleAnalyst},
			middleware:     AllRoles(),
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Sem autenticação",
			claims:         nil,
			middleware:     AllRoles(),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
			if tt.claims != nil {
				req = req.WithContext(WithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	tests := []struct {
		name           string
		allowed        []string
		origin         string
		method         string
		expectedOrigin string
		expectedStatus int
	}{
		{
			name:           "Origem liberada",
			allowed:        []string{"http://localhost:3000"},
			origin:         "http://localhost:3000",
			method:         http.MethodGet,
			expectedOrigin: "http://localhost:3000",
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Origem não liberada",
			allowed:        []string{"http://localhost:3000"},
			origin:         "https://outro.example.com",
			method:         http.MethodGet,
			expectedOrigin: "",
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Curinga libera qualquer origem",
			allowed:        []string{"*"},
			origin:         "https://outro.example.com",
			method:         http.MethodGet,
			expectedOrigin: "https://outro.example.com",
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Preflight responde sem chamar o handler",
			allowed:        []string{"*"},
			origin:         "http://localhost:3000",
			method:         http.MethodOptions,
			expectedOrigin: "http://localhost:3000",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(tt.method, "/v1/analyses", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.allowed)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/analyses", nil)
	rec := httptest.NewRecorder()

	LoggingMiddleware()(LogPanicMiddleware()(panicking)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"`+apiErrors.ErrInternalServer+`"`)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "ID enviado pelo cliente é devolvido", incoming: "req-123"},
		{name: "ID gerado quando ausente"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = log.GetCorrelationID(r.Context())
				w.WriteHeader(http.StatusCreated)
			})

			req := httptest.NewRequest(http.MethodPost, "/v1/analyses", nil)
			if tt.incoming != "" {
				req.Header.Set(log.CorrelationIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()

			LoggingMiddleware()(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusCreated, rec.Code)
			require.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(log.CorrelationIDHeader))
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, seen)
			}
		})
	}
}
