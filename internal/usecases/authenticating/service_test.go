package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/feasibility-api/infrastructure/repository/mocks"
	"github.com/vfg2006/feasibility-api/internal/config"
	"github.com/vfg2006/feasibility-api/internal/domain"
	"github.com/vfg2006/feasibility-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const strongPassword = "Kelayakan#2024"

func testConfig() *config.Config {
	return &config.Config{Auth: config.Auth{SecretKey: "segredo-de-teste", TokenTTL: time.Hour}}
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func intPtr(i int) *int {
	return &i
}

func boolPtr(b bool) *bool {
	return &b
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())
	ctx := context.Background()

	activeUser := &domain.User{ID: 1, Name: "Dewi", Email: "dewi@example.com", PasswordHash: hashed(t, strongPassword), Active: true, RoleID: domain.RoleAnalyst}
	inactiveUser := &domain.User{ID: 2, Email: "budi@example.com", PasswordHash: hashed(t, strongPassword), Active: false}

	tests := []struct {
		name         string
		email        string
		password     string
		setup        func()
		expectedErr  error
		expectedCode string
	}{
		{
			name:     "Login com sucesso normaliza o email",
			email:    "  Dewi@Example.com ",
			password: strongPassword,
			setup: func() {
				mockUserRepo.EXPECT().GetUserByEmail(ctx, "dewi@example.com").Return(activeUser, nil)
			},
		},
		{
			name:         "Campos obrigatórios ausentes",
			email:        "",
			password:     "",
			setup:        func() {},
			expectedErr:  ErrMissingRequiredData,
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "Usuário inexistente",
			email:    "ninguem@example.com",
			password: strongPassword,
			setup: func() {
				mockUserRepo.EXPECT().GetUserByEmail(ctx, "ninguem@example.com").Return(nil, nil)
			},
			expectedErr:  ErrUserNotFound,
			expectedCode: apiErrors.ErrUserNotFound,
		},
		{
			name:     "Usuário desativado",
			email:    "budi@example.com",
			password: strongPassword,
			setup: func() {
				mockUserRepo.EXPECT().GetUserByEmail(ctx, "budi@example.com").Return(inactiveUser, nil)
			},
			expectedErr:  ErrUserDisabled,
			expectedCode: apiErrors.ErrUserDisabled,
		},
		{
			name:     "Senha incorreta",
			email:    "dewi@example.com",
			password: "Errada#123",
			setup: func() {
				mockUserRepo.EXPECT().GetUserByEmail(ctx, "dewi@example.com").Return(activeUser, nil)
			},
			expectedErr:  ErrInvalidCredentials,
			expectedCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:     "Falha no banco",
			email:    "dewi@example.com",
			password: strongPassword,
			setup: func() {
				mockUserRepo.EXPECT().GetUserByEmail(ctx, "dewi@example.com").Return(nil, errors.New("conexão perdida"))
			},
			expectedCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			token, err := service.LoginUser(ctx, tt.email, tt.password)

			if tt.expectedCode == "" {
				require.NoError(t, err)
				claims, err := service.ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, activeUser.ID, claims.UserID)
				assert.Equal(t, domain.RoleAnalyst, claims.UserRoleID)
				return
			}

			assert.Empty(t, token)
			var authErr *AuthError
			require.True(t, errors.As(err, &authErr))
			assert.Equal(t, tt.expectedCode, authErr.Code)
			if tt.expectedErr != nil {
				assert.True(t, errors.Is(err, tt.expectedErr))
			}
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	service := NewService(nil, testConfig())

	expired, err := generateJWT(&domain.User{ID: 1}, "segredo-de-teste", -time.Minute)
	require.NoError(t, err)

	otherSecret, err := generateJWT(&domain.User{ID: 1}, "outro-segredo", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name        string
		token       string
		expectedErr error
	}{
		{name: "Token expirado", token: expired, expectedErr: ErrExpiredToken},
		{name: "Assinatura de outro app", token: otherSecret, expectedErr: ErrInvalidToken},
		{name: "Token malformado", token: "abc.def", expectedErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, tt.expectedErr))
		})
	}
}

func TestService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())
	ctx := context.Background()

	t.Run("Novo usuário nasce inativo como analista", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail(ctx, "sari@example.com").Return(nil, nil)
		mockUserRepo.EXPECT().
			CreateUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *domain.User) (*domain.User, error) {
				assert.False(t, u.Active)
				assert.Equal(t, domain.RoleAnalyst, u.RoleID)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(strongPassword)))
				u.ID = 10
				return u, nil
			})

		user, err := service.CreateUser(ctx, &domain.User{Name: "Sari", Email: "Sari@example.com", PasswordHash: strongPassword, RoleID: domain.RoleAdmin})

		require.NoError(t, err)
		assert.Equal(t, 10, user.ID)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("Email já cadastrado", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByEmail(ctx, "sari@example.com").Return(&domain.User{ID: 10}, nil)

		_, err := service.CreateUser(ctx, &domain.User{Name: "Sari", Email: "sari@example.com", PasswordHash: strongPassword})

		assert.True(t, errors.Is(err, ErrUserAlreadyExists))
	})

	t.Run("Senha fraca", func(t *testing.T) {
		_, err := service.CreateUser(ctx, &domain.User{Name: "Sari", Email: "sari@example.com", PasswordHash: "12345678"})

		assert.True(t, errors.Is(err, ErrWeakPassword))
	})

	t.Run("Dados obrigatórios ausentes", func(t *testing.T) {
		_, err := service.CreateUser(ctx, &domain.User{Email: "sari@example.com"})

		assert.True(t, errors.Is(err, ErrMissingRequiredData))
	})
}

func TestService_UpdateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())
	ctx := context.Background()

	t.Run("Ativa usuário e promove a administrador", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(ctx, 5).Return(&domain.User{ID: 5, PasswordHash: "hash", RoleID: domain.RoleAnalyst}, nil)
		mockUserRepo.EXPECT().
			UpdateUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u *domain.User) error {
				assert.True(t, u.Active)
				assert.Equal(t, domain.RoleAdmin, u.RoleID)
				assert.Empty(t, u.PasswordHash)
				return nil
			})

		err := service.UpdateUser(ctx, &domain.UpdateUserRequest{ID: 5, Active: boolPtr(true), RoleID: intPtr(domain.RoleAdmin)})
		assert.NoError(t, err)
	})

	t.Run("Perfil de acesso inválido", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(ctx, 5).Return(&domain.User{ID: 5}, nil)

		err := service.UpdateUser(ctx, &domain.UpdateUserRequest{ID: 5, RoleID: intPtr(9)})
		assert.True(t, errors.Is(err, ErrInvalidRole))
	})

	t.Run("Usuário não encontrado", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(ctx, 99).Return(nil, nil)

		err := service.UpdateUser(ctx, &domain.UpdateUserRequest{ID: 99, Active: boolPtr(true)})
		assert.True(t, errors.Is(err, ErrUserNotFound))
	})
}

func TestService_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())
	ctx := context.Background()

	t.Run("Administrador gera nova senha forte", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(ctx, 1).Return(&domain.User{ID: 1, RoleID: domain.RoleAdmin}, nil)
		mockUserRepo.EXPECT().GetUserByID(ctx, 2).Return(&domain.User{ID: 2, RoleID: domain.RoleAnalyst}, nil)
		mockUserRepo.EXPECT().UpdateUser(ctx, gomock.Any()).Return(nil)

		password, err := service.ResetPassword(ctx, 1, 2)

		require.NoError(t, err)
		assert.Len(t, password, 12)
		assert.NoError(t, ValidatePasswordStrength(password))
	})

	t.Run("Analista não pode gerar senha", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(ctx, 2).Return(&domain.User{ID: 2, RoleID: domain.RoleAnalyst}, nil)

		_, err := service.ResetPassword(ctx, 2, 1)

		assert.True(t, errors.Is(err, ErrNoAdminPrivileges))
	})
}

func TestService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockUserRepo, testConfig())
	ctx := context.Background()
	current := hashed(t, strongPassword)

	t.Run("Troca com sucesso", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(ctx, 3).Return(&domain.User{ID: 3, PasswordHash: current}, nil)
		mockUserRepo.EXPECT().UpdateUser(ctx, gomock.Any()).Return(nil)

		assert.NoError(t, service.ChangePassword(ctx, 3, strongPassword, "Nova#Senha2025"))
	})

	t.Run("Senha atual incorreta", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(ctx, 3).Return(&domain.User{ID: 3, PasswordHash: current}, nil)

		err := service.ChangePassword(ctx, 3, "Errada#123", "Nova#Senha2025")
		assert.True(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run("Nova senha igual à atual", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(ctx, 3).Return(&domain.User{ID: 3, PasswordHash: current}, nil)

		err := service.ChangePassword(ctx, 3, strongPassword, strongPassword)
		assert.True(t, errors.Is(err, ErrSamePassword))
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{strongPassword, true},
		{"Curta#1", false},
		{"semmaiuscula#1", false},
		{"SEMMINUSCULA#1", false},
		{"SemNumero#!", false},
		{"SemEspecial12", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := ValidatePasswordStrength(tt.password)
			assert.Equal(t, tt.valid, err == nil)
		})
	}
}
