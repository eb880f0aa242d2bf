package authenticating

import (
	"errors"
	"fmt"
)

// Login e token
var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUserDisabled       = errors.New("conta aguardando ativação ou desativada")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrInvalidToken       = errors.New("token inválido")
	ErrExpiredToken       = errors.New("token expirado")
)

// Cadastro e administração de contas
var (
	ErrUserAlreadyExists     = errors.New("e-mail já cadastrado")
	ErrMissingRequiredData   = errors.New("dados obrigatórios ausentes")
	ErrInvalidRole           = errors.New("perfil de acesso inválido")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
	ErrNoAdminPrivileges     = errors.New("apenas administradores podem realizar esta ação")
)

// Política de senha
var (
	ErrWeakPassword = errors.New("senha fraca")
	ErrSamePassword = errors.New("nova senha deve ser diferente da atual")
)

// AuthError associa o erro de domínio ao código da API. A mensagem vai para o
// cliente, então UserID fica fora dela e serve apenas aos logs.
type AuthError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError indica falha esperada de login, registrada como aviso e não como erro
func IsCredentialsError(err error) bool {
	for _, expected := range []error{ErrInvalidCredentials, ErrUserDisabled, ErrUserNotFound} {
		if errors.Is(err, expected) {
			return true
		}
	}
	return false
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return NewUserAuthError(baseErr, code, 0, details)
}

func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
