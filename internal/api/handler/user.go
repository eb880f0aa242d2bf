package handler

import (
	"net/http"

	"github.com/vfg2006/feasibility-api/internal/domain"
	"github.com/vfg2006/feasibility-api/internal/usecases/authenticating"
	"github.com/vfg2006/feasibility-api/pkg/apiErrors"
	"github.com/vfg2006/feasibility-api/pkg/log"
)

// ListUsers lista todos os usuários
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUser(r.Context())
		if err != nil {
			handleAuthError(w, err, "Erro ao buscar usuários")
			return
		}

		if users == nil {
			users = []*domain.User{}
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// UpdateUser ativa, desativa ou altera o perfil de um usuário
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := intParam(w, r, "id")
		if !ok {
			return
		}

		var updateReq domain.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		updateReq.ID = id

		if err := service.UpdateUser(r.Context(), &updateReq); err != nil {
			handleAuthError(w, err, "Erro ao atualizar usuário")
			return
		}

		log.ForContext(r.Context()).WithField("user_id", id).Info("users: usuário atualizado")
		w.WriteHeader(http.StatusNoContent)
	}
}
