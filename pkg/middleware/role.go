package middleware

import (
	"net/http"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

const (
	RoleAdmin   = "admin"
	RoleAnalyst = "analyst"
)

// RoleMiddleware restringe o acesso aos papéis informados. Deve vir depois do
// AuthMiddleware, e com a autenticação desabilitada não restringe nada
func RoleMiddleware(secret string, allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			for _, role := range allowedRoles {
				if userClaims.OperatorRole == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			log.ForContext(r.Context()).Warnf("Acesso negado para %s (papel %s)", userClaims.Subject, userClaims.OperatorRole)
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
		})
	}
}

func AdminOnly(secret string) func(http.Handler) http.Handler {
	return RoleMiddleware(secret, RoleAdmin)
}
