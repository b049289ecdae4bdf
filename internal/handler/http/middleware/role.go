package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
	"github.com/techbridge-it/perfnote-backend-go/internal/handler/http/response"
)

func roleFromClaims(r *http.Request) (account.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}

	role, err := account.ParseRole(roleStr)
	if err != nil {
		return "", false
	}

	return role, true
}

// RequireRoles allows only the listed roles through. Super-admin passes
// every role gate.
func RequireRoles(roles ...account.Role) func(http.Handler) http.Handler {
	allowed := make(map[account.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := roleFromClaims(r)
			if !ok {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			if role != account.RoleSuperAdmin {
				if _, ok := allowed[role]; !ok {
					response.Forbidden(w, "Insufficient permissions")
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdministrative requires super-admin or admin role.
func RequireAdministrative(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromClaims(r)
		if !ok || (role != account.RoleSuperAdmin && role != account.RoleAdmin) {
			response.Forbidden(w, "Administrator access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
