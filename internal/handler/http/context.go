package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/auth"
)

// actorFromRequest builds the acting identity from verified token claims.
func actorFromRequest(r *http.Request) (account.Actor, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return account.Actor{}, auth.ErrInvalidToken
	}

	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return account.Actor{}, auth.ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return account.Actor{}, auth.ErrInvalidToken
	}

	role, err := account.ParseRole(roleStr)
	if err != nil {
		return account.Actor{}, auth.ErrInvalidToken
	}

	return account.Actor{ID: id, Role: role}, nil
}
