package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
	"github.com/techbridge-it/perfnote-backend-go/internal/domain/auth"
	"github.com/techbridge-it/perfnote-backend-go/internal/handler/http/response"
)

// ForcedResetGuard blocks mutating requests for accounts flagged with
// forced_reset. The flag is read from the store, not the token, so a reset
// issued after the token was minted still takes effect. Reads and the
// password-change routes stay reachable.
func ForcedResetGuard(accountRepo account.AccountRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			accountID, ok := claims["user_id"].(string)
			if !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			current, err := accountRepo.GetByID(r.Context(), accountID)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if current.ForcedReset {
				response.HandleError(w, auth.ErrPasswordResetRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
