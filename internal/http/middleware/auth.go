package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/foundx/foundx/internal/auth"
	"github.com/foundx/foundx/internal/http/respond"
	"github.com/foundx/foundx/internal/user"
)

type contextKey int

const userKey contextKey = 0

// CurrentUser returns the authenticated user stored by Authenticate.
func CurrentUser(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(userKey).(*user.User)
	return u, ok
}

// Authenticate verifies the Bearer token and loads the account it
// belongs to into the request context. Requests without a valid token
// for an existing user are rejected before reaching the handler.
func Authenticate(tokens *auth.TokenIssuer, users *user.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				respond.Error(w, http.StatusUnauthorized, "missing access token")
				return
			}

			userID, err := tokens.Verify(raw)
			if err != nil {
				respond.Error(w, http.StatusUnauthorized, "invalid access token")
				return
			}

			u, err := users.Get(r.Context(), userID)
			if err != nil {
				respond.Error(w, http.StatusUnauthorized, "invalid access token")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, u)))
		})
	}
}
