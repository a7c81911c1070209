package middleware

import (
	"context"
	"net/http"

	"github.com/MdAbdullahIbnNoor/online-group-study-server/internal/auth"
)

type contextKey string

// UserContextKey holds the decoded identity claims of the session token.
const UserContextKey contextKey = "user"

// RequireSession rejects requests that do not carry a valid session token in
// the "token" cookie and attaches the decoded identity to the request context.
func RequireSession(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("token")
			if err != nil {
				http.Error(w, "unauthorized access", http.StatusUnauthorized)
				return
			}

			claims, err := auth.ValidateJWT(cookie.Value, secret)
			if err != nil {
				http.Error(w, "unauthorized access", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Identity returns the decoded session claims placed on the context by
// RequireSession, or nil on an unguarded route.
func Identity(ctx context.Context) map[string]interface{} {
	claims, _ := ctx.Value(UserContextKey).(map[string]interface{})
	return claims
}
