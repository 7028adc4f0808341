package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/andrasyah/preferensi-api/internal/service"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// ClaimsFromContext extracts the verified token claims from the
// request context. Returns nil if the request is unauthenticated.
func ClaimsFromContext(ctx context.Context) *service.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*service.Claims)
	return claims
}

// RequireAuth is middleware that protects routes requiring
// authentication. It locates a bearer token, verifies it, and injects
// the decoded claims into the request context. Requests without a
// token, or with a token that fails signature or expiry verification,
// are rejected with 401 before the handler runs.
func RequireAuth(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeResult(w, http.StatusUnauthorized, false, "Authentication required")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			writeResult(w, http.StatusUnauthorized, false, "Invalid Token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken locates the token in the Authorization header, the
// token cookie, or the token query parameter; the first one found
// wins, in that order.
func bearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token := strings.TrimPrefix(header, "Bearer "); token != header {
			return token
		}
	}
	if cookie, err := r.Cookie("token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return r.URL.Query().Get("token")
}
