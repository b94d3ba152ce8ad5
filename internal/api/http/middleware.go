package http

import (
	"context"
	"net/http"
	"strings"

	"ukm-registry-backend/internal/security"
)

type contextKey string

const actorContextKey contextKey = "actor"

// AuthMiddleware validates the Bearer token and injects the actor claims into
// the request context. Identity is issued upstream; this layer only verifies.
type AuthMiddleware struct {
	tokenManager security.TokenManager
}

func NewAuthMiddleware(tm security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokenManager: tm}
}

func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			respondError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := m.tokenManager.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			respondError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), actorContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// actorFromContext returns the authenticated actor, or nil when the request
// skipped the auth middleware.
func actorFromContext(ctx context.Context) *security.ActorClaims {
	claims, _ := ctx.Value(actorContextKey).(*security.ActorClaims)
	return claims
}
