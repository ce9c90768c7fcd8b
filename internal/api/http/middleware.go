package http

import (
	"errors"
	"net/http"
	"strings"

	"vidly-backend/internal/security"
)

type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate verifies the caller's token and injects the identity into the
// request context. A missing token is a 401, a present-but-invalid token a
// 400; the two are distinct failure kinds.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)

		claims, err := m.tokens.Validate(token)
		if err != nil {
			if errors.Is(err, security.ErrNoToken) {
				respondMessage(w, http.StatusUnauthorized, "access denied, no token provided")
				return
			}
			respondMessage(w, http.StatusBadRequest, "invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(contextWithIdentity(r.Context(), claims)))
	})
}

// RequireAdmin enforces the elevated-role requirement. It must run after
// Authenticate.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := IdentityFromContext(r.Context())
		if !ok {
			respondMessage(w, http.StatusUnauthorized, "access denied, no token provided")
			return
		}
		if !claims.IsAdmin {
			respondMessage(w, http.StatusForbidden, "access denied")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func extractToken(r *http.Request) string {
	if token := r.Header.Get("X-Auth-Token"); token != "" {
		return token
	}

	auth := r.Header.Get("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[0:7], "bearer ") {
		return auth[7:]
	}
	return ""
}
