package middleware

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"finflow-backend/pkg/token"
)

type contextKey string

const principalKey contextKey = "principal"

// Authenticator validates bearer tokens and attaches the authenticated
// principal to the request context. Downstream code receives the principal
// explicitly from PrincipalFromContext; no handler reads ambient security
// state.
type Authenticator struct {
	tokens *token.Manager
	log    *zap.Logger
}

// NewAuthenticator creates an Authenticator.
func NewAuthenticator(tokens *token.Manager, log *zap.Logger) *Authenticator {
	return &Authenticator{tokens: tokens, log: log}
}

// Handler rejects requests without a valid bearer token.
func (a *Authenticator) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(w)
			return
		}

		claims, err := a.tokens.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			a.log.Debug("token rejected", zap.Error(err))
			unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PrincipalFromContext returns the authenticated user id set by Handler.
func PrincipalFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(principalKey).(int64)
	return userID, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"invalid or missing token"}`))
}
