package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type contextKey struct{}

var identityKey contextKey

// IdentityFromContext returns the verified identity attached by Middleware.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey).(*Identity)
	return id, ok
}

// WithIdentity attaches an identity to ctx. Exported for handler tests.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// UserMirror creates the local user record on first sign-in if absent.
type UserMirror interface {
	Ensure(ctx context.Context, id Identity) error
}

// Middleware verifies the bearer token on every call and attaches the
// resulting identity to the request context.
func Middleware(verifier *Verifier, mirror UserMirror, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				writeUnauthorized(w, "missing bearer token")
				return
			}

			identity, err := verifier.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				logger.Debug("token rejected", zap.Error(err))
				writeUnauthorized(w, "invalid token")
				return
			}

			if mirror != nil {
				if err := mirror.Ensure(r.Context(), *identity); err != nil {
					logger.Warn("user mirror failed", zap.String("uid", identity.UID), zap.Error(err))
				}
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   "UNAUTHORIZED",
		"message": message,
	})
}
