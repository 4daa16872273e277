package tokenverify

import (
	"context"
	"net/http"
	"strings"

	commonhttp "github.com/KarimovRD/fullstack-todo/backend/internal/common/http"
	"github.com/KarimovRD/fullstack-todo/backend/internal/common/logger"
)

// Identity is the authenticated caller bound into the request context.
type Identity struct {
	Username string
}

// Resolver maps a presented token to its username. Tokens that are not in
// the table fail with the service's invalid-token error.
type Resolver interface {
	ResolveToken(ctx context.Context, token string) (string, error)
}

type contextKey string

const identityKey contextKey = "auth_identity"

const bearerPrefix = "Bearer "

// Middleware guards a route: no Authorization header is a 401, and only the
// literal "Bearer " prefix is stripped before lookup. A header that omits
// the space is looked up verbatim and misses.
func Middleware(resolver Resolver, log *logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("Authorization")
			if raw == "" {
				log.Warnf("auth failed path=%s: missing authorization header", r.URL.Path)
				commonhttp.WriteErrorEnvelope(w, http.StatusUnauthorized,
					commonhttp.CodeMissingAuthorization, "Missing Authorization header", "")
				return
			}

			token := strings.TrimPrefix(raw, bearerPrefix)

			username, err := resolver.ResolveToken(r.Context(), token)
			if err != nil {
				log.Warnf("auth failed path=%s: %v", r.URL.Path, err)
				commonhttp.WriteErrorEnvelope(w, http.StatusUnauthorized,
					commonhttp.CodeInvalidToken, "Invalid token", "")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, Identity{Username: username})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func FromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}
