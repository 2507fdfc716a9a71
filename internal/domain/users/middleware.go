package users

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const userKey ctxKey = "user"

// Resolver convierte un bearer token en el usuario que lo porta.
// Lo implementa Service.
type Resolver interface {
	Resolve(ctx context.Context, token string) (User, error)
}

// AuthContext:
// - Si viene Bearer token válido => setea el usuario en el context.
// - Si no hay token o no verifica, el request sigue igual; los handlers
//   deciden si exigen auth (para poder devolver 401 con cuerpo propio).
func AuthContext(resolver Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			u, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (User, bool) {
	v := ctx.Value(userKey)
	if v == nil {
		return User{}, false
	}
	u, ok := v.(User)
	return u, ok
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
