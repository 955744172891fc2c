package middleware

import (
	"net/http"

	"github.com/aio-wfh/wfh-backend-go/internal/domain/auth"
	"github.com/aio-wfh/wfh-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireRoles lets the request through only when the token's role claim is
// one of the allowed roles.
func RequireRoles(allowed ...auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidRole)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, auth.ErrInvalidRole)
				return
			}

			role := auth.Role(roleStr)
			for _, a := range allowed {
				if role == a {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.HandleError(w, auth.ErrInvalidRole)
		})
	}
}
