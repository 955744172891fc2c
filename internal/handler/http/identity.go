package http

import (
	"net/http"

	"github.com/aio-wfh/wfh-backend-go/internal/domain/auth"
	"github.com/aio-wfh/wfh-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// identityFromRequest rebuilds the requester identity from the verified
// token. Handlers behind AuthRequired can rely on it succeeding for
// well-formed tokens.
func identityFromRequest(r *http.Request) (auth.Identity, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	return jwt.IdentityFromClaims(claims)
}
