package jwt

import (
	"encoding/json"
	"time"

	"github.com/aio-wfh/wfh-backend-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateAccessToken(identity auth.Identity) (token string, expiresAt int64, err error)
	GenerateRefreshToken(staffID int) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	tokenAuth                  *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(identity auth.Identity) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"staff_id":   identity.StaffID,
		"first_name": identity.FirstName,
		"last_name":  identity.LastName,
		"email":      identity.Email,
		"department": identity.Department,
		"position":   identity.Position,
		"role":       string(identity.Role),
		"type":       "access",
		"exp":        expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(staffID int) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"staff_id": staffID,
		"exp":      expiresAt,
		"type":     "refresh",
	})
	return tokenString, expiresAt, err
}

// IdentityFromClaims rebuilds the requester identity from decoded JWT claims.
func IdentityFromClaims(claims map[string]interface{}) (auth.Identity, error) {
	staffID, ok := claimInt(claims["staff_id"])
	if !ok || staffID <= 0 {
		return auth.Identity{}, auth.ErrInvalidToken
	}

	role := auth.Role(claimString(claims["role"]))
	if !auth.IsValidRole(role) {
		return auth.Identity{}, auth.ErrInvalidRole
	}

	return auth.Identity{
		StaffID:    staffID,
		FirstName:  claimString(claims["first_name"]),
		LastName:   claimString(claims["last_name"]),
		Email:      claimString(claims["email"]),
		Department: claimString(claims["department"]),
		Position:   claimString(claims["position"]),
		Role:       role,
	}, nil
}

// Numeric claims arrive as float64 or json.Number depending on the decoder.
func claimInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	}
	return 0, false
}

func claimString(v interface{}) string {
	s, _ := v.(string)
	return s
}
