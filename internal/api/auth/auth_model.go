package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingHeader    = errors.New("authorization header required")
	ErrMalformedHeader  = errors.New("authorization header format must be Bearer {token}")
	ErrInvalidIssuer    = errors.New("invalid token issuer")
	ErrInvalidAudience  = errors.New("invalid token audience")
	ErrInvalidSubject   = errors.New("token subject is not a valid user id")
	ErrMissingSecretKey = errors.New("jwt secret key is not configured")
)

// Claims are the access token claims. UserID falls back to the registered subject.
type Claims struct {
	UserID string `json:"uid,omitempty"`
	Email  string `json:"eml,omitempty"`
	Role   string `json:"rol,omitempty"`
	jwt.RegisteredClaims
}
