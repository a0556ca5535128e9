package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/FACorreiaa/locallist-builder/config"
	"github.com/FACorreiaa/locallist-builder/internal/api"
)

type contextKey string

const UserIDKey contextKey = "userID"

// OptionalAuthenticate attaches the caller identity when a valid token is present.
// Missing or invalid tokens leave the request anonymous.
func OptionalAuthenticate(logger *slog.Logger, jwtCfg config.JWTConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			userID, err := identify(r, jwtCfg)
			if err != nil {
				if !errors.Is(err, ErrMissingHeader) {
					logger.DebugContext(ctx, "Ignoring invalid token on optional route",
						slog.String("middleware", "OptionalAuthenticate"),
						slog.Any("error", err))
				}
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, userID)))
		})
	}
}

func identify(r *http.Request, jwtCfg config.JWTConfig) (uuid.UUID, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return uuid.Nil, ErrMissingHeader
	}
	headerParts := strings.Fields(authHeader)
	if len(headerParts) != 2 || !strings.EqualFold(headerParts[0], "bearer") {
		return uuid.Nil, ErrMalformedHeader
	}

	claims, err := ParseToken(headerParts[1], jwtCfg)
	if err != nil {
		return uuid.Nil, err
	}
	raw := claims.UserID
	if raw == "" {
		raw = claims.Subject
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrInvalidSubject
	}
	return userID, nil
}

// ParseToken validates an HS256 access token against the configured secret, issuer and audience.
func ParseToken(tokenString string, jwtCfg config.JWTConfig) (*Claims, error) {
	if jwtCfg.SecretKey == "" {
		return nil, ErrMissingSecretKey
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtCfg.SecretKey), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if jwtCfg.Issuer != "" && claims.Issuer != jwtCfg.Issuer {
		return nil, ErrInvalidIssuer
	}
	if !api.VerifyAudience(claims.Audience, jwtCfg.Audience) {
		return nil, ErrInvalidAudience
	}
	return claims, nil
}

func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// UserIDFromContext returns the authenticated caller, or nil for anonymous requests.
func UserIDFromContext(ctx context.Context) *uuid.UUID {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return nil
	}
	return &userID
}
