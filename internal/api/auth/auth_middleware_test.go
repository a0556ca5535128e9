package auth

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/locallist-builder/config"
)

var testJWT = config.JWTConfig{SecretKey: "test-secret", Issuer: "locallist-api", Audience: "locallist-app"}

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims(userID uuid.UUID) Claims {
	return Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testJWT.Issuer,
			Audience:  jwt.ClaimStrings{testJWT.Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// captureUser records the caller identity seen by the wrapped handler.
func captureUser(seen **uuid.UUID, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		*seen = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestIdentify(t *testing.T) {
	userID := uuid.New()

	expired := validClaims(userID)
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	noExpiry := validClaims(userID)
	noExpiry.ExpiresAt = nil
	wrongIssuer := validClaims(userID)
	wrongIssuer.Issuer = "someone-else"
	wrongAudience := validClaims(userID)
	wrongAudience.Audience = jwt.ClaimStrings{"another-app"}
	subjectOnly := validClaims(userID)
	subjectOnly.UserID = ""
	subjectOnly.Subject = userID.String()
	badSubject := validClaims(userID)
	badSubject.UserID = "not-a-uuid"

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{name: "missing header", header: "", wantErr: ErrMissingHeader},
		{name: "wrong scheme", header: "Basic abc", wantErr: ErrMalformedHeader},
		{name: "valid token", header: "Bearer " + signToken(t, testJWT.SecretKey, validClaims(userID))},
		{name: "subject claim", header: "Bearer " + signToken(t, testJWT.SecretKey, subjectOnly)},
		{name: "expired token", header: "Bearer " + signToken(t, testJWT.SecretKey, expired), wantErr: jwt.ErrTokenExpired},
		{name: "expiry required", header: "Bearer " + signToken(t, testJWT.SecretKey, noExpiry), wantErr: jwt.ErrTokenRequiredClaimMissing},
		{name: "wrong secret", header: "Bearer " + signToken(t, "other", validClaims(userID)), wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "wrong issuer", header: "Bearer " + signToken(t, testJWT.SecretKey, wrongIssuer), wantErr: ErrInvalidIssuer},
		{name: "wrong audience", header: "Bearer " + signToken(t, testJWT.SecretKey, wrongAudience), wantErr: ErrInvalidAudience},
		{name: "subject is not a uuid", header: "Bearer " + signToken(t, testJWT.SecretKey, badSubject), wantErr: ErrInvalidSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			got, err := identify(req, testJWT)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, uuid.Nil, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, got)
		})
	}
}

func TestParseToken_MissingSecret(t *testing.T) {
	_, err := ParseToken("anything", config.JWTConfig{})
	assert.ErrorIs(t, err, ErrMissingSecretKey)
}

func TestOptionalAuthenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		header   string
		wantUser bool
	}{
		{"anonymous", "", false},
		{"garbage token stays anonymous", "Bearer not-a-jwt", false},
		{"wrong secret stays anonymous", "Bearer " + signToken(t, "other", validClaims(userID)), false},
		{"valid token identifies caller", "Bearer " + signToken(t, testJWT.SecretKey, validClaims(userID)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen *uuid.UUID
			var called bool
			h := OptionalAuthenticate(discardLogger(), testJWT)(captureUser(&seen, &called))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/builder/chat", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.True(t, called)
			if tt.wantUser {
				require.NotNil(t, seen)
				assert.Equal(t, userID, *seen)
			} else {
				assert.Nil(t, seen)
			}
		})
	}
}

func TestParseToken_MissingSecret_OtherToken(t *testing.T) {
	_, err := ParseToken("whatever", config.JWTConfig{})
	assert.ErrorIs(t, err, ErrMissingSecretKey)
}

func TestUserIDFromContext_NilUUID(t *testing.T) {
	ctx := WithUserID(t.Context(), uuid.Nil)
	assert.Nil(t, UserIDFromContext(ctx))
}
