package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.GenerateToken("abc123", "admin@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "abc123", claims.Subject)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "expired token",
			token: func(t *testing.T) string {
				expired := NewJWTService("test-secret", -time.Hour)
				token, err := expired.GenerateToken("abc123", "admin@example.com")
				assert.NoError(t, err)
				return token
			},
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				other := NewJWTService("other-secret", time.Hour)
				token, err := other.GenerateToken("abc123", "admin@example.com")
				assert.NoError(t, err)
				return token
			},
		},
		{
			name: "unsigned token rejected",
			token: func(t *testing.T) string {
				token, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{}).
					SignedString(jwt.UnsafeAllowNoneSignatureType)
				assert.NoError(t, err)
				return token
			},
		},
		{
			name: "garbage",
			token: func(t *testing.T) string {
				return "not-a-jwt"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token(t))
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
