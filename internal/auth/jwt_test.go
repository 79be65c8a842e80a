package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorlink/mentorship-service/internal/models"
)

func TestGenerateAndVerify(t *testing.T) {
	tm := NewTokenManager("test-secret", 1)

	token, err := tm.Generate("user-123", models.RoleMentor)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, models.RoleMentor, claims.Role)
	assert.Equal(t, "user-123", claims.Subject)
}

func TestVerifyInvalidToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 1)

	_, err := tm.Verify("not.a.token")
	assert.Error(t, err)

	_, err = tm.Verify("")
	assert.Error(t, err)
}

func TestVerifyWrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", 1)
	other := NewTokenManager("different-secret", 1)

	token, err := tm.Generate("user-123", models.RoleMentee)
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestVerifyExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 1)

	claims := &Claims{
		UserID: "user-123",
		Role:   models.RoleMentee,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			Subject:   "user-123",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsUnexpectedMethod(t *testing.T) {
	tm := NewTokenManager("test-secret", 1)

	// alg=none tokens must never pass.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user-123"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tm.Verify(signed)
	assert.Error(t, err)
}
