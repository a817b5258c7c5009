package user

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestGenerateAndParseJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	id := uuid.New()
	token, err := GenerateJWT(id, string(RoleAdmin), "admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)

	ident, err := IdentityFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, id, ident.UserID)
	assert.True(t, ident.IsAdmin())
	assert.False(t, ident.IsZero())
}

func TestGenerateJWT_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT(uuid.New(), string(RoleUser), "a@b.com")
	assert.Error(t, err)
}

func TestParseJWT_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	_, err := ParseJWT("not-a-token")
	assert.Error(t, err)
}

func TestIdentityFromClaims_BadUserID(t *testing.T) {
	_, err := IdentityFromClaims(&CustomClaims{UserID: "nope"})
	assert.Error(t, err)
}
