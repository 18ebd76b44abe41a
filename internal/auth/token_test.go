package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/event-registration/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 30)

	token, exp, err := tm.GenerateToken("acc-1", domain.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.False(t, exp.IsZero())

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.AccountID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret", 30)
	other := NewTokenManager("different", 30)

	token, _, err := tm.GenerateToken("acc-1", domain.RoleUser)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("secret", 30)

	_, err := tm.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestNewTokenManagerDefaultsTTL(t *testing.T) {
	tm := NewTokenManager("secret", 0)

	token, _, err := tm.GenerateToken("acc-1", domain.RoleUser)
	require.NoError(t, err)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.Subject)
}
