package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foundx/foundx/internal/auth"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("pw1")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", hash)

	assert.True(t, auth.CheckPassword(hash, "pw1"))
	assert.False(t, auth.CheckPassword(hash, "pw2"))
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	userID := uuid.New()

	token, err := issuer.Issue(userID)
	require.NoError(t, err)

	got, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	token, err := auth.NewTokenIssuer("secret-a", time.Hour).Issue(uuid.New())
	require.NoError(t, err)

	_, err = auth.NewTokenIssuer("secret-b", time.Hour).Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
