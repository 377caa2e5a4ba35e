package security

import (
	"testing"
	"time"

	"green_valley_api/internal/platform/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJWT(t *testing.T, exp time.Duration) {
	t.Helper()
	config.AppConfig = &config.Config{
		JWTKey: []byte("test-signing-secret"),
		JWTExp: exp,
	}
	InitJWT()
}

func TestGenerateAndVerifyToken_RoundTrip(t *testing.T) {
	setupJWT(t, time.Hour)

	tok, err := GenerateToken("user-1", "USER", "Asha")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := VerifyToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "USER", claims.Role)
	assert.Equal(t, "Asha", claims.Name)
}

func TestVerifyToken_Expired(t *testing.T) {
	setupJWT(t, -time.Minute)

	tok, err := GenerateToken("user-1", "USER", "Asha")
	require.NoError(t, err)

	_, err = VerifyToken(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyToken_WrongKey(t *testing.T) {
	setupJWT(t, time.Hour)

	tok, err := GenerateToken("user-1", "ADMIN", "Admin")
	require.NoError(t, err)

	config.AppConfig.JWTKey = []byte("a-different-secret")
	_, err = VerifyToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyToken_Garbage(t *testing.T) {
	setupJWT(t, time.Hour)

	_, err := VerifyToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
