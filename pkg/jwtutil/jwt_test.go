package jwtutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goat-dashboard/pkg/config"
	"goat-dashboard/pkg/jwtutil"
)

func newUtil(expirationHours int) *jwtutil.JWTUtil {
	return jwtutil.NewJWTUtil(&config.JWTConfig{
		SigningKey:      "test-signing-key",
		ExpirationHours: expirationHours,
	})
}

func TestTokenRoundtrip(t *testing.T) {
	j := newUtil(168)

	token, err := j.GenerateToken("user_2", "mia.exec@goat.media", "Mia Rodriguez", "executive", "Executive Director")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user_2", claims.UserID)
	assert.Equal(t, "mia.exec@goat.media", claims.Email)
	assert.Equal(t, "Mia Rodriguez", claims.Name)
	assert.Equal(t, "executive", claims.Role)
	assert.Equal(t, "Executive Director", claims.Designation)
}

func TestValidateToken_Tampered(t *testing.T) {
	j := newUtil(168)

	token, err := j.GenerateToken("user_1", "alex.employee@goat.media", "Alex Johnson", "employee", "Content Creator")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	claims, err := j.ValidateToken(tampered)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	j := newUtil(-1)

	token, err := j.GenerateToken("user_1", "alex.employee@goat.media", "Alex Johnson", "employee", "Content Creator")
	require.NoError(t, err)

	claims, err := j.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Garbage(t *testing.T) {
	j := newUtil(168)

	claims, err := j.ValidateToken("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_WrongKey(t *testing.T) {
	issuer := newUtil(168)
	verifier := jwtutil.NewJWTUtil(&config.JWTConfig{SigningKey: "other-key", ExpirationHours: 168})

	token, err := issuer.GenerateToken("user_1", "alex.employee@goat.media", "Alex Johnson", "employee", "Content Creator")
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
