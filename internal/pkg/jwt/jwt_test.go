package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techbridge-it/perfnote-backend-go/internal/domain/account"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	token, expiresAt, err := svc.GenerateAccessToken("acc-1", "jane@techbridge.it", account.RoleManager)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.AccountID)
	assert.Equal(t, "jane@techbridge.it", claims.Email)
	assert.Equal(t, account.RoleManager, claims.Role)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")
	other := NewJWTService("a-completely-different-secret", "1h")

	token, _, err := svc.GenerateAccessToken("acc-1", "jane@techbridge.it", account.RoleHR)
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	svc := NewJWTService(testSecret, "-5m")

	token, _, err := svc.GenerateAccessToken("acc-1", "jane@techbridge.it", account.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateAccessToken_RejectsNonAccessType(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	ta := jwtauth.New("HS256", []byte(testSecret), nil)
	_, token, err := ta.Encode(map[string]interface{}{
		"user_id": "acc-1",
		"email":   "jane@techbridge.it",
		"role":    string(account.RoleEmployee),
		"type":    "refresh",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	_, err := svc.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}
