package auth

import (
	"testing"
	"time"

	"mentalk/config"
	"mentalk/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndParseToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	require.NotNil(t, svc)

	memberID := uuid.New()

	token, err := svc.GenerateToken(memberID, entity.RoleUser)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// The token round-trips to the same identity.
	claims, err := svc.ParseClaims(token)
	require.NoError(t, err)
	assert.Equal(t, memberID, claims.MemberID)
	assert.Equal(t, entity.RoleUser, claims.Role)

	assert.True(t, svc.ValidateToken(token))
}

func TestJWTService_RoleSurvivesRoundTrip(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	memberID := uuid.New()

	token, err := svc.GenerateToken(memberID, entity.RoleMentor)
	require.NoError(t, err)

	claims, err := svc.ParseClaims(token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleMentor, claims.Role)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	assert.False(t, svc.ValidateToken("clearly-not-a-jwt-token-format"))

	claims, err := svc.ParseClaims("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	other, err := NewJWTService(newTestConfig("a_completely_different_secret_key_for_testing"))
	require.NoError(t, err)

	token, err := svc.GenerateToken(uuid.New(), entity.RoleUser)
	require.NoError(t, err)

	assert.True(t, svc.ValidateToken(token))
	assert.False(t, other.ValidateToken(token))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	svc, err := NewJWTService(newTestConfig(secret))
	require.NoError(t, err)

	// Craft a token whose lifetime has already elapsed.
	issuedAt := time.Now().Add(-1441 * time.Minute)
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": entity.RoleUser.String(),
		"iat":  issuedAt.Unix(),
		"exp":  issuedAt.Add(accessTokenTTL).Unix(),
	})
	tokenString, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)

	assert.False(t, svc.ValidateToken(tokenString))

	claims, err := svc.ParseClaims(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_NotYetExpiredToken(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	svc, err := NewJWTService(newTestConfig(secret))
	require.NoError(t, err)

	// One hour into its lifetime the token still verifies.
	issuedAt := time.Now().Add(-1 * time.Hour)
	fresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": entity.RoleUser.String(),
		"iat":  issuedAt.Unix(),
		"exp":  issuedAt.Add(accessTokenTTL).Unix(),
	})
	tokenString, err := fresh.SignedString([]byte(secret))
	require.NoError(t, err)

	assert.True(t, svc.ValidateToken(tokenString))
}

func TestJWTService_UnexpectedSigningMethod(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	svc, err := NewJWTService(newTestConfig(secret))
	require.NoError(t, err)

	// Tokens signed with "none" must never be accepted.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"role": entity.RoleUser.String(),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	assert.False(t, svc.ValidateToken(tokenString))
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
