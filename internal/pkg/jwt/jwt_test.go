package jwt

import (
	"context"
	"testing"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) Service {
	svc, err := NewJWTService("test-secret", "1h", "168h", false)
	require.NoError(t, err)
	return svc
}

func TestNewJWTService_InvalidDuration(t *testing.T) {
	_, err := NewJWTService("secret", "one hour", "168h", false)
	assert.Error(t, err)
}

func TestGenerateAccessToken_RolesClaim(t *testing.T) {
	svc := newService(t)

	tokenString, _, err := svc.GenerateAccessToken("u1", "dana@example.com", []user.Role{user.RoleEmployee, user.RoleManager})
	require.NoError(t, err)

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "u1", claims["user_id"])
	assert.Equal(t, TokenTypeAccess, claims["type"])
	assert.Equal(t, []user.Role{user.RoleEmployee, user.RoleManager}, RolesFromClaims(claims))
}

func TestGenerateRefreshToken(t *testing.T) {
	svc := newService(t)

	tokenString, expiresAt, err := svc.GenerateRefreshToken("u1")
	require.NoError(t, err)
	assert.NotZero(t, expiresAt)

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)
	typ, _ := token.Get("type")
	assert.Equal(t, TokenTypeRefresh, typ)

	cookie := svc.RefreshTokenCookie(tokenString, expiresAt)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
}

func TestRevokeToken(t *testing.T) {
	svc := newService(t)

	assert.False(t, svc.IsTokenRevoked("abc"))
	svc.RevokeToken("abc")
	assert.True(t, svc.IsTokenRevoked("abc"))
}

func TestRolesFromClaims_IgnoresUnknown(t *testing.T) {
	claims := map[string]interface{}{"roles": []interface{}{"office", "admin", 3}}
	assert.Equal(t, []user.Role{user.RoleOffice}, RolesFromClaims(claims))
	assert.Empty(t, RolesFromClaims(map[string]interface{}{}))
}
