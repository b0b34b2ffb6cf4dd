package jwt_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hostel/config"
	"hostel/infras/jwt"
	"hostel/shared/cache/mocks"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "hostel"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return cfg
}

func TestGenerateAndValidate(t *testing.T) {
	service := jwt.New(newConfig())

	pair, err := service.GenerateTokenPair("user-1", "ana@example.com", "Worker")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := service.ValidateToken(pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "Worker", claims.Role)
	assert.NotEmpty(t, claims.TokenID)
	assert.Equal(t, "hostel", claims.Issuer)

	refresh, err := service.ValidateToken(pair.RefreshToken, jwt.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, jwt.RefreshToken, refresh.Type)
}

func TestValidateToken_Errors(t *testing.T) {
	service := jwt.New(newConfig())

	pair, err := service.GenerateTokenPair("user-1", "ana@example.com", "Worker")
	require.NoError(t, err)

	expiredCfg := newConfig()
	expiredCfg.JWT.AccessExpireMin = -1

	expired, err := jwt.New(expiredCfg).GenerateTokenPair("user-1", "ana@example.com", "Worker")
	require.NoError(t, err)

	tests := []struct {
		name      string
		token     string
		tokenType jwt.TokenType
		expected  error
	}{
		{name: "garbage", token: "not-a-token", tokenType: jwt.AccessToken, expected: jwt.ErrInvalidToken},
		{name: "refresh used as access", token: pair.RefreshToken, tokenType: jwt.AccessToken, expected: jwt.ErrInvalidToken},
		{name: "expired", token: expired.AccessToken, tokenType: jwt.AccessToken, expected: jwt.ErrExpiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ValidateToken(tt.token, tt.tokenType)

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestValidateToken_WrongTypeSameSecret(t *testing.T) {
	cfg := newConfig()
	cfg.JWT.RefreshSecret = cfg.JWT.AccessSecret

	service := jwt.New(cfg)

	pair, err := service.GenerateTokenPair("user-1", "ana@example.com", "Worker")
	require.NoError(t, err)

	_, err = service.ValidateToken(pair.RefreshToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
		err      error
	}{
		{name: "bearer", header: "Bearer abc.def", expected: "abc.def"},
		{name: "empty", header: "", err: jwt.ErrMissingToken},
		{name: "basic", header: "Basic abc", err: jwt.ErrBearerFormat},
		{name: "bearer without token", header: "Bearer ", err: jwt.ErrBearerFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.ExtractTokenFromHeader(tt.header)

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, token)
		})
	}
}

func TestDenylist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redisCache := mocks.NewMockRedisCache(ctrl)
	denylist := jwt.NewDenylist(redisCache)
	ctx := context.Background()

	active := &jwt.Claims{
		UserID:  "user-1",
		TokenID: "token-1",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(10 * time.Minute)),
		},
	}

	redisCache.EXPECT().Save(ctx, "jwt:denylist:token-1", "user-1", gomock.Any()).Return(nil)
	assert.NoError(t, denylist.Revoke(ctx, active))

	expired := &jwt.Claims{
		TokenID: "token-2",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	assert.NoError(t, denylist.Revoke(ctx, expired))

	redisCache.EXPECT().Exists(ctx, "jwt:denylist:token-1").Return(true, nil)

	revoked, err := denylist.IsRevoked(ctx, "token-1")
	assert.NoError(t, err)
	assert.True(t, revoked)

	redisCache.EXPECT().Exists(ctx, "jwt:denylist:token-3").Return(false, errors.New("redis down"))

	_, err = denylist.IsRevoked(ctx, "token-3")
	assert.Error(t, err)
}
