package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hostel/infras/jwt"
	jwtMocks "hostel/infras/jwt/mocks"
	"hostel/infras/otel/mocks"
	"hostel/internal/domains/auth/model/dto"
	"hostel/internal/domains/auth/service"
	userMocks "hostel/internal/domains/user/mocks"
	userModel "hostel/internal/domains/user/model"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	"hostel/shared/failure"
	"hostel/shared/password"
)

type fixture struct {
	svc      service.Auth
	users    *userMocks.MockUser
	jwt      *jwtMocks.MockJWT
	denylist *jwtMocks.MockDenylist
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		users:    userMocks.NewMockUser(ctrl),
		jwt:      jwtMocks.NewMockJWT(ctrl),
		denylist: jwtMocks.NewMockDenylist(ctrl),
	}

	f.svc = service.New(f.users, mocks.NewOtel(), f.jwt, f.denylist)

	return f
}

func workerUser(t *testing.T) userModel.User {
	t.Helper()

	hashed, err := password.Hash("password")
	require.NoError(t, err)

	return userModel.User{
		ID:       "user-id-123",
		Email:    "test@example.com",
		Password: hashed,
		FullName: "Test User",
		Role:     constant.RoleWorker,
		Active:   true,
	}
}

func claims(userID, tokenID string) *jwt.Claims {
	return &jwt.Claims{
		UserID:  userID,
		TokenID: tokenID,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

var tokenPair = &jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token", TokenType: "Bearer", ExpiresIn: 900}

func TestAuthService_Register(t *testing.T) {
	f := newFixture(t)
	req := dto.RegisterRequest{Email: "New@Example.com", Password: "password123", FullName: "New Worker"}

	tests := []struct {
		name      string
		setupMock func()
		wantKind  failure.Kind
	}{
		{
			name: "registers as pending",
			setupMock: func() {
				f.users.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
						_, args := filter.GetWhereClause()
						assert.Equal(t, "new@example.com", args[userModel.FieldEmail])

						return false, nil
					})
				f.users.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user userModel.User) error {
						assert.Equal(t, constant.RolePending, user.Role)
						assert.NotEqual(t, req.Password, user.Password)

						return nil
					})
			},
		},
		{
			name: "email already registered",
			setupMock: func() {
				f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantKind: failure.KindDuplicateKey,
		},
		{
			name: "lost the race to the unique index",
			setupMock: func() {
				f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.users.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(failure.Duplicate("user already exists"))
			},
			wantKind: failure.KindDuplicateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.Register(context.Background(), req)
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	f := newFixture(t)
	validUser := workerUser(t)

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantKind  failure.Kind
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setupMock: func() {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
				f.jwt.EXPECT().GenerateTokenPair(validUser.ID, validUser.Email, validUser.Role).Return(tokenPair, nil)
				f.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "last login update failure does not block sign in",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setupMock: func() {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
				f.jwt.EXPECT().GenerateTokenPair(validUser.ID, validUser.Email, validUser.Role).Return(tokenPair, nil)
				f.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
		},
		{
			name: "user not found",
			req:  dto.LoginRequest{Email: "nonexistent@example.com", Password: "password"},
			setupMock: func() {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantKind: failure.KindUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "wrongpassword"},
			setupMock: func() {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
			},
			wantKind: failure.KindUnauthorized,
		},
		{
			name: "inactive user",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setupMock: func() {
				inactive := validUser
				inactive.Active = false

				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantKind: failure.KindForbidden,
		},
		{
			name: "pending user",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setupMock: func() {
				pending := validUser
				pending.Role = constant.RolePending

				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pending, nil)
			},
			wantKind: failure.KindForbidden,
		},
		{
			name: "token generation error",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setupMock: func() {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("token generation failed"))
			},
			wantKind: failure.KindStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.Login(context.Background(), tt.req)
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "refresh-token", res.RefreshToken)
			assert.Equal(t, validUser.ID, res.User.ID)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	f := newFixture(t)
	validUser := workerUser(t)
	refreshClaims := claims(validUser.ID, "refresh-1")

	tests := []struct {
		name      string
		setupMock func()
		wantKind  failure.Kind
	}{
		{
			name: "rotates the pair with the current role",
			setupMock: func() {
				promoted := validUser
				promoted.Role = constant.RoleAdmin

				f.jwt.EXPECT().ValidateToken("refresh-token", jwt.RefreshToken).Return(refreshClaims, nil)
				f.denylist.EXPECT().IsRevoked(gomock.Any(), "refresh-1").Return(false, nil)
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(promoted, nil)
				f.jwt.EXPECT().GenerateTokenPair(validUser.ID, validUser.Email, constant.RoleAdmin).Return(tokenPair, nil)
				f.denylist.EXPECT().Revoke(gomock.Any(), refreshClaims).Return(nil)
			},
		},
		{
			name: "invalid token",
			setupMock: func() {
				f.jwt.EXPECT().ValidateToken(gomock.Any(), jwt.RefreshToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantKind: failure.KindUnauthorized,
		},
		{
			name: "revoked token",
			setupMock: func() {
				f.jwt.EXPECT().ValidateToken(gomock.Any(), jwt.RefreshToken).Return(refreshClaims, nil)
				f.denylist.EXPECT().IsRevoked(gomock.Any(), "refresh-1").Return(true, nil)
			},
			wantKind: failure.KindUnauthorized,
		},
		{
			name: "user deactivated since sign in",
			setupMock: func() {
				inactive := validUser
				inactive.Active = false

				f.jwt.EXPECT().ValidateToken(gomock.Any(), jwt.RefreshToken).Return(refreshClaims, nil)
				f.denylist.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(false, nil)
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantKind: failure.KindForbidden,
		},
		{
			name: "user deleted since sign in",
			setupMock: func() {
				f.jwt.EXPECT().ValidateToken(gomock.Any(), jwt.RefreshToken).Return(refreshClaims, nil)
				f.denylist.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(false, nil)
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantKind: failure.KindUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	f := newFixture(t)
	accessClaims := claims("user-1", "access-1")

	tests := []struct {
		name      string
		req       dto.LogoutRequest
		setupMock func()
		wantKind  failure.Kind
	}{
		{
			name: "revokes the access token",
			setupMock: func() {
				f.jwt.EXPECT().ValidateToken("access-token", jwt.AccessToken).Return(accessClaims, nil)
				f.denylist.EXPECT().Revoke(gomock.Any(), accessClaims).Return(nil)
			},
		},
		{
			name: "revokes both tokens",
			req:  dto.LogoutRequest{RefreshToken: "refresh-token"},
			setupMock: func() {
				refreshClaims := claims("user-1", "refresh-1")

				f.jwt.EXPECT().ValidateToken("access-token", jwt.AccessToken).Return(accessClaims, nil)
				f.denylist.EXPECT().Revoke(gomock.Any(), accessClaims).Return(nil)
				f.jwt.EXPECT().ValidateToken("refresh-token", jwt.RefreshToken).Return(refreshClaims, nil)
				f.denylist.EXPECT().Revoke(gomock.Any(), refreshClaims).Return(nil)
			},
		},
		{
			name: "ignores a refresh token of another user",
			req:  dto.LogoutRequest{RefreshToken: "refresh-token"},
			setupMock: func() {
				f.jwt.EXPECT().ValidateToken("access-token", jwt.AccessToken).Return(accessClaims, nil)
				f.denylist.EXPECT().Revoke(gomock.Any(), accessClaims).Return(nil)
				f.jwt.EXPECT().ValidateToken("refresh-token", jwt.RefreshToken).Return(claims("user-2", "refresh-2"), nil)
			},
		},
		{
			name: "invalid access token",
			setupMock: func() {
				f.jwt.EXPECT().ValidateToken("access-token", jwt.AccessToken).Return(nil, jwt.ErrInvalidToken)
			},
			wantKind: failure.KindUnauthorized,
		},
		{
			name: "denylist unavailable",
			setupMock: func() {
				f.jwt.EXPECT().ValidateToken("access-token", jwt.AccessToken).Return(accessClaims, nil)
				f.denylist.EXPECT().Revoke(gomock.Any(), accessClaims).Return(errors.New("redis down"))
			},
			wantKind: failure.KindStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.Logout(context.Background(), "access-token", tt.req)
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	f := newFixture(t)
	validUser := workerUser(t)
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, validUser.ID)

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func()
		wantKind  failure.Kind
	}{
		{
			name: "successful password change",
			req:  dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			setupMock: func() {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
				f.users.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						hashed, _ := fields[userModel.FieldPassword].(string)
						assert.NoError(t, password.Verify("newpassword123", hashed))
						assert.Equal(t, validUser.ID, fields[constant.FieldModifiedBy])

						return nil
					})
			},
		},
		{
			name: "user not found",
			req:  dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			setupMock: func() {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "wrong current password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "wrongpassword", NewPassword: "newpassword123"},
			setupMock: func() {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
			},
			wantKind: failure.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.ChangePassword(ctx, tt.req)
			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
