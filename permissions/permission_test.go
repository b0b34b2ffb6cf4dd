package permissions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel/permissions"
	"hostel/shared/constant"
)

func TestGet_EmbeddedFile(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name    string
		path    string
		method  string
		found   bool
		skip    bool
		allowed []string
		denied  []string
	}{
		{
			name:   "public sign in",
			path:   "/v1/auth/sign-in",
			method: "POST",
			found:  true,
			skip:   true,
		},
		{
			name:    "room list with trailing slash",
			path:    "/v1/rooms/",
			method:  "GET",
			found:   true,
			allowed: []string{constant.RoleAdmin, constant.RoleWorker},
			denied:  []string{constant.RolePending},
		},
		{
			name:    "room create is admin only",
			path:    "/v1/rooms",
			method:  "POST",
			found:   true,
			allowed: []string{constant.RoleAdmin},
			denied:  []string{constant.RoleWorker, constant.RolePending},
		},
		{
			name:    "check in is open to workers",
			path:    "/v1/rooms/{id}/check-in",
			method:  "post",
			found:   true,
			allowed: []string{constant.RoleAdmin, constant.RoleWorker},
			denied:  []string{constant.RolePending},
		},
		{
			name:    "status override is admin only",
			path:    "/v1/rooms/{id}/status",
			method:  "PATCH",
			found:   true,
			allowed: []string{constant.RoleAdmin},
			denied:  []string{constant.RoleWorker},
		},
		{
			name:    "pending users may read themselves",
			path:    "/v1/users/me",
			method:  "GET",
			found:   true,
			allowed: []string{constant.RoleAdmin, constant.RoleWorker, constant.RolePending},
		},
		{
			name:    "exports are admin only",
			path:    "/v1/exports/yearly",
			method:  "GET",
			found:   true,
			allowed: []string{constant.RoleAdmin},
			denied:  []string{constant.RoleWorker},
		},
		{
			name:   "unknown route",
			path:   "/v1/unknown",
			method: "GET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission, found := data.FindPermissions(tt.path, tt.method)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.skip, permission.Skip)

			for _, role := range tt.allowed {
				assert.True(t, permission.Allows(role), role)
			}

			for _, role := range tt.denied {
				assert.False(t, permission.Allows(role), role)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := permissions.Parse([]byte("{"))
	assert.Error(t, err)
}

func TestPermission_AllowsEmptyList(t *testing.T) {
	assert.True(t, permissions.Permission{}.Allows(constant.RolePending))
}
