package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLandingPath(t *testing.T) {
	tests := []struct {
		name   string
		roles  []Role
		client Client
		want   string
	}{
		{"desktop manager goes to office", []Role{RoleManager}, ClientDesktop, PathOffice},
		{"desktop employee goes to office", []Role{RoleEmployee}, ClientDesktop, PathOffice},
		{"mobile manager", []Role{RoleEmployee, RoleManager}, ClientMobile, PathManager},
		{"mobile employee", []Role{RoleEmployee}, ClientMobile, PathEmployee},
		{"mobile office falls back to office", []Role{RoleOffice}, ClientMobile, PathOffice},
		{"no roles", nil, ClientMobile, PathOffice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LandingPath(tt.roles, tt.client))
		})
	}
}

func TestClientFromUserAgent(t *testing.T) {
	assert.Equal(t, ClientMobile, ClientFromUserAgent("Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)"))
	assert.Equal(t, ClientMobile, ClientFromUserAgent("Mozilla/5.0 (Linux; android 14)"))
	assert.Equal(t, ClientDesktop, ClientFromUserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64)"))
	assert.Equal(t, ClientDesktop, ClientFromUserAgent(""))
}

func TestPermissions(t *testing.T) {
	assert.True(t, HasPermission(RoleEmployee, PermissionRequestCreate))
	assert.False(t, HasPermission(RoleEmployee, PermissionRequestApprove))
	assert.True(t, HasPermission(RoleManager, PermissionRequestApprove))
	assert.False(t, HasPermission(RoleManager, PermissionReportsView))
	assert.True(t, HasPermission(RoleOffice, PermissionReportsView))
	assert.False(t, HasPermission(Role("owner"), PermissionReportsView))

	assert.True(t, AnyHasPermission([]Role{RoleEmployee, RoleManager}, PermissionRequestApprove))
	assert.False(t, AnyHasPermission([]Role{RoleEmployee}, PermissionUserManage))
	assert.False(t, AnyHasPermission(nil, PermissionViewOwnProfile))
}

func TestUserRoles(t *testing.T) {
	u := User{Email: "dana@example.com", Roles: []Role{RoleEmployee, RoleOffice}}

	assert.True(t, u.IsEmployee())
	assert.True(t, u.IsOffice())
	assert.False(t, u.IsManager())
	assert.Equal(t, "dana@example.com", u.DisplayName())

	u.Name = "Dana"
	assert.Equal(t, "Dana", u.DisplayName())
}

func TestCreateUserRequestValidate(t *testing.T) {
	t.Run("defaults to employee role", func(t *testing.T) {
		req := CreateUserRequest{Email: " Avi@Example.com ", Name: "Avi"}
		require.NoError(t, req.Validate())
		assert.Equal(t, []string{"employee"}, req.Roles)
		assert.Equal(t, "avi@example.com", req.Email)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		req := CreateUserRequest{Email: "avi@example.com", Name: "Avi", Roles: []string{"owner"}}
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid role: owner")
	})

	t.Run("rejects short password and bad phone", func(t *testing.T) {
		pw, phone := "short", "12345"
		req := CreateUserRequest{Email: "avi@example.com", Name: "Avi", Password: &pw, PhoneNumber: &phone}
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "password")
		assert.Contains(t, err.Error(), "phone_number")
	})
}

func TestUpdateUserRolesRequest(t *testing.T) {
	empty := UpdateUserRolesRequest{}
	assert.Error(t, empty.Validate())

	ok := UpdateUserRolesRequest{Roles: []string{"manager", "employee", "manager"}}
	require.NoError(t, ok.Validate())
	assert.Equal(t, []Role{RoleManager, RoleEmployee}, RoleValues(ok.Roles))
}
