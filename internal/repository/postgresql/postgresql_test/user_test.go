package postgresql_test

import (
	"context"
	"testing"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/user"
	"github.com/YossiBuhnik/WorkLog1/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func createUser(t *testing.T, email, name string, roles ...user.Role) user.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	hash := string(hashed)

	created, err := postgresql.NewUserRepository(testDB).Create(context.Background(), user.User{
		Email:        email,
		Name:         name,
		Roles:        roles,
		PasswordHash: &hash,
	})
	require.NoError(t, err)
	return created
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(testDB)

	created := createUser(t, "Dana@Example.com", "Dana", user.RoleEmployee, user.RoleManager)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "dana@example.com", created.Email)
	assert.Equal(t, []user.Role{user.RoleEmployee, user.RoleManager}, created.Roles)

	byEmail, err := repo.GetByEmail(ctx, "dana@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dana", byID.Name)

	exists, err := repo.ExistsByEmail(ctx, "DANA@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepository_NotFoundAndDuplicates(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(testDB)

	_, err := repo.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	createUser(t, "avi@example.com", "Avi", user.RoleEmployee)
	_, err = repo.Create(ctx, user.User{Email: "avi@example.com", Roles: []user.Role{user.RoleEmployee}})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)
}

func TestUserRepository_RolesAndList(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(testDB)

	dana := createUser(t, "dana@example.com", "Dana", user.RoleEmployee)
	createUser(t, "moshe@example.com", "Moshe", user.RoleManager)
	createUser(t, "office@example.com", "Office", user.RoleOffice)

	managers, err := repo.ListByRole(ctx, user.RoleManager)
	require.NoError(t, err)
	require.Len(t, managers, 1)
	assert.Equal(t, "Moshe", managers[0].Name)

	require.NoError(t, repo.UpdateRoles(ctx, dana.ID, []user.Role{user.RoleEmployee, user.RoleManager}))
	count, err := repo.CountByRole(ctx, user.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	search := "mos"
	users, total, err := repo.List(ctx, user.ListUsersFilter{Search: &search, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "moshe@example.com", users[0].Email)

	found, err := repo.GetByIDs(ctx, []string{dana.ID, managers[0].ID})
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestUserRepository_UpdateLinkAndDelete(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(testDB)

	u := createUser(t, "dana@example.com", "Dana", user.RoleEmployee)

	name := "Dana Levi"
	require.NoError(t, repo.Update(ctx, user.UpdateUserRequest{ID: u.ID, Name: &name}))

	linked, err := repo.LinkGoogleAccount(ctx, "google-123", u.Email)
	require.NoError(t, err)
	assert.Equal(t, "Dana Levi", linked.Name)
	require.NotNil(t, linked.OAuthProvider)
	assert.Equal(t, "google", *linked.OAuthProvider)
	assert.Equal(t, "google-123", *linked.OAuthProviderID)

	require.NoError(t, repo.Delete(ctx, u.ID))
	assert.ErrorIs(t, repo.Delete(ctx, u.ID), user.ErrUserNotFound)
}
