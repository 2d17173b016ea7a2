package user

import "context"

type Service interface {
	Me(ctx context.Context, userID string, client Client) (MeResponse, error)
	UpdateMe(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	List(ctx context.Context, filter ListUsersFilter) (ListUsersResponse, error)
	Get(ctx context.Context, id string) (UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	UpdateRoles(ctx context.Context, actorID string, req UpdateUserRolesRequest) (UserResponse, error)
	Delete(ctx context.Context, actorID, id string) error
	// EnsureGoogleUser finds or creates the account for a Google identity.
	// New accounts get the employee role.
	EnsureGoogleUser(ctx context.Context, googleID, email, name string) (EnsureUserResult, error)
}
