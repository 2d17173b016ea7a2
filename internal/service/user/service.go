package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/user"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.Service {
	return &UserServiceImpl{userRepo: userRepo}
}

// Me implements user.Service.
func (s *UserServiceImpl) Me(ctx context.Context, userID string, client user.Client) (user.MeResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.MeResponse{}, err
	}
	return user.MeResponse{
		User:        user.NewUserResponse(u),
		LandingPath: user.LandingPath(u.Roles, client),
	}, nil
}

// UpdateMe implements user.Service. Users may edit their own profile but
// not their roles.
func (s *UserServiceImpl) UpdateMe(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	return s.Update(ctx, req)
}

// List implements user.Service.
func (s *UserServiceImpl) List(ctx context.Context, filter user.ListUsersFilter) (user.ListUsersResponse, error) {
	if err := filter.Validate(); err != nil {
		return user.ListUsersResponse{}, err
	}

	users, total, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return user.ListUsersResponse{}, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.NewUserResponse(u))
	}

	return user.ListUsersResponse{
		Users:      responses,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Get implements user.Service.
func (s *UserServiceImpl) Get(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.NewUserResponse(u), nil
}

// Create implements user.Service.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return user.UserResponse{}, user.ErrUserEmailExists
	}

	newUser := user.User{
		ID:          uuid.New().String(),
		Email:       req.Email,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Roles:       user.RoleValues(req.Roles),
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		passwordHash := string(hash)
		newUser.PasswordHash = &passwordHash
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user.NewUserResponse(created), nil
}

// Update implements user.Service.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	current, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Email != nil && *req.Email != current.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return user.UserResponse{}, user.ErrUserEmailExists
		}
	}

	if err := s.userRepo.Update(ctx, req); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update user: %w", err)
	}
	return s.Get(ctx, req.ID)
}

// UpdateRoles implements user.Service.
func (s *UserServiceImpl) UpdateRoles(ctx context.Context, actorID string, req user.UpdateUserRolesRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	roles := user.RoleValues(req.Roles)
	if actorID == req.ID && !user.HasRole(roles, user.RoleOffice) {
		return user.UserResponse{}, user.ErrCannotRemoveOwnOffice
	}

	if _, err := s.userRepo.GetByID(ctx, req.ID); err != nil {
		return user.UserResponse{}, err
	}
	if err := s.userRepo.UpdateRoles(ctx, req.ID, roles); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update roles: %w", err)
	}

	slog.Info("User roles updated", "user_id", req.ID, "actor_id", actorID, "roles", req.Roles)
	return s.Get(ctx, req.ID)
}

// Delete implements user.Service.
func (s *UserServiceImpl) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return user.ErrCannotDeleteSelf
	}
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

// EnsureGoogleUser implements user.Service.
func (s *UserServiceImpl) EnsureGoogleUser(ctx context.Context, googleID, email, name string) (user.EnsureUserResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.OAuthProviderID != nil && *existing.OAuthProviderID == googleID {
			return user.EnsureUserResult{User: existing}, nil
		}
		linked, err := s.userRepo.LinkGoogleAccount(ctx, googleID, email)
		if err != nil {
			return user.EnsureUserResult{}, fmt.Errorf("failed to link google account: %w", err)
		}
		return user.EnsureUserResult{User: linked, Linked: true}, nil
	case !errors.Is(err, user.ErrUserNotFound):
		return user.EnsureUserResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	provider := "google"
	if strings.TrimSpace(name) == "" {
		name = strings.Split(email, "@")[0]
	}
	created, err := s.userRepo.Create(ctx, user.User{
		ID:              uuid.New().String(),
		Email:           email,
		Name:            name,
		Roles:           []user.Role{user.RoleEmployee},
		OAuthProvider:   &provider,
		OAuthProviderID: &googleID,
	})
	if err != nil {
		return user.EnsureUserResult{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user.EnsureUserResult{User: created, Created: true}, nil
}
