package user

import (
	"strings"
	"time"

	"github.com/YossiBuhnik/WorkLog1/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID            string   `json:"id"`
	Email         string   `json:"email"`
	Name          string   `json:"name"`
	PhoneNumber   *string  `json:"phone_number,omitempty"`
	Roles         []string `json:"roles"`
	OAuthProvider *string  `json:"oauth_provider,omitempty"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

// NewUserResponse maps the entity to its API shape.
func NewUserResponse(u User) UserResponse {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, string(r))
	}
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		PhoneNumber:   u.PhoneNumber,
		Roles:         roles,
		OAuthProvider: u.OAuthProvider,
		CreatedAt:     u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     u.UpdatedAt.Format(time.RFC3339),
	}
}

// MeResponse is the signed-in user's profile plus the screen the client
// should open.
type MeResponse struct {
	User        UserResponse `json:"user"`
	LandingPath string       `json:"landing_path"`
}

// CreateUserRequest represents request to create a new user
type CreateUserRequest struct {
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	PhoneNumber *string  `json:"phone_number,omitempty"`
	Password    *string  `json:"password,omitempty"`
	Roles       []string `json:"roles"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = strings.TrimSpace(r.Name)

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.PhoneNumber != nil && !validator.IsEmpty(*r.PhoneNumber) && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "invalid phone number",
		})
	}

	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if len(r.Roles) == 0 {
		r.Roles = []string{string(RoleEmployee)}
	}
	errs = append(errs, validateRoles(r.Roles)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateUserRequest represents request to update user
type UpdateUserRequest struct {
	ID          string  `json:"-"`
	Email       *string `json:"email,omitempty"`
	Name        *string `json:"name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &email
		if !validator.IsValidEmail(email) {
			errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
		}
	}
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		r.Name = &name
		if name == "" {
			errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
		}
	}
	if r.PhoneNumber != nil && !validator.IsEmpty(*r.PhoneNumber) && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "invalid phone number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateUserRolesRequest replaces the full role set of a user.
type UpdateUserRolesRequest struct {
	ID    string   `json:"-"`
	Roles []string `json:"roles"`
}

func (r *UpdateUserRolesRequest) Validate() error {
	errs := validateRoles(r.Roles)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RoleValues converts validated role strings.
func RoleValues(roles []string) []Role {
	seen := make(map[Role]bool, len(roles))
	out := make([]Role, 0, len(roles))
	for _, r := range roles {
		role := Role(r)
		if seen[role] {
			continue
		}
		seen[role] = true
		out = append(out, role)
	}
	return out
}

func validateRoles(roles []string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if len(roles) == 0 {
		return append(errs, validator.ValidationError{Field: "roles", Message: "at least one role is required"})
	}
	for _, r := range roles {
		if !Role(r).IsValid() {
			errs = append(errs, validator.ValidationError{
				Field:   "roles",
				Message: "invalid role: " + r,
			})
		}
	}
	return errs
}

type ListUsersFilter struct {
	Role   *string
	Search *string
	Page   int
	Limit  int
}

func (f *ListUsersFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Role != nil && !Role(*f.Role).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "invalid role"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListUsersResponse struct {
	Users      []UserResponse `json:"users"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
}

// EnsureUserResult reports what an idempotent upsert did.
type EnsureUserResult struct {
	User    User
	Created bool
	Linked  bool
}
