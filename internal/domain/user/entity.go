package user

import (
	"regexp"
	"time"
)

type Role string

const (
	RoleEmployee Role = "employee" // Submits shift and vacation requests
	RoleManager  Role = "manager"  // Approves requests of assigned employees
	RoleOffice   Role = "office"   // Reports, user and holiday administration
)

// ValidRoles lists every assignable role.
var ValidRoles = []Role{RoleEmployee, RoleManager, RoleOffice}

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}

type User struct {
	ID              string
	Email           string
	Name            string
	PhoneNumber     *string
	Roles           []Role
	PasswordHash    *string
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasRole checks whether the user holds role.
func (u *User) HasRole(role Role) bool {
	return HasRole(u.Roles, role)
}

// IsManager checks if user can approve requests
func (u *User) IsManager() bool {
	return u.HasRole(RoleManager)
}

// IsEmployee checks if user submits requests
func (u *User) IsEmployee() bool {
	return u.HasRole(RoleEmployee)
}

// IsOffice checks if user has office staff access
func (u *User) IsOffice() bool {
	return u.HasRole(RoleOffice)
}

// DisplayName falls back to the e-mail address when no name is set.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

func HasRole(roles []Role, role Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// Client is the kind of device a user signs in from.
type Client string

const (
	ClientMobile  Client = "mobile"
	ClientDesktop Client = "desktop"
)

var mobileUserAgent = regexp.MustCompile(`(?i)iPhone|iPad|iPod|Android`)

// ClientFromUserAgent classifies a User-Agent header.
func ClientFromUserAgent(ua string) Client {
	if mobileUserAgent.MatchString(ua) {
		return ClientMobile
	}
	return ClientDesktop
}

// Landing paths of the web client.
const (
	PathManager  = "/manager"
	PathEmployee = "/employee"
	PathOffice   = "/office"
)

// LandingPath picks the home screen for a signed-in user. Desktop clients
// always land on the office view; mobile clients prefer the manager view,
// then the employee view, then office.
func LandingPath(roles []Role, client Client) string {
	if client != ClientMobile {
		return PathOffice
	}
	switch {
	case HasRole(roles, RoleManager):
		return PathManager
	case HasRole(roles, RoleEmployee):
		return PathEmployee
	default:
		return PathOffice
	}
}
