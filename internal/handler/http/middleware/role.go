package middleware

import (
	"fmt"
	"net/http"

	"github.com/YossiBuhnik/WorkLog1/internal/domain/user"
	"github.com/YossiBuhnik/WorkLog1/internal/handler/http/response"
	"github.com/YossiBuhnik/WorkLog1/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

func rolesFromRequest(r *http.Request) ([]user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return nil, false
	}
	roles := jwt.RolesFromClaims(claims)
	return roles, len(roles) > 0
}

// RequireRole requires the caller to hold role
func RequireRole(role user.Role, denied error) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roles, ok := rolesFromRequest(r)
			if !ok || !user.HasRole(roles, role) {
				response.HandleError(w, denied)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireManager requires manager role
func RequireManager(next http.Handler) http.Handler {
	return RequireRole(user.RoleManager, user.ErrManagerAccessRequired)(next)
}

// RequireOffice requires office role
func RequireOffice(next http.Handler) http.Handler {
	return RequireRole(user.RoleOffice, user.ErrOfficeAccessRequired)(next)
}

// RequirePermission checks if any role of the user grants permission
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roles, ok := rolesFromRequest(r)
			if !ok {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}

			if !user.AnyHasPermission(roles, permission) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but user roles are %v", permission, roles))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
