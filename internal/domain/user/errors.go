package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrInvalidEmailFormat      = errors.New("invalid email format")
	ErrInvalidPasswordLength   = errors.New("password must be at least 8 characters")
	ErrInvalidRole             = errors.New("invalid role")
	ErrRolesRequired           = errors.New("at least one role is required")
	ErrOAuthProviderIDExists   = errors.New("oauth provider id already registered")
	ErrManagerAccessRequired   = errors.New("manager access required")
	ErrOfficeAccessRequired    = errors.New("office access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrCannotDeleteSelf        = errors.New("users cannot delete their own account")
	ErrCannotRemoveOwnOffice   = errors.New("users cannot remove their own office role")
)
