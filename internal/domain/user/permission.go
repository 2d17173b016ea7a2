package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionEditOwnProfile Permission = "profile.edit_own"

	// Requests
	PermissionRequestCreate  Permission = "request.create"
	PermissionRequestViewOwn Permission = "request.view_own"
	PermissionRequestApprove Permission = "request.approve"
	PermissionRequestViewAll Permission = "request.view_all"

	// Schedule
	PermissionScheduleView Permission = "schedule.view"

	// Reports
	PermissionReportsView Permission = "reports.view"

	// Administration
	PermissionUserManage    Permission = "user.manage"
	PermissionHolidayManage Permission = "holiday.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleEmployee: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionRequestCreate,
		PermissionRequestViewOwn,
	},
	RoleManager: {
		// Managers see and decide on the requests assigned to them
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionRequestViewOwn,
		PermissionRequestApprove,
		PermissionScheduleView,
	},
	RoleOffice: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionRequestViewAll,
		PermissionReportsView,
		PermissionUserManage,
		PermissionHolidayManage,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}

// AnyHasPermission checks the permission across all roles a user holds.
func AnyHasPermission(roles []Role, permission Permission) bool {
	for _, r := range roles {
		if HasPermission(r, permission) {
			return true
		}
	}
	return false
}
