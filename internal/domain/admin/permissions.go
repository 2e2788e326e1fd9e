package admin

// Permission represents an admin permission
type Permission string

const (
	// User management
	PermViewUsers Permission = "users.view"
	PermBanUsers  Permission = "users.ban"

	// Content moderation
	PermViewReports     Permission = "reports.view"
	PermModerateReports Permission = "reports.moderate"

	// System
	PermViewStats    Permission = "stats.view"
	PermManageAdmins Permission = "admins.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermViewUsers, PermBanUsers,
		PermViewReports, PermModerateReports,
		PermViewStats, PermManageAdmins,
	},
	RoleModerator: {
		PermViewUsers,
		PermViewReports, PermModerateReports,
		PermViewStats,
	},
}

// RoleHierarchy defines role levels (higher = more permissions)
var RoleHierarchy = map[Role]int{
	RoleAdmin:     80,
	RoleModerator: 60,
}

// CanManage checks if role1 can manage role2
func CanManage(role1, role2 Role) bool {
	return RoleHierarchy[role1] > RoleHierarchy[role2]
}
