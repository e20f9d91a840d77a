package user

// Permission is an opaque key granting access to one feature area of the
// dashboard. Keys match the navigation entries the frontend renders.
type Permission string

const (
	PermissionStaff        Permission = "staff"
	PermissionDistributors Permission = "distributors"
	PermissionShops        Permission = "shops"
	PermissionDamage       Permission = "damage"
	PermissionSales        Permission = "sales"
	PermissionTasks        Permission = "tasks"
	PermissionOrders       Permission = "orders"
	PermissionGodown       Permission = "godown"
	PermissionDashboard    Permission = "dashboard"
)

// AllPermissions lists every known feature-area key.
var AllPermissions = []Permission{
	PermissionStaff,
	PermissionDistributors,
	PermissionShops,
	PermissionDamage,
	PermissionSales,
	PermissionTasks,
	PermissionOrders,
	PermissionGodown,
	PermissionDashboard,
}

// HasPermission evaluates a feature-area key against a user. Admins hold
// every permission implicitly, including keys absent from any explicit set.
// Sub-admins hold exactly the keys enumerated on their profile. Everyone
// else holds none.
func HasPermission(u User, p Permission) bool {
	if u.Role == RoleAdmin {
		return true
	}
	if !u.IsSubAdmin {
		return false
	}
	for _, granted := range u.Permissions {
		if granted == p {
			return true
		}
	}
	return false
}

// CanAccess is the gate used for routes and menu entries: users who are not
// sub-admins pass (their access is bounded by role, not by permission keys),
// sub-admins pass only for keys in their set. This mirrors the dashboard's
// restricted-section behavior where only sub-admins see a locked menu.
func CanAccess(u User, p Permission) bool {
	if !u.IsSubAdmin {
		return true
	}
	return HasPermission(u, p)
}
