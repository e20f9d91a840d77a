package session

import (
	"strings"

	"github.com/distrohub/distro-backend-go/internal/domain/user"
)

// MenuEntry maps one navigation item to the feature-area permission that
// gates it.
type MenuEntry struct {
	Title      string
	Path       string
	Permission user.Permission
}

// Menu is the full navigation registry in display order.
var Menu = []MenuEntry{
	{Title: "Dashboard", Path: "/dashboard", Permission: user.PermissionDashboard},
	{Title: "Staff Management", Path: "/staff", Permission: user.PermissionStaff},
	{Title: "Distributors", Path: "/distributors", Permission: user.PermissionDistributors},
	{Title: "Damage & Leakage Reports", Path: "/damage", Permission: user.PermissionDamage},
	{Title: "Sales Inquiries", Path: "/inquiries", Permission: user.PermissionSales},
	{Title: "Marketing Tasks", Path: "/tasks", Permission: user.PermissionTasks},
	{Title: "Order Requests", Path: "/orders", Permission: user.PermissionOrders},
	{Title: "Godown Stock", Path: "/godown", Permission: user.PermissionGodown},
}

// Partition splits the menu into the entries the user may open and the
// entries shown locked. Only sub-admins ever see a restricted list; everyone
// else gets the full menu as authorized.
func Partition(p user.Profile) (authorized, restricted []MenuEntry) {
	u := profileToUser(p)
	for _, entry := range Menu {
		if user.CanAccess(u, entry.Permission) {
			authorized = append(authorized, entry)
		} else {
			restricted = append(restricted, entry)
		}
	}
	return authorized, restricted
}

// Decision is what a route guard should do with the current navigation.
type Decision int

const (
	// DecisionWait means the session is still hydrating; render nothing.
	DecisionWait Decision = iota
	// DecisionRedirectLogin means there is no session to show.
	DecisionRedirectLogin
	// DecisionAllow lets the navigation proceed.
	DecisionAllow
)

// GuardDecision evaluates the session snapshot for a navigation to path.
func GuardDecision(s Snapshot, path string) Decision {
	switch s.State {
	case StateUninitialized, StateHydrating:
		return DecisionWait
	case StateUnauthenticated:
		return DecisionRedirectLogin
	}

	for _, entry := range Menu {
		if IsActive(path, entry.Path) {
			if !user.CanAccess(profileToUser(s.Profile), entry.Permission) {
				return DecisionRedirectLogin
			}
			break
		}
	}
	return DecisionAllow
}

// IsActive reports whether current falls under the menu entry's path, by
// exact match or path-prefix match on a segment boundary.
func IsActive(current, entryPath string) bool {
	if current == entryPath {
		return true
	}
	return strings.HasPrefix(current, entryPath+"/")
}
