package user

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin           Role = "admin"             // Full access to every feature area
	RoleMarketingStaff  Role = "marketing_staff"   // Field sales and activity tracking
	RoleMidLevelManager Role = "mid_level_manager" // Can resolve damage claims
	RoleGodownIncharge  Role = "godown_incharge"   // Warehouse catalog and replacements
)

// ParseRole normalizes a role string to its canonical identifier. The legacy
// dashboard used "Admin" and "Administrator" interchangeably; both map to
// RoleAdmin here and the alias is never stored.
func ParseRole(s string) (Role, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	switch normalized {
	case "admin", "administrator":
		return RoleAdmin, true
	case "marketing_staff":
		return RoleMarketingStaff, true
	case "mid_level_manager":
		return RoleMidLevelManager, true
	case "godown_incharge":
		return RoleGodownIncharge, true
	}
	return "", false
}

type User struct {
	ID           string
	Name         string
	Email        string
	Phone        *string
	PasswordHash *string
	Role         Role
	IsSubAdmin   bool
	Permissions  []Permission
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanResolveClaims checks if the user may move a damage claim out of pending.
func (u *User) CanResolveClaims() bool {
	return u.Role == RoleAdmin || u.Role == RoleMidLevelManager
}

// CanInitiateReplacement checks if the user may start a replacement for an
// approved damage claim.
func (u *User) CanInitiateReplacement() bool {
	return u.Role == RoleAdmin || u.Role == RoleGodownIncharge
}
