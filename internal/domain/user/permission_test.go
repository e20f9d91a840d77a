package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission_AdminImplicitAll(t *testing.T) {
	admin := User{Role: RoleAdmin}

	for _, p := range AllPermissions {
		assert.True(t, HasPermission(admin, p), "admin should hold %q", p)
	}
	// Including keys not present in any explicit list.
	assert.True(t, HasPermission(admin, Permission("reports")))

	// Sub-admin flag on an admin changes nothing.
	admin.IsSubAdmin = true
	assert.True(t, HasPermission(admin, PermissionDamage))
}

func TestHasPermission_SubAdminMembership(t *testing.T) {
	subAdmin := User{
		Role:        RoleMarketingStaff,
		IsSubAdmin:  true,
		Permissions: []Permission{PermissionDamage, PermissionSales},
	}

	assert.True(t, HasPermission(subAdmin, PermissionDamage))
	assert.True(t, HasPermission(subAdmin, PermissionSales))
	assert.False(t, HasPermission(subAdmin, PermissionDistributors))
	assert.False(t, HasPermission(subAdmin, PermissionStaff))
}

func TestHasPermission_SubAdminEmptySet(t *testing.T) {
	subAdmin := User{Role: RoleMarketingStaff, IsSubAdmin: true}

	for _, p := range AllPermissions {
		assert.False(t, HasPermission(subAdmin, p), "empty set should deny %q", p)
	}
}

func TestHasPermission_RegularUserAlwaysDenied(t *testing.T) {
	regular := User{
		Role:        RoleMarketingStaff,
		Permissions: []Permission{PermissionDamage}, // ignored without the flag
	}

	for _, p := range AllPermissions {
		assert.False(t, HasPermission(regular, p), "regular user should not hold %q", p)
	}
}

func TestCanAccess(t *testing.T) {
	regular := User{Role: RoleGodownIncharge}
	assert.True(t, CanAccess(regular, PermissionGodown))
	assert.True(t, CanAccess(regular, PermissionDistributors))

	subAdmin := User{Role: RoleMarketingStaff, IsSubAdmin: true, Permissions: []Permission{PermissionDamage}}
	assert.True(t, CanAccess(subAdmin, PermissionDamage))
	assert.False(t, CanAccess(subAdmin, PermissionDistributors))
}

func TestParseRole(t *testing.T) {
	cases := []struct {
		input string
		want  Role
		ok    bool
	}{
		{"admin", RoleAdmin, true},
		{"Admin", RoleAdmin, true},
		{"Administrator", RoleAdmin, true},
		{"Marketing Staff", RoleMarketingStaff, true},
		{"mid-level manager", RoleMidLevelManager, true},
		{"Godown Incharge", RoleGodownIncharge, true},
		{"superuser", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ParseRole(c.input)
		assert.Equal(t, c.ok, ok, "ParseRole(%q) ok", c.input)
		assert.Equal(t, c.want, got, "ParseRole(%q)", c.input)
	}
}

func TestCapabilityHelpers(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).CanResolveClaims())
	assert.True(t, (&User{Role: RoleMidLevelManager}).CanResolveClaims())
	assert.False(t, (&User{Role: RoleMarketingStaff}).CanResolveClaims())
	assert.False(t, (&User{Role: RoleGodownIncharge}).CanResolveClaims())

	assert.True(t, (&User{Role: RoleAdmin}).CanInitiateReplacement())
	assert.True(t, (&User{Role: RoleGodownIncharge}).CanInitiateReplacement())
	assert.False(t, (&User{Role: RoleMidLevelManager}).CanInitiateReplacement())
}
