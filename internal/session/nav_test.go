package session

import (
	"testing"

	"github.com/distrohub/distro-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuTitles(entries []MenuEntry) []string {
	titles := make([]string, 0, len(entries))
	for _, e := range entries {
		titles = append(titles, e.Title)
	}
	return titles
}

func TestPartition_SubAdmin(t *testing.T) {
	profile := user.Profile{
		ID:          "user-1",
		Role:        "marketing_staff",
		IsSubAdmin:  true,
		Permissions: []string{"damage"},
	}

	authorized, restricted := Partition(profile)

	assert.Equal(t, []string{"Damage & Leakage Reports"}, menuTitles(authorized))
	assert.Contains(t, menuTitles(restricted), "Distributors")
	assert.Len(t, restricted, len(Menu)-1)
}

func TestPartition_AdminSeesEverything(t *testing.T) {
	profile := user.Profile{ID: "admin-1", Role: "admin"}

	authorized, restricted := Partition(profile)
	assert.Len(t, authorized, len(Menu))
	assert.Empty(t, restricted)
}

func TestPartition_RegularStaffSeesEverything(t *testing.T) {
	// Non-sub-admins are not gated by permission keys.
	profile := user.Profile{ID: "user-2", Role: "godown_incharge"}

	authorized, restricted := Partition(profile)
	assert.Len(t, authorized, len(Menu))
	assert.Empty(t, restricted)
}

func TestGuardDecision(t *testing.T) {
	subAdmin := user.Profile{
		ID:          "user-1",
		Role:        "marketing_staff",
		IsSubAdmin:  true,
		Permissions: []string{"damage"},
	}

	cases := []struct {
		name string
		snap Snapshot
		path string
		want Decision
	}{
		{"hydrating renders nothing", Snapshot{State: StateHydrating}, "/dashboard", DecisionWait},
		{"uninitialized renders nothing", Snapshot{State: StateUninitialized}, "/dashboard", DecisionWait},
		{"unauthenticated redirects", Snapshot{State: StateUnauthenticated}, "/dashboard", DecisionRedirectLogin},
		{"authorized area allows", Snapshot{State: StateAuthenticated, Profile: subAdmin}, "/damage", DecisionAllow},
		{"nested authorized path allows", Snapshot{State: StateAuthenticated, Profile: subAdmin}, "/damage/claim-1", DecisionAllow},
		{"restricted area redirects", Snapshot{State: StateAuthenticated, Profile: subAdmin}, "/distributors", DecisionRedirectLogin},
		{"unregistered path allows", Snapshot{State: StateAuthenticated, Profile: subAdmin}, "/settings", DecisionAllow},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, GuardDecision(c.snap, c.path))
		})
	}
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive("/damage", "/damage"))
	assert.True(t, IsActive("/damage/claim-1", "/damage"))
	assert.False(t, IsActive("/damage-reports", "/damage"))
	assert.False(t, IsActive("/dashboard", "/damage"))
}

func TestMenuRegistryCoversKnownPermissions(t *testing.T) {
	seen := map[user.Permission]bool{}
	for _, entry := range Menu {
		require.NotEmpty(t, entry.Title)
		require.NotEmpty(t, entry.Path)
		seen[entry.Permission] = true
	}
	// Every menu permission is a known feature-area key.
	for p := range seen {
		assert.Contains(t, user.AllPermissions, p)
	}
}
