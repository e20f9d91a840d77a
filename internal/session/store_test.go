package session

import (
	"testing"

	"github.com/distrohub/distro-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_TokenRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	token, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.SaveToken("abc.def.ghi"))
	token, err = store.Token()
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)
}

func TestStore_ProfileRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.Profile()
	require.NoError(t, err)
	assert.False(t, ok)

	saved := user.Profile{
		ID:          "user-1",
		Name:        "Farhan Ahmed",
		Email:       "farhan@example.com",
		Role:        "marketing_staff",
		IsSubAdmin:  true,
		Permissions: []string{"damage", "sales"},
	}
	require.NoError(t, store.SaveProfile(saved))

	loaded, ok, err := store.Profile()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, saved, loaded)
}

func TestStore_ClearKeepsDeviceID(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	deviceID := store.DeviceID()
	require.NotEmpty(t, deviceID)

	require.NoError(t, store.SaveToken("tok"))
	require.NoError(t, store.SaveProfile(user.Profile{ID: "user-1"}))
	require.NoError(t, store.Clear())

	token, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)
	_, ok, err := store.Profile()
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, deviceID, store.DeviceID())
}

func TestStore_LastWriteWins(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.SaveToken("first"))
	require.NoError(t, store.SaveToken("second"))

	token, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "second", token)
}
