package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/distrohub/distro-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(w http.ResponseWriter, status int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func okEnvelope(data interface{}) map[string]interface{} {
	return map[string]interface{}{"success": true, "data": data}
}

func errEnvelope(code, message string) map[string]interface{} {
	return map[string]interface{}{
		"success": false,
		"error":   map[string]string{"code": code, "message": message},
	}
}

func testProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":           "user-1",
		"name":         "Farhan Ahmed",
		"email":        "farhan@example.com",
		"role":         "marketing_staff",
		"is_sub_admin": true,
		"permissions":  []string{"damage", "sales"},
	}
}

func newTestManager(t *testing.T, handler http.Handler) (*Manager, *Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return NewManager(store, NewClient(server.URL, "test-device")), store
}

func seedSession(t *testing.T, store *Store) {
	t.Helper()
	require.NoError(t, store.SaveToken("seed-token"))
	require.NoError(t, store.SaveProfile(user.Profile{
		ID:          "user-1",
		Name:        "Farhan Ahmed",
		Email:       "farhan@example.com",
		Role:        "marketing_staff",
		IsSubAdmin:  true,
		Permissions: []string{"damage", "sales"},
	}))
}

func TestManager_Login_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, okEnvelope(map[string]interface{}{
			"token":      "issued-token",
			"expires_in": 3600,
			"user":       testProfile(),
		}))
	})
	m, store := newTestManager(t, mux)

	result := m.Login(context.Background(), "farhan@example.com", "password123")
	require.True(t, result.Success)
	assert.Empty(t, result.Error)

	snap := m.Snapshot()
	assert.Equal(t, StateAuthenticated, snap.State)
	assert.True(t, snap.Verified)
	assert.Equal(t, "farhan@example.com", snap.Profile.Email)

	token, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)
}

func TestManager_Login_FailureUsesServerMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, errEnvelope("UNAUTHORIZED", "invalid email or password"))
	})
	m, store := newTestManager(t, mux)

	result := m.Login(context.Background(), "farhan@example.com", "wrong-password")
	require.False(t, result.Success)
	assert.Equal(t, "invalid email or password", result.Error)

	// Nothing was persisted.
	token, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestManager_Login_FailureFallbackMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusInternalServerError, map[string]interface{}{"success": false})
	})
	m, _ := newTestManager(t, mux)

	result := m.Login(context.Background(), "farhan@example.com", "password123")
	require.False(t, result.Success)
	assert.Equal(t, "Login failed", result.Error)
}

func TestManager_Logout_ClearsLocallyEvenWhenServerFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusInternalServerError, errEnvelope("INTERNAL_SERVER_ERROR", "boom"))
	})
	m, store := newTestManager(t, mux)
	seedSession(t, store)
	m.Hydrate()

	m.Logout(context.Background())

	snap := m.Snapshot()
	assert.Equal(t, StateUnauthenticated, snap.State)
	token, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)
	_, ok, err := store.Profile()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManager_Hydrate_OptimisticThenVerified(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer seed-token", r.Header.Get("Authorization"))
		w.Header().Set("x-token-expires-in", "7200")
		writeEnvelope(w, http.StatusOK, okEnvelope(map[string]interface{}{
			"user":             testProfile(),
			"token_expires_in": 7200,
		}))
	})
	m, store := newTestManager(t, mux)
	seedSession(t, store)

	m.Hydrate()
	snap := m.Snapshot()
	assert.Equal(t, StateAuthenticated, snap.State)
	assert.False(t, snap.Verified)

	_, cached := m.CachedProfile()
	assert.True(t, cached)
	_, verified := m.VerifiedProfile()
	assert.False(t, verified)

	require.True(t, m.RefreshSession(context.Background()))
	_, verified = m.VerifiedProfile()
	assert.True(t, verified)
}

func TestManager_Hydrate_EmptyStore(t *testing.T) {
	m, _ := newTestManager(t, http.NewServeMux())

	m.Hydrate()
	assert.Equal(t, StateUnauthenticated, m.Snapshot().State)
}

func TestManager_RefreshSession_ForceExpireOn401(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, errEnvelope("TOKEN_EXPIRED", "Token expired"))
	})
	m, store := newTestManager(t, mux)
	seedSession(t, store)
	m.Hydrate()

	assert.False(t, m.RefreshSession(context.Background()))

	snap := m.Snapshot()
	assert.Equal(t, StateUnauthenticated, snap.State)
	assert.Equal(t, "Your session has expired. Please log in again.", snap.Message)

	token, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestManager_RefreshSession_TransientFailureKeepsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusInternalServerError, errEnvelope("INTERNAL_SERVER_ERROR", "database unavailable"))
	})
	m, store := newTestManager(t, mux)
	seedSession(t, store)
	m.Hydrate()

	assert.False(t, m.RefreshSession(context.Background()))

	// Session survives the outage with the cached profile.
	snap := m.Snapshot()
	assert.Equal(t, StateAuthenticated, snap.State)
	assert.Empty(t, snap.Message)
	token, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "seed-token", token)
}

func TestManager_RefreshSession_NoTokenIsNoOp(t *testing.T) {
	m, _ := newTestManager(t, http.NewServeMux())
	m.Hydrate()

	assert.False(t, m.RefreshSession(context.Background()))
	assert.Equal(t, StateUnauthenticated, m.Snapshot().State)
}

func TestManager_RefreshSession_ProactiveRenewal(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		// Ten minutes left, under the renewal threshold.
		w.Header().Set("x-token-expires-in", "600")
		writeEnvelope(w, http.StatusOK, okEnvelope(map[string]interface{}{
			"user":             testProfile(),
			"token_expires_in": 600,
		}))
	})
	mux.HandleFunc("/api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, okEnvelope(map[string]interface{}{
			"token":      "renewed-token",
			"expires_in": 3600,
		}))
	})
	m, store := newTestManager(t, mux)
	seedSession(t, store)
	m.Hydrate()

	require.True(t, m.RefreshSession(context.Background()))

	token, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "renewed-token", token)
}

func TestManager_RefreshSession_RenewalFailureIsNonFatal(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("x-token-expires-in", "600")
		writeEnvelope(w, http.StatusOK, okEnvelope(map[string]interface{}{
			"user":             testProfile(),
			"token_expires_in": 600,
		}))
	})
	mux.HandleFunc("/api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, errEnvelope("REFRESH_TOKEN_REVOKED", "Refresh token revoked"))
	})
	m, store := newTestManager(t, mux)
	seedSession(t, store)
	m.Hydrate()

	// The refresh itself still counts as a success.
	require.True(t, m.RefreshSession(context.Background()))
	assert.Equal(t, StateAuthenticated, m.Snapshot().State)

	token, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "seed-token", token)
}

func TestManager_HasPermission(t *testing.T) {
	mux := http.NewServeMux()
	m, store := newTestManager(t, mux)
	seedSession(t, store)
	m.Hydrate()

	assert.True(t, m.HasPermission("damage"))
	assert.True(t, m.HasPermission("sales"))
	assert.False(t, m.HasPermission("distributors"))

	m.Logout(context.Background())
	assert.False(t, m.HasPermission("damage"))
}
