package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/distrohub/distro-backend-go/internal/domain/user"
	"github.com/distrohub/distro-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateServer(t *testing.T, jwtService jwt.Service, area user.Permission) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(AuthRequired(jwtService.JWTAuth()))
		r.With(RequireArea(area)).Get("/gated", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		r.With(RequireAdmin).Get("/admin-only", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func get(t *testing.T, url, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Error)
	return body.Error.Code
}

func TestRequireArea_SubAdminMembership(t *testing.T) {
	jwtService := jwt.NewJWTService("gate-test-secret", "1h", "24h")
	server := newGateServer(t, jwtService, user.PermissionDamage)

	subAdmin := user.User{
		ID:          "user-1",
		Email:       "farhan@example.com",
		Role:        user.RoleMarketingStaff,
		IsSubAdmin:  true,
		Permissions: []user.Permission{user.PermissionDamage},
	}
	token, _, err := jwtService.GenerateAccessToken(subAdmin)
	require.NoError(t, err)

	resp := get(t, server.URL+"/gated", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireArea_SubAdminDenied(t *testing.T) {
	jwtService := jwt.NewJWTService("gate-test-secret", "1h", "24h")
	server := newGateServer(t, jwtService, user.PermissionDistributors)

	subAdmin := user.User{
		ID:          "user-1",
		Role:        user.RoleMarketingStaff,
		IsSubAdmin:  true,
		Permissions: []user.Permission{user.PermissionDamage},
	}
	token, _, err := jwtService.GenerateAccessToken(subAdmin)
	require.NoError(t, err)

	resp := get(t, server.URL+"/gated", token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, resp))
}

func TestRequireArea_AdminPassesEveryArea(t *testing.T) {
	jwtService := jwt.NewJWTService("gate-test-secret", "1h", "24h")
	server := newGateServer(t, jwtService, user.PermissionDistributors)

	admin := user.User{ID: "admin-1", Role: user.RoleAdmin}
	token, _, err := jwtService.GenerateAccessToken(admin)
	require.NoError(t, err)

	resp := get(t, server.URL+"/gated", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthRequired_MissingToken(t *testing.T) {
	jwtService := jwt.NewJWTService("gate-test-secret", "1h", "24h")
	server := newGateServer(t, jwtService, user.PermissionDamage)

	resp := get(t, server.URL+"/gated", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequired_RefreshTokenRejected(t *testing.T) {
	jwtService := jwt.NewJWTService("gate-test-secret", "1h", "24h")
	server := newGateServer(t, jwtService, user.PermissionDamage)

	// A refresh token must not open gated routes.
	token, _, err := jwtService.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	resp := get(t, server.URL+"/gated", token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, resp))
}

func TestRequireAdmin(t *testing.T) {
	jwtService := jwt.NewJWTService("gate-test-secret", "1h", "24h")
	server := newGateServer(t, jwtService, user.PermissionDamage)

	manager := user.User{ID: "mgr-1", Role: user.RoleMidLevelManager}
	token, _, err := jwtService.GenerateAccessToken(manager)
	require.NoError(t, err)

	resp := get(t, server.URL+"/admin-only", token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	admin := user.User{ID: "admin-1", Role: user.RoleAdmin}
	adminToken, _, err := jwtService.GenerateAccessToken(admin)
	require.NoError(t, err)

	resp = get(t, server.URL+"/admin-only", adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
