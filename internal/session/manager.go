package session

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/distrohub/distro-backend-go/internal/domain/user"
)

// State is the session lifecycle position.
type State int

const (
	StateUninitialized State = iota
	StateHydrating
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateHydrating:
		return "hydrating"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	}
	return "uninitialized"
}

// expiredMessage is shown verbatim when the session is force-expired.
const expiredMessage = "Your session has expired. Please log in again."

// renewalThreshold is the remaining token lifetime below which a refresh of
// the access token itself is attempted during a session refresh.
const renewalThreshold = 30 * time.Minute

// defaultRefreshInterval matches the dashboard's background polling cadence.
const defaultRefreshInterval = 15 * time.Minute

// Result reports a login attempt to the caller.
type Result struct {
	Success bool
	Error   string
}

// Snapshot is a consistent read of the session at one instant. Verified is
// false between hydration from the local store and the first successful
// server round trip.
type Snapshot struct {
	State    State
	Profile  user.Profile
	Verified bool
	Message  string
}

// Manager owns the client-side session: it logs in and out, keeps the
// profile fresh on a timer, and force-expires when the server rejects the
// token. All methods are safe for concurrent use.
type Manager struct {
	store  *Store
	client *Client
	logger *slog.Logger

	interval time.Duration
	wake     chan struct{}

	refreshing atomic.Bool

	mu       sync.RWMutex
	state    State
	profile  user.Profile
	verified bool
	message  string
}

type Option func(*Manager)

// WithRefreshInterval overrides the background polling cadence.
func WithRefreshInterval(d time.Duration) Option {
	return func(m *Manager) { m.interval = d }
}

// WithLogger overrides the manager's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

func NewManager(store *Store, client *Client, opts ...Option) *Manager {
	m := &Manager{
		store:    store,
		client:   client,
		logger:   slog.Default(),
		interval: defaultRefreshInterval,
		wake:     make(chan struct{}, 1),
		state:    StateUninitialized,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Hydrate loads any cached credentials and adopts them optimistically: a
// stored token and profile move the session straight to authenticated with
// Verified=false, and the next refresh either confirms or force-expires it.
func (m *Manager) Hydrate() {
	m.mu.Lock()
	m.state = StateHydrating
	m.mu.Unlock()

	token, err := m.store.Token()
	if err != nil {
		m.logger.Error("Session hydrate failed to read token", "error", err)
	}
	profile, ok, err := m.store.Profile()
	if err != nil {
		m.logger.Error("Session hydrate failed to read profile", "error", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if token == "" || !ok {
		m.state = StateUnauthenticated
		return
	}
	m.state = StateAuthenticated
	m.profile = profile
	m.verified = false
	m.message = ""
}

// Login authenticates against the server. On failure the session state is
// untouched and the server's message (or a generic fallback) is returned.
func (m *Manager) Login(ctx context.Context, email, password string) Result {
	payload, apiErr := m.client.Login(ctx, email, password)
	if apiErr != nil {
		message := apiErr.Message
		if message == "" {
			message = "Login failed"
		}
		m.logger.Warn("Login failed", "email", email, "code", apiErr.Code)
		return Result{Success: false, Error: message}
	}

	if err := m.store.SaveToken(payload.Token); err != nil {
		m.logger.Error("Failed to persist token", "error", err)
	}
	if err := m.store.SaveProfile(payload.User); err != nil {
		m.logger.Error("Failed to persist profile", "error", err)
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.profile = payload.User
	m.verified = true
	m.message = ""
	m.mu.Unlock()

	m.logger.Info("Logged in", "email", payload.User.Email, "role", payload.User.Role)
	return Result{Success: true}
}

// Logout revokes the session server-side on a best-effort basis. Local
// cleanup happens regardless of the server's answer.
func (m *Manager) Logout(ctx context.Context) {
	token, _ := m.store.Token()
	if token != "" {
		if apiErr := m.client.Logout(ctx, token); apiErr != nil {
			m.logger.Warn("Server logout failed, clearing local session anyway", "code", apiErr.Code)
		}
	}

	if err := m.store.Clear(); err != nil {
		m.logger.Error("Failed to clear credential store", "error", err)
	}

	m.mu.Lock()
	m.state = StateUnauthenticated
	m.profile = user.Profile{}
	m.verified = false
	m.message = ""
	m.mu.Unlock()
}

// RefreshSession re-verifies the session against the server and replaces
// the cached profile wholesale. It returns true only when the session was
// confirmed. Concurrent calls coalesce: while one refresh is underway any
// other returns false immediately.
func (m *Manager) RefreshSession(ctx context.Context) bool {
	if !m.refreshing.CompareAndSwap(false, true) {
		return false
	}
	defer m.refreshing.Store(false)

	token, err := m.store.Token()
	if err != nil || token == "" {
		return false
	}

	profile, expiresIn, apiErr := m.client.Profile(ctx, token)
	if apiErr != nil {
		if apiErr.Status == 401 || isSessionEnding(apiErr.Code) {
			m.forceExpire()
			return false
		}
		// Transient failure: keep whatever we had.
		m.logger.Warn("Session refresh failed transiently", "code", apiErr.Code, "status", apiErr.Status)
		return false
	}

	if err := m.store.SaveProfile(profile); err != nil {
		m.logger.Error("Failed to persist refreshed profile", "error", err)
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.profile = profile
	m.verified = true
	m.message = ""
	m.mu.Unlock()

	if time.Duration(expiresIn)*time.Second < renewalThreshold {
		newToken, refreshErr := m.client.RefreshAccessToken(ctx)
		if refreshErr != nil {
			// The session stays valid until the token actually expires.
			m.logger.Warn("Proactive token renewal failed", "code", refreshErr.Code)
		} else if err := m.store.SaveToken(newToken); err != nil {
			m.logger.Error("Failed to persist renewed token", "error", err)
		}
	}
	return true
}

func isSessionEnding(code string) bool {
	switch code {
	case "TOKEN_EXPIRED", "TOKEN_EXPIRING", "INVALID_TOKEN":
		return true
	}
	return false
}

// forceExpire drops all local session state and records the message the
// login screen shows.
func (m *Manager) forceExpire() {
	if err := m.store.Clear(); err != nil {
		m.logger.Error("Failed to clear credential store", "error", err)
	}

	m.mu.Lock()
	m.state = StateUnauthenticated
	m.profile = user.Profile{}
	m.verified = false
	m.message = expiredMessage
	m.mu.Unlock()

	m.logger.Info("Session force-expired")
}

// HasPermission evaluates a feature-area key against the current snapshot.
func (m *Manager) HasPermission(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != StateAuthenticated {
		return false
	}
	return user.HasPermission(profileToUser(m.profile), user.Permission(key))
}

// Snapshot returns a consistent copy of the session state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{
		State:    m.state,
		Profile:  m.profile,
		Verified: m.verified,
		Message:  m.message,
	}
}

// CachedProfile returns the profile whether or not the server has confirmed
// it this run.
func (m *Manager) CachedProfile() (user.Profile, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != StateAuthenticated {
		return user.Profile{}, false
	}
	return m.profile, true
}

// VerifiedProfile returns the profile only after a successful server round
// trip this run.
func (m *Manager) VerifiedProfile() (user.Profile, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != StateAuthenticated || !m.verified {
		return user.Profile{}, false
	}
	return m.profile, true
}

// Run drives the background refresh until ctx is cancelled: a fixed ticker
// plus on-demand wakeups, all converging on RefreshSession.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.RefreshSession(ctx)
		case <-m.wake:
			m.RefreshSession(ctx)
		}
	}
}

// Wake requests an immediate refresh from the Run loop, for events like the
// window regaining focus or the network coming back. It never blocks; if a
// wakeup is already queued the call is a no-op.
func (m *Manager) Wake() {
	select {
	case m.wake <- struct{}{}:
	default:
	}
}

func profileToUser(p user.Profile) user.User {
	u := user.User{
		ID:         p.ID,
		Name:       p.Name,
		Email:      p.Email,
		Role:       user.Role(p.Role),
		IsSubAdmin: p.IsSubAdmin,
	}
	for _, key := range p.Permissions {
		u.Permissions = append(u.Permissions, user.Permission(key))
	}
	return u
}
