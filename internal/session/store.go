package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/distrohub/distro-backend-go/internal/domain/user"
	"github.com/google/uuid"
)

const (
	tokenKey    = "distro_admin_token"
	profileKey  = "distro_admin_user"
	deviceIDKey = "distro_admin_device"
)

// Store persists session credentials across process restarts. Each key is
// one file under the state directory; writes are last-write-wins.
type Store struct {
	dir string
}

// NewStore opens (creating if needed) a credential store at dir. An empty
// dir falls back to the user config directory.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config directory: %w", err)
		}
		dir = filepath.Join(base, "distro-admin")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key)
}

func (s *Store) write(key string, data []byte) error {
	if err := os.WriteFile(s.path(key), data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Store) read(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// SaveToken persists the access token.
func (s *Store) SaveToken(token string) error {
	return s.write(tokenKey, []byte(token))
}

// Token returns the stored access token, or "" when none is stored.
func (s *Store) Token() (string, error) {
	data, err := s.read(tokenKey)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SaveProfile persists the user profile snapshot as JSON.
func (s *Store) SaveProfile(p user.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return s.write(profileKey, data)
}

// Profile returns the stored profile. The second return is false when no
// profile is stored or the stored data cannot be decoded.
func (s *Store) Profile() (user.Profile, bool, error) {
	data, err := s.read(profileKey)
	if err != nil {
		return user.Profile{}, false, err
	}
	if len(data) == 0 {
		return user.Profile{}, false, nil
	}
	var p user.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return user.Profile{}, false, nil
	}
	return p, true, nil
}

// Clear removes the stored token and profile. The device ID survives so the
// installation keeps a stable identity across logins.
func (s *Store) Clear() error {
	for _, key := range []string{tokenKey, profileKey} {
		if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", key, err)
		}
	}
	return nil
}

// DeviceID returns this installation's stable identifier, generating and
// persisting one on first use.
func (s *Store) DeviceID() string {
	if data, err := s.read(deviceIDKey); err == nil && len(data) > 0 {
		return string(data)
	}
	id := uuid.NewString()
	_ = s.write(deviceIDKey, []byte(id))
	return id
}
