package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strconv"
	"time"

	"github.com/distrohub/distro-backend-go/internal/domain/user"
)

// APIError is the normalized form of every transport or server failure the
// client can produce. Status 0 means the request never reached the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// LoginPayload is the data object of a successful login response.
type LoginPayload struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
	User      user.Profile `json:"user"`
}

type profilePayload struct {
	User           user.Profile `json:"user"`
	TokenExpiresIn int64        `json:"token_expires_in"`
}

type refreshPayload struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// Client talks to the admin API. The cookie jar carries the HttpOnly
// refresh-token cookie between login and refresh calls.
type Client struct {
	baseURL    string
	deviceID   string
	httpClient *http.Client
}

func NewClient(baseURL string, deviceID string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL:  baseURL,
		deviceID: deviceID,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
			Jar:     jar,
		},
	}
}

func (c *Client) do(ctx context.Context, method, path, token string, body interface{}) (json.RawMessage, http.Header, *APIError) {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, nil, &APIError{Code: "ENCODE_ERROR", Message: err.Error()}
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, nil, &APIError{Code: "REQUEST_ERROR", Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if c.deviceID != "" {
		req.Header.Set("x-device-id", c.deviceID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, &APIError{Code: "NETWORK_ERROR", Message: err.Error()}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, resp.Header, &APIError{Status: resp.StatusCode, Code: "DECODE_ERROR", Message: err.Error()}
	}

	if !env.Success {
		apiErr := &APIError{Status: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		} else {
			apiErr.Message = env.Message
		}
		return nil, resp.Header, apiErr
	}
	return env.Data, resp.Header, nil
}

// Login exchanges credentials for an access token and profile.
func (c *Client) Login(ctx context.Context, email, password string) (LoginPayload, *APIError) {
	data, _, apiErr := c.do(ctx, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if apiErr != nil {
		return LoginPayload{}, apiErr
	}

	var payload LoginPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return LoginPayload{}, &APIError{Code: "DECODE_ERROR", Message: err.Error()}
	}
	return payload, nil
}

// Logout revokes the refresh token on the server.
func (c *Client) Logout(ctx context.Context, token string) *APIError {
	_, _, apiErr := c.do(ctx, http.MethodPost, "/api/v1/auth/logout", token, nil)
	return apiErr
}

// Profile fetches the authenticated user's profile. The returned expiresIn
// is the remaining token lifetime in seconds, read from the
// x-token-expires-in header.
func (c *Client) Profile(ctx context.Context, token string) (user.Profile, int64, *APIError) {
	data, headers, apiErr := c.do(ctx, http.MethodGet, "/api/v1/auth/profile", token, nil)
	if apiErr != nil {
		return user.Profile{}, 0, apiErr
	}

	var payload profilePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return user.Profile{}, 0, &APIError{Code: "DECODE_ERROR", Message: err.Error()}
	}

	expiresIn := payload.TokenExpiresIn
	if raw := headers.Get("x-token-expires-in"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			expiresIn = parsed
		}
	}
	return payload.User, expiresIn, nil
}

// RefreshAccessToken trades the refresh-token cookie for a new access token.
func (c *Client) RefreshAccessToken(ctx context.Context) (string, *APIError) {
	data, _, apiErr := c.do(ctx, http.MethodPost, "/api/v1/auth/refresh", "", nil)
	if apiErr != nil {
		return "", apiErr
	}

	var payload refreshPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", &APIError{Code: "DECODE_ERROR", Message: err.Error()}
	}
	return payload.Token, nil
}
