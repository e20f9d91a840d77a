package auth

import (
	"github.com/distrohub/distro-backend-go/internal/domain/user"
	"github.com/distrohub/distro-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshTokenRequest) Validate() error {
	if validator.IsEmpty(r.RefreshToken) {
		return validator.ValidationErrors{{
			Field:   "refresh_token",
			Message: "refresh_token is required",
		}}
	}
	return nil
}

// SessionTrackingRequest carries client metadata stored with each issued
// refresh token.
type SessionTrackingRequest struct {
	IPAddress string
	UserAgent string
	DeviceID  string
}

type TokenResponse struct {
	AccessToken           string       `json:"token"`
	AccessTokenExpiresIn  int64        `json:"expires_in"`
	RefreshToken          string       `json:"refresh_token"`
	RefreshTokenExpiresIn int64        `json:"-"`
	User                  user.Profile `json:"user"`
}

type AccessTokenResponse struct {
	AccessToken          string `json:"token"`
	AccessTokenExpiresIn int64  `json:"expires_in"`
}

// ProfileResponse is returned by GET /auth/profile. TokenExpiresIn is the
// number of seconds the presented access token remains valid; the handler
// also surfaces it as the x-token-expires-in header so the session client
// can renew proactively.
type ProfileResponse struct {
	User           user.Profile `json:"user"`
	TokenExpiresIn int64        `json:"token_expires_in"`
}
