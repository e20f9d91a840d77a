package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, loginReq LoginRequest, sessionTrackReq SessionTrackingRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	Profile(ctx context.Context, userID string, tokenExpiresAt int64) (ProfileResponse, error)
}
