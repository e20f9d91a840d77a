package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/distrohub/distro-backend-go/internal/domain/auth"
	"github.com/distrohub/distro-backend-go/internal/handler/http/middleware"
	"github.com/distrohub/distro-backend-go/internal/handler/http/response"
	"github.com/distrohub/distro-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	var sessionTrackReq auth.SessionTrackingRequest
	sessionTrackReq.IPAddress = r.RemoteAddr
	sessionTrackReq.UserAgent = r.UserAgent()
	sessionTrackReq.DeviceID = r.Header.Get("x-device-id")
	tokenResponse, err := a.authService.Login(r.Context(), loginReq, sessionTrackReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	refreshTokenCookie := a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn)
	http.SetCookie(w, refreshTokenCookie)
	slog.Info("User logged in successfully", "email", loginReq.Email)
	response.SuccessWithMessage(w, "Logged in successfully", tokenResponse)
}

// Logout implements AuthHandler. Revocation failures are not surfaced: the
// client clears its state either way, so the response is always a success.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	refreshToken := refreshTokenFromRequest(r)
	if refreshToken != "" {
		if err := a.authService.Logout(r.Context(), refreshToken); err != nil {
			slog.Error("Logout service error", "error", err)
		}
	}

	// Expire the cookie
	cookie := a.jwtService.RefreshTokenCookie("", 0)
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshReq := auth.RefreshTokenRequest{RefreshToken: refreshTokenFromRequest(r)}

	if err := refreshReq.Validate(); err != nil {
		slog.Error("RefreshToken validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := a.authService.RefreshToken(r.Context(), refreshReq)
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tokenResponse)
}

// Profile implements AuthHandler. The remaining token lifetime rides on the
// x-token-expires-in header so clients can renew before expiry.
func (a *AuthHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	token, _, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	profile, err := a.authService.Profile(r.Context(), actor.ID, token.Expiration().Unix())
	if err != nil {
		slog.Error("Profile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("x-token-expires-in", strconv.FormatInt(profile.TokenExpiresIn, 10))
	response.Success(w, profile)
}

// refreshTokenFromRequest prefers the HttpOnly cookie and falls back to a
// JSON body for clients that cannot hold cookies.
func refreshTokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	var body auth.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
		return body.RefreshToken
	}
	return ""
}
