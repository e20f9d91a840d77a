package middleware

import (
	"errors"
	"net/http"

	"github.com/distrohub/distro-backend-go/internal/domain/auth"
	"github.com/distrohub/distro-backend-go/internal/domain/user"
	"github.com/distrohub/distro-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				if errors.Is(err, jwtauth.ErrExpired) {
					response.HandleError(w, auth.ErrTokenExpired)
					return
				}
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// ActorFromContext rebuilds the authenticated user from the verified token
// claims. The permission snapshot is the one encoded at issue time.
func ActorFromContext(r *http.Request) (user.User, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return user.User{}, auth.ErrInvalidToken
	}

	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return user.User{}, auth.ErrInvalidToken
	}
	roleStr, _ := claims["role"].(string)
	email, _ := claims["email"].(string)
	isSubAdmin, _ := claims["is_sub_admin"].(bool)

	u := user.User{
		ID:         id,
		Email:      email,
		Role:       user.Role(roleStr),
		IsSubAdmin: isSubAdmin,
	}
	if raw, ok := claims["permissions"].([]interface{}); ok {
		for _, p := range raw {
			if s, ok := p.(string); ok {
				u.Permissions = append(u.Permissions, user.Permission(s))
			}
		}
	}
	return u, nil
}
