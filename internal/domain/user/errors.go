package user

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrInvalidRole           = errors.New("invalid role")
	ErrAdminAccessRequired   = errors.New("admin access required")
	ErrPermissionDenied      = errors.New("permission denied for this feature area")
	ErrCannotDeactivateAdmin = errors.New("the last admin account cannot be deactivated")
)
