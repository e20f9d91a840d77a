package user

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, newUser User) (User, error)
	Update(ctx context.Context, req UpdateUserRequest) error
	UpdatePermissions(ctx context.Context, userID string, isSubAdmin bool, permissions []Permission) error
	SetActive(ctx context.Context, userID string, active bool) error
	CountByRole(ctx context.Context, role Role) (int64, error)
}
