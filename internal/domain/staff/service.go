package staff

import (
	"context"

	"github.com/distrohub/distro-backend-go/internal/domain/user"
)

type StaffService interface {
	List(ctx context.Context) ([]user.User, error)
	Get(ctx context.Context, id string) (user.User, error)
	Create(ctx context.Context, req CreateStaffRequest) (user.User, error)
	Update(ctx context.Context, req user.UpdateUserRequest) error
	UpdatePermissions(ctx context.Context, req UpdatePermissionsRequest) error
	Deactivate(ctx context.Context, id string) error
}
