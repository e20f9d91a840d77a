package staff

import (
	"context"
	"fmt"

	"github.com/distrohub/distro-backend-go/internal/domain/staff"
	"github.com/distrohub/distro-backend-go/internal/domain/user"
	"github.com/distrohub/distro-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type StaffServiceImpl struct {
	db *database.DB
	user.UserRepository
}

func NewStaffService(db *database.DB, userRepository user.UserRepository) staff.StaffService {
	return &StaffServiceImpl{
		db:             db,
		UserRepository: userRepository,
	}
}

// List implements staff.StaffService.
func (s *StaffServiceImpl) List(ctx context.Context) ([]user.User, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return users, nil
}

// Get implements staff.StaffService.
func (s *StaffServiceImpl) Get(ctx context.Context, id string) (user.User, error) {
	userData, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get staff by id: %w", err)
	}
	return userData, nil
}

// Create implements staff.StaffService.
func (s *StaffServiceImpl) Create(ctx context.Context, req staff.CreateStaffRequest) (user.User, error) {
	existing, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil && err != pgx.ErrNoRows {
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	if existing.ID != "" {
		return user.User{}, user.ErrEmailAlreadyExists
	}

	role, ok := user.ParseRole(req.Role)
	if !ok {
		return user.User{}, user.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)

	permissions := make([]user.Permission, 0, len(req.Permissions))
	for _, p := range req.Permissions {
		permissions = append(permissions, user.Permission(p))
	}

	newUser := user.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: &hashed,
		Role:         role,
		IsSubAdmin:   req.IsSubAdmin,
		Permissions:  permissions,
	}
	created, err := s.UserRepository.Create(ctx, newUser)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create staff: %w", err)
	}
	return created, nil
}

// Update implements staff.StaffService.
func (s *StaffServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) error {
	if req.Role != nil {
		role, ok := user.ParseRole(*req.Role)
		if !ok {
			return user.ErrInvalidRole
		}
		canonical := string(role)
		req.Role = &canonical
	}
	return s.UserRepository.Update(ctx, req)
}

// UpdatePermissions implements staff.StaffService.
func (s *StaffServiceImpl) UpdatePermissions(ctx context.Context, req staff.UpdatePermissionsRequest) error {
	permissions := make([]user.Permission, 0, len(req.Permissions))
	for _, p := range req.Permissions {
		permissions = append(permissions, user.Permission(p))
	}
	return s.UserRepository.UpdatePermissions(ctx, req.UserID, req.IsSubAdmin, permissions)
}

// Deactivate implements staff.StaffService. The last active admin cannot be
// deactivated or the dashboard would lock itself out.
func (s *StaffServiceImpl) Deactivate(ctx context.Context, id string) error {
	userData, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to get staff by id: %w", err)
	}

	if userData.Role == user.RoleAdmin {
		admins, err := s.UserRepository.CountByRole(ctx, user.RoleAdmin)
		if err != nil {
			return fmt.Errorf("failed to count admins: %w", err)
		}
		if admins <= 1 {
			return user.ErrCannotDeactivateAdmin
		}
	}

	return s.UserRepository.SetActive(ctx, id, false)
}
