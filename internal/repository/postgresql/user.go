package postgresql

import (
	"context"

	"github.com/distrohub/distro-backend-go/internal/domain/user"
	"github.com/distrohub/distro-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, name, email, phone, password_hash, role, is_sub_admin, permissions, is_active, created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (user.User, error) {
	var u user.User
	var permissions []string
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Phone,
		&u.PasswordHash,
		&u.Role,
		&u.IsSubAdmin,
		&permissions,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}
	for _, p := range permissions {
		u.Permissions = append(u.Permissions, user.Permission(p))
	}
	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(q.QueryRow(ctx, query, email))
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(q.QueryRow(ctx, query, id))
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	permissions := make([]string, 0, len(newUser.Permissions))
	for _, p := range newUser.Permissions {
		permissions = append(permissions, string(p))
	}

	query := `
		INSERT INTO users (id, name, email, phone, password_hash, role, is_sub_admin, permissions, is_active, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, true, NOW(), NOW())
		RETURNING ` + userColumns
	return scanUser(q.QueryRow(ctx, query,
		newUser.Name,
		newUser.Email,
		newUser.Phone,
		newUser.PasswordHash,
		string(newUser.Role),
		newUser.IsSubAdmin,
		permissions,
	))
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, req user.UpdateUserRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET name = COALESCE($1, name),
		    phone = COALESCE($2, phone),
		    role = COALESCE($3, role),
		    updated_at = NOW()
		WHERE id = $4
	`
	tag, err := q.Exec(ctx, query, req.Name, req.Phone, req.Role, req.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// UpdatePermissions implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePermissions(ctx context.Context, userID string, isSubAdmin bool, perms []user.Permission) error {
	q := GetQuerier(ctx, r.db)

	permissions := make([]string, 0, len(perms))
	for _, p := range perms {
		permissions = append(permissions, string(p))
	}

	query := `
		UPDATE users
		SET is_sub_admin = $1, permissions = $2, updated_at = NOW()
		WHERE id = $3
	`
	tag, err := q.Exec(ctx, query, isSubAdmin, permissions, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// SetActive implements user.UserRepository.
func (r *userRepositoryImpl) SetActive(ctx context.Context, userID string, active bool) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE users SET is_active = $1, updated_at = NOW() WHERE id = $2`
	tag, err := q.Exec(ctx, query, active, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// CountByRole implements user.UserRepository.
func (r *userRepositoryImpl) CountByRole(ctx context.Context, role user.Role) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1 AND is_active`, string(role)).Scan(&count)
	return count, err
}
