package postgresql

import (
	"context"

	"github.com/distrohub/distro-backend-go/internal/domain/distributor"
	"github.com/distrohub/distro-backend-go/internal/pkg/database"
)

type distributorRepositoryImpl struct {
	db *database.DB
}

func NewDistributorRepository(db *database.DB) distributor.DistributorRepository {
	return &distributorRepositoryImpl{db: db}
}

const distributorColumns = `id, name, owner_name, phone, email, address, territory, is_active, created_at, updated_at`

func scanDistributor(row interface{ Scan(...interface{}) error }) (distributor.Distributor, error) {
	var d distributor.Distributor
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.OwnerName,
		&d.Phone,
		&d.Email,
		&d.Address,
		&d.Territory,
		&d.IsActive,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	return d, err
}

// GetByID implements distributor.DistributorRepository.
func (r *distributorRepositoryImpl) GetByID(ctx context.Context, id string) (distributor.Distributor, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + distributorColumns + ` FROM distributors WHERE id = $1`
	return scanDistributor(q.QueryRow(ctx, query, id))
}

// GetByPhone implements distributor.DistributorRepository.
func (r *distributorRepositoryImpl) GetByPhone(ctx context.Context, phone string) (distributor.Distributor, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + distributorColumns + ` FROM distributors WHERE phone = $1`
	return scanDistributor(q.QueryRow(ctx, query, phone))
}

// List implements distributor.DistributorRepository.
func (r *distributorRepositoryImpl) List(ctx context.Context) ([]distributor.Distributor, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+distributorColumns+` FROM distributors ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []distributor.Distributor
	for rows.Next() {
		d, err := scanDistributor(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

// Create implements distributor.DistributorRepository.
func (r *distributorRepositoryImpl) Create(ctx context.Context, d distributor.Distributor) (distributor.Distributor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO distributors (id, name, owner_name, phone, email, address, territory, is_active, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, true, NOW(), NOW())
		RETURNING ` + distributorColumns
	return scanDistributor(q.QueryRow(ctx, query, d.Name, d.OwnerName, d.Phone, d.Email, d.Address, d.Territory))
}

// Update implements distributor.DistributorRepository.
func (r *distributorRepositoryImpl) Update(ctx context.Context, req distributor.UpdateDistributorRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE distributors
		SET name = COALESCE($1, name),
		    owner_name = COALESCE($2, owner_name),
		    phone = COALESCE($3, phone),
		    email = COALESCE($4, email),
		    address = COALESCE($5, address),
		    territory = COALESCE($6, territory),
		    is_active = COALESCE($7, is_active),
		    updated_at = NOW()
		WHERE id = $8
	`
	tag, err := q.Exec(ctx, query, req.Name, req.OwnerName, req.Phone, req.Email, req.Address, req.Territory, req.IsActive, req.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return distributor.ErrDistributorNotFound
	}
	return nil
}

// Delete implements distributor.DistributorRepository.
func (r *distributorRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM distributors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return distributor.ErrDistributorNotFound
	}
	return nil
}

// Count implements distributor.DistributorRepository.
func (r *distributorRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM distributors WHERE is_active`).Scan(&count)
	return count, err
}
