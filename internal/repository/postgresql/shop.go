package postgresql

import (
	"context"

	"github.com/distrohub/distro-backend-go/internal/domain/distributor"
	"github.com/distrohub/distro-backend-go/internal/pkg/database"
)

type shopRepositoryImpl struct {
	db *database.DB
}

func NewShopRepository(db *database.DB) distributor.ShopRepository {
	return &shopRepositoryImpl{db: db}
}

const shopColumns = `id, distributor_id, name, address, phone, latitude, longitude, created_at, updated_at`

func scanShop(row interface{ Scan(...interface{}) error }) (distributor.Shop, error) {
	var s distributor.Shop
	err := row.Scan(
		&s.ID,
		&s.DistributorID,
		&s.Name,
		&s.Address,
		&s.Phone,
		&s.Latitude,
		&s.Longitude,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// GetByID implements distributor.ShopRepository.
func (r *shopRepositoryImpl) GetByID(ctx context.Context, id string) (distributor.Shop, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + shopColumns + ` FROM shops WHERE id = $1`
	return scanShop(q.QueryRow(ctx, query, id))
}

// ListByDistributor implements distributor.ShopRepository.
func (r *shopRepositoryImpl) ListByDistributor(ctx context.Context, distributorID string) ([]distributor.Shop, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+shopColumns+` FROM shops WHERE distributor_id = $1 ORDER BY name`, distributorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []distributor.Shop
	for rows.Next() {
		s, err := scanShop(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// Create implements distributor.ShopRepository.
func (r *shopRepositoryImpl) Create(ctx context.Context, s distributor.Shop) (distributor.Shop, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shops (id, distributor_id, name, address, phone, latitude, longitude, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + shopColumns
	return scanShop(q.QueryRow(ctx, query, s.DistributorID, s.Name, s.Address, s.Phone, s.Latitude, s.Longitude))
}

// Delete implements distributor.ShopRepository.
func (r *shopRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shops WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return distributor.ErrShopNotFound
	}
	return nil
}
