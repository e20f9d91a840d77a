package postgresql

import (
	"context"

	"github.com/distrohub/distro-backend-go/internal/domain/product"
	"github.com/distrohub/distro-backend-go/internal/pkg/database"
)

type productRepositoryImpl struct {
	db *database.DB
}

func NewProductRepository(db *database.DB) product.ProductRepository {
	return &productRepositoryImpl{db: db}
}

const productColumns = `id, name, sku, godown, unit_price, stock, is_active, created_at, updated_at`

func scanProduct(row interface{ Scan(...interface{}) error }) (product.Product, error) {
	var p product.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.SKU,
		&p.Godown,
		&p.UnitPrice,
		&p.Stock,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// GetByID implements product.ProductRepository.
func (r *productRepositoryImpl) GetByID(ctx context.Context, id string) (product.Product, error) {
	q := GetQuerier(ctx, r.db)
	return scanProduct(q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
}

// GetBySKU implements product.ProductRepository.
func (r *productRepositoryImpl) GetBySKU(ctx context.Context, sku string) (product.Product, error) {
	q := GetQuerier(ctx, r.db)
	return scanProduct(q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE sku = $1`, sku))
}

// List implements product.ProductRepository.
func (r *productRepositoryImpl) List(ctx context.Context, godown *string) ([]product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + productColumns + ` FROM products
		WHERE ($1::text IS NULL OR godown = $1)
		ORDER BY name`
	rows, err := q.Query(ctx, query, godown)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// Create implements product.ProductRepository.
func (r *productRepositoryImpl) Create(ctx context.Context, p product.Product) (product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO products (id, name, sku, godown, unit_price, stock, is_active, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, true, NOW(), NOW())
		RETURNING ` + productColumns
	return scanProduct(q.QueryRow(ctx, query, p.Name, p.SKU, p.Godown, p.UnitPrice, p.Stock))
}

// AdjustStock implements product.ProductRepository. The stock check happens
// in the same statement so concurrent adjustments cannot drive it negative.
func (r *productRepositoryImpl) AdjustStock(ctx context.Context, id string, delta int) (product.Product, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE products
		SET stock = stock + $1, updated_at = NOW()
		WHERE id = $2 AND stock + $1 >= 0
		RETURNING ` + productColumns
	return scanProduct(q.QueryRow(ctx, query, delta, id))
}

// SetActive implements product.ProductRepository.
func (r *productRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE products SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}
	return nil
}
