package postgresql

import (
	"context"

	"github.com/distrohub/distro-backend-go/internal/domain/order"
	"github.com/distrohub/distro-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type orderRepositoryImpl struct {
	db *database.DB
}

func NewOrderRepository(db *database.DB) order.OrderRepository {
	return &orderRepositoryImpl{db: db}
}

const orderColumns = `id, order_number, distributor_id, status, note, created_by, created_at, updated_at`

func scanOrder(row interface{ Scan(...interface{}) error }) (order.OrderRequest, error) {
	var o order.OrderRequest
	err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.DistributorID,
		&o.Status,
		&o.Note,
		&o.CreatedBy,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

func (r *orderRepositoryImpl) loadItems(ctx context.Context, q database.Querier, orderID string) ([]order.OrderItem, error) {
	rows, err := q.Query(ctx, `SELECT id, order_id, product_id, quantity FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []order.OrderItem
	for rows.Next() {
		var item order.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetByID implements order.OrderRepository.
func (r *orderRepositoryImpl) GetByID(ctx context.Context, id string) (order.OrderRequest, error) {
	q := GetQuerier(ctx, r.db)

	o, err := scanOrder(q.QueryRow(ctx, `SELECT `+orderColumns+` FROM order_requests WHERE id = $1`, id))
	if err != nil {
		return order.OrderRequest{}, err
	}
	o.Items, err = r.loadItems(ctx, q, o.ID)
	return o, err
}

// List implements order.OrderRepository.
func (r *orderRepositoryImpl) List(ctx context.Context, status *order.OrderStatus) ([]order.OrderRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + orderColumns + ` FROM order_requests
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY created_at DESC`
	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []order.OrderRequest
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		items, err := r.loadItems(ctx, q, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Items = items
	}
	return result, nil
}

// Create implements order.OrderRepository. The order row and its items are
// written in one transaction.
func (r *orderRepositoryImpl) Create(ctx context.Context, o order.OrderRequest) (order.OrderRequest, error) {
	var created order.OrderRequest

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO order_requests (id, order_number, distributor_id, status, note, created_by, created_at, updated_at)
			VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, NOW(), NOW())
			RETURNING ` + orderColumns
		var err error
		created, err = scanOrder(tx.QueryRow(ctx, query, o.OrderNumber, o.DistributorID, string(o.Status), o.Note, o.CreatedBy))
		if err != nil {
			return err
		}

		for _, item := range o.Items {
			var saved order.OrderItem
			err = tx.QueryRow(ctx, `
				INSERT INTO order_items (id, order_id, product_id, quantity)
				VALUES (gen_random_uuid(), $1, $2, $3)
				RETURNING id, order_id, product_id, quantity
			`, created.ID, item.ProductID, item.Quantity).Scan(&saved.ID, &saved.OrderID, &saved.ProductID, &saved.Quantity)
			if err != nil {
				return err
			}
			created.Items = append(created.Items, saved)
		}
		return nil
	})
	if err != nil {
		return order.OrderRequest{}, err
	}

	return created, nil
}

// UpdateStatus implements order.OrderRepository.
func (r *orderRepositoryImpl) UpdateStatus(ctx context.Context, id string, status order.OrderStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE order_requests SET status = $1, updated_at = NOW() WHERE id = $2`, string(status), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

// CountByStatus implements order.OrderRepository.
func (r *orderRepositoryImpl) CountByStatus(ctx context.Context, status order.OrderStatus) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM order_requests WHERE status = $1`, string(status)).Scan(&count)
	return count, err
}
