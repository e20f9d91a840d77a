package postgresql

import (
	"context"

	"github.com/distrohub/distro-backend-go/internal/domain/inquiry"
	"github.com/distrohub/distro-backend-go/internal/pkg/database"
)

type inquiryRepositoryImpl struct {
	db *database.DB
}

func NewInquiryRepository(db *database.DB) inquiry.InquiryRepository {
	return &inquiryRepositoryImpl{db: db}
}

const inquiryColumns = `id, customer_name, phone, area, product_id, note, status, created_by, created_at, updated_at`

func scanInquiry(row interface{ Scan(...interface{}) error }) (inquiry.SalesInquiry, error) {
	var inq inquiry.SalesInquiry
	err := row.Scan(
		&inq.ID,
		&inq.CustomerName,
		&inq.Phone,
		&inq.Area,
		&inq.ProductID,
		&inq.Note,
		&inq.Status,
		&inq.CreatedBy,
		&inq.CreatedAt,
		&inq.UpdatedAt,
	)
	return inq, err
}

// GetByID implements inquiry.InquiryRepository.
func (r *inquiryRepositoryImpl) GetByID(ctx context.Context, id string) (inquiry.SalesInquiry, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + inquiryColumns + ` FROM sales_inquiries WHERE id = $1`
	return scanInquiry(q.QueryRow(ctx, query, id))
}

// List implements inquiry.InquiryRepository.
func (r *inquiryRepositoryImpl) List(ctx context.Context, status *inquiry.InquiryStatus) ([]inquiry.SalesInquiry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + inquiryColumns + ` FROM sales_inquiries
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY created_at DESC`
	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []inquiry.SalesInquiry
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, inq)
	}
	return result, rows.Err()
}

// Create implements inquiry.InquiryRepository.
func (r *inquiryRepositoryImpl) Create(ctx context.Context, inq inquiry.SalesInquiry) (inquiry.SalesInquiry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sales_inquiries (id, customer_name, phone, area, product_id, note, status, created_by, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + inquiryColumns
	return scanInquiry(q.QueryRow(ctx, query, inq.CustomerName, inq.Phone, inq.Area, inq.ProductID, inq.Note, string(inq.Status), inq.CreatedBy))
}

// UpdateStatus implements inquiry.InquiryRepository.
func (r *inquiryRepositoryImpl) UpdateStatus(ctx context.Context, id string, status inquiry.InquiryStatus, note *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE sales_inquiries
		SET status = $1, note = COALESCE($2, note), updated_at = NOW()
		WHERE id = $3
	`
	tag, err := q.Exec(ctx, query, string(status), note, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return inquiry.ErrInquiryNotFound
	}
	return nil
}

// CountOpen implements inquiry.InquiryRepository.
func (r *inquiryRepositoryImpl) CountOpen(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM sales_inquiries WHERE status IN ('open', 'follow_up')`).Scan(&count)
	return count, err
}
