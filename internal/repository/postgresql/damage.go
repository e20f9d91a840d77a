package postgresql

import (
	"context"

	"github.com/distrohub/distro-backend-go/internal/domain/damage"
	"github.com/distrohub/distro-backend-go/internal/pkg/database"
)

type claimRepositoryImpl struct {
	db *database.DB
}

func NewClaimRepository(db *database.DB) damage.ClaimRepository {
	return &claimRepositoryImpl{db: db}
}

const claimColumns = `id, claim_number, distributor_id, shop_id, product_id, total_pieces, approved_pieces,
	reason, photo_url, status, replacement, reported_by, resolved_by, resolved_at, created_at, updated_at`

func scanClaim(row interface{ Scan(...interface{}) error }) (damage.DamageClaim, error) {
	var c damage.DamageClaim
	err := row.Scan(
		&c.ID,
		&c.ClaimNumber,
		&c.DistributorID,
		&c.ShopID,
		&c.ProductID,
		&c.TotalPieces,
		&c.ApprovedPieces,
		&c.Reason,
		&c.PhotoURL,
		&c.Status,
		&c.Replacement,
		&c.ReportedBy,
		&c.ResolvedBy,
		&c.ResolvedAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// GetByID implements damage.ClaimRepository.
func (r *claimRepositoryImpl) GetByID(ctx context.Context, id string) (damage.DamageClaim, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + claimColumns + ` FROM damage_claims WHERE id = $1`
	return scanClaim(q.QueryRow(ctx, query, id))
}

// List implements damage.ClaimRepository.
func (r *claimRepositoryImpl) List(ctx context.Context, status *damage.ClaimStatus) ([]damage.DamageClaim, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + claimColumns + ` FROM damage_claims
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY created_at DESC`
	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []damage.DamageClaim
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// ListByDistributor implements damage.ClaimRepository.
func (r *claimRepositoryImpl) ListByDistributor(ctx context.Context, distributorID string) ([]damage.DamageClaim, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + claimColumns + ` FROM damage_claims WHERE distributor_id = $1 ORDER BY created_at DESC`
	rows, err := q.Query(ctx, query, distributorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []damage.DamageClaim
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// Create implements damage.ClaimRepository.
func (r *claimRepositoryImpl) Create(ctx context.Context, claim damage.DamageClaim) (damage.DamageClaim, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO damage_claims (id, claim_number, distributor_id, shop_id, product_id, total_pieces,
			reason, photo_url, status, replacement, reported_by, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING ` + claimColumns
	return scanClaim(q.QueryRow(ctx, query,
		claim.ClaimNumber,
		claim.DistributorID,
		claim.ShopID,
		claim.ProductID,
		claim.TotalPieces,
		claim.Reason,
		claim.PhotoURL,
		string(claim.Status),
		string(claim.Replacement),
		claim.ReportedBy,
	))
}

// UpdateResolution implements damage.ClaimRepository.
func (r *claimRepositoryImpl) UpdateResolution(ctx context.Context, claim damage.DamageClaim) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE damage_claims
		SET status = $1, approved_pieces = $2, resolved_by = $3, resolved_at = $4, updated_at = NOW()
		WHERE id = $5
	`
	tag, err := q.Exec(ctx, query, string(claim.Status), claim.ApprovedPieces, claim.ResolvedBy, claim.ResolvedAt, claim.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return damage.ErrClaimNotFound
	}
	return nil
}

// UpdateReplacement implements damage.ClaimRepository.
func (r *claimRepositoryImpl) UpdateReplacement(ctx context.Context, claimID string, replacement damage.ReplacementStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE damage_claims SET replacement = $1, updated_at = NOW() WHERE id = $2`
	tag, err := q.Exec(ctx, query, string(replacement), claimID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return damage.ErrClaimNotFound
	}
	return nil
}

// CountByStatus implements damage.ClaimRepository.
func (r *claimRepositoryImpl) CountByStatus(ctx context.Context, status damage.ClaimStatus) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM damage_claims WHERE status = $1`, string(status)).Scan(&count)
	return count, err
}
