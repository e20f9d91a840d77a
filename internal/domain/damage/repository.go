package damage

import "context"

type ClaimRepository interface {
	GetByID(ctx context.Context, id string) (DamageClaim, error)
	List(ctx context.Context, status *ClaimStatus) ([]DamageClaim, error)
	ListByDistributor(ctx context.Context, distributorID string) ([]DamageClaim, error)
	Create(ctx context.Context, claim DamageClaim) (DamageClaim, error)
	UpdateResolution(ctx context.Context, claim DamageClaim) error
	UpdateReplacement(ctx context.Context, claimID string, replacement ReplacementStatus) error
	CountByStatus(ctx context.Context, status ClaimStatus) (int64, error)
}
