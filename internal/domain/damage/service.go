package damage

import (
	"context"

	"github.com/distrohub/distro-backend-go/internal/domain/user"
)

type ClaimService interface {
	Get(ctx context.Context, id string) (DamageClaim, error)
	List(ctx context.Context, status *ClaimStatus) ([]DamageClaim, error)
	Create(ctx context.Context, req CreateClaimRequest, reportedBy string) (DamageClaim, error)
	Resolve(ctx context.Context, claimID string, req ResolveClaimRequest, actor user.User) (DamageClaim, error)
	InitiateReplacement(ctx context.Context, claimID string, actor user.User) (DamageClaim, error)
	CompleteReplacement(ctx context.Context, claimID string, actor user.User) (DamageClaim, error)
}
