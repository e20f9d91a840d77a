package damage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/distrohub/distro-backend-go/internal/domain/damage"
	"github.com/distrohub/distro-backend-go/internal/domain/distributor"
	"github.com/distrohub/distro-backend-go/internal/domain/user"
	"github.com/distrohub/distro-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ClaimServiceImpl struct {
	db *database.DB
	damage.ClaimRepository
	distributor.DistributorRepository
}

func NewClaimService(db *database.DB, claimRepository damage.ClaimRepository, distributorRepository distributor.DistributorRepository) damage.ClaimService {
	return &ClaimServiceImpl{
		db:                    db,
		ClaimRepository:       claimRepository,
		DistributorRepository: distributorRepository,
	}
}

// Get implements damage.ClaimService.
func (s *ClaimServiceImpl) Get(ctx context.Context, id string) (damage.DamageClaim, error) {
	claim, err := s.ClaimRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return damage.DamageClaim{}, damage.ErrClaimNotFound
		}
		return damage.DamageClaim{}, fmt.Errorf("failed to get claim by id: %w", err)
	}
	return claim, nil
}

// List implements damage.ClaimService.
func (s *ClaimServiceImpl) List(ctx context.Context, status *damage.ClaimStatus) ([]damage.DamageClaim, error) {
	claims, err := s.ClaimRepository.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}
	return claims, nil
}

// Create implements damage.ClaimService.
func (s *ClaimServiceImpl) Create(ctx context.Context, req damage.CreateClaimRequest, reportedBy string) (damage.DamageClaim, error) {
	dist, err := s.DistributorRepository.GetByID(ctx, req.DistributorID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return damage.DamageClaim{}, distributor.ErrDistributorNotFound
		}
		return damage.DamageClaim{}, fmt.Errorf("failed to get distributor by id: %w", err)
	}
	if !dist.IsActive {
		return damage.DamageClaim{}, distributor.ErrDistributorInactive
	}

	claim := damage.DamageClaim{
		ClaimNumber:   newClaimNumber(),
		DistributorID: req.DistributorID,
		ShopID:        req.ShopID,
		ProductID:     req.ProductID,
		TotalPieces:   req.TotalPieces,
		Reason:        req.Reason,
		PhotoURL:      req.PhotoURL,
		Status:        damage.ClaimStatusPending,
		Replacement:   damage.ReplacementNone,
		ReportedBy:    reportedBy,
	}
	created, err := s.ClaimRepository.Create(ctx, claim)
	if err != nil {
		return damage.DamageClaim{}, fmt.Errorf("failed to create claim: %w", err)
	}
	return created, nil
}

// Resolve implements damage.ClaimService. A claim leaves pending exactly
// once; the actor's role is checked before any state is touched.
func (s *ClaimServiceImpl) Resolve(ctx context.Context, claimID string, req damage.ResolveClaimRequest, actor user.User) (damage.DamageClaim, error) {
	if !actor.CanResolveClaims() {
		return damage.DamageClaim{}, damage.ErrResolveNotAllowed
	}

	claim, err := s.Get(ctx, claimID)
	if err != nil {
		return damage.DamageClaim{}, err
	}
	if claim.Status != damage.ClaimStatusPending {
		return damage.DamageClaim{}, damage.ErrClaimAlreadyResolved
	}

	if err := req.Validate(claim.TotalPieces); err != nil {
		return damage.DamageClaim{}, err
	}

	status, _ := damage.ParseClaimStatus(req.Status)
	now := time.Now()

	claim.Status = status
	claim.ResolvedBy = &actor.ID
	claim.ResolvedAt = &now
	switch status {
	case damage.ClaimStatusApproved:
		approved := claim.TotalPieces
		claim.ApprovedPieces = &approved
	case damage.ClaimStatusPartiallyApproved:
		claim.ApprovedPieces = req.ApprovedPieces
	case damage.ClaimStatusRejected:
		claim.ApprovedPieces = nil
	}

	if err := s.ClaimRepository.UpdateResolution(ctx, claim); err != nil {
		return damage.DamageClaim{}, fmt.Errorf("failed to update claim resolution: %w", err)
	}
	return claim, nil
}

// InitiateReplacement implements damage.ClaimService.
func (s *ClaimServiceImpl) InitiateReplacement(ctx context.Context, claimID string, actor user.User) (damage.DamageClaim, error) {
	if !actor.CanInitiateReplacement() {
		return damage.DamageClaim{}, damage.ErrReplacementNotAllowed
	}

	claim, err := s.Get(ctx, claimID)
	if err != nil {
		return damage.DamageClaim{}, err
	}
	if !claim.ReplacementAllowed() {
		return damage.DamageClaim{}, damage.ErrReplacementUnavailable
	}

	claim.Replacement = damage.ReplacementPending
	if err := s.ClaimRepository.UpdateReplacement(ctx, claim.ID, claim.Replacement); err != nil {
		return damage.DamageClaim{}, fmt.Errorf("failed to update claim replacement: %w", err)
	}
	return claim, nil
}

// CompleteReplacement implements damage.ClaimService.
func (s *ClaimServiceImpl) CompleteReplacement(ctx context.Context, claimID string, actor user.User) (damage.DamageClaim, error) {
	if !actor.CanInitiateReplacement() {
		return damage.DamageClaim{}, damage.ErrReplacementNotAllowed
	}

	claim, err := s.Get(ctx, claimID)
	if err != nil {
		return damage.DamageClaim{}, err
	}
	if claim.Replacement != damage.ReplacementPending {
		return damage.DamageClaim{}, damage.ErrReplacementNotPending
	}

	claim.Replacement = damage.ReplacementCompleted
	if err := s.ClaimRepository.UpdateReplacement(ctx, claim.ID, claim.Replacement); err != nil {
		return damage.DamageClaim{}, fmt.Errorf("failed to update claim replacement: %w", err)
	}
	return claim, nil
}

func newClaimNumber() string {
	return "DMG-" + strings.ToUpper(uuid.NewString()[:8])
}
