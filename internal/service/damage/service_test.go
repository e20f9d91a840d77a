package damage

import (
	"context"
	"testing"

	"github.com/distrohub/distro-backend-go/internal/domain/damage"
	"github.com/distrohub/distro-backend-go/internal/domain/distributor"
	"github.com/distrohub/distro-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockClaimRepo struct {
	claims map[string]damage.DamageClaim
}

func newMockClaimRepo(claims ...damage.DamageClaim) *mockClaimRepo {
	m := &mockClaimRepo{claims: make(map[string]damage.DamageClaim)}
	for _, c := range claims {
		m.claims[c.ID] = c
	}
	return m
}

func (m *mockClaimRepo) GetByID(_ context.Context, id string) (damage.DamageClaim, error) {
	c, ok := m.claims[id]
	if !ok {
		return damage.DamageClaim{}, pgx.ErrNoRows
	}
	return c, nil
}

func (m *mockClaimRepo) List(_ context.Context, status *damage.ClaimStatus) ([]damage.DamageClaim, error) {
	var result []damage.DamageClaim
	for _, c := range m.claims {
		if status == nil || c.Status == *status {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *mockClaimRepo) ListByDistributor(_ context.Context, distributorID string) ([]damage.DamageClaim, error) {
	var result []damage.DamageClaim
	for _, c := range m.claims {
		if c.DistributorID == distributorID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *mockClaimRepo) Create(_ context.Context, claim damage.DamageClaim) (damage.DamageClaim, error) {
	claim.ID = "claim-" + claim.ClaimNumber
	m.claims[claim.ID] = claim
	return claim, nil
}

func (m *mockClaimRepo) UpdateResolution(_ context.Context, claim damage.DamageClaim) error {
	if _, ok := m.claims[claim.ID]; !ok {
		return damage.ErrClaimNotFound
	}
	m.claims[claim.ID] = claim
	return nil
}

func (m *mockClaimRepo) UpdateReplacement(_ context.Context, claimID string, replacement damage.ReplacementStatus) error {
	c, ok := m.claims[claimID]
	if !ok {
		return damage.ErrClaimNotFound
	}
	c.Replacement = replacement
	m.claims[claimID] = c
	return nil
}

func (m *mockClaimRepo) CountByStatus(_ context.Context, status damage.ClaimStatus) (int64, error) {
	var count int64
	for _, c := range m.claims {
		if c.Status == status {
			count++
		}
	}
	return count, nil
}

type mockDistributorRepo struct {
	distributors map[string]distributor.Distributor
}

func (m *mockDistributorRepo) GetByID(_ context.Context, id string) (distributor.Distributor, error) {
	d, ok := m.distributors[id]
	if !ok {
		return distributor.Distributor{}, pgx.ErrNoRows
	}
	return d, nil
}

func (m *mockDistributorRepo) GetByPhone(_ context.Context, phone string) (distributor.Distributor, error) {
	return distributor.Distributor{}, pgx.ErrNoRows
}

func (m *mockDistributorRepo) List(_ context.Context) ([]distributor.Distributor, error) {
	return nil, nil
}

func (m *mockDistributorRepo) Create(_ context.Context, d distributor.Distributor) (distributor.Distributor, error) {
	return d, nil
}

func (m *mockDistributorRepo) Update(_ context.Context, _ distributor.UpdateDistributorRequest) error {
	return nil
}

func (m *mockDistributorRepo) Delete(_ context.Context, _ string) error { return nil }

func (m *mockDistributorRepo) Count(_ context.Context) (int64, error) { return 0, nil }

func pendingClaim(total int) damage.DamageClaim {
	return damage.DamageClaim{
		ID:            "claim-1",
		ClaimNumber:   "DMG-TEST0001",
		DistributorID: "dist-1",
		ProductID:     "prod-1",
		TotalPieces:   total,
		Status:        damage.ClaimStatusPending,
		Replacement:   damage.ReplacementNone,
		ReportedBy:    "user-1",
	}
}

var (
	adminActor   = user.User{ID: "admin-1", Role: user.RoleAdmin}
	managerActor = user.User{ID: "mgr-1", Role: user.RoleMidLevelManager}
	godownActor  = user.User{ID: "gdn-1", Role: user.RoleGodownIncharge}
	salesActor   = user.User{ID: "mkt-1", Role: user.RoleMarketingStaff}
)

func intPtr(i int) *int { return &i }

func TestClaimService_Resolve_Approve(t *testing.T) {
	repo := newMockClaimRepo(pendingClaim(20))
	svc := NewClaimService(nil, repo, &mockDistributorRepo{})

	claim, err := svc.Resolve(context.Background(), "claim-1", damage.ResolveClaimRequest{Status: "approved"}, managerActor)
	require.NoError(t, err)
	assert.Equal(t, damage.ClaimStatusApproved, claim.Status)
	require.NotNil(t, claim.ApprovedPieces)
	assert.Equal(t, 20, *claim.ApprovedPieces)
	require.NotNil(t, claim.ResolvedBy)
	assert.Equal(t, "mgr-1", *claim.ResolvedBy)
	assert.NotNil(t, claim.ResolvedAt)
}

func TestClaimService_Resolve_RoleGuard(t *testing.T) {
	repo := newMockClaimRepo(pendingClaim(20))
	svc := NewClaimService(nil, repo, &mockDistributorRepo{})

	for _, actor := range []user.User{godownActor, salesActor} {
		_, err := svc.Resolve(context.Background(), "claim-1", damage.ResolveClaimRequest{Status: "approved"}, actor)
		assert.ErrorIs(t, err, damage.ErrResolveNotAllowed, "role %s", actor.Role)
	}

	// State untouched after denied attempts.
	stored, _ := repo.GetByID(context.Background(), "claim-1")
	assert.Equal(t, damage.ClaimStatusPending, stored.Status)
}

func TestClaimService_Resolve_AlreadyResolved(t *testing.T) {
	claim := pendingClaim(20)
	claim.Status = damage.ClaimStatusRejected
	repo := newMockClaimRepo(claim)
	svc := NewClaimService(nil, repo, &mockDistributorRepo{})

	_, err := svc.Resolve(context.Background(), "claim-1", damage.ResolveClaimRequest{Status: "approved"}, adminActor)
	assert.ErrorIs(t, err, damage.ErrClaimAlreadyResolved)
}

func TestClaimService_Resolve_PartialBounds(t *testing.T) {
	cases := []struct {
		name    string
		pieces  int
		wantErr string
	}{
		{"zero pieces", 0, "greater than 0"},
		{"equal to total", 20, "less than total pieces"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			repo := newMockClaimRepo(pendingClaim(20))
			svc := NewClaimService(nil, repo, &mockDistributorRepo{})

			req := damage.ResolveClaimRequest{Status: "partially_approved", ApprovedPieces: intPtr(c.pieces)}
			_, err := svc.Resolve(context.Background(), "claim-1", req, adminActor)
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.wantErr)
		})
	}

	// One below total succeeds.
	repo := newMockClaimRepo(pendingClaim(20))
	svc := NewClaimService(nil, repo, &mockDistributorRepo{})
	req := damage.ResolveClaimRequest{Status: "partially_approved", ApprovedPieces: intPtr(19)}
	claim, err := svc.Resolve(context.Background(), "claim-1", req, adminActor)
	require.NoError(t, err)
	assert.Equal(t, damage.ClaimStatusPartiallyApproved, claim.Status)
	assert.Equal(t, 19, *claim.ApprovedPieces)
}

func TestClaimService_Replacement_Flow(t *testing.T) {
	claim := pendingClaim(20)
	claim.Status = damage.ClaimStatusApproved
	repo := newMockClaimRepo(claim)
	svc := NewClaimService(nil, repo, &mockDistributorRepo{})
	ctx := context.Background()

	// Marketing staff cannot initiate.
	_, err := svc.InitiateReplacement(ctx, "claim-1", salesActor)
	assert.ErrorIs(t, err, damage.ErrReplacementNotAllowed)

	// Godown incharge can.
	updated, err := svc.InitiateReplacement(ctx, "claim-1", godownActor)
	require.NoError(t, err)
	assert.Equal(t, damage.ReplacementPending, updated.Replacement)

	// A second initiation is blocked.
	_, err = svc.InitiateReplacement(ctx, "claim-1", adminActor)
	assert.ErrorIs(t, err, damage.ErrReplacementUnavailable)

	// Completion closes the sub-state.
	done, err := svc.CompleteReplacement(ctx, "claim-1", godownActor)
	require.NoError(t, err)
	assert.Equal(t, damage.ReplacementCompleted, done.Replacement)

	_, err = svc.CompleteReplacement(ctx, "claim-1", godownActor)
	assert.ErrorIs(t, err, damage.ErrReplacementNotPending)
}

func TestClaimService_Replacement_RequiresApproval(t *testing.T) {
	repo := newMockClaimRepo(pendingClaim(20))
	svc := NewClaimService(nil, repo, &mockDistributorRepo{})

	_, err := svc.InitiateReplacement(context.Background(), "claim-1", adminActor)
	assert.ErrorIs(t, err, damage.ErrReplacementUnavailable)
}

func TestClaimService_Create(t *testing.T) {
	repo := newMockClaimRepo()
	distRepo := &mockDistributorRepo{distributors: map[string]distributor.Distributor{
		"dist-1": {ID: "dist-1", Name: "Rahim Traders", IsActive: true},
		"dist-2": {ID: "dist-2", Name: "Closed Traders", IsActive: false},
	}}
	svc := NewClaimService(nil, repo, distRepo)
	ctx := context.Background()

	req := damage.CreateClaimRequest{
		DistributorID: "dist-1",
		ProductID:     "prod-1",
		TotalPieces:   12,
		Reason:        "leakage in transit",
	}
	claim, err := svc.Create(ctx, req, "user-1")
	require.NoError(t, err)
	assert.Equal(t, damage.ClaimStatusPending, claim.Status)
	assert.Equal(t, damage.ReplacementNone, claim.Replacement)
	assert.NotEmpty(t, claim.ClaimNumber)

	req.DistributorID = "dist-2"
	_, err = svc.Create(ctx, req, "user-1")
	assert.ErrorIs(t, err, distributor.ErrDistributorInactive)

	req.DistributorID = "missing"
	_, err = svc.Create(ctx, req, "user-1")
	assert.ErrorIs(t, err, distributor.ErrDistributorNotFound)
}
