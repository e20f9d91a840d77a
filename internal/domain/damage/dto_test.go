package damage

import (
	"testing"

	"github.com/distrohub/distro-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestResolveClaimRequest_PartialBounds(t *testing.T) {
	total := 20

	// Zero pieces blocked.
	req := ResolveClaimRequest{Status: "partially_approved", ApprovedPieces: intPtr(0)}
	err := req.Validate(total)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "greater than 0")

	// Full count is not a partial approval.
	req = ResolveClaimRequest{Status: "partially_approved", ApprovedPieces: intPtr(total)}
	err = req.Validate(total)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "less than total pieces")

	// One below total passes.
	req = ResolveClaimRequest{Status: "partially_approved", ApprovedPieces: intPtr(total - 1)}
	assert.NoError(t, req.Validate(total))

	// Missing count blocked.
	req = ResolveClaimRequest{Status: "partially_approved"}
	err = req.Validate(total)
	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "approved_pieces", verrs[0].Field)
}

func TestResolveClaimRequest_Status(t *testing.T) {
	for _, status := range []string{"approved", "rejected"} {
		req := ResolveClaimRequest{Status: status}
		assert.NoError(t, req.Validate(10), "status %q", status)
	}
	for _, status := range []string{"pending", "done", ""} {
		req := ResolveClaimRequest{Status: status}
		assert.Error(t, req.Validate(10), "status %q", status)
	}
}

func TestReplacementAllowed(t *testing.T) {
	claim := DamageClaim{Status: ClaimStatusApproved, Replacement: ReplacementNone}
	assert.True(t, claim.ReplacementAllowed())

	claim.Status = ClaimStatusPartiallyApproved
	assert.True(t, claim.ReplacementAllowed())

	claim.Status = ClaimStatusRejected
	assert.False(t, claim.ReplacementAllowed())

	claim.Status = ClaimStatusPending
	assert.False(t, claim.ReplacementAllowed())

	claim.Status = ClaimStatusApproved
	claim.Replacement = ReplacementPending
	assert.False(t, claim.ReplacementAllowed())

	claim.Replacement = ReplacementCompleted
	assert.False(t, claim.ReplacementAllowed())
}
