package damage

import "time"

// ClaimStatus is the resolution state of a damage/leakage claim. A claim
// starts pending and moves exactly once into one of the terminal states.
type ClaimStatus string

const (
	ClaimStatusPending           ClaimStatus = "pending"
	ClaimStatusApproved          ClaimStatus = "approved"
	ClaimStatusPartiallyApproved ClaimStatus = "partially_approved"
	ClaimStatusRejected          ClaimStatus = "rejected"
)

// ParseClaimStatus accepts the wire spellings the dashboard sends.
func ParseClaimStatus(s string) (ClaimStatus, bool) {
	switch ClaimStatus(s) {
	case ClaimStatusPending, ClaimStatusApproved, ClaimStatusPartiallyApproved, ClaimStatusRejected:
		return ClaimStatus(s), true
	}
	return "", false
}

// IsTerminal reports whether the status is a resolution state.
func (s ClaimStatus) IsTerminal() bool {
	return s == ClaimStatusApproved || s == ClaimStatusPartiallyApproved || s == ClaimStatusRejected
}

// ReplacementStatus tracks the goods-replacement sub-state, independent of
// the claim status but only meaningful once a claim is (partially) approved.
type ReplacementStatus string

const (
	ReplacementNone      ReplacementStatus = "none"
	ReplacementPending   ReplacementStatus = "replacement_pending"
	ReplacementCompleted ReplacementStatus = "replacement_completed"
)

type DamageClaim struct {
	ID             string
	ClaimNumber    string
	DistributorID  string
	ShopID         *string
	ProductID      string
	TotalPieces    int
	ApprovedPieces *int
	Reason         string
	PhotoURL       *string
	Status         ClaimStatus
	Replacement    ReplacementStatus
	ReportedBy     string
	ResolvedBy     *string
	ResolvedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ReplacementAllowed reports whether a replacement may be initiated: the
// claim must be approved (fully or partially) and no replacement may exist
// yet.
func (c *DamageClaim) ReplacementAllowed() bool {
	if c.Replacement != ReplacementNone {
		return false
	}
	return c.Status == ClaimStatusApproved || c.Status == ClaimStatusPartiallyApproved
}
