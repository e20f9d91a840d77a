package damage

import "github.com/distrohub/distro-backend-go/internal/pkg/validator"

type CreateClaimRequest struct {
	DistributorID string  `json:"distributor_id"`
	ShopID        *string `json:"shop_id"`
	ProductID     string  `json:"product_id"`
	TotalPieces   int     `json:"total_pieces"`
	Reason        string  `json:"reason"`
	PhotoURL      *string `json:"photo_url"`
}

func (r *CreateClaimRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DistributorID) {
		errs = append(errs, validator.ValidationError{Field: "distributor_id", Message: "distributor_id is required"})
	}
	if validator.IsEmpty(r.ProductID) {
		errs = append(errs, validator.ValidationError{Field: "product_id", Message: "product_id is required"})
	}
	if r.TotalPieces <= 0 {
		errs = append(errs, validator.ValidationError{Field: "total_pieces", Message: "total_pieces must be greater than 0"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ResolveClaimRequest moves a pending claim into a terminal status. For a
// partial approval the piece count must satisfy 0 < approved < total; the
// messages below are shown verbatim on the dashboard form.
type ResolveClaimRequest struct {
	Status         string `json:"status"`
	ApprovedPieces *int   `json:"approved_pieces"`
	Note           *string `json:"note"`
}

func (r *ResolveClaimRequest) Validate(totalPieces int) error {
	var errs validator.ValidationErrors

	status, ok := ParseClaimStatus(r.Status)
	if !ok || !status.IsTerminal() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of approved, partially_approved, rejected",
		})
		return errs
	}

	if status == ClaimStatusPartiallyApproved {
		if r.ApprovedPieces == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "approved_pieces",
				Message: "approved_pieces is required for partial approval",
			})
		} else if *r.ApprovedPieces <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "approved_pieces",
				Message: "approved pieces must be greater than 0",
			})
		} else if *r.ApprovedPieces >= totalPieces {
			errs = append(errs, validator.ValidationError{
				Field:   "approved_pieces",
				Message: "approved pieces must be less than total pieces",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
