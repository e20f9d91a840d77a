package product

import "github.com/distrohub/distro-backend-go/internal/pkg/validator"

type CreateProductRequest struct {
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Godown    string  `json:"godown"`
	UnitPrice float64 `json:"unit_price"`
	Stock     int     `json:"stock"`
}

func (r *CreateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.SKU) {
		errs = append(errs, validator.ValidationError{Field: "sku", Message: "sku is required"})
	}
	if validator.IsEmpty(r.Godown) {
		errs = append(errs, validator.ValidationError{Field: "godown", Message: "godown is required"})
	}
	if r.UnitPrice < 0 {
		errs = append(errs, validator.ValidationError{Field: "unit_price", Message: "unit_price must not be negative"})
	}
	if r.Stock < 0 {
		errs = append(errs, validator.ValidationError{Field: "stock", Message: "stock must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AdjustStockRequest applies a signed stock delta (receipt or issue).
type AdjustStockRequest struct {
	Delta  int     `json:"delta"`
	Reason *string `json:"reason"`
}

func (r *AdjustStockRequest) Validate() error {
	if r.Delta == 0 {
		return validator.ValidationErrors{{
			Field:   "delta",
			Message: "delta must not be zero",
		}}
	}
	return nil
}
