package order

import (
	"strconv"

	"github.com/distrohub/distro-backend-go/internal/pkg/validator"
)

type CreateOrderRequest struct {
	DistributorID string            `json:"distributor_id"`
	Note          *string           `json:"note"`
	Items         []CreateOrderItem `json:"items"`
}

type CreateOrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (r *CreateOrderRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DistributorID) {
		errs = append(errs, validator.ValidationError{Field: "distributor_id", Message: "distributor_id is required"})
	}
	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{Field: "items", Message: "at least one item is required"})
	}
	for i, item := range r.Items {
		if validator.IsEmpty(item.ProductID) {
			errs = append(errs, validator.ValidationError{Field: "items", Message: "items[" + strconv.Itoa(i) + "].product_id is required"})
		}
		if item.Quantity <= 0 {
			errs = append(errs, validator.ValidationError{Field: "items", Message: "items[" + strconv.Itoa(i) + "].quantity must be greater than 0"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateOrderStatusRequest) Validate() error {
	status, ok := ParseOrderStatus(r.Status)
	if !ok || status == OrderStatusPending {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be one of confirmed, dispatched, cancelled",
		}}
	}
	return nil
}
