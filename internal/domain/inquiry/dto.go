package inquiry

import "github.com/distrohub/distro-backend-go/internal/pkg/validator"

type CreateInquiryRequest struct {
	CustomerName string  `json:"customer_name"`
	Phone        string  `json:"phone"`
	Area         string  `json:"area"`
	ProductID    *string `json:"product_id"`
	Note         *string `json:"note"`
}

func (r *CreateInquiryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CustomerName) {
		errs = append(errs, validator.ValidationError{Field: "customer_name", Message: "customer_name is required"})
	}
	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone is required"})
	} else if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone must be a valid phone number"})
	}
	if validator.IsEmpty(r.Area) {
		errs = append(errs, validator.ValidationError{Field: "area", Message: "area is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateInquiryStatusRequest struct {
	Status string  `json:"status"`
	Note   *string `json:"note"`
}

func (r *UpdateInquiryStatusRequest) Validate() error {
	if _, ok := ParseInquiryStatus(r.Status); !ok {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be one of open, follow_up, converted, closed",
		}}
	}
	return nil
}
