package distributor

import "github.com/distrohub/distro-backend-go/internal/pkg/validator"

type CreateDistributorRequest struct {
	Name      string  `json:"name"`
	OwnerName string  `json:"owner_name"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email"`
	Address   string  `json:"address"`
	Territory string  `json:"territory"`
}

func (r *CreateDistributorRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 255 characters"})
	}
	if validator.IsEmpty(r.OwnerName) {
		errs = append(errs, validator.ValidationError{Field: "owner_name", Message: "owner_name is required"})
	}
	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone is required"})
	} else if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone must be a valid phone number"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}
	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{Field: "address", Message: "address is required"})
	}
	if validator.IsEmpty(r.Territory) {
		errs = append(errs, validator.ValidationError{Field: "territory", Message: "territory is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDistributorRequest struct {
	ID        string  `json:"id"`
	Name      *string `json:"name"`
	OwnerName *string `json:"owner_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
	Territory *string `json:"territory"`
	IsActive  *bool   `json:"is_active"`
}

func (r *UpdateDistributorRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone must be a valid phone number"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateShopRequest struct {
	DistributorID string   `json:"distributor_id"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Phone         *string  `json:"phone"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

func (r *CreateShopRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DistributorID) {
		errs = append(errs, validator.ValidationError{Field: "distributor_id", Message: "distributor_id is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{Field: "address", Message: "address is required"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone must be a valid phone number"})
	}
	// Coordinates come as a pair or not at all.
	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "latitude and longitude must be provided together"})
	}
	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"})
	}
	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
