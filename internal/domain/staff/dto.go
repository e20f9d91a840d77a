package staff

import (
	"github.com/distrohub/distro-backend-go/internal/domain/user"
	"github.com/distrohub/distro-backend-go/internal/pkg/validator"
)

type CreateStaffRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       *string  `json:"phone"`
	Password    string   `json:"password"`
	Role        string   `json:"role"`
	IsSubAdmin  bool     `json:"is_sub_admin"`
	Permissions []string `json:"permissions"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone must be a valid phone number"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters long"})
	}
	if _, ok := user.ParseRole(r.Role); !ok {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of admin, marketing_staff, mid_level_manager, godown_incharge"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdatePermissionsRequest grants or revokes a staff member's sub-admin flag
// and explicit permission set.
type UpdatePermissionsRequest struct {
	UserID      string   `json:"user_id"`
	IsSubAdmin  bool     `json:"is_sub_admin"`
	Permissions []string `json:"permissions"`
}

func (r *UpdatePermissionsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id is required"})
	}
	known := make([]string, 0, len(user.AllPermissions))
	for _, p := range user.AllPermissions {
		known = append(known, string(p))
	}
	for _, p := range r.Permissions {
		if !validator.IsInSlice(p, known) {
			errs = append(errs, validator.ValidationError{Field: "permissions", Message: "unknown permission key: " + p})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
