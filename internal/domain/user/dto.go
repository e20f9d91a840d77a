package user

import "github.com/distrohub/distro-backend-go/internal/pkg/validator"

type UpdateUserRequest struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Role  *string `json:"role"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid phone number",
		})
	}
	if r.Role != nil {
		if _, ok := ParseRole(*r.Role); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "role must be one of admin, marketing_staff, mid_level_manager, godown_incharge",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Profile is the wire shape of a user as the dashboard consumes it.
type Profile struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       *string  `json:"phone,omitempty"`
	Role        string   `json:"role"`
	IsSubAdmin  bool     `json:"is_sub_admin"`
	Permissions []string `json:"permissions"`
}

// ToProfile converts a user entity into its wire shape. The permission slice
// is always non-nil so the dashboard never sees a null set.
func (u *User) ToProfile() Profile {
	permissions := make([]string, 0, len(u.Permissions))
	for _, p := range u.Permissions {
		permissions = append(permissions, string(p))
	}
	return Profile{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		Role:        string(u.Role),
		IsSubAdmin:  u.IsSubAdmin,
		Permissions: permissions,
	}
}
