package task

import "github.com/distrohub/distro-backend-go/internal/pkg/validator"

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	ShopID      *string `json:"shop_id"`
	AssignedTo  string  `json:"assigned_to"`
	DueDate     *string `json:"due_date"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if validator.IsEmpty(r.AssignedTo) {
		errs = append(errs, validator.ValidationError{Field: "assigned_to", Message: "assigned_to is required"})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "due_date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckInRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"})
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateTaskStatusRequest) Validate() error {
	if _, ok := ParseTaskStatus(r.Status); !ok {
		return validator.ValidationErrors{{
			Field:   "status",
			Message: "status must be one of pending, in_progress, completed",
		}}
	}
	return nil
}
