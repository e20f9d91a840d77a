package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/distrohub/distro-backend-go/internal/domain/staff"
	"github.com/distrohub/distro-backend-go/internal/domain/user"
	"github.com/distrohub/distro-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type StaffHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpdatePermissions(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type StaffHandlerImpl struct {
	staffService staff.StaffService
}

func NewStaffHandler(staffService staff.StaffService) StaffHandler {
	return &StaffHandlerImpl{staffService: staffService}
}

// List implements StaffHandler.
func (h *StaffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.staffService.List(r.Context())
	if err != nil {
		slog.Error("Staff list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	profiles := make([]user.Profile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].ToProfile())
	}
	response.Success(w, profiles)
}

// Get implements StaffHandler.
func (h *StaffHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	u, err := h.staffService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Staff get service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, u.ToProfile())
}

// Create implements StaffHandler.
func (h *StaffHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq staff.CreateStaffRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Staff create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := createReq.Validate(); err != nil {
		slog.Error("Staff create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	u, err := h.staffService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Staff create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Staff member created", "user_id", u.ID)
	response.Created(w, "Staff member created successfully", u.ToProfile())
}

// Update implements StaffHandler.
func (h *StaffHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq user.UpdateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Staff update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")
	if err := updateReq.Validate(); err != nil {
		slog.Error("Staff update validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := h.staffService.Update(r.Context(), updateReq); err != nil {
		slog.Error("Staff update service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Staff member updated successfully", nil)
}

// UpdatePermissions implements StaffHandler.
func (h *StaffHandlerImpl) UpdatePermissions(w http.ResponseWriter, r *http.Request) {
	var permReq staff.UpdatePermissionsRequest

	if err := json.NewDecoder(r.Body).Decode(&permReq); err != nil {
		slog.Error("Staff permissions decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	permReq.UserID = chi.URLParam(r, "id")
	if err := permReq.Validate(); err != nil {
		slog.Error("Staff permissions validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := h.staffService.UpdatePermissions(r.Context(), permReq); err != nil {
		slog.Error("Staff permissions service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Staff permissions updated", "user_id", permReq.UserID)
	response.SuccessWithMessage(w, "Permissions updated successfully", nil)
}

// Deactivate implements StaffHandler.
func (h *StaffHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.staffService.Deactivate(r.Context(), id); err != nil {
		slog.Error("Staff deactivate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Staff member deactivated", "user_id", id)
	response.SuccessWithMessage(w, "Staff member deactivated successfully", nil)
}
