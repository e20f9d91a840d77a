package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/distrohub/distro-backend-go/internal/domain/distributor"
	"github.com/distrohub/distro-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DistributorHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListShops(w http.ResponseWriter, r *http.Request)
	CreateShop(w http.ResponseWriter, r *http.Request)
	DeleteShop(w http.ResponseWriter, r *http.Request)
}

type DistributorHandlerImpl struct {
	distributorService distributor.DistributorService
}

func NewDistributorHandler(distributorService distributor.DistributorService) DistributorHandler {
	return &DistributorHandlerImpl{distributorService: distributorService}
}

// List implements DistributorHandler.
func (h *DistributorHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	distributors, err := h.distributorService.List(r.Context())
	if err != nil {
		slog.Error("Distributor list service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, distributors)
}

// Get implements DistributorHandler.
func (h *DistributorHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	d, err := h.distributorService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Distributor get service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, d)
}

// Create implements DistributorHandler.
func (h *DistributorHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq distributor.CreateDistributorRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Distributor create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := createReq.Validate(); err != nil {
		slog.Error("Distributor create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	d, err := h.distributorService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Distributor create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Distributor created", "distributor_id", d.ID)
	response.Created(w, "Distributor created successfully", d)
}

// Update implements DistributorHandler.
func (h *DistributorHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq distributor.UpdateDistributorRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Distributor update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")
	if err := updateReq.Validate(); err != nil {
		slog.Error("Distributor update validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := h.distributorService.Update(r.Context(), updateReq); err != nil {
		slog.Error("Distributor update service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Distributor updated successfully", nil)
}

// Delete implements DistributorHandler.
func (h *DistributorHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.distributorService.Delete(r.Context(), id); err != nil {
		slog.Error("Distributor delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Distributor deleted", "distributor_id", id)
	response.SuccessWithMessage(w, "Distributor deleted successfully", nil)
}

// ListShops implements DistributorHandler.
func (h *DistributorHandlerImpl) ListShops(w http.ResponseWriter, r *http.Request) {
	distributorID := chi.URLParam(r, "id")

	shops, err := h.distributorService.ListShops(r.Context(), distributorID)
	if err != nil {
		slog.Error("Shop list service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, shops)
}

// CreateShop implements DistributorHandler.
func (h *DistributorHandlerImpl) CreateShop(w http.ResponseWriter, r *http.Request) {
	var createReq distributor.CreateShopRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Shop create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.DistributorID = chi.URLParam(r, "id")
	if err := createReq.Validate(); err != nil {
		slog.Error("Shop create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	s, err := h.distributorService.CreateShop(r.Context(), createReq)
	if err != nil {
		slog.Error("Shop create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Shop created", "shop_id", s.ID)
	response.Created(w, "Shop created successfully", s)
}

// DeleteShop implements DistributorHandler.
func (h *DistributorHandlerImpl) DeleteShop(w http.ResponseWriter, r *http.Request) {
	shopID := chi.URLParam(r, "shopID")

	if err := h.distributorService.DeleteShop(r.Context(), shopID); err != nil {
		slog.Error("Shop delete service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shop deleted successfully", nil)
}
