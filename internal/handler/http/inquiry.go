package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/distrohub/distro-backend-go/internal/domain/inquiry"
	"github.com/distrohub/distro-backend-go/internal/handler/http/middleware"
	"github.com/distrohub/distro-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type InquiryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type InquiryHandlerImpl struct {
	inquiryService inquiry.InquiryService
}

func NewInquiryHandler(inquiryService inquiry.InquiryService) InquiryHandler {
	return &InquiryHandlerImpl{inquiryService: inquiryService}
}

// List implements InquiryHandler.
func (h *InquiryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var status *inquiry.InquiryStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, ok := inquiry.ParseInquiryStatus(raw)
		if !ok {
			response.BadRequest(w, "Unknown inquiry status: "+raw, nil)
			return
		}
		status = &parsed
	}

	inquiries, err := h.inquiryService.List(r.Context(), status)
	if err != nil {
		slog.Error("Inquiry list service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, inquiries)
}

// Get implements InquiryHandler.
func (h *InquiryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	inq, err := h.inquiryService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Inquiry get service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, inq)
}

// Create implements InquiryHandler.
func (h *InquiryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq inquiry.CreateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Inquiry create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := createReq.Validate(); err != nil {
		slog.Error("Inquiry create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	inq, err := h.inquiryService.Create(r.Context(), createReq, actor.ID)
	if err != nil {
		slog.Error("Inquiry create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Sales inquiry created", "inquiry_id", inq.ID)
	response.Created(w, "Sales inquiry created successfully", inq)
}

// UpdateStatus implements InquiryHandler.
func (h *InquiryHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var statusReq inquiry.UpdateInquiryStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("Inquiry status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := statusReq.Validate(); err != nil {
		slog.Error("Inquiry status validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := h.inquiryService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), statusReq); err != nil {
		slog.Error("Inquiry status service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Inquiry status updated successfully", nil)
}
