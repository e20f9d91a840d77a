package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/distrohub/distro-backend-go/internal/domain/order"
	"github.com/distrohub/distro-backend-go/internal/handler/http/middleware"
	"github.com/distrohub/distro-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type OrderHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type OrderHandlerImpl struct {
	orderService order.OrderService
}

func NewOrderHandler(orderService order.OrderService) OrderHandler {
	return &OrderHandlerImpl{orderService: orderService}
}

// List implements OrderHandler.
func (h *OrderHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var status *order.OrderStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, ok := order.ParseOrderStatus(raw)
		if !ok {
			response.BadRequest(w, "Unknown order status: "+raw, nil)
			return
		}
		status = &parsed
	}

	orders, err := h.orderService.List(r.Context(), status)
	if err != nil {
		slog.Error("Order list service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, orders)
}

// Get implements OrderHandler.
func (h *OrderHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	o, err := h.orderService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Order get service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, o)
}

// Create implements OrderHandler.
func (h *OrderHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq order.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Order create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := createReq.Validate(); err != nil {
		slog.Error("Order create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	o, err := h.orderService.Create(r.Context(), createReq, actor.ID)
	if err != nil {
		slog.Error("Order create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Order request created", "order_id", o.ID, "order_number", o.OrderNumber)
	response.Created(w, "Order request created successfully", o)
}

// UpdateStatus implements OrderHandler.
func (h *OrderHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var statusReq order.UpdateOrderStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("Order status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := statusReq.Validate(); err != nil {
		slog.Error("Order status validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := h.orderService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), statusReq); err != nil {
		slog.Error("Order status service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Order status updated successfully", nil)
}
