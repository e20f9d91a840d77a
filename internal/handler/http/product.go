package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/distrohub/distro-backend-go/internal/domain/product"
	"github.com/distrohub/distro-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ProductHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	AdjustStock(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type ProductHandlerImpl struct {
	productService product.ProductService
}

func NewProductHandler(productService product.ProductService) ProductHandler {
	return &ProductHandlerImpl{productService: productService}
}

// List implements ProductHandler. An optional ?godown= filter narrows the
// catalog to one warehouse.
func (h *ProductHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var godown *string
	if raw := r.URL.Query().Get("godown"); raw != "" {
		godown = &raw
	}

	products, err := h.productService.List(r.Context(), godown)
	if err != nil {
		slog.Error("Product list service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, products)
}

// Get implements ProductHandler.
func (h *ProductHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.productService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Product get service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, p)
}

// Create implements ProductHandler.
func (h *ProductHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq product.CreateProductRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Product create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := createReq.Validate(); err != nil {
		slog.Error("Product create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	p, err := h.productService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Product create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Product created", "product_id", p.ID, "sku", p.SKU)
	response.Created(w, "Product created successfully", p)
}

// AdjustStock implements ProductHandler.
func (h *ProductHandlerImpl) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var adjustReq product.AdjustStockRequest

	if err := json.NewDecoder(r.Body).Decode(&adjustReq); err != nil {
		slog.Error("Stock adjust decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := adjustReq.Validate(); err != nil {
		slog.Error("Stock adjust validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	p, err := h.productService.AdjustStock(r.Context(), chi.URLParam(r, "id"), adjustReq)
	if err != nil {
		slog.Error("Stock adjust service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Stock adjusted", "product_id", p.ID, "delta", adjustReq.Delta, "stock", p.Stock)
	response.SuccessWithMessage(w, "Stock adjusted successfully", p)
}

// Deactivate implements ProductHandler.
func (h *ProductHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.productService.Deactivate(r.Context(), id); err != nil {
		slog.Error("Product deactivate service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Product deactivated successfully", nil)
}
