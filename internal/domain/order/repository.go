package order

import "context"

type OrderRepository interface {
	GetByID(ctx context.Context, id string) (OrderRequest, error)
	List(ctx context.Context, status *OrderStatus) ([]OrderRequest, error)
	Create(ctx context.Context, o OrderRequest) (OrderRequest, error)
	UpdateStatus(ctx context.Context, id string, status OrderStatus) error
	CountByStatus(ctx context.Context, status OrderStatus) (int64, error)
}

type OrderService interface {
	Get(ctx context.Context, id string) (OrderRequest, error)
	List(ctx context.Context, status *OrderStatus) ([]OrderRequest, error)
	Create(ctx context.Context, req CreateOrderRequest, createdBy string) (OrderRequest, error)
	UpdateStatus(ctx context.Context, id string, req UpdateOrderStatusRequest) error
}
