package product

import "context"

type ProductRepository interface {
	GetByID(ctx context.Context, id string) (Product, error)
	GetBySKU(ctx context.Context, sku string) (Product, error)
	List(ctx context.Context, godown *string) ([]Product, error)
	Create(ctx context.Context, p Product) (Product, error)
	AdjustStock(ctx context.Context, id string, delta int) (Product, error)
	SetActive(ctx context.Context, id string, active bool) error
}

type ProductService interface {
	Get(ctx context.Context, id string) (Product, error)
	List(ctx context.Context, godown *string) ([]Product, error)
	Create(ctx context.Context, req CreateProductRequest) (Product, error)
	AdjustStock(ctx context.Context, id string, req AdjustStockRequest) (Product, error)
	Deactivate(ctx context.Context, id string) error
}
