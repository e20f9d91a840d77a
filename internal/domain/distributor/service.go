package distributor

import "context"

type DistributorService interface {
	Get(ctx context.Context, id string) (Distributor, error)
	List(ctx context.Context) ([]Distributor, error)
	Create(ctx context.Context, req CreateDistributorRequest) (Distributor, error)
	Update(ctx context.Context, req UpdateDistributorRequest) error
	Delete(ctx context.Context, id string) error
	CreateShop(ctx context.Context, req CreateShopRequest) (Shop, error)
	ListShops(ctx context.Context, distributorID string) ([]Shop, error)
	DeleteShop(ctx context.Context, id string) error
}
