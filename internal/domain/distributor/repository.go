package distributor

import "context"

type DistributorRepository interface {
	GetByID(ctx context.Context, id string) (Distributor, error)
	GetByPhone(ctx context.Context, phone string) (Distributor, error)
	List(ctx context.Context) ([]Distributor, error)
	Create(ctx context.Context, d Distributor) (Distributor, error)
	Update(ctx context.Context, req UpdateDistributorRequest) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type ShopRepository interface {
	GetByID(ctx context.Context, id string) (Shop, error)
	ListByDistributor(ctx context.Context, distributorID string) ([]Shop, error)
	Create(ctx context.Context, s Shop) (Shop, error)
	Delete(ctx context.Context, id string) error
}
