package distributor

import (
	"context"
	"fmt"

	"github.com/distrohub/distro-backend-go/internal/domain/distributor"
	"github.com/distrohub/distro-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type DistributorServiceImpl struct {
	db *database.DB
	distributor.DistributorRepository
	distributor.ShopRepository
}

func NewDistributorService(db *database.DB, distributorRepository distributor.DistributorRepository, shopRepository distributor.ShopRepository) distributor.DistributorService {
	return &DistributorServiceImpl{
		db:                    db,
		DistributorRepository: distributorRepository,
		ShopRepository:        shopRepository,
	}
}

// Get implements distributor.DistributorService.
func (s *DistributorServiceImpl) Get(ctx context.Context, id string) (distributor.Distributor, error) {
	d, err := s.DistributorRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return distributor.Distributor{}, distributor.ErrDistributorNotFound
		}
		return distributor.Distributor{}, fmt.Errorf("failed to get distributor by id: %w", err)
	}
	return d, nil
}

// List implements distributor.DistributorService.
func (s *DistributorServiceImpl) List(ctx context.Context) ([]distributor.Distributor, error) {
	result, err := s.DistributorRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list distributors: %w", err)
	}
	return result, nil
}

// Create implements distributor.DistributorService.
func (s *DistributorServiceImpl) Create(ctx context.Context, req distributor.CreateDistributorRequest) (distributor.Distributor, error) {
	existing, err := s.DistributorRepository.GetByPhone(ctx, req.Phone)
	if err != nil && err != pgx.ErrNoRows {
		return distributor.Distributor{}, fmt.Errorf("failed to get distributor by phone: %w", err)
	}
	if existing.ID != "" {
		return distributor.Distributor{}, distributor.ErrPhoneAlreadyExists
	}

	d := distributor.Distributor{
		Name:      req.Name,
		OwnerName: req.OwnerName,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		Territory: req.Territory,
	}
	created, err := s.DistributorRepository.Create(ctx, d)
	if err != nil {
		return distributor.Distributor{}, fmt.Errorf("failed to create distributor: %w", err)
	}
	return created, nil
}

// Update implements distributor.DistributorService.
func (s *DistributorServiceImpl) Update(ctx context.Context, req distributor.UpdateDistributorRequest) error {
	return s.DistributorRepository.Update(ctx, req)
}

// Delete implements distributor.DistributorService.
func (s *DistributorServiceImpl) Delete(ctx context.Context, id string) error {
	return s.DistributorRepository.Delete(ctx, id)
}

// CreateShop implements distributor.DistributorService.
func (s *DistributorServiceImpl) CreateShop(ctx context.Context, req distributor.CreateShopRequest) (distributor.Shop, error) {
	parent, err := s.DistributorRepository.GetByID(ctx, req.DistributorID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return distributor.Shop{}, distributor.ErrDistributorNotFound
		}
		return distributor.Shop{}, fmt.Errorf("failed to get distributor by id: %w", err)
	}
	if !parent.IsActive {
		return distributor.Shop{}, distributor.ErrDistributorInactive
	}

	shop := distributor.Shop{
		DistributorID: req.DistributorID,
		Name:          req.Name,
		Address:       req.Address,
		Phone:         req.Phone,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
	}
	created, err := s.ShopRepository.Create(ctx, shop)
	if err != nil {
		return distributor.Shop{}, fmt.Errorf("failed to create shop: %w", err)
	}
	return created, nil
}

// ListShops implements distributor.DistributorService.
func (s *DistributorServiceImpl) ListShops(ctx context.Context, distributorID string) ([]distributor.Shop, error) {
	shops, err := s.ShopRepository.ListByDistributor(ctx, distributorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	return shops, nil
}

// DeleteShop implements distributor.DistributorService.
func (s *DistributorServiceImpl) DeleteShop(ctx context.Context, id string) error {
	return s.ShopRepository.Delete(ctx, id)
}
