package product

import (
	"context"
	"fmt"

	"github.com/distrohub/distro-backend-go/internal/domain/product"
	"github.com/distrohub/distro-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type ProductServiceImpl struct {
	db *database.DB
	product.ProductRepository
}

func NewProductService(db *database.DB, productRepository product.ProductRepository) product.ProductService {
	return &ProductServiceImpl{
		db:                db,
		ProductRepository: productRepository,
	}
}

// Get implements product.ProductService.
func (s *ProductServiceImpl) Get(ctx context.Context, id string) (product.Product, error) {
	p, err := s.ProductRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return product.Product{}, product.ErrProductNotFound
		}
		return product.Product{}, fmt.Errorf("failed to get product by id: %w", err)
	}
	return p, nil
}

// List implements product.ProductService.
func (s *ProductServiceImpl) List(ctx context.Context, godown *string) ([]product.Product, error) {
	products, err := s.ProductRepository.List(ctx, godown)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Create implements product.ProductService.
func (s *ProductServiceImpl) Create(ctx context.Context, req product.CreateProductRequest) (product.Product, error) {
	_, err := s.ProductRepository.GetBySKU(ctx, req.SKU)
	if err == nil {
		return product.Product{}, product.ErrSKUAlreadyExists
	}
	if err != pgx.ErrNoRows {
		return product.Product{}, fmt.Errorf("failed to get product by sku: %w", err)
	}

	p := product.Product{
		Name:      req.Name,
		SKU:       req.SKU,
		Godown:    req.Godown,
		UnitPrice: req.UnitPrice,
		Stock:     req.Stock,
	}
	created, err := s.ProductRepository.Create(ctx, p)
	if err != nil {
		return product.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	return created, nil
}

// AdjustStock implements product.ProductService. The repository refuses an
// adjustment that would drive stock negative; that surfaces here as
// ErrInsufficientStock once the product is known to exist.
func (s *ProductServiceImpl) AdjustStock(ctx context.Context, id string, req product.AdjustStockRequest) (product.Product, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return product.Product{}, err
	}

	p, err := s.ProductRepository.AdjustStock(ctx, id, req.Delta)
	if err != nil {
		if err == pgx.ErrNoRows {
			return product.Product{}, product.ErrInsufficientStock
		}
		return product.Product{}, fmt.Errorf("failed to adjust stock: %w", err)
	}
	return p, nil
}

// Deactivate implements product.ProductService.
func (s *ProductServiceImpl) Deactivate(ctx context.Context, id string) error {
	if err := s.ProductRepository.SetActive(ctx, id, false); err != nil {
		if err == product.ErrProductNotFound {
			return err
		}
		return fmt.Errorf("failed to deactivate product: %w", err)
	}
	return nil
}
