package order

import (
	"context"
	"fmt"
	"strings"

	"github.com/distrohub/distro-backend-go/internal/domain/distributor"
	"github.com/distrohub/distro-backend-go/internal/domain/order"
	"github.com/distrohub/distro-backend-go/internal/domain/product"
	"github.com/distrohub/distro-backend-go/internal/pkg/database"
	"github.com/distrohub/distro-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderServiceImpl struct {
	db *database.DB
	order.OrderRepository
	distributor.DistributorRepository
	product.ProductRepository
}

func NewOrderService(db *database.DB, orderRepository order.OrderRepository, distributorRepository distributor.DistributorRepository, productRepository product.ProductRepository) order.OrderService {
	return &OrderServiceImpl{
		db:                    db,
		OrderRepository:       orderRepository,
		DistributorRepository: distributorRepository,
		ProductRepository:     productRepository,
	}
}

// Get implements order.OrderService.
func (s *OrderServiceImpl) Get(ctx context.Context, id string) (order.OrderRequest, error) {
	o, err := s.OrderRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return order.OrderRequest{}, order.ErrOrderNotFound
		}
		return order.OrderRequest{}, fmt.Errorf("failed to get order by id: %w", err)
	}
	return o, nil
}

// List implements order.OrderService.
func (s *OrderServiceImpl) List(ctx context.Context, status *order.OrderStatus) ([]order.OrderRequest, error) {
	orders, err := s.OrderRepository.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// Create implements order.OrderService.
func (s *OrderServiceImpl) Create(ctx context.Context, req order.CreateOrderRequest, createdBy string) (order.OrderRequest, error) {
	dist, err := s.DistributorRepository.GetByID(ctx, req.DistributorID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return order.OrderRequest{}, distributor.ErrDistributorNotFound
		}
		return order.OrderRequest{}, fmt.Errorf("failed to get distributor by id: %w", err)
	}
	if !dist.IsActive {
		return order.OrderRequest{}, distributor.ErrDistributorInactive
	}

	o := order.OrderRequest{
		OrderNumber:   newOrderNumber(),
		DistributorID: req.DistributorID,
		Status:        order.OrderStatusPending,
		Note:          req.Note,
		CreatedBy:     createdBy,
	}
	for _, item := range req.Items {
		o.Items = append(o.Items, order.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	created, err := s.OrderRepository.Create(ctx, o)
	if err != nil {
		return order.OrderRequest{}, fmt.Errorf("failed to create order: %w", err)
	}
	return created, nil
}

// UpdateStatus implements order.OrderService. Dispatching deducts godown
// stock for every line item in one transaction, so a shortfall on any item
// leaves both the order and the stock untouched.
func (s *OrderServiceImpl) UpdateStatus(ctx context.Context, id string, req order.UpdateOrderStatusRequest) error {
	o, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	target, _ := order.ParseOrderStatus(req.Status)
	if !transitionAllowed(o.Status, target) {
		return order.ErrInvalidTransition
	}

	if target != order.OrderStatusDispatched {
		if err := s.OrderRepository.UpdateStatus(ctx, id, target); err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}
		return nil
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, item := range o.Items {
			if _, err := s.ProductRepository.AdjustStock(txCtx, item.ProductID, -item.Quantity); err != nil {
				if err == pgx.ErrNoRows {
					return product.ErrInsufficientStock
				}
				return fmt.Errorf("failed to deduct stock for product %s: %w", item.ProductID, err)
			}
		}
		if err := s.OrderRepository.UpdateStatus(txCtx, id, target); err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}
		return nil
	})
	return err
}

func transitionAllowed(from, to order.OrderStatus) bool {
	switch from {
	case order.OrderStatusPending:
		return to == order.OrderStatusConfirmed || to == order.OrderStatusCancelled
	case order.OrderStatusConfirmed:
		return to == order.OrderStatusDispatched || to == order.OrderStatusCancelled
	}
	return false
}

func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
