package order

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusDispatched OrderStatus = "dispatched"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusDispatched, OrderStatusCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

// OrderRequest is a distributor's request for stock.
type OrderRequest struct {
	ID            string
	OrderNumber   string
	DistributorID string
	Status        OrderStatus
	Note          *string
	Items         []OrderItem
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
}
