package product

import "time"

// Product is a catalog entry in a godown (warehouse).
type Product struct {
	ID        string
	Name      string
	SKU       string
	Godown    string
	UnitPrice float64
	Stock     int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
