package product

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrSKUAlreadyExists  = errors.New("SKU already registered")
	ErrInsufficientStock = errors.New("insufficient stock")
)
