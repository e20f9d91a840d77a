package order

import "errors"

var (
	ErrOrderNotFound     = errors.New("order request not found")
	ErrOrderNotPending   = errors.New("order request is no longer pending")
	ErrOrderNotConfirmed = errors.New("order request has not been confirmed")
	ErrOrderEmpty        = errors.New("order request has no items")
	ErrInvalidTransition = errors.New("invalid order status transition")
)
