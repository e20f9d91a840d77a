package distributor

import "errors"

var (
	ErrDistributorNotFound = errors.New("distributor not found")
	ErrShopNotFound        = errors.New("shop not found")
	ErrPhoneAlreadyExists  = errors.New("phone number already registered")
	ErrDistributorInactive = errors.New("distributor is inactive")
)
