package inquiry

import "errors"

var (
	ErrInquiryNotFound = errors.New("sales inquiry not found")
	ErrInquiryClosed   = errors.New("sales inquiry is already closed")
)
