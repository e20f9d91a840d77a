package damage

import "errors"

var (
	ErrClaimNotFound          = errors.New("damage claim not found")
	ErrClaimAlreadyResolved   = errors.New("damage claim has already been resolved")
	ErrResolveNotAllowed      = errors.New("role is not allowed to resolve damage claims")
	ErrReplacementNotAllowed  = errors.New("role is not allowed to initiate replacements")
	ErrReplacementUnavailable = errors.New("replacement is not available for this claim")
	ErrReplacementNotPending  = errors.New("no pending replacement for this claim")
)
