package response

import (
	"errors"
	"net/http"

	"github.com/distrohub/distro-backend-go/internal/domain/auth"
	"github.com/distrohub/distro-backend-go/internal/domain/damage"
	"github.com/distrohub/distro-backend-go/internal/domain/distributor"
	"github.com/distrohub/distro-backend-go/internal/domain/inquiry"
	"github.com/distrohub/distro-backend-go/internal/domain/order"
	"github.com/distrohub/distro-backend-go/internal/domain/product"
	"github.com/distrohub/distro-backend-go/internal/domain/task"
	"github.com/distrohub/distro-backend-go/internal/domain/user"
	"github.com/distrohub/distro-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountDisabled):
		Forbidden(w, "Account is disabled")
	case errors.Is(err, auth.ErrTokenExpired):
		UnauthorizedWithCode(w, "TOKEN_EXPIRED", "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		UnauthorizedWithCode(w, "INVALID_TOKEN", "Invalid token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		UnauthorizedWithCode(w, "REFRESH_TOKEN_REVOKED", "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User / staff domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailAlreadyExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, user.ErrPermissionDenied):
		Forbidden(w, "Permission denied for this feature area")
	case errors.Is(err, user.ErrCannotDeactivateAdmin):
		Conflict(w, "The last admin account cannot be deactivated")

	// Distributor domain errors
	case errors.Is(err, distributor.ErrDistributorNotFound):
		NotFound(w, "Distributor not found")
	case errors.Is(err, distributor.ErrShopNotFound):
		NotFound(w, "Shop not found")
	case errors.Is(err, distributor.ErrPhoneAlreadyExists):
		Conflict(w, "Phone number already registered")
	case errors.Is(err, distributor.ErrDistributorInactive):
		Conflict(w, "Distributor is inactive")

	// Damage claim domain errors
	case errors.Is(err, damage.ErrClaimNotFound):
		NotFound(w, "Damage claim not found")
	case errors.Is(err, damage.ErrClaimAlreadyResolved):
		Conflict(w, "Damage claim already resolved")
	case errors.Is(err, damage.ErrResolveNotAllowed):
		Forbidden(w, "You are not allowed to resolve damage claims")
	case errors.Is(err, damage.ErrReplacementNotAllowed):
		Forbidden(w, "You are not allowed to manage replacements")
	case errors.Is(err, damage.ErrReplacementUnavailable):
		Conflict(w, "Replacement is not available for this claim")
	case errors.Is(err, damage.ErrReplacementNotPending):
		Conflict(w, "No replacement is pending for this claim")

	// Inquiry domain errors
	case errors.Is(err, inquiry.ErrInquiryNotFound):
		NotFound(w, "Sales inquiry not found")
	case errors.Is(err, inquiry.ErrInquiryClosed):
		Conflict(w, "Sales inquiry is already closed")

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrTaskCompleted):
		Conflict(w, "Task is already completed")
	case errors.Is(err, task.ErrCheckInTooFar):
		BadRequest(w, "Check-in location is too far from the shop", nil)
	case errors.Is(err, task.ErrShopHasNoLocation):
		BadRequest(w, "Shop has no recorded coordinates", nil)
	case errors.Is(err, task.ErrNotAssignedToUser):
		Forbidden(w, "Task is not assigned to you")

	// Order domain errors
	case errors.Is(err, order.ErrOrderNotFound):
		NotFound(w, "Order request not found")
	case errors.Is(err, order.ErrInvalidTransition):
		Conflict(w, "Invalid order status transition")

	// Product domain errors
	case errors.Is(err, product.ErrProductNotFound):
		NotFound(w, "Product not found")
	case errors.Is(err, product.ErrSKUAlreadyExists):
		Conflict(w, "SKU already registered")
	case errors.Is(err, product.ErrInsufficientStock):
		Conflict(w, "Insufficient stock")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
