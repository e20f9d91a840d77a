package task

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTaskCompleted     = errors.New("task is already completed")
	ErrCheckInTooFar     = errors.New("check-in location is too far from the shop")
	ErrShopHasNoLocation = errors.New("shop has no recorded coordinates")
	ErrNotAssignedToUser = errors.New("task is not assigned to this user")
)
