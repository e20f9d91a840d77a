package task

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch TaskStatus(s) {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return TaskStatus(s), true
	}
	return "", false
}

// Task is a marketing field-activity assignment. A shop visit is confirmed
// by a geo check-in within a fixed radius of the shop's coordinates.
type Task struct {
	ID          string
	Title       string
	Description *string
	ShopID      *string
	AssignedTo  string
	Status      TaskStatus
	DueDate     *time.Time
	CheckinLat  *float64
	CheckinLng  *float64
	CheckinAt   *time.Time
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
