package task

import "context"

type TaskRepository interface {
	GetByID(ctx context.Context, id string) (Task, error)
	List(ctx context.Context) ([]Task, error)
	ListByAssignee(ctx context.Context, userID string) ([]Task, error)
	Create(ctx context.Context, t Task) (Task, error)
	UpdateStatus(ctx context.Context, id string, status TaskStatus) error
	RecordCheckIn(ctx context.Context, t Task) error
}

type TaskService interface {
	Get(ctx context.Context, id string) (Task, error)
	List(ctx context.Context) ([]Task, error)
	ListByAssignee(ctx context.Context, userID string) ([]Task, error)
	Create(ctx context.Context, req CreateTaskRequest, createdBy string) (Task, error)
	UpdateStatus(ctx context.Context, id string, req UpdateTaskStatusRequest) error
	CheckIn(ctx context.Context, taskID string, userID string, req CheckInRequest) (Task, error)
}
