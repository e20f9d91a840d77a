package task

import (
	"context"
	"fmt"
	"time"

	"github.com/distrohub/distro-backend-go/internal/domain/distributor"
	"github.com/distrohub/distro-backend-go/internal/domain/task"
	"github.com/distrohub/distro-backend-go/internal/pkg/database"
	"github.com/distrohub/distro-backend-go/internal/pkg/geo"
	"github.com/distrohub/distro-backend-go/internal/pkg/validator"
	"github.com/jackc/pgx/v5"
)

// checkInRadiusMeters is how far from the shop a field check-in may be
// recorded.
const checkInRadiusMeters = 200

type TaskServiceImpl struct {
	db *database.DB
	task.TaskRepository
	distributor.ShopRepository
}

func NewTaskService(db *database.DB, taskRepository task.TaskRepository, shopRepository distributor.ShopRepository) task.TaskService {
	return &TaskServiceImpl{
		db:             db,
		TaskRepository: taskRepository,
		ShopRepository: shopRepository,
	}
}

// Get implements task.TaskService.
func (s *TaskServiceImpl) Get(ctx context.Context, id string) (task.Task, error) {
	t, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}
	return t, nil
}

// List implements task.TaskService.
func (s *TaskServiceImpl) List(ctx context.Context) ([]task.Task, error) {
	tasks, err := s.TaskRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListByAssignee implements task.TaskService.
func (s *TaskServiceImpl) ListByAssignee(ctx context.Context, userID string) ([]task.Task, error) {
	tasks, err := s.TaskRepository.ListByAssignee(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by assignee: %w", err)
	}
	return tasks, nil
}

// Create implements task.TaskService.
func (s *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest, createdBy string) (task.Task, error) {
	t := task.Task{
		Title:       req.Title,
		Description: req.Description,
		ShopID:      req.ShopID,
		AssignedTo:  req.AssignedTo,
		Status:      task.TaskStatusPending,
		CreatedBy:   createdBy,
	}
	if req.DueDate != nil {
		due, ok := validator.IsValidDate(*req.DueDate)
		if !ok {
			return task.Task{}, validator.ValidationErrors{{Field: "due_date", Message: "due_date must be in YYYY-MM-DD format"}}
		}
		t.DueDate = &due
	}

	created, err := s.TaskRepository.Create(ctx, t)
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

// UpdateStatus implements task.TaskService.
func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, id string, req task.UpdateTaskStatusRequest) error {
	t, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if t.Status == task.TaskStatusCompleted {
		return task.ErrTaskCompleted
	}

	status, _ := task.ParseTaskStatus(req.Status)
	if err := s.TaskRepository.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	return nil
}

// CheckIn implements task.TaskService. The reported position must fall
// within checkInRadiusMeters of the task's shop, and only the assignee may
// check in. A successful check-in moves a pending task to in_progress.
func (s *TaskServiceImpl) CheckIn(ctx context.Context, taskID string, userID string, req task.CheckInRequest) (task.Task, error) {
	t, err := s.Get(ctx, taskID)
	if err != nil {
		return task.Task{}, err
	}
	if t.AssignedTo != userID {
		return task.Task{}, task.ErrNotAssignedToUser
	}
	if t.Status == task.TaskStatusCompleted {
		return task.Task{}, task.ErrTaskCompleted
	}

	if t.ShopID != nil {
		shop, err := s.ShopRepository.GetByID(ctx, *t.ShopID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return task.Task{}, distributor.ErrShopNotFound
			}
			return task.Task{}, fmt.Errorf("failed to get shop by id: %w", err)
		}
		if shop.Latitude == nil || shop.Longitude == nil {
			return task.Task{}, task.ErrShopHasNoLocation
		}
		if !geo.WithinRadius(req.Latitude, req.Longitude, *shop.Latitude, *shop.Longitude, checkInRadiusMeters) {
			return task.Task{}, task.ErrCheckInTooFar
		}
	}

	now := time.Now()
	t.CheckinLat = &req.Latitude
	t.CheckinLng = &req.Longitude
	t.CheckinAt = &now
	if t.Status == task.TaskStatusPending {
		t.Status = task.TaskStatusInProgress
	}

	if err := s.TaskRepository.RecordCheckIn(ctx, t); err != nil {
		return task.Task{}, fmt.Errorf("failed to record task check-in: %w", err)
	}
	return t, nil
}
