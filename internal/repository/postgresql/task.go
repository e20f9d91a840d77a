package postgresql

import (
	"context"

	"github.com/distrohub/distro-backend-go/internal/domain/task"
	"github.com/distrohub/distro-backend-go/internal/pkg/database"
)

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

const taskColumns = `id, title, description, shop_id, assigned_to, status, due_date,
	checkin_lat, checkin_lng, checkin_at, created_by, created_at, updated_at`

func scanTask(row interface{ Scan(...interface{}) error }) (task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.ShopID,
		&t.AssignedTo,
		&t.Status,
		&t.DueDate,
		&t.CheckinLat,
		&t.CheckinLng,
		&t.CheckinAt,
		&t.CreatedBy,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	return t, err
}

// GetByID implements task.TaskRepository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	return scanTask(q.QueryRow(ctx, query, id))
}

// List implements task.TaskRepository.
func (r *taskRepositoryImpl) List(ctx context.Context) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

// ListByAssignee implements task.TaskRepository.
func (r *taskRepositoryImpl) ListByAssignee(ctx context.Context, userID string) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+taskColumns+` FROM tasks WHERE assigned_to = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

// Create implements task.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (id, title, description, shop_id, assigned_to, status, due_date, created_by, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + taskColumns
	return scanTask(q.QueryRow(ctx, query, t.Title, t.Description, t.ShopID, t.AssignedTo, string(t.Status), t.DueDate, t.CreatedBy))
}

// UpdateStatus implements task.TaskRepository.
func (r *taskRepositoryImpl) UpdateStatus(ctx context.Context, id string, status task.TaskStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE tasks SET status = $1, updated_at = NOW() WHERE id = $2`, string(status), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// RecordCheckIn implements task.TaskRepository.
func (r *taskRepositoryImpl) RecordCheckIn(ctx context.Context, t task.Task) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET status = $1, checkin_lat = $2, checkin_lng = $3, checkin_at = $4, updated_at = NOW()
		WHERE id = $5
	`
	tag, err := q.Exec(ctx, query, string(t.Status), t.CheckinLat, t.CheckinLng, t.CheckinAt, t.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}
