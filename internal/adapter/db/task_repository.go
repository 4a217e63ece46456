package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"taskdeck/internal/core/domain"
	"taskdeck/internal/core/ports"
)

const listTasksQuery = `
SELECT id, user_id, title, description, status, created_at, updated_at
FROM tasks
WHERE user_id = ?
ORDER BY created_at DESC, id DESC;
`

const getTaskQuery = `
SELECT id, user_id, title, description, status, created_at, updated_at
FROM tasks
WHERE id = ? AND user_id = ?;
`

const insertTaskQuery = `
INSERT INTO tasks (id, user_id, title, description, status)
VALUES (?, ?, ?, ?, ?);
`

// The flip and the read it depends on happen in one statement, so two racing
// toggles serialize at the row instead of both observing the same status.
const toggleTaskQuery = `
UPDATE tasks
SET status = IF(status = 'pending', 'completed', 'pending'),
    updated_at = CURRENT_TIMESTAMP(6)
WHERE id = ? AND user_id = ?;
`

const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = ? AND user_id = ?;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksQuery, ownerID); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, taskID, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	_, err := r.db.ExecContext(ctx, insertTaskQuery,
		task.ID, task.UserID, task.Title, task.Description, string(task.Status))
	if err != nil {
		return domain.Task{}, err
	}

	// Re-read to pick up the database-assigned timestamps.
	return r.GetByID(ctx, task.UserID, task.ID)
}

func (r *TaskRepository) Update(ctx context.Context, ownerID, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	setClauses := make([]string, 0, 4)
	args := make([]any, 0, 6)

	if input.Title != nil {
		setClauses = append(setClauses, "title = ?")
		args = append(args, *input.Title)
	}
	if input.Description != nil {
		setClauses = append(setClauses, "description = ?")
		args = append(args, *input.Description)
	}
	if input.Status != nil {
		setClauses = append(setClauses, "status = ?")
		args = append(args, string(*input.Status))
	}

	// Always touch updated_at so MySQL reports an affected row even when the
	// new values equal the old ones; otherwise a no-op update looks like a
	// missing task.
	setClauses = append(setClauses, "updated_at = CURRENT_TIMESTAMP(6)")

	query := "UPDATE tasks SET " + strings.Join(setClauses, ", ") + " WHERE id = ? AND user_id = ?"
	args = append(args, taskID, ownerID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.Task{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return domain.Task{}, err
	}
	if affected == 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	return r.GetByID(ctx, ownerID, taskID)
}

func (r *TaskRepository) Delete(ctx context.Context, ownerID, taskID string) error {
	result, err := r.db.ExecContext(ctx, deleteTaskQuery, taskID, ownerID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) ToggleStatus(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	result, err := r.db.ExecContext(ctx, toggleTaskQuery, taskID, ownerID)
	if err != nil {
		return domain.Task{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return domain.Task{}, err
	}
	if affected == 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	return r.GetByID(ctx, ownerID, taskID)
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	return domain.Task{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		Description: row.Description,
		Status:      domain.TaskStatus(row.Status),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
