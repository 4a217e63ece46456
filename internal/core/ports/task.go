package ports

import (
	"context"

	"taskdeck/internal/core/domain"
)

type TaskRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error)
	GetByID(ctx context.Context, ownerID, taskID string) (domain.Task, error)
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	Update(ctx context.Context, ownerID, taskID string, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, ownerID, taskID string) error
	ToggleStatus(ctx context.Context, ownerID, taskID string) (domain.Task, error)
}

type TaskService interface {
	ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error)
	GetTask(ctx context.Context, ownerID, taskID string) (domain.Task, error)
	CreateTask(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID string, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID string) error
	ToggleTaskStatus(ctx context.Context, ownerID, taskID string) (domain.Task, error)
}
