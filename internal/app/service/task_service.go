package service

import (
	"context"

	"github.com/google/uuid"

	"taskdeck/internal/core/domain"
	"taskdeck/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	return s.taskRepository.ListByOwner(ctx, ownerID)
}

func (s *TaskService) GetTask(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	return s.taskRepository.GetByID(ctx, ownerID, taskID)
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error) {
	task := domain.Task{
		ID:          uuid.New().String(),
		UserID:      ownerID,
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.TaskStatusPending,
	}
	return s.taskRepository.Create(ctx, task)
}

func (s *TaskService) UpdateTask(ctx context.Context, ownerID, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	return s.taskRepository.Update(ctx, ownerID, taskID, input)
}

func (s *TaskService) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	return s.taskRepository.Delete(ctx, ownerID, taskID)
}

func (s *TaskService) ToggleTaskStatus(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	return s.taskRepository.ToggleStatus(ctx, ownerID, taskID)
}

var _ ports.TaskService = (*TaskService)(nil)
