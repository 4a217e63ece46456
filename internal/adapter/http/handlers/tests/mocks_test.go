package tests

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"taskdeck/internal/core/domain"
)

func errDBDown() error { return errors.New("db is down") }

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	args := m.Called(ctx, ownerID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	args := m.Called(ctx, ownerID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, ownerID string, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, ownerID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, ownerID, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, ownerID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	args := m.Called(ctx, ownerID, taskID)
	return args.Error(0)
}

func (m *taskServiceMock) ToggleTaskStatus(ctx context.Context, ownerID, taskID string) (domain.Task, error) {
	args := m.Called(ctx, ownerID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, input domain.RegisterInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.String(1), args.Error(2)
}

func (m *authServiceMock) ResolveSession(ctx context.Context, token string) (domain.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.User), args.Error(1)
}
