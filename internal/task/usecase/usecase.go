package usecase

import (
	"context"

	"todo-backend/internal/task/domain"
)

// TaskUsecase defines the interface for task business logic. Every method
// that takes a taskID answers domain.ErrTaskNotFound unless the task belongs
// to userID.
type TaskUsecase interface {
	// ListTasks returns the user's tasks, newest first
	ListTasks(ctx context.Context, userID uint) ([]*domain.Task, error)

	// CreateTask creates a new task owned by userID
	CreateTask(ctx context.Context, userID uint, title string, description *string) (*domain.Task, error)

	// GetTask retrieves a task by ID
	GetTask(ctx context.Context, userID, taskID uint) (*domain.Task, error)

	// UpdateTask replaces the title and description
	UpdateTask(ctx context.Context, userID, taskID uint, title string, description *string) (*domain.Task, error)

	// ToggleTask flips the completed flag
	ToggleTask(ctx context.Context, userID, taskID uint) (*domain.Task, error)

	// DeleteTask deletes a task
	DeleteTask(ctx context.Context, userID, taskID uint) error
}
