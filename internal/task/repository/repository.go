package repository

import (
	"context"

	"todo-backend/internal/task/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *domain.Task) error

	// FindByID finds a task by its ID. Returns nil, nil when absent.
	FindByID(ctx context.Context, id uint) (*domain.Task, error)

	// FindByUserID lists a user's tasks, newest first
	FindByUserID(ctx context.Context, userID uint) ([]*domain.Task, error)

	// Update writes the task's title and description. Returns
	// domain.ErrTaskNotFound when no row with the task's ID and owner exists.
	Update(ctx context.Context, task *domain.Task) error

	// ToggleCompleted flips the completed flag of a task owned by userID in a
	// single statement and returns the stored task
	ToggleCompleted(ctx context.Context, userID, id uint) (*domain.Task, error)

	// Delete deletes a task by ID
	Delete(ctx context.Context, id uint) error
}
