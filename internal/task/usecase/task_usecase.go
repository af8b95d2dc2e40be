package usecase

import (
	"context"

	"todo-backend/internal/task/domain"
	"todo-backend/internal/task/repository"
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
	}
}

func (u *taskUsecase) ListTasks(ctx context.Context, userID uint) ([]*domain.Task, error) {
	return u.taskRepo.FindByUserID(ctx, userID)
}

func (u *taskUsecase) CreateTask(ctx context.Context, userID uint, title string, description *string) (*domain.Task, error) {
	task := &domain.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
	}

	if err := u.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) GetTask(ctx context.Context, userID, taskID uint) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(userID, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) UpdateTask(ctx context.Context, userID, taskID uint, title string, description *string) (*domain.Task, error) {
	task, err := u.GetTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	task.Title = title
	task.Description = description

	if err := u.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) ToggleTask(ctx context.Context, userID, taskID uint) (*domain.Task, error) {
	task, err := u.GetTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	return u.taskRepo.ToggleCompleted(ctx, userID, task.ID)
}

func (u *taskUsecase) DeleteTask(ctx context.Context, userID, taskID uint) error {
	task, err := u.GetTask(ctx, userID, taskID)
	if err != nil {
		return err
	}
	return u.taskRepo.Delete(ctx, task.ID)
}
