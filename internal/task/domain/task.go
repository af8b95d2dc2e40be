package domain

import (
	"errors"
	"time"
)

// ErrTaskNotFound is returned both for missing tasks and for tasks owned by
// someone else, so callers cannot probe for other users' task IDs.
var ErrTaskNotFound = errors.New("not found")

// Task is a to-do item owned by exactly one user
type Task struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"-" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time `json:"-"`
}

// Authorize is the ownership guard every task operation goes through. A nil
// task and a task owned by another user produce the same error.
func Authorize(userID uint, task *Task) error {
	if task == nil || task.UserID != userID {
		return ErrTaskNotFound
	}
	return nil
}
