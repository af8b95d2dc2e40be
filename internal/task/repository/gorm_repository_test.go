package repository

import (
	"context"
	"testing"
	"time"

	"todo-backend/internal/task/domain"
	"todo-backend/pkg/database/databasetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newRepo(t *testing.T) TaskRepository {
	t.Helper()
	return NewGormTaskRepository(databasetest.New(t, &domain.Task{}))
}

func TestTaskRepository_CreateFind(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	task := &domain.Task{UserID: 1, Title: "buy milk", Description: strPtr("2 litres"), Completed: true}
	require.NoError(t, repo.Create(ctx, task))
	require.NotZero(t, task.ID)
	assert.False(t, task.Completed, "new tasks start incomplete")
	assert.False(t, task.CreatedAt.IsZero())

	got, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint(1), got.UserID)
	assert.Equal(t, "buy milk", got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, "2 litres", *got.Description)

	missing, err := repo.FindByID(ctx, task.ID+100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTaskRepository_FindByUserID(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &domain.Task{UserID: 1, Title: title, CreatedAt: base.Add(time.Duration(i) * time.Hour)}))
	}
	require.NoError(t, repo.Create(ctx, &domain.Task{UserID: 2, Title: "not mine"}))

	tasks, err := repo.FindByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "third", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
	assert.Equal(t, "first", tasks[2].Title)

	none, err := repo.FindByUserID(ctx, 3)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestTaskRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	task := &domain.Task{UserID: 1, Title: "old", Description: strPtr("desc")}
	require.NoError(t, repo.Create(ctx, task))
	_, err := repo.ToggleCompleted(ctx, 1, task.ID)
	require.NoError(t, err)

	task.Title = "new"
	task.Description = nil
	task.Completed = false
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Nil(t, got.Description)
	assert.True(t, got.Completed, "update must not touch the completed flag")
}

func TestTaskRepository_ToggleCompleted(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	task := &domain.Task{UserID: 1, Title: "t"}
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.ToggleCompleted(ctx, 1, task.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	got, err = repo.ToggleCompleted(ctx, 1, task.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)

	_, err = repo.ToggleCompleted(ctx, 1, task.ID+1)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestTaskRepository_WritesScopedToOwner(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	task := &domain.Task{UserID: 1, Title: "mine", Description: strPtr("keep")}
	require.NoError(t, repo.Create(ctx, task))

	_, err := repo.ToggleCompleted(ctx, 2, task.ID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	forged := &domain.Task{ID: task.ID, UserID: 2, Title: "stolen"}
	assert.ErrorIs(t, repo.Update(ctx, forged), domain.ErrTaskNotFound)

	got, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "mine", got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, "keep", *got.Description)
	assert.False(t, got.Completed)
}

func TestTaskRepository_UpdateDeleted(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	task := &domain.Task{UserID: 1, Title: "gone soon"}
	require.NoError(t, repo.Create(ctx, task))
	require.NoError(t, repo.Delete(ctx, task.ID))

	task.Title = "too late"
	assert.ErrorIs(t, repo.Update(ctx, task), domain.ErrTaskNotFound)
}

func TestTaskRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	task := &domain.Task{UserID: 1, Title: "t"}
	require.NoError(t, repo.Create(ctx, task))
	require.NoError(t, repo.Delete(ctx, task.ID))

	got, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
