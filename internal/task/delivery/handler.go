package delivery

import (
	"errors"
	"net/http"
	"strconv"

	authdelivery "todo-backend/internal/auth/delivery"
	"todo-backend/internal/task/domain"
	"todo-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
	log         zerolog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase, log zerolog.Logger) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
		log:         log,
	}
}

// TaskRequest is the body for both create and update
type TaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
}

// GetTasks returns all tasks for the authenticated user
// GET /todos
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID := authdelivery.CurrentUserID(c)

	tasks, err := h.taskUsecase.ListTasks(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask creates a new task
// POST /todos
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := authdelivery.CurrentUserID(c)

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	task, err := h.taskUsecase.CreateTask(c.Request.Context(), userID, req.Title, req.Description)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// GetTaskByID returns a specific task
// GET /todos/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	userID := authdelivery.CurrentUserID(c)
	taskID, ok := parseID(c)
	if !ok {
		return
	}

	task, err := h.taskUsecase.GetTask(c.Request.Context(), userID, taskID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask replaces title and description
// PATCH /todos/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := authdelivery.CurrentUserID(c)
	taskID, ok := parseID(c)
	if !ok {
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	task, err := h.taskUsecase.UpdateTask(c.Request.Context(), userID, taskID, req.Title, req.Description)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// ToggleTask flips the completed flag
// POST /todos/:id/toggle
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	userID := authdelivery.CurrentUserID(c)
	taskID, ok := parseID(c)
	if !ok {
		return
	}

	task, err := h.taskUsecase.ToggleTask(c.Request.Context(), userID, taskID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
// DELETE /todos/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := authdelivery.CurrentUserID(c)
	taskID, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.taskUsecase.DeleteTask(c.Request.Context(), userID, taskID); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// parseID treats an unparseable id like a missing task.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrTaskNotFound.Error()})
		return 0, false
	}
	return uint(id), true
}

func (h *TaskHandler) writeError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrTaskNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrTaskNotFound.Error()})
		return
	}
	h.log.Error().Err(err).Str("path", c.FullPath()).Msg("task request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
