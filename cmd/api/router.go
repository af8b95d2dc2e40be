package api

import (
	"net/http"

	"todo-backend/internal/auth/delivery"
	authUsecase "todo-backend/internal/auth/usecase"
	taskDelivery "todo-backend/internal/task/delivery"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, taskHandler *taskDelivery.TaskHandler, log zerolog.Logger) {
	authHandler := delivery.NewAuthHandler(authUc, log)
	requireAuth := delivery.AuthMiddleware(authUc, log)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
	}

	// Profile (protected)
	r.GET("/users/me", requireAuth, authHandler.Me)

	// Task routes (protected)
	todos := r.Group("/todos")
	todos.Use(requireAuth)
	{
		todos.GET("", taskHandler.GetTasks)
		todos.POST("", taskHandler.CreateTask)
		todos.GET("/:id", taskHandler.GetTaskByID)
		todos.PATCH("/:id", taskHandler.UpdateTask)
		todos.POST("/:id/toggle", taskHandler.ToggleTask)
		todos.DELETE("/:id", taskHandler.DeleteTask)
	}
}
