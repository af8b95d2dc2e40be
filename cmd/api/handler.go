package api

import (
	authUsecase "todo-backend/internal/auth/usecase"
	taskDelivery "todo-backend/internal/task/delivery"
	taskUsecasePkg "todo-backend/internal/task/usecase"
	"todo-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	taskHandler *taskDelivery.TaskHandler
	config      *config.Config
	log         zerolog.Logger
}

func NewHandler(authUc authUsecase.AuthUsecase, taskUc taskUsecasePkg.TaskUsecase, cfg *config.Config, log zerolog.Logger) *Handler {
	return &Handler{
		authUsecase: authUc,
		taskHandler: taskDelivery.NewTaskHandler(taskUc, log),
		config:      cfg,
		log:         log,
	}
}

// Router builds the gin engine with middleware and routes.
func (h *Handler) Router() *gin.Engine {
	if h.config.GinMode != "" {
		gin.SetMode(h.config.GinMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(h.log))
	r.Use(corsMiddleware(h.config.CORSAllowedOrigins))

	SetupRoutes(r, h.authUsecase, h.taskHandler, h.log)
	return r
}

func (h *Handler) Start(addr string) error {
	return h.Router().Run(addr)
}
