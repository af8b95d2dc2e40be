package main

import (
	api "todo-backend/cmd/api"
	authdomain "todo-backend/internal/auth/domain"
	authRepo "todo-backend/internal/auth/repository"
	authUsecase "todo-backend/internal/auth/usecase"
	taskdomain "todo-backend/internal/task/domain"
	taskRepo "todo-backend/internal/task/repository"
	taskUsecase "todo-backend/internal/task/usecase"
	"todo-backend/pkg/config"
	"todo-backend/pkg/database"
	"todo-backend/pkg/logger"
	"todo-backend/pkg/password"
	"todo-backend/pkg/token"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Initialize database
	db, err := database.NewConnection(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("failed to connect to database")
	}

	// Schema initialization runs once, before any request is served
	if err := database.Migrate(db, &authdomain.User{}, &taskdomain.Task{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	if cfg.UsesDefaultJWTSecret() {
		log.Warn().Msg("JWT_SECRET is not set; signing tokens with the built-in default secret")
	}

	tokenService, err := token.NewService(token.Config{
		Secret: cfg.JWTSecret,
		Issuer: cfg.JWTIssuer,
		TTL:    cfg.JWTAccessExpiry,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("invalid token configuration")
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)

	// Initialize use cases (dependency injection)
	authUsecaseInstance, err := authUsecase.NewAuthUsecase(userRepo, password.NewHasher(cfg.BcryptCost), tokenService, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize auth")
	}
	taskUsecaseInstance := taskUsecase.NewTaskUsecase(taskRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, taskUsecaseInstance, cfg, log)

	log.Info().Str("port", cfg.Port).Str("driver", cfg.DBDriver).Dur("token_ttl", tokenService.TTL()).Msg("server starting")
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
