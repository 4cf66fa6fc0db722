package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"todolist/internal/config"
	"todolist/internal/handlers"
	"todolist/internal/middleware"
	"todolist/internal/repositories"
	"todolist/internal/services"
)

func main() {
	cfg := config.Load()

	// --- Database ---
	db, err := repositories.OpenDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	taskRepo := repositories.NewGORMTaskRepository(db)
	sessionRepo := repositories.NewGORMSessionRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, sessionRepo, cfg.SecretKey, cfg.SessionTTL)
	taskService := services.NewTaskService(taskRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	// Public routes
	authHandler.RegisterRoutes(app)

	// --- Health Check Endpoint ---
	// Registered before the protected group; the empty-prefix group mounts
	// its middleware as a catch-all for every route added after it.
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Protected routes: session resolved before every task operation
	protected := app.Group("", middleware.SessionRequired(authService))
	authHandler.RegisterProtectedRoutes(protected)
	taskHandler.RegisterRoutes(protected)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
