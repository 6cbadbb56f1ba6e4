package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"yorum-servisi/internal/config"
	"yorum-servisi/internal/handler"
	"yorum-servisi/internal/middleware"
	"yorum-servisi/internal/repository"
	"yorum-servisi/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	zapLogger, err := newLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	repos := newRepositories(cfg, zapLogger)

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		zapLogger.Warn("failed to connect to Redis, listing cache disabled", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	services := service.NewServices(repos, redisClient, cfg, zapLogger)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))
	app.Use(middleware.RequestInfo())

	setupRoutes(app, handlers, cfg)

	zapLogger.Info("server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newRepositories selects the comment store. Postgres is the primary;
// when it is unreachable (or STORAGE_DRIVER=memory) the service runs on
// the volatile in-memory store so comment intake keeps working.
func newRepositories(cfg *config.Config, zapLogger *zap.Logger) *repository.Repositories {
	if cfg.StorageDriver == "memory" {
		zapLogger.Info("using in-memory comment store")
		return repository.NewMemoryRepositories()
	}

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		zapLogger.Warn("failed to connect to database, falling back to in-memory comment store", zap.Error(err))
		return repository.NewMemoryRepositories()
	}

	return repository.NewRepositories(db)
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func setupRoutes(app *fiber.App, h *handler.Handlers, cfg *config.Config) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	articleComments := v1.Group("/articles/:slug/comments")
	articleComments.Post("/", middleware.OptionalAuth(cfg.JWTSecret), h.Comment.Create)
	articleComments.Get("/", h.Comment.List)

	comments := v1.Group("/comments")
	comments.Post("/:commentId/like", middleware.AuthRequired(cfg.JWTSecret), h.Comment.ToggleLike)

	admin := v1.Group("/admin/comments", middleware.AuthRequired(cfg.JWTSecret), middleware.RequireAdmin())
	admin.Get("/", h.AdminComment.List)
	admin.Get("/pending", h.AdminComment.ListPending)
	admin.Get("/:commentId", h.AdminComment.Get)
	admin.Put("/:commentId", h.AdminComment.Update)
	admin.Delete("/:commentId", h.AdminComment.Delete)
	admin.Patch("/:commentId/approval", h.AdminComment.SetApproval)
}
