package server

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/buildtrack-dev/buildtrack/internal/config"
	"github.com/buildtrack-dev/buildtrack/internal/handler"
	"github.com/buildtrack-dev/buildtrack/internal/middleware"
	"github.com/buildtrack-dev/buildtrack/internal/repository"
	"github.com/buildtrack-dev/buildtrack/internal/service"
)

type Server struct {
	engine *gin.Engine
	cfg    *config.Config
}

// New wires repositories, services and handlers onto the router. The
// redis client may be nil, which disables rate limiting.
func New(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *Server {
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	actionRepo := repository.NewActionRepository(db)

	userService := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userService)

	projectService := service.NewProjectService(projectRepo)
	projectHandler := handler.NewProjectHandler(projectService)

	actionService := service.NewActionService(actionRepo)
	actionHandler := handler.NewActionHandler(actionService)

	statService := service.NewStatService(actionRepo, projectRepo, userRepo)
	statHandler := handler.NewStatHandler(statService)

	configHandler := handler.NewConfigHandler(cfg.GoogleMapsAPIKey)

	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.RequestLogger())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	limited := middleware.RateLimit(rdb, cfg.RateLimitMax, cfg.RateLimitWindow)

	api := engine.Group("/api")
	{
		api.GET("/health", handler.HealthCheck)
		api.GET("/stats", statHandler.Get)
		api.GET("/google-maps-key", configHandler.GoogleMapsKey)

		api.GET("/actions", actionHandler.List)
		api.GET("/actions/:id", actionHandler.Get)
		api.POST("/actions", limited, actionHandler.Create)
		api.PATCH("/actions/:id", limited, actionHandler.Update)
		api.DELETE("/actions/:id", limited, actionHandler.Delete)

		api.GET("/users", userHandler.List)
		api.GET("/users/:id", userHandler.Get)
		api.POST("/users", limited, userHandler.Create)
		api.PATCH("/users/:id", limited, userHandler.Update)
		api.DELETE("/users/:id", limited, userHandler.Delete)

		api.GET("/projects", projectHandler.List)
		api.GET("/projects/:id", projectHandler.Get)
		api.POST("/projects", limited, projectHandler.Create)
		api.PATCH("/projects/:id", limited, projectHandler.Update)
		api.DELETE("/projects/:id", limited, projectHandler.Delete)
	}

	return &Server{engine: engine, cfg: cfg}
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Run() error {
	return s.engine.Run(":" + s.cfg.Port)
}
