package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dinerozz/snippet-analytics-backend/config"
	"github.com/dinerozz/snippet-analytics-backend/docs"
	analyticsHandler "github.com/dinerozz/snippet-analytics-backend/internal/handler/analytics"
	userHandler "github.com/dinerozz/snippet-analytics-backend/internal/handler/user"
	"github.com/dinerozz/snippet-analytics-backend/internal/repository"
	analyticsService "github.com/dinerozz/snippet-analytics-backend/internal/service/analytics_service"
	"github.com/dinerozz/snippet-analytics-backend/internal/service/redis"
	"github.com/dinerozz/snippet-analytics-backend/internal/service/user"
	"github.com/dinerozz/snippet-analytics-backend/middleware"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type healthChecker interface {
	Health(ctx context.Context) error
}

type RouterHandler struct {
	userHandler      *userHandler.UserHandler
	analyticsHandler *analyticsHandler.AnalyticsHandler
	db               *sqlx.DB
	cache            healthChecker
	logger           *slog.Logger
}

// NewAnalyticsService wires the analytics service over postgres, with the redis cache in front
// of snippet reads when it is enabled and reachable. The returned cache is nil when redis is off.
func NewAnalyticsService(cfg *config.Config, db *sqlx.DB, logger *slog.Logger) (*analyticsService.AnalyticsService, *redis.Service) {
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	snippetRepo := repository.NewSnippetRepository(db)

	var source analyticsService.SnippetSource = snippetRepo
	var cache *redis.Service

	if cfg.Redis.Enabled {
		cache = redis.NewRedisService(redis.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if cache != nil {
			source = redis.NewCachedSnippetSource(snippetRepo, cache, cfg.Analytics.CacheTTL, logger)
		}
	}

	dir := analyticsService.NewDirectory(userRepo, teamRepo)
	return analyticsService.NewAnalyticsService(source, dir, skillRepo, cfg.Analytics, logger), cache
}

func RunServer(cfg *config.Config, logger *slog.Logger) {
	switch cfg.Env {
	case "prod", "production":
		gin.SetMode(gin.ReleaseMode)
		logger.Info("starting server in production mode")
	default:
		gin.SetMode(gin.DebugMode)
		logger.Info("starting server in development mode", slog.String("env", cfg.Env))
	}

	db, err := repository.NewRepository(cfg.DB)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	analyticsSrv, cache := NewAnalyticsService(cfg, db, logger)

	userSrv := user.NewUserService(repository.NewUserRepository(db), cfg.Auth.TokenTTL)

	routerHandler := &RouterHandler{
		userHandler:      userHandler.NewUserHandler(userSrv),
		analyticsHandler: analyticsHandler.NewAnalyticsHandler(analyticsSrv),
		db:               db,
		logger:           logger,
	}
	if cache != nil {
		defer cache.Close()
		routerHandler.cache = cache
	}

	r := setupRouter(routerHandler, cfg.Server.BaseURL)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Info("server starting", slog.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start server", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	gracefulShutdown(srv, logger)
}

func gracefulShutdown(srv *http.Server, logger *slog.Logger) {
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", slog.Any("error", err))
		return
	}

	logger.Info("server gracefully stopped")
}

func corsMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if origin != "" && (strings.HasPrefix(origin, "http://localhost:") ||
			strings.HasPrefix(origin, "http://127.0.0.1:") ||
			origin == allowedOrigin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, X-Request-ID, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func setupRouter(routerHandler *RouterHandler, baseURL string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(routerHandler.logger))
	r.Use(corsMiddleware(baseURL))

	r.GET("/health", func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if routerHandler.db != nil {
			if err := routerHandler.db.PingContext(c.Request.Context()); err != nil {
				status = "degraded"
				code = http.StatusServiceUnavailable
			}
		}
		if routerHandler.cache != nil {
			if err := routerHandler.cache.Health(c.Request.Context()); err != nil {
				routerHandler.logger.Warn("redis health check failed", slog.Any("error", err))
				status = "degraded"
				code = http.StatusServiceUnavailable
			}
		}
		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Unix(),
			"service":   "snippet-analytics",
		})
	})

	docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(baseURL, "https://"), "http://")
	docs.SwaggerInfo.Schemes = []string{"http", "https"}
	docs.SwaggerInfo.BasePath = "/api/v1"

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	publicRoutes := r.Group("/api/v1")
	{
		publicRoutes.POST("/users/auth", routerHandler.userHandler.Login)
		publicRoutes.POST("/users/logout", routerHandler.userHandler.Logout)
	}

	privateRoutes := r.Group("/api/v1")
	privateRoutes.Use(middleware.AuthenticationMiddleware())
	{
		privateRoutes.GET("/users/profile", routerHandler.userHandler.GetProfile)

		analyticsRoutes := privateRoutes.Group("/analytics")
		analyticsRoutes.GET("/home", routerHandler.analyticsHandler.GetHome)
		analyticsRoutes.GET("/users/:id/series", routerHandler.analyticsHandler.GetUserSeries)
		analyticsRoutes.GET("/users/:id/skills", routerHandler.analyticsHandler.GetUserSkills)
		analyticsRoutes.GET("/users/:id/skills/history", routerHandler.analyticsHandler.GetUserSkillHistory)
		analyticsRoutes.GET("/teams/:id/series", routerHandler.analyticsHandler.GetTeamSeries)
		analyticsRoutes.GET("/teams/:id/summary", routerHandler.analyticsHandler.GetTeamSummary)
		analyticsRoutes.GET("/companies/:id/skills/matrix", routerHandler.analyticsHandler.GetSkillMatrix)
	}

	return r
}
