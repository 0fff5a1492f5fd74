package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"zevro/internal/config"
	"zevro/internal/database"
	"zevro/internal/middleware"
	"zevro/internal/modules/admin"
	"zevro/internal/modules/contact"
	jwtsvc "zevro/internal/pkg/jwt"
	"zevro/internal/repository"
	"zevro/internal/task"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	var counter middleware.Counter = middleware.NewMemoryCounter()
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatal("redis url", zap.Error(err))
		}
		counter = middleware.NewRedisCounter(redis.NewClient(opts))
	}

	subRepo := repository.NewSubmissionRepository(db)
	tokenSvc := jwtsvc.New(cfg.JWTSecret, cfg.TokenTTL)

	contactService := contact.NewService(subRepo)
	contactHandler := contact.NewHandler(contactService, contact.WhatsAppConfig{
		Number:         cfg.WhatsAppNumber,
		DefaultMessage: cfg.WhatsAppDefaultMessage,
	})

	adminService := admin.NewService(subRepo, tokenSvc, admin.Credentials{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
	})
	adminHandler := admin.NewHandler(adminService, cfg.TokenTTL)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	router.Use(middleware.RateLimit(counter, "api", cfg.GlobalRateLimit, cfg.RateLimitWindow,
		"Too many requests from this IP, please try again later."))

	api := router.Group("/api")

	api.GET("/health", healthHandler(cfg.AppEnv))

	contactLimiter := middleware.RateLimit(counter, "contact", cfg.ContactRateLimit, cfg.RateLimitWindow,
		"Please wait before submitting another form.")
	contact.RegisterRoutes(api, contactHandler, contactLimiter)

	admin.RegisterRoutes(api.Group("/admin"), adminHandler, middleware.AdminAuth(tokenSvc))

	if cfg.KeepAliveURL != "" {
		go task.NewKeepAlive(cfg.KeepAliveURL, cfg.KeepAliveInterval, logger).Run(context.Background())
	}

	logger.Info("listening", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}

func healthHandler(env string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "OK",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": env,
		})
	}
}
