package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"scholars-connect.backend/internal/config"
	"scholars-connect.backend/internal/infrastructure/jobs"
	"scholars-connect.backend/internal/infrastructure/relay"
	"scholars-connect.backend/internal/infrastructure/repositories"
	"scholars-connect.backend/internal/interfaces/http/handlers"
	"scholars-connect.backend/internal/interfaces/http/middleware"
	"scholars-connect.backend/internal/usecases"
	"scholars-connect.backend/pkg/jwt"
	"scholars-connect.backend/pkg/logger"
	"scholars-connect.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	requestRepo := repositories.NewMentorshipRequestRepository(db)
	opportunityRepo := repositories.NewOpportunityRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	goalRepo := repositories.NewGoalRepository(db)

	// Initialize relay publisher
	publisher := relay.NewRedisPublisher()

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	profileUsecase := usecases.NewProfileUsecase(userRepo, requestRepo)
	opportunityUsecase := usecases.NewOpportunityUsecase(opportunityRepo, userRepo)
	mentorshipUsecase := usecases.NewMentorshipUsecase(requestRepo, userRepo, notificationRepo, publisher)
	messageUsecase := usecases.NewMessageUsecase(messageRepo, userRepo, requestRepo, notificationRepo, publisher)
	notificationUsecase := usecases.NewNotificationUsecase(notificationRepo)
	dashboardUsecase := usecases.NewDashboardUsecase(userRepo, opportunityRepo, messageRepo, requestRepo, sessionRepo, goalRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	profileHandler := handlers.NewProfileHandler(profileUsecase)
	opportunityHandler := handlers.NewOpportunityHandler(opportunityUsecase)
	mentorshipHandler := handlers.NewMentorshipHandler(mentorshipUsecase)
	messageHandler := handlers.NewMessageHandler(messageUsecase)
	notificationHandler := handlers.NewNotificationHandler(notificationUsecase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUsecase)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deadlineJob := jobs.NewOpportunityDeadlineJob(opportunityRepo, notificationRepo, publisher, cfg.Jobs.DeadlineSweepInterval)
	go deadlineJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		profileHandler:      profileHandler,
		opportunityHandler:  opportunityHandler,
		mentorshipHandler:   mentorshipHandler,
		messageHandler:      messageHandler,
		notificationHandler: notificationHandler,
		dashboardHandler:    dashboardHandler,
		authMiddleware:      middleware.AuthMiddleware(jwtService),
		loginRateLimiter:    middleware.LoginRateLimiter(cfg.RateLimit.LoginLimit, cfg.RateLimit.LoginWindow),
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		deadlineJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Scholars Connect Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
