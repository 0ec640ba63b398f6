package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"reviewdash/internal/config"
	"reviewdash/internal/handler"
	"reviewdash/internal/logger"
	"reviewdash/internal/middleware"
	"reviewdash/internal/repository"
	"reviewdash/internal/storage"
	"reviewdash/internal/tracker"
	"reviewdash/internal/worker"
)

type Server struct {
	Engine  *gin.Engine
	DB      *gorm.DB
	Config  *config.Config
	Tracker *tracker.Tracker
	Worker  *worker.ReminderWorker
}

func Init(cfg *config.Config) (*Server, error) {
	if err := logger.Init(cfg.LogDevelopment); err != nil {
		return nil, fmt.Errorf("❌ failed to initialize logger: %w", err)
	}

	// Setup GORM
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	logger.Info("✅ Connected to database")

	if err := runMigrations(cfg); err != nil {
		return nil, err
	}

	if cfg.SeedDemoData {
		if err := repository.SeedDemoData(context.Background(), db); err != nil {
			return nil, fmt.Errorf("❌ failed to seed demo data: %w", err)
		}
	}

	// Dashboard state lives in the local blob store, not in the database.
	store := storage.New(cfg.DataFile)
	trk := tracker.New(store)
	if err := trk.Load(); err != nil {
		return nil, fmt.Errorf("❌ failed to load dashboard state: %w", err)
	}
	logger.Info("✅ Dashboard state loaded",
		zap.String("file", store.Path()),
		zap.Int("members", len(trk.Roster())),
		zap.Int("assignments", len(trk.Assignments())),
	)

	// Initialize repositories
	reviewerRepo := repository.NewReviewerRepository(db)
	reviewTypeRepo := repository.NewReviewTypeRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	reminderRepo := repository.NewReminderRepository(db)

	// Initialize handlers
	assignmentHandler := handler.NewAssignmentHandler(trk)
	memberHandler := handler.NewMemberHandler(trk)
	calendarHandler := handler.NewCalendarHandler(documentRepo, reviewTypeRepo)
	reminderHandler := handler.NewReminderHandler(reminderRepo, documentRepo, reviewerRepo, store)

	// Setup Gin
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware(cfg.CORSOrigins))
	r.Use(middleware.RateLimit(100))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		// Assignment dashboard routes
		api.GET("/assignments", assignmentHandler.List)
		api.POST("/assignments", assignmentHandler.Create)
		api.GET("/assignments/stats", assignmentHandler.Stats)
		api.POST("/assignments/:id/actions", assignmentHandler.Action)
		api.DELETE("/assignments/:id", assignmentHandler.Delete)

		// Team roster routes
		api.GET("/team-members", memberHandler.List)
		api.POST("/team-members", memberHandler.Add)

		// Calendar routes
		api.GET("/documents", calendarHandler.ListDocuments)
		api.GET("/review-types", calendarHandler.ListReviewTypes)
		api.GET("/calendar", calendarHandler.Calendar)

		// Reminder routes
		api.POST("/reminders", reminderHandler.Create)
		api.GET("/reminders", reminderHandler.List)
		api.GET("/reminders/settings", reminderHandler.GetSettings)
		api.PUT("/reminders/settings", reminderHandler.UpdateSettings)
		api.PUT("/reminders/:id", reminderHandler.UpdateStatus)
	}

	var reminderWorker *worker.ReminderWorker
	if cfg.RemindersEnabled {
		reminderWorker = worker.NewReminderWorker(
			trk, store, documentRepo, reviewerRepo, reminderRepo, cfg.ReminderCheckInterval,
		)
	}

	return &Server{
		Engine:  r,
		DB:      db,
		Config:  cfg,
		Tracker: trk,
		Worker:  reminderWorker,
	}, nil
}

func runMigrations(cfg *config.Config) error {
	url := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)

	m, err := migrate.New("file://"+cfg.MigrationsPath, url)
	if err != nil {
		return fmt.Errorf("❌ failed to open migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("❌ failed to run migrations: %w", err)
	}
	logger.Info("✅ Database schema up to date")
	return nil
}

func corsMiddleware(origins string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if origins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "X-Request-ID")
	return cors.New(corsConfig)
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	workerCtx, stopWorker := context.WithCancel(context.Background())
	if s.Worker != nil {
		go s.Worker.Start(workerCtx)
	}

	go func() {
		logger.Info("🚀 Server running", zap.String("port", s.Config.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("❌ Failed to listen", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("🛑 Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("❌ Server forced to shutdown", err)
	}

	logger.Info("✅ Server exited properly")
	logger.Sync()
}
