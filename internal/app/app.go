package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sidjay999/Secretsanta/internal/config"
	"github.com/sidjay999/Secretsanta/internal/database"
	apperrors "github.com/sidjay999/Secretsanta/internal/errors"
	"github.com/sidjay999/Secretsanta/internal/handler"
	"github.com/sidjay999/Secretsanta/internal/logger"
	"github.com/sidjay999/Secretsanta/internal/middleware"
	"github.com/sidjay999/Secretsanta/internal/repository"
	"github.com/sidjay999/Secretsanta/internal/service"
)

type App struct {
	cfg          *config.Config
	logger       *logger.Logger
	db           *database.DynamoDBClient
	groupRepo    repository.GroupRepository
	santaService service.SantaService
	httpServer   *http.Server

	cleanup []func() error
}

func New(cfg *config.Config) (*App, *apperrors.AppError) {
	app := &App{
		cfg:     cfg,
		cleanup: make([]func() error, 0),
	}

	app.initLogger()

	if err := app.initStore(); err != nil {
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

func (a *App) initLogger() {
	if a.cfg.Server.Environment == "development" {
		a.logger = logger.Development("secretsanta")
		return
	}
	a.logger = logger.New(logger.Config{
		Level:       a.cfg.Server.LogLevel,
		Format:      "json",
		ServiceName: "secretsanta",
	})
}

func (a *App) initStore() *apperrors.AppError {
	// Missing store configuration is not fatal: the service starts in a
	// degraded mode where listings are empty and writes are rejected.
	if !a.cfg.StoreConfigured() {
		a.logger.Warn("group store is not configured; running degraded")
		a.groupRepo = repository.NewUnconfiguredGroupRepository()
		return nil
	}

	db, err := database.NewDynamoDBClient(a.cfg)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternalServer, "failed to init dynamodb client")
	}

	a.db = db
	a.groupRepo = repository.NewGroupRepository(db)
	a.logger.Info("group store initialized", "table", a.cfg.DynamoDB.TableName)

	return nil
}

func (a *App) initHTTP() {
	if a.cfg.Server.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	if a.cfg.Admin.SetupKey == "" {
		a.logger.Warn("admin setup key is not set; group creation will reject all requests")
	}

	a.santaService = service.NewSantaService(a.groupRepo, a.cfg.Admin.SetupKey, a.logger)
	santaHandler := handler.NewSantaHandler(a.santaService, a.logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(a.logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	api := router.Group("/api")
	{
		api.POST("/admin/groups", santaHandler.CreateGroup)
		api.GET("/groups", santaHandler.ListGroups)
		api.GET("/members", santaHandler.ListMembers)
		api.POST("/reveal", santaHandler.Reveal)
	}
	router.GET("/health", santaHandler.Health)

	a.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", a.cfg.Server.HTTPPort),
		Handler: router,
	}
}

func (a *App) Start() {
	go func() {
		a.logger.Info("http server listening", "port", a.cfg.Server.HTTPPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Fatal("http server failed", "error", err)
		}
	}()

	a.logger.Info("application started")
}

func (a *App) Stop() {
	a.logger.Info("stopping application")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.logger.Error("http server shutdown error", "error", err)
		}
	}

	for _, cleanup := range a.cleanup {
		if err := cleanup(); err != nil {
			a.logger.Error("cleanup error", "error", err)
		}
	}

	a.logger.Info("application stopped")
}
