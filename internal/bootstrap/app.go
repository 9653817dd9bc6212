package bootstrap

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"weekcal/internal/config"
	"weekcal/internal/handler"
	"weekcal/internal/logger"
	"weekcal/internal/repository"
	"weekcal/internal/service"
)

type App struct {
	Echo *echo.Echo
	DS   *repository.Client
}

func NewApp() *App {
	return &App{
		Echo: echo.New(),
	}
}

func (a *App) Initialize(ctx context.Context) error {
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	// Initialize logging
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)
	logger.SetLevel(config.DefaultEnvConfig.LOG_LEVEL)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	// Initialize Datastore connection
	ds, err := repository.NewClient(ctx, config.DefaultEnvConfig.GCP_PROJECT_ID)
	if err != nil {
		return fmt.Errorf("failed to initialize datastore: %w", err)
	}
	a.DS = ds

	// Initialize dependencies
	eventRepo := repository.NewEventRepository(ds)
	goalRepo := repository.NewGoalRepository(ds)
	taskRepo := repository.NewTaskRepository(ds)

	eventSvc := service.NewEventService(eventRepo)
	catalogSvc := service.NewCatalogService(goalRepo, taskRepo)
	seedSvc, err := service.NewSeedService(goalRepo, taskRepo, config.DefaultEnvConfig.SEED_FILE)
	if err != nil {
		return fmt.Errorf("failed to initialize seed service: %w", err)
	}

	eventHandler := handler.NewEventHandler(eventSvc)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	seedHandler := handler.NewSeedHandler(seedSvc)

	// Register Middlewares
	a.RegisterMiddlewares()

	// Register Routes
	a.RegisterRoutes(eventHandler, catalogHandler, seedHandler)

	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes(eventHandler *handler.EventHandler, catalogHandler *handler.CatalogHandler, seedHandler *handler.SeedHandler) {
	a.Echo.GET("/events", eventHandler.ListHandler)
	a.Echo.POST("/events", eventHandler.CreateHandler)
	a.Echo.GET("/events/export", eventHandler.ExportHandler)
	a.Echo.PUT("/events/:id", eventHandler.UpdateHandler)
	a.Echo.DELETE("/events/:id", eventHandler.DeleteHandler)

	a.Echo.GET("/goals", catalogHandler.ListGoalsHandler)
	a.Echo.GET("/tasks", catalogHandler.ListTasksHandler)

	a.Echo.GET("/seed", seedHandler.SeedHandler)
}

func (a *App) Run() error {
	defer a.DS.Close()
	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}
