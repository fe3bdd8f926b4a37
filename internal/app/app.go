package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"readflow_backend/internal/config"
	"readflow_backend/internal/controller"
	"readflow_backend/internal/service"
	"readflow_backend/internal/store"
	"readflow_backend/pkg/database"
	"readflow_backend/pkg/logger"
	"readflow_backend/pkg/monitoring"
	"readflow_backend/pkg/security"
	"readflow_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type services struct {
	tracker  *service.TrackerService
	syllabus *service.SyllabusService
	insight  *service.InsightService
	practice *service.PracticeService
}

type controllers struct {
	tracker  *controller.TrackerController
	syllabus *controller.SyllabusController
	practice *controller.PracticeController
	insight  *controller.InsightController
	health   *controller.HealthController
}

func (a *App) initServices(st store.Store, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.tracker = service.NewTrackerService(st, logger.Log)
	s.syllabus = service.NewSyllabusService(st, s.tracker, logger.Log)
	s.insight = service.NewInsightService(cfg.AI, s.tracker, rdb, logger.Log)
	s.practice = service.NewPracticeService(s.insight, s.tracker, logger.Log)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		tracker:  controller.NewTrackerController(s.tracker),
		syllabus: controller.NewSyllabusController(s.syllabus),
		practice: controller.NewPracticeController(s.practice),
		insight:  controller.NewInsightController(s.insight),
		health:   controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// ReloadConfig applies hot-reloadable settings from a fresh config.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.services.insight.UpdateConfig(cfg.AI)
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	st := store.NewGormStore(db)
	services := app.initServices(st, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("readflow", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
