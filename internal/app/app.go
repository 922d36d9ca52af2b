package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"quiz_engine_backend/internal/config"
	"quiz_engine_backend/internal/controller"
	"quiz_engine_backend/internal/repository"
	"quiz_engine_backend/internal/service"
	"quiz_engine_backend/internal/util"
	"quiz_engine_backend/pkg/database"
	"quiz_engine_backend/pkg/logger"
	"quiz_engine_backend/pkg/monitoring"
	"quiz_engine_backend/pkg/security"
	"quiz_engine_backend/pkg/storage"
	"quiz_engine_backend/pkg/tracing"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	Store           repository.TestStore
	services        *services
	limiter         *security.Limiter
	tracer          *sdktrace.TracerProvider
	done            chan struct{}
	cfgMu           sync.Mutex
	configCallbacks []func(*config.Config)
}

type services struct {
	tests      *service.TestManagementService
	statistics *service.StatisticsService
	sessions   *service.SessionService
}

type controllers struct {
	tests      *controller.TestController
	testing    *controller.TestingController
	statistics *controller.StatisticsController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.cfgMu.Lock()
	defer a.cfgMu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

// Reload applies a freshly loaded config to the registered callbacks.
// Only settings that are safe to change at runtime are picked up.
func (a *App) Reload(cfg *config.Config) {
	a.cfgMu.Lock()
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.cfgMu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
	logger.Log.Debug("Config callbacks applied", zap.Int("callbacks", len(callbacks)))
}

// initStore selects the TestStore for the configured persistence driver.
func (a *App) initStore(cfg *config.Config) (repository.TestStore, map[string]controller.HealthCheck, error) {
	checks := map[string]controller.HealthCheck{}

	switch cfg.Persistence.Driver {
	case util.DriverFile:
		store := repository.NewFileRepository(cfg.Persistence.TestsFile, cfg.Persistence.StatsFile)
		checks["store"] = func(ctx context.Context) error {
			_, err := os.Stat(store.TestsPath)
			return err
		}
		return store, checks, nil

	case util.DriverMySQL, util.DriverPostgres:
		db, err := database.InitDB(cfg.Persistence.Driver, &cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize database: %w", err)
		}
		a.DB = db
		checks["database"] = func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
		return repository.NewGormRepository(db), checks, nil

	case util.DriverObject:
		provider, err := storage.NewProvider(&cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize object storage: %w", err)
		}
		checks["storage"] = func(ctx context.Context) error {
			_, err := provider.Download(ctx, util.TestsObjectKey)
			if errors.Is(err, storage.ErrObjectNotFound) {
				return nil
			}
			return err
		}
		return repository.NewObjectRepository(provider), checks, nil
	}

	return nil, nil, fmt.Errorf("unknown persistence driver %q", cfg.Persistence.Driver)
}

func (a *App) initSessions(cfg *config.Config, checks map[string]controller.HealthCheck) (repository.SessionRepository, error) {
	ttl := time.Duration(cfg.Session.TTLMinutes) * time.Minute

	switch cfg.Session.Store {
	case util.SessionStoreMemory:
		return repository.NewMemorySessionRepository(ttl), nil

	case util.SessionStoreRedis:
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("initialize redis: %w", err)
		}
		a.Redis = rdb
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
		return repository.NewRedisSessionRepository(rdb, ttl), nil
	}

	return nil, fmt.Errorf("unknown session store %q", cfg.Session.Store)
}

func (a *App) initServices(ctx context.Context, store repository.TestStore, sessions repository.SessionRepository) (*services, error) {
	tests, err := service.NewTestManagementService(ctx, store)
	if err != nil {
		return nil, err
	}
	stats := service.NewStatisticsService(store)
	return &services{
		tests:      tests,
		statistics: stats,
		sessions:   service.NewSessionService(sessions, stats),
	}, nil
}

func (a *App) initControllers(s *services, checks map[string]controller.HealthCheck) *controllers {
	guard := controller.NewTestsGuard(s.tests)
	return &controllers{
		tests:      controller.NewTestController(guard),
		testing:    controller.NewTestingController(guard, s.sessions),
		statistics: controller.NewStatisticsController(s.statistics),
		health:     controller.NewHealthController(checks),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(a.limiter))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// New wires every component from cfg without exiting the process.
func New(cfg *config.Config) (*App, error) {
	app := &App{
		Config: cfg,
		done:   make(chan struct{}),
	}

	store, checks, err := app.initStore(cfg)
	if err != nil {
		return nil, err
	}
	app.Store = store

	sessions, err := app.initSessions(cfg, checks)
	if err != nil {
		return nil, err
	}

	svcs, err := app.initServices(context.Background(), store, sessions)
	if err != nil {
		return nil, fmt.Errorf("load tests: %w", err)
	}
	app.services = svcs
	controllers := app.initControllers(svcs, checks)

	// 监控初始化
	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return nil, fmt.Errorf("initialize tracing: %w", err)
		}
		app.tracer = tp
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.limiter = security.NewLimiter(cfg.RateLimit)
	go app.limiter.Run(app.done)

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	app.RegisterConfigCallback(func(c *config.Config) {
		logger.SetMode(c.Server.Mode)
		logger.Log.Info("Log level applied", zap.Stringer("level", logger.Level()))
	})

	return app, nil
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully",
		zap.String("driver", cfg.Persistence.Driver),
		zap.String("sessionStore", cfg.Session.Store),
	)

	app, err := New(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize application", zap.Error(err))
		log.Fatalf("Failed to initialize application: %v", err)
	}
	return app
}

// Done is closed when the app shuts down.
func (a *App) Done() <-chan struct{} {
	return a.done
}

func (a *App) shutdown(ctx context.Context) {
	close(a.done)

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Warn("Failed to close redis", zap.Error(err))
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}
	a.shutdown(ctx)

	logger.Log.Info("Server exiting")
}
