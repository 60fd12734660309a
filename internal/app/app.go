package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"team_tracker_backend/internal/config"
	"team_tracker_backend/internal/controller"
	"team_tracker_backend/internal/mcptools"
	"team_tracker_backend/internal/middleware"
	"team_tracker_backend/internal/repository"
	"team_tracker_backend/internal/service"
	"team_tracker_backend/internal/util"
	"team_tracker_backend/pkg/configwatcher"
	"team_tracker_backend/pkg/database"
	"team_tracker_backend/pkg/logger"
	"team_tracker_backend/pkg/monitoring"
	"team_tracker_backend/pkg/security"
	"team_tracker_backend/pkg/tracing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const configFile = "configs/config.yaml"

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)

	// 后台协程（限流清理等）的生命周期，Close 时取消
	ctx    context.Context
	cancel context.CancelFunc
}

type repositories struct {
	member *repository.TeamMemberRepository
	goal   *repository.GoalRepository
	task   *repository.TaskRepository
	update *repository.StatusUpdateRepository
}

type services struct {
	ai        *service.AIService
	storage   *service.StorageService
	indexSync *service.IndexSyncService
	member    *service.TeamMemberService
	goal      *service.GoalService
	task      *service.TaskService
	progress  *service.ProgressService
	update    *service.StatusUpdateService
	insight   *service.InsightService
}

type controllers struct {
	member *controller.TeamMemberController
	goal   *controller.GoalController
	task   *controller.TaskController
	update *controller.StatusUpdateController
	ai     *controller.AIController
	health *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// applyConfig 配置文件变更后通知各组件
func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		member: repository.NewTeamMemberRepository(db),
		goal:   repository.NewGoalRepository(db),
		task:   repository.NewTaskRepository(db),
		update: repository.NewStatusUpdateRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	// 同一个 Ollama 客户端既负责生成也负责向量化
	ai := service.NewAIService(cfg.AI)
	a.RegisterConfigCallback(func(newCfg *config.Config) {
		ai.UpdateConfig(newCfg.AI)
	})

	index, err := service.NewVectorIndex(cfg.Index, ai)
	if err != nil {
		return nil, err
	}

	storage := service.NewStorageService(cfg)
	indexSync := service.NewIndexSyncService(index, repos.update, rdb, logger.Log, cfg.Index.Timeout())

	return &services{
		ai:        ai,
		storage:   storage,
		indexSync: indexSync,
		member:    service.NewTeamMemberService(repos.member, indexSync),
		goal:      service.NewGoalService(repos.goal, repos.task, repos.update, indexSync),
		task:      service.NewTaskService(repos.task, repos.goal, repos.member, repos.update, indexSync),
		progress:  service.NewProgressService(repos.goal, repos.task, repos.member),
		update:    service.NewStatusUpdateService(repos.update, repos.member, repos.task, indexSync),
		insight: service.NewInsightService(
			repos.update,
			repos.member,
			index,
			ai,
			storage,
			indexSync,
			logger.Log,
		),
	}, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		member: controller.NewTeamMemberController(s.member),
		goal:   controller.NewGoalController(s.goal, s.progress),
		task:   controller.NewTaskController(s.task, s.progress),
		update: controller.NewStatusUpdateController(s.update),
		ai:     controller.NewAIController(s.insight),
		health: controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger.Log))
	router.Use(gin.Recovery())

	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(a.ctx, cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func shouldMigrate(cfg *config.Config) bool {
	return cfg.ForceMigrate || cfg.Server.Mode != "release"
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if shouldMigrate(cfg) {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		Config: cfg,
		DB:     db,
		ctx:    ctx,
		cancel: cancel,
	}
	if cfg.MigrateOnly {
		return app
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// redis 只用于重建索引的互斥锁，连接失败时降级运行
		logger.Log.Warn("Failed to initialize redis, resync lock disabled", zap.Error(err))
		rdb = nil
	}
	app.Redis = rdb

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	// gin 的 debug 输出写 stdout，MCP 模式下同样关闭
	if cfg.Server.Mode == "release" || cfg.Server.Mode == "mcp" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/reports", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.watchConfig(ctx)

	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}
	a.shutdownTracer(shutdownCtx)
	a.Close()

	logger.Log.Info("Server exiting")
}

// RunMCP 以 stdio 方式对外提供洞察工具，stdout 归协议使用
func (a *App) RunMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.watchConfig(ctx)
	defer a.Close()
	defer a.shutdownTracer(context.Background())

	tools := mcptools.NewTools(a.services.insight, a.services.progress)
	return tools.ServeStdio(ctx, os.Stdin, os.Stdout)
}

func (a *App) watchConfig(ctx context.Context) {
	if _, err := os.Stat(configFile); err != nil {
		logger.Log.Info("No config file to watch", zap.String("file", configFile))
		return
	}
	go func() {
		if err := configwatcher.WatchConfig(ctx, configFile, a.applyConfig); err != nil {
			logger.Log.Warn("Config watcher stopped", zap.Error(err))
		}
	}()
}

// Close 停止 App 启动的后台协程
func (a *App) Close() {
	if a.cancel != nil {
		a.cancel()
	}
}

func (a *App) shutdownTracer(ctx context.Context) {
	if a.tracerProvider == nil {
		return
	}
	if err := a.tracerProvider.Shutdown(ctx); err != nil {
		logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
	}
}
