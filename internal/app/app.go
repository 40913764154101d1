package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"chadjee_backend/internal/config"
	"chadjee_backend/internal/controller"
	"chadjee_backend/internal/repository"
	"chadjee_backend/internal/service"
	"chadjee_backend/pkg/database"
	"chadjee_backend/pkg/logger"
	"chadjee_backend/pkg/monitoring"
	"chadjee_backend/pkg/security"
	"chadjee_backend/pkg/tracing"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	user            *repository.UserRepository
	session         *repository.StudySessionRepository
	testRecord      *repository.TestRecordRepository
	task            *repository.TaskRepository
	goal            *repository.GoalRepository
	calendarEvent   *repository.CalendarEventRepository
	subjectProgress *repository.SubjectProgressRepository
	streak          *repository.StreakRepository
	motivation      *repository.MotivationRepository
}

type services struct {
	auth           *service.AuthService
	user           *service.UserService
	storage        *service.StorageService
	session        *service.SessionService
	testRecord     *service.TestRecordService
	task           *service.TaskService
	goal           *service.GoalService
	calendar       *service.CalendarService
	subject        *service.SubjectService
	streak         *service.StreakService
	recommendation *service.RecommendationService
	analytics      *service.AnalyticsService
	motivation     *service.MotivationService
	dashboard      *service.DashboardService
}

type controllers struct {
	auth           *controller.AuthController
	user           *controller.UserController
	session        *controller.SessionController
	testRecord     *controller.TestRecordController
	task           *controller.TaskController
	goal           *controller.GoalController
	calendar       *controller.CalendarController
	subject        *controller.SubjectController
	recommendation *controller.RecommendationController
	analytics      *controller.AnalyticsController
	dashboard      *controller.DashboardController
	motivation     *controller.MotivationController
	health         *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:            repository.NewUserRepository(db),
		session:         repository.NewStudySessionRepository(db),
		testRecord:      repository.NewTestRecordRepository(db),
		task:            repository.NewTaskRepository(db),
		goal:            repository.NewGoalRepository(db),
		calendarEvent:   repository.NewCalendarEventRepository(db),
		subjectProgress: repository.NewSubjectProgressRepository(db),
		streak:          repository.NewStreakRepository(db),
		motivation:      repository.NewMotivationRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize storage", zap.Error(err))
	}

	streak := service.NewStreakService(repos.streak, repos.subjectProgress)
	recommendation := service.NewRecommendationService(
		repos.session,
		repos.testRecord,
		repos.subjectProgress,
		streak,
		rdb,
		time.Duration(cfg.Recommendation.CacheTTLSeconds)*time.Second,
	)
	motivation := service.NewMotivationService(repos.motivation)

	return &services{
		auth:           service.NewAuthService(repos.user, cfg),
		user:           service.NewUserService(repos.user),
		storage:        storage,
		session:        service.NewSessionService(repos.session, streak, recommendation),
		testRecord:     service.NewTestRecordService(repos.testRecord, streak, recommendation),
		task:           service.NewTaskService(repos.task),
		goal:           service.NewGoalService(repos.goal),
		calendar:       service.NewCalendarService(repos.calendarEvent),
		subject:        service.NewSubjectService(repos.subjectProgress),
		streak:         streak,
		recommendation: recommendation,
		analytics:      service.NewAnalyticsService(repos.session, repos.testRecord, repos.subjectProgress, streak),
		motivation:     motivation,
		dashboard:      service.NewDashboardService(repos.task, repos.goal, streak, recommendation, motivation),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:           controller.NewAuthController(s.auth, s.user),
		user:           controller.NewUserController(s.user, s.storage),
		session:        controller.NewSessionController(s.session),
		testRecord:     controller.NewTestRecordController(s.testRecord),
		task:           controller.NewTaskController(s.task),
		goal:           controller.NewGoalController(s.goal),
		calendar:       controller.NewCalendarController(s.calendar),
		subject:        controller.NewSubjectController(s.subject),
		recommendation: controller.NewRecommendationController(s.recommendation, s.streak),
		analytics:      controller.NewAnalyticsController(s.analytics),
		dashboard:      controller.NewDashboardController(s.dashboard),
		motivation:     controller.NewMotivationController(s.motivation),
		health:         controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized successfully")

	// migrations always run outside release mode, opt in via -migrate otherwise
	db, err := database.InitDB(&cfg.Database, cfg.ForceMigrate || cfg.Server.Mode != "release")
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("chadjee", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

// ApplyConfig picks up the settings that are safe to change at runtime.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.services.recommendation.CacheTTL = time.Duration(cfg.Recommendation.CacheTTLSeconds) * time.Second
	logger.Log.Info("Config reloaded",
		zap.Int("recommendation_cache_ttl_seconds", cfg.Recommendation.CacheTTLSeconds))
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

	logger.Log.Sync()
	log.Println("Server exiting")
}
