package app

import (
	"adaptive_tutor_backend/internal/config"
	"adaptive_tutor_backend/internal/controller"
	"adaptive_tutor_backend/internal/llm"
	"adaptive_tutor_backend/internal/repository"
	"adaptive_tutor_backend/internal/service"
	"adaptive_tutor_backend/pkg/database"
	"adaptive_tutor_backend/pkg/logger"
	"adaptive_tutor_backend/pkg/monitoring"
	"adaptive_tutor_backend/pkg/security"
	"adaptive_tutor_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	// Redis is nil when the key-value store could not be reached.
	Redis *redis.Client

	tracer *sdktrace.TracerProvider
	stop   chan struct{}
}

type repositories struct {
	profile    *repository.ProfileRepository
	credential *repository.CredentialRepository
	chat       *repository.ChatRepository
}

type services struct {
	profile      *service.ProfileService
	learningPath *service.LearningPathService
	chat         *service.TutorChatService
	credentials  llm.CredentialSource
}

type controllers struct {
	health     *controller.HealthController
	numerology *controller.NumerologyController
	profile    *controller.ProfileController
	generation *controller.GenerationController
	chat       *controller.ChatController
	settings   *controller.SettingsController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	repos := &repositories{
		profile: repository.NewProfileRepository(db),
	}
	if rdb != nil {
		repos.credential = repository.NewCredentialRepository(rdb, cfg.AI.CredentialKey)
		repos.chat = repository.NewChatRepository(rdb)
	}
	return repos
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	// The stored key wins over the configured one.
	chain := llm.CredentialChain{}
	if repos.credential != nil {
		chain = append(chain, repos.credential)
	}
	chain = append(chain, llm.StaticCredential(cfg.AI.APIKey))
	s.credentials = chain

	client := llm.NewGenerationClient(llm.Config{
		Models:        cfg.AI.Models,
		Credentials:   s.credentials,
		Transport:     newTransport(&cfg.AI),
		Logger:        logger.Log,
		CredentialKey: cfg.AI.CredentialKey,
	})
	logger.Log.Info("generation client ready",
		zap.String("provider", cfg.AI.Provider),
		zap.Strings("models", client.Models()),
	)

	s.profile = service.NewProfileService(repos.profile)
	s.learningPath = service.NewLearningPathService(client, service.NewContentArchive(cfg))

	var chatStore service.ChatStore
	if repos.chat != nil {
		chatStore = repos.chat
	}
	s.chat = service.NewTutorChatService(client, chatStore)

	return s
}

func newTransport(cfg *config.AIConfig) llm.Transport {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return llm.NewOpenAITransport(cfg.BaseURL, timeout)
	default:
		return llm.NewGeminiTransport(cfg.BaseURL, &http.Client{Timeout: timeout})
	}
}

func (a *App) initControllers(repos *repositories, s *services) *controllers {
	var store controller.CredentialStore
	if repos.credential != nil {
		store = repos.credential
	}

	return &controllers{
		health:     controller.NewHealthController(a.DB, a.Redis),
		numerology: controller.NewNumerologyController(),
		profile:    controller.NewProfileController(s.profile),
		generation: controller.NewGenerationController(s.profile, s.learningPath),
		chat:       controller.NewChatController(s.profile, s.chat),
		settings:   controller.NewSettingsController(store, s.credentials),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")
	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == gin.DebugMode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Chat history and the stored API key need redis; everything else runs without it.
		logger.Log.Warn("redis unavailable, running without chat history and stored credentials", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
		stop:   make(chan struct{}),
	}

	repos := app.initRepositories(db, rdb, cfg)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(repos, services)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/archive", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for an interrupt, then give in-flight requests five seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	close(a.stop)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
}
