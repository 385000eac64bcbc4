package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hackathon-portal-backend/internal/api/handlers"
	"hackathon-portal-backend/internal/api/routes"
	"hackathon-portal-backend/internal/auditlog"
	"hackathon-portal-backend/internal/auth"
	"hackathon-portal-backend/internal/config"
	"hackathon-portal-backend/internal/database"
	"hackathon-portal-backend/internal/database/models"
	"hackathon-portal-backend/internal/identity"
	"hackathon-portal-backend/internal/lock"
	"hackathon-portal-backend/internal/repository"
	"hackathon-portal-backend/internal/scheduler"
	"hackathon-portal-backend/internal/service"
	"hackathon-portal-backend/internal/sheets"
	"hackathon-portal-backend/internal/tasks"
	"hackathon-portal-backend/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	_ "hackathon-portal-backend/docs" // This is needed for swag
)

const version = "1.0.0"

//	@title			Hackathon Portal Backend API
//	@version		1.0
//	@description	Team registration, staff accounts and event settings for the hackathon portal.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8080
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the ID token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	mongoClient, db, err := database.Initialize(ctx, cfg.MongoURI, cfg.MongoDatabase, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	healthChecks := []handlers.HealthCheck{{
		Name: "database",
		Ping: func(ctx context.Context) error { return database.Ping(ctx, mongoClient) },
	}}

	// Team write lock: Redis when configured so several instances serialize
	// writes, otherwise in-process.
	var locker lock.Locker = lock.NewLocalLocker()
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = lock.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logrus.Fatal("Failed to connect to Redis: ", err)
		}
		locker = lock.NewRedisLocker(redisClient, 0)
		healthChecks = append(healthChecks, handlers.HealthCheck{
			Name: "redis",
			Ping: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		})
		logrus.Info("Using Redis team write lock")
	}

	queue := tasks.NewQueue(tasks.Options{
		Workers:    cfg.TaskWorkers,
		MaxRetries: cfg.TaskMaxRetries,
	})

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(db)
	userRepo := repository.NewUserRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	logRepo := repository.NewLogRepository(db)

	audit := auditlog.NewLogger(logRepo, queue)

	provider, login, err := newIdentityProvider(ctx, cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize identity provider: ", err)
	}

	sheetClient, err := sheets.NewGoogleClient(ctx, cfg.SheetsCredentialsFile, cfg.SheetID, cfg.SheetName)
	if err != nil {
		logrus.Fatal("Failed to initialize spreadsheet client: ", err)
	}

	// Initialize services
	v := validation.New()
	teamValidator := validation.NewTeamValidator(v)
	sheetSync := service.NewSheetSyncService(teamRepo, sheetClient, queue, audit, locker)
	settingsService := service.NewSettingsService(settingsRepo, audit)
	deps := &routes.Dependencies{
		Config:       cfg,
		Teams:        service.NewTeamService(teamRepo, settingsRepo, teamValidator, locker, audit, sheetSync),
		Users:        service.NewUserService(userRepo, provider, v, audit),
		Settings:     settingsService,
		Logs:         service.NewLogService(logRepo),
		SheetSync:    sheetSync,
		Suggestions:  service.NewSuggestionService(teamRepo, teamValidator, v, cfg.GenAIAPIKey, cfg.GenAIModel, cfg.GenAIBaseURL),
		Verifier:     provider,
		Login:        login,
		HealthChecks: healthChecks,
		Version:      version,
	}

	if !cfg.SuggestionsEnabled() {
		logrus.Info("GENAI_API_KEY not set, team name suggestions are disabled")
	}

	registration := scheduler.NewRegistrationScheduler(settingsService, cfg.SchedulerInterval)
	if err := registration.Start(); err != nil {
		logrus.Fatal("Failed to start registration scheduler: ", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down")
	shutdown(srv, registration, queue, mongoClient, redisClient)
}

// newIdentityProvider returns the provider and, for the local provider, the
// password sign-in it offers.
func newIdentityProvider(ctx context.Context, cfg *config.Config) (identity.Provider, auth.PasswordLogin, error) {
	if cfg.AuthProvider == "firebase" {
		p, err := identity.NewFirebaseProvider(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentialsFile)
		return p, nil, err
	}

	p := identity.NewLocalProvider(cfg.LocalAuthSecret, 0)
	if cfg.LocalAdminPassword != "" {
		for _, email := range cfg.SuperAdminEmails {
			if _, err := p.Seed(ctx, email, cfg.LocalAdminPassword, models.RoleSuperAdmin); err != nil {
				return nil, nil, err
			}
		}
	}
	logrus.Warn("Using the local identity provider; accounts live in memory")
	return p, p, nil
}

func shutdown(srv *http.Server, registration *scheduler.RegistrationScheduler, queue *tasks.Queue, mongoClient *mongo.Client, redisClient *redis.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("HTTP server shutdown failed")
	}
	if err := registration.Shutdown(); err != nil {
		logrus.WithError(err).Error("Registration scheduler shutdown failed")
	}
	// drains pending sheet syncs and audit writes before the store goes away
	if err := queue.Close(ctx); err != nil {
		logrus.WithError(err).Warn("Task queue did not drain")
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if err := mongoClient.Disconnect(ctx); err != nil {
		logrus.WithError(err).Error("Database disconnect failed")
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
