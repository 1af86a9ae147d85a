package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/fitness-tracker/internal/api/http"
	"github.com/spec-kit/fitness-tracker/internal/api/http/handlers"
	"github.com/spec-kit/fitness-tracker/internal/auth"
	"github.com/spec-kit/fitness-tracker/internal/config"
	"github.com/spec-kit/fitness-tracker/internal/events"
	"github.com/spec-kit/fitness-tracker/internal/observability"
	"github.com/spec-kit/fitness-tracker/internal/persistence"
	"github.com/spec-kit/fitness-tracker/internal/repository"
	"github.com/spec-kit/fitness-tracker/internal/service"
	"github.com/spec-kit/fitness-tracker/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.Auth.JWTSecret == config.DefaultJWTSecret {
		logger.Warn("AUTH_JWT_SECRET not set; using the development fallback secret")
	}
	if cfg.Auth.AccessTokenTTLMinutes <= 0 {
		logger.Warn("access tokens have no expiry; set AUTH_ACCESS_TOKEN_TTL_MINUTES to bound sessions")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	exerciseRepo := repository.NewExerciseRepository(pool)
	workoutRepo := repository.NewWorkoutRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, userRepo, dispatcher)
	exerciseService := service.NewExerciseService(exerciseRepo, dispatcher)
	workoutService := service.NewWorkoutService(workoutRepo, dispatcher)
	activityService := service.NewActivityService(activityRepo)
	statsService := service.NewStatsService(workoutRepo, redis, cfg.Cache.SummaryTTL(), logger)
	statsService.RegisterInvalidation(dispatcher)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(logger, notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	loginLimiter := httptransport.NewLoginRateLimiter(cfg.RateLimit)
	defer loginLimiter.Stop()

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(),
		Exercises:      handlers.NewExercisesHandler(exerciseService),
		Workouts:       handlers.NewWorkoutsHandler(workoutService),
		Activities:     handlers.NewActivitiesHandler(activityService),
		Reports:        handlers.NewReportsHandler(statsService),
		AuthMiddleware: authMiddleware,
		LoginLimiter:   loginLimiter,
		MetricsHandler: metrics.Handler(),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
