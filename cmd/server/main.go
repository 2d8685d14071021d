package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/mentortrack/backend/api/handler"
	"github.com/mentortrack/backend/internal/config"
	"github.com/mentortrack/backend/internal/infrastructure/monitor"
	pgInfra "github.com/mentortrack/backend/internal/infrastructure/postgres"
	redisInfra "github.com/mentortrack/backend/internal/infrastructure/redis"
	"github.com/mentortrack/backend/internal/middleware"
	"github.com/mentortrack/backend/internal/router"
	"github.com/mentortrack/backend/internal/services/lifecycle"
	"github.com/mentortrack/backend/pkg/httpcontext"
	"github.com/mentortrack/backend/pkg/logger"
	"github.com/mentortrack/backend/repository/postgres"
	redisRepo "github.com/mentortrack/backend/repository/redis"
	dashboardUC "github.com/mentortrack/backend/usecase/dashboard"
	identityUC "github.com/mentortrack/backend/usecase/identity"
	mentorshipUC "github.com/mentortrack/backend/usecase/mentorship"
	resourceUC "github.com/mentortrack/backend/usecase/resource"
	scheduleUC "github.com/mentortrack/backend/usecase/schedule"
	taskUC "github.com/mentortrack/backend/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	mon := monitor.New(pool, redisClient, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := postgres.NewUserRepository(pool)
	mentorshipRepo := postgres.NewMentorshipRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	resourceRepo := postgres.NewResourceRepository(pool)
	authSessionRepo := redisRepo.NewAuthSessionRepository(redisClient, cfg.Session.TTL)

	identityUseCase := identityUC.New(userRepo, authSessionRepo, cfg.Session.TTL, zapLogger)
	mentorshipUseCase := mentorshipUC.New(mentorshipRepo, userRepo, zapLogger)
	taskUseCase := taskUC.New(taskRepo, mentorshipRepo, zapLogger)
	resourceUseCase := resourceUC.New(resourceRepo, zapLogger)
	scheduleUseCase := scheduleUC.New(sessionRepo, mentorshipRepo, zapLogger)
	dashboardUseCase := dashboardUC.New(mentorshipRepo, taskRepo, sessionRepo, resourceRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:       apiHandler.NewAuthHandler(identityUseCase, ctxAdapter, zapLogger, cfg.Session.CookieName),
		Dashboard:  apiHandler.NewDashboardHandler(dashboardUseCase, ctxAdapter, zapLogger),
		Task:       apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		Mentorship: apiHandler.NewMentorshipHandler(mentorshipUseCase, ctxAdapter, zapLogger),
		Resource:   apiHandler.NewResourceHandler(resourceUseCase, ctxAdapter, zapLogger),
		Session:    apiHandler.NewSessionHandler(scheduleUseCase, ctxAdapter, zapLogger),
		Health:     apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.SessionAuth(identityUseCase, cfg.Session.CookieName, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
