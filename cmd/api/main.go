package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/brightvault/rwa-console-backend/api/controllers"
	"github.com/brightvault/rwa-console-backend/api/routes"
	"github.com/brightvault/rwa-console-backend/internal/auth"
	"github.com/brightvault/rwa-console-backend/internal/documents"
	"github.com/brightvault/rwa-console-backend/internal/invitations"
	"github.com/brightvault/rwa-console-backend/internal/memberships"
	"github.com/brightvault/rwa-console-backend/internal/milestones"
	"github.com/brightvault/rwa-console-backend/internal/projects"
	"github.com/brightvault/rwa-console-backend/internal/tokens"
	"github.com/brightvault/rwa-console-backend/internal/users"
	"github.com/brightvault/rwa-console-backend/pkg/auth/session"
	"github.com/brightvault/rwa-console-backend/pkg/config"
	"github.com/brightvault/rwa-console-backend/pkg/db"
	"github.com/brightvault/rwa-console-backend/pkg/logger"
	"github.com/brightvault/rwa-console-backend/pkg/metrics"
	"github.com/brightvault/rwa-console-backend/pkg/migrate"
	"github.com/brightvault/rwa-console-backend/pkg/redis"
	"github.com/brightvault/rwa-console-backend/pkg/storage/gcs"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	gcsClient, err := gcs.NewClient(context.Background(), cfg.GCS, cfg.GCP, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap object storage", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	gormDB := dbClient.DB()
	userRepo := users.NewRepository(gormDB)
	projectRepo := projects.NewRepository(gormDB)
	membershipRepo := memberships.NewRepository(gormDB)
	milestoneRepo := milestones.NewRepository(gormDB)
	documentRepo := documents.NewRepository(gormDB)
	tokenRepo := tokens.NewRepository(gormDB)
	invitationRepo := invitations.NewRepository(gormDB)

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	projectService, err := projects.NewService(projectRepo, membershipRepo, milestoneRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create project service", err)
		os.Exit(1)
	}

	documentService, err := documents.NewService(documentRepo, projectRepo, gcsClient, cfg.Documents)
	if err != nil {
		logg.Error(context.Background(), "failed to create document service", err)
		os.Exit(1)
	}

	tokenService, err := tokens.NewService(tokenRepo, projectRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create token service", err)
		os.Exit(1)
	}

	invitationService, err := invitations.NewService(invitationRepo, projectRepo, membershipRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create invitation service", err)
		os.Exit(1)
	}

	membershipService, err := memberships.NewService(membershipRepo, projectRepo, userRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create membership service", err)
		os.Exit(1)
	}

	milestoneService, err := milestones.NewService(milestoneRepo, projectRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create milestone service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := routes.NewRouter(routes.Deps{
		Config:   cfg,
		Logger:   logg,
		Sessions: sessionManager,
		Pingers: map[string]controllers.Pinger{
			"postgres": dbClient,
			"redis":    redisClient,
			"gcs":      gcsClient,
		},
		MetricsRegistry:   registry,
		HTTPMetrics:       metrics.NewHTTPMetrics(registry),
		AuthService:       authService,
		ProjectService:    projectService,
		DocumentService:   documentService,
		TokenService:      tokenService,
		InvitationService: invitationService,
		MembershipService: membershipService,
		MilestoneService:  milestoneService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()

		teardown := server.Shutdown(shutdownCtx)
		teardown = multierr.Append(teardown, gcsClient.Close())
		teardown = multierr.Append(teardown, redisClient.Close())
		teardown = multierr.Append(teardown, dbClient.Close())
		if teardown != nil {
			logg.Error(ctx, "shutdown finished with errors", teardown)
			os.Exit(1)
		}
	}

	logg.Info(ctx, "api server stopped")
}
