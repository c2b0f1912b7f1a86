package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	"github.com/conductor-ci/conductor/internal/agentclient"
	"github.com/conductor-ci/conductor/internal/agentmanager"
	"github.com/conductor-ci/conductor/internal/api"
	"github.com/conductor-ci/conductor/internal/auth"
	"github.com/conductor-ci/conductor/internal/db"
	"github.com/conductor-ci/conductor/internal/dispatch"
	grpcserver "github.com/conductor-ci/conductor/internal/grpc"
	"github.com/conductor-ci/conductor/internal/logsink"
	"github.com/conductor-ci/conductor/internal/metrics"
	"github.com/conductor-ci/conductor/internal/repositories"
	"github.com/conductor-ci/conductor/internal/websocket"
	"github.com/conductor-ci/conductor/internal/workflow"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type config struct {
	httpAddr  string
	grpcAddr  string
	dbDriver  string
	dbDSN     string
	jwtSecret string
	logLevel  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:   "conductor-server",
		Short: "Conductor server — multi-tenant code-generation job orchestrator",
		Long: `Conductor server dispatches long-running code-generation jobs from
per-organization priority queues to remote execution agents over streaming
gRPC. It exposes a REST API for job and queue management, a gRPC server for
agents, and runs the per-agent dispatch and health-check workflows.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	root.AddCommand(newVersionCmd())

	root.PersistentFlags().StringVar(&cfg.httpAddr, "http-addr", envOrDefault("CONDUCTOR_HTTP_ADDR", ":8080"), "HTTP API listen address")
	root.PersistentFlags().StringVar(&cfg.grpcAddr, "grpc-addr", envOrDefault("CONDUCTOR_GRPC_ADDR", ":9090"), "gRPC server listen address for agents")
	root.PersistentFlags().StringVar(&cfg.dbDriver, "db-driver", envOrDefault("CONDUCTOR_DB_DRIVER", "sqlite"), "Database driver (sqlite or postgres)")
	root.PersistentFlags().StringVar(&cfg.dbDSN, "db-dsn", envOrDefault("CONDUCTOR_DB_DSN", "./conductor.db"), "Database DSN or file path for SQLite")
	root.PersistentFlags().StringVar(&cfg.jwtSecret, "jwt-secret", envOrDefault("CONDUCTOR_JWT_SECRET", ""), "Shared secret for REST bearer tokens (required)")
	root.PersistentFlags().StringVar(&cfg.logLevel, "log-level", envOrDefault("CONDUCTOR_LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("conductor-server %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

func run(ctx context.Context, cfg *config) error {
	logger, err := buildLogger(cfg.logLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.jwtSecret == "" {
		return fmt.Errorf("jwt secret is required — set --jwt-secret or CONDUCTOR_JWT_SECRET")
	}

	logger.Info("starting conductor server",
		zap.String("version", version),
		zap.String("http_addr", cfg.httpAddr),
		zap.String("grpc_addr", cfg.grpcAddr),
		zap.String("db_driver", cfg.dbDriver),
		zap.String("log_level", cfg.logLevel),
	)

	// --- Signal handling ---
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// --- 1. Database ---
	gormDB, err := db.New(db.Config{
		Driver:   cfg.dbDriver,
		DSN:      cfg.dbDSN,
		Logger:   logger,
		LogLevel: gormLogLevel(cfg.logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	defer sqlDB.Close()

	// --- 2. Repositories ---
	agentRepo := repositories.NewAgentRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	apiKeyRepo := repositories.NewAPIKeyRepository(gormDB)
	activityRepo := repositories.NewActivityRepository(gormDB)
	pauseRepo := repositories.NewQueuePauseRepository(gormDB)
	bindingRepo := repositories.NewScheduleBindingRepository(gormDB)

	// --- 3. Auth ---
	jwtManager, err := auth.NewJWTManager(cfg.jwtSecret, "conductor-server")
	if err != nil {
		return fmt.Errorf("failed to initialize JWT manager: %w", err)
	}

	// --- 4. WebSocket hub & stream registry ---
	hub := websocket.NewHub()
	go hub.Run(ctx)

	manager := agentmanager.New(logger)
	metrics.RegisterConnectedAgents(manager.ConnectedCount)

	sink := logsink.New(jobRepo, hub, logger)

	// --- 5. Workflow engine & dispatch components ---
	engine, err := workflow.NewEngine(bindingRepo, logger)
	if err != nil {
		return fmt.Errorf("failed to create workflow engine: %w", err)
	}

	executor := dispatch.NewJobExecutor(jobRepo, agentRepo, activityRepo, manager, agentclient.NewDialer(), sink, logger)
	preprocessor := dispatch.NewPreprocessor(agentRepo, jobRepo, pauseRepo, manager, executor, logger)
	dispatcher := dispatch.NewDispatcher(preprocessor, executor, logger)
	healthChecker := dispatch.NewHealthChecker(agentRepo, manager, engine, hub, logger)

	engine.SetHandlers(dispatcher.Task(), healthChecker.Task())
	if err := engine.Start(ctx); err != nil {
		return fmt.Errorf("failed to start workflow engine: %w", err)
	}
	defer func() {
		if err := engine.Stop(); err != nil {
			logger.Warn("workflow engine shutdown error", zap.Error(err))
		}
	}()

	// --- 6. gRPC server ---
	grpcSrv := grpcserver.New(agentRepo, apiKeyRepo, jobRepo, manager, sink, engine, logger, version)

	go func() {
		if err := grpcSrv.ListenAndServe(ctx, cfg.grpcAddr); err != nil {
			logger.Error("gRPC server error", zap.Error(err))
			cancel()
		}
	}()

	// --- 7. HTTP server ---
	router := api.NewRouter(api.RouterConfig{
		JWTManager:    jwtManager,
		Logger:        logger,
		Jobs:          jobRepo,
		Agents:        agentRepo,
		Activities:    activityRepo,
		APIKeys:       apiKeyRepo,
		Pauses:        pauseRepo,
		Manager:       manager,
		Executor:      executor,
		HealthChecker: healthChecker,
		Engine:        engine,
		Hub:           hub,
	})

	httpSrv := &http.Server{
		Addr:         cfg.httpAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.httpAddr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", zap.Error(err))
			cancel()
		}
	}()

	// --- Wait for shutdown signal ---
	<-ctx.Done()
	logger.Info("shutting down conductor server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http server graceful shutdown error", zap.Error(err))
	}

	logger.Info("conductor server stopped")
	return nil
}

// gormLogLevel maps the application log level string to a GORM logger level.
func gormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "debug":
		return gormlogger.Info
	case "info":
		return gormlogger.Warn
	default:
		return gormlogger.Error
	}
}

func buildLogger(level string) (*zap.Logger, error) {
	var cfg zap.Config

	switch level {
	case "debug":
		cfg = zap.NewDevelopmentConfig()
	default:
		cfg = zap.NewProductionConfig()
	}

	switch level {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	return cfg.Build()
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
