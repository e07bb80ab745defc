package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sharemyshows-live/auth"
	"sharemyshows-live/infrastructure/api"
	grpcserver "sharemyshows-live/infrastructure/grpc/server"
	"sharemyshows-live/infrastructure/ws"
	"sharemyshows-live/internal"
	"sharemyshows-live/moderation"
	"sharemyshows-live/observability"
	"sharemyshows-live/repositories"
	"sharemyshows-live/runtime"
	"sharemyshows-live/runtime/workers"
	"sharemyshows-live/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"google.golang.org/grpc"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run owns every resource so that deferred cleanups run before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	censoredChar, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return err
	}

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	users := repositories.NewUserRepository(db)
	shows := repositories.NewShowRepository(db)
	checkins := repositories.NewCheckinRepository(db)
	friends := repositories.NewFriendshipRepository(db)
	chat := repositories.NewMessageRepository(db, log)

	// 3. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	// 4. Presence engine
	moderator, err := moderation.NewDefaultModerator(log, censoredChar)
	if err != nil {
		return fmt.Errorf("moderation setup failed: %w", err)
	}
	engine := runtime.NewEngine(log, runtime.NewPresenceRegistry(),
		runtime.Stores{Users: users, Checkins: checkins, Shows: shows, Friends: friends, Chat: chat},
		auth.NewVerifier(config.JWTSecret),
		services.NewSiblingResolver(log, shows),
		services.NewVisibilityFilter(friends),
		moderator,
		moderation.LanguageDetector{},
		metrics,
		runtime.Config{
			BufferSize:   config.CommandBufferSize,
			StoreTimeout: config.StoreTimeout,
			HistoryLimit: config.ChatHistoryLimit,
		},
	)

	// 5. Supervision & Orchestration
	healthServer := grpcserver.NewHealthServer(log)
	probe := func(ctx context.Context) error {
		_, err := engine.Snapshot(ctx)
		return err
	}
	supervisor := workers.NewSupervisor(log, config.RestartInterval).
		OnRestart(func(worker string) { metrics.WorkerRestarts.WithLabelValues(worker).Inc() })
	orchestrator := runtime.NewOrchestrator(log, supervisor, engine,
		workers.NewHealthMonitoringWorker(log, metrics, probe, healthServer, config.MetricInterval),
		workers.NewChannelCapacityWorker(log, metrics,
			[]workers.NamedChannel{{Name: "presence_inbox", Channel: engine.Inbox()}}, config.MetricInterval),
	)

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go orchestrator.Start(ctx)

	// 7. HTTP server (websocket, health, metrics)
	handler := ws.NewHandler(log, engine, ws.NewCodec(config.MaxMessageLength), ws.ConnConfig{
		BufferSize:   config.ConnectionBufferSize,
		PingInterval: config.PingInterval,
		WriteWait:    config.WriteWait,
		MaxFrameSize: config.MaxFrameSize,
	}, config.Origins())
	httpServer := &http.Server{
		Addr: fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler: api.NewRouter(log, handler, engine, registry, api.Config{
			CORSOrigins:      config.Origins(),
			ConnectRateLimit: config.ConnectRateLimit,
			HealthTimeout:    config.MetricInterval,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 8. gRPC health server
	address := fmt.Sprintf("%s:%d", config.Host, config.GrpcHealthPort)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	grpcServer := grpc.NewServer()
	healthServer.Register(grpcServer)

	errChan := make(chan error, 2)
	go func() {
		log.Info("Starting HTTP server", "address", httpServer.Addr, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()
	go func() {
		log.Info("Starting gRPC health server", "address", address)
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 9. Wait for Stop or Error
	var runErr error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case runErr = <-errChan:
	}

	// 10. Final Cleanup
	healthServer.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP server shutdown incomplete", "error", err)
	}
	grpcServer.GracefulStop()
	orchestrator.Stop()
	log.Info("Program stopped cleanly")

	return runErr
}
