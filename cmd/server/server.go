package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-gamekit/internal/config"
	"github.com/KirkDiggler/rpg-gamekit/internal/handlers/gamekit/v1alpha1"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the gamekit gRPC server with the audio and inventory services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().Int("port", 50051, "gRPC server port")
	serverCmd.Flags().Bool("watch", false, "Reload the sound list when it changes on disk")
	serverCmd.Flags().String("storage", config.DriverMemory, "Save storage driver (memory, redis, sqlite)")
	serverCmd.Flags().String("mixer", config.DriverMemory, "Mixer driver (memory, redis)")
	serverCmd.Flags().String("player", "player-1", "Player whose inventory is served")

	for key, flag := range map[string]string{
		"server.port":    "port",
		"audio.watch":    "watch",
		"storage.driver": "storage",
		"mixer.driver":   "mixer",
		"player.id":      "player",
	} {
		_ = settings.BindPFlag(key, serverCmd.Flags().Lookup(flag))
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(settings, configPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			slog.Error("failed to release resources", "error", err)
		}
	}()
	a.start(ctx)

	if cfg.Audio.Watch {
		go func() {
			if err := a.audio.Watch(ctx); err != nil {
				slog.ErrorContext(ctx, "sound list watcher stopped", "component", "audio", "error", err)
			}
		}()
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv, err := newGRPCServer(a, logger)
	if err != nil {
		return err
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.Server.Port)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		if _, err := a.inventory.SaveInventory(shutdownCtx); err != nil {
			slog.Error("failed to save inventory on shutdown", "component", "inventory", "error", err)
		}
		return nil
	case err := <-errChan:
		return err
	}
}

func newGRPCServer(a *app, logger *slog.Logger) (*grpc.Server, error) {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	audioHandler, err := v1alpha1.NewAudioHandler(&v1alpha1.AudioHandlerConfig{
		AudioService: a.audio,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create audio handler: %w", err)
	}

	inventoryHandler, err := v1alpha1.NewInventoryHandler(&v1alpha1.InventoryHandlerConfig{
		InventoryService: a.inventory,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory handler: %w", err)
	}

	v1alpha1.RegisterAudioServiceServer(srv, audioHandler)
	v1alpha1.RegisterInventoryServiceServer(srv, inventoryHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.AudioServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.InventoryServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv, nil
}

// interceptorLogger adapts slog to the go-grpc-middleware logging interface
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
