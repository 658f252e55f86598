package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-api/internal/config"
	"github.com/KirkDiggler/pokedex-api/internal/handlers/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/lookup"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/evolution"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/clock"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/idgen"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the Pokedex API gRPC server backed by PokeAPI.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().Int("port", 50051, "gRPC server port")
	serverCmd.Flags().String("pokeapi-url", pokeapi.DefaultBaseURL, "PokeAPI base URL")
	serverCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	_ = viper.BindPFlag("server.port", serverCmd.Flags().Lookup("port"))             // nolint:errcheck
	_ = viper.BindPFlag("pokeapi.base_url", serverCmd.Flags().Lookup("pokeapi-url")) // nolint:errcheck
	_ = viper.BindPFlag("log_level", serverCmd.Flags().Lookup("log-level"))          // nolint:errcheck
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	setupLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	handler, err := buildHandler(cfg)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterPokedexServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting",
			"port", cfg.Server.Port,
			"pokeapi", cfg.PokeAPI.BaseURL,
			"locales", cfg.Locales)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop",
				"timeout", cfg.Server.ShutdownTimeout)
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// buildHandler wires client -> orchestrators -> handler
func buildHandler(cfg *config.Config) (*v1alpha1.Handler, error) {
	client, err := pokeapi.New(&pokeapi.Config{
		BaseURL: cfg.PokeAPI.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pokeapi client: %w", err)
	}

	observer := lookup.LogObserver{}
	clk := clock.New()

	evolutionService, err := evolution.NewOrchestrator(&evolution.Config{
		Client:      client,
		IDGenerator: idgen.NewUUID("walk"),
		Observer:    observer,
		Clock:       clk,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create evolution orchestrator: %w", err)
	}

	pokedexService, err := pokedex.NewOrchestrator(&pokedex.Config{
		Client:      client,
		Evolution:   evolutionService,
		IDGenerator: idgen.NewUUID("entry"),
		Observer:    observer,
		Clock:       clk,
		PageSize:    cfg.PageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pokedex orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		PokedexService:   pokedexService,
		EvolutionService: evolutionService,
		DefaultLocales:   cfg.Locales,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pokedex handler: %w", err)
	}

	return handler, nil
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
