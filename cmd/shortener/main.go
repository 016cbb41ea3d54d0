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

	"github.com/Totarae/tinyurl/internal/app"
	"github.com/Totarae/tinyurl/internal/config"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:])
	stop()
	if err != nil {
		logger, _ := zap.NewProduction()
		logger.Fatal("Ошибка при запуске сервера", zap.Error(err))
	}
}

// run запускает HTTP и (если задан адрес) gRPC сервер до отмены ctx.
func run(ctx context.Context, args []string) error {
	cfg, err := config.NewConfig(args)
	if err != nil {
		return err
	}

	logger, err := app.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting shortener", cfg.LogFields()...)

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("close resources", zap.Error(err))
		}
	}()

	httpLis, err := net.Listen("tcp", cfg.ServerAddress)
	if err != nil {
		return fmt.Errorf("listen http: %w", err)
	}
	srv := &http.Server{
		Handler:           a.HTTPHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 2)

	var gs *grpc.Server
	if cfg.GRPCAddress != "" {
		grpcLis, err := net.Listen("tcp", cfg.GRPCAddress)
		if err != nil {
			_ = httpLis.Close()
			return fmt.Errorf("listen grpc: %w", err)
		}
		gs = a.GRPCServer()
		go func() {
			logger.Info("gRPC server started", zap.String("address", grpcLis.Addr().String()))
			if err := gs.Serve(grpcLis); err != nil {
				errCh <- fmt.Errorf("grpc server: %w", err)
			}
		}()
	}

	go func() {
		logger.Info("Сервер запущен", zap.String("address", httpLis.Addr().String()))
		if err := srv.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case runErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("http shutdown: %w", err))
	}
	if gs != nil {
		gs.GracefulStop()
	}
	return runErr
}
