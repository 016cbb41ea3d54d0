// Package app собирает сервис из конфигурации: журнал, хранилище,
// генератор коротких кодов, метрики и транспорты.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Totarae/tinyurl/internal/config"
	"github.com/Totarae/tinyurl/internal/database"
	"github.com/Totarae/tinyurl/internal/generator"
	grpcv1 "github.com/Totarae/tinyurl/internal/grpc/v1"
	"github.com/Totarae/tinyurl/internal/handlers"
	"github.com/Totarae/tinyurl/internal/metrics"
	"github.com/Totarae/tinyurl/internal/repositories"
	"github.com/Totarae/tinyurl/internal/router"
	"github.com/Totarae/tinyurl/internal/service"
	"github.com/Totarae/tinyurl/internal/storage"
	"github.com/Totarae/tinyurl/internal/storage/sqlite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
)

// App собранный сервис.
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	Services *service.Services
	closers  []func() error
}

// NewLogger production-логгер zap с заданным уровнем.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

// New открывает хранилище и генератор согласно cfg.
// При ошибке уже открытые ресурсы закрываются.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (_ *App, err error) {
	a := &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.New(),
	}
	defer func() {
		if err != nil {
			_ = a.Close()
		}
	}()

	links, usage, err := a.openStorage(ctx)
	if err != nil {
		return nil, err
	}
	gen, err := a.newGenerator(ctx)
	if err != nil {
		return nil, err
	}

	a.Services = service.New(links, usage, gen, logger, a.Metrics)
	return a, nil
}

func (a *App) openStorage(ctx context.Context) (service.LinkStore, service.UsageStore, error) {
	cfg := a.Config
	switch cfg.Mode {
	case config.ModePostgres:
		if cfg.MigrateOnStart {
			if err := database.MigrateUp(cfg.DatabaseDSN); err != nil {
				return nil, nil, err
			}
			a.Logger.Info("migrations applied")
		}
		db, err := database.NewDB(ctx, cfg.DatabaseDSN, a.Logger)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, func() error {
			db.Close()
			return nil
		})
		return repositories.NewLinkRepository(db), repositories.NewUsageRepository(db), nil

	case config.ModeSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLitePath, a.Logger)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, store.Close)
		return store, store, nil

	default:
		a.Logger.Warn("using in-memory storage, data is lost on restart")
		store := storage.NewMemory()
		return store, store, nil
	}
}

func (a *App) newGenerator(ctx context.Context) (generator.Generator, error) {
	cfg := a.Config
	var gen generator.Generator
	switch cfg.Generator {
	case generator.KindHash:
		gen = generator.NewHash()
	case generator.KindCounter:
		client, err := generator.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		gen = generator.NewCounter(client, cfg.RedisKey)
	case generator.KindTinyURL:
		gen = generator.NewTinyURL(cfg.TinyURLEndpoint, cfg.GeneratorTimeout)
	default:
		return nil, fmt.Errorf("unknown generator %q", cfg.Generator)
	}
	return generator.WithMaxLen(gen, cfg.ShortCodeMaxLen), nil
}

// HTTPHandler маршрутизатор HTTP API.
func (a *App) HTTPHandler() http.Handler {
	h := handlers.NewHandler(a.Services, a.Config.BaseURL, a.Logger)
	return router.NewRouter(h, a.Metrics, a.Logger, router.Options{
		Blacklist:      a.Config.Blacklist,
		RateLimitRPS:   a.Config.RateLimitRPS,
		RateLimitBurst: a.Config.RateLimitBurst,
	})
}

// GRPCServer gRPC-сервер с зарегистрированным tinyurl.v1.Shortener.
func (a *App) GRPCServer() *grpc.Server {
	gs := grpc.NewServer(grpc.UnaryInterceptor(grpcv1.LoggingInterceptor(a.Logger)))
	grpcv1.NewGRPCServer(a.Services, a.Config.BaseURL, a.Logger).Register(gs)
	return gs
}

// Close освобождает ресурсы в обратном порядке открытия.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
