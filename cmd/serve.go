package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"finance-calculator/config"
	httpLayer "finance-calculator/http"
	"finance-calculator/logging"
	"finance-calculator/metrics"
	"finance-calculator/repository"
	"finance-calculator/service"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(cfg.Logging, os.Stdout)
	slog.SetDefault(logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	calcRepo := repository.NewCalculationRepositoryMemory(cfg.History.Capacity)

	var cache repository.CacheRepository
	var pinger httpLayer.Pinger
	if cfg.Cache.Enabled {
		redisCache := repository.NewRedisCache(repository.RedisOptions{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
			TTL:      cfg.Cache.TTL,
		})
		defer redisCache.Close()
		cache, pinger = redisCache, redisCache
		logger.Info("using redis result cache", slog.String("addr", cfg.Cache.Addr))
	} else {
		cache = repository.NewMockCache()
		logger.Info("redis cache disabled, using in-memory cache")
	}

	financeService := service.NewFinanceService(calcRepo, cache, logger, m, service.Options{
		Precision: cfg.Calc.Precision,
	})

	var rateLimiter *httpLayer.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)
		defer rateLimiter.Stop()
	}

	router := httpLayer.NewRouter(httpLayer.RouterConfig{
		Service:     financeService,
		Logger:      logger,
		Metrics:     m,
		Gatherer:    reg,
		RateLimiter: rateLimiter,
		Cache:       pinger,
		TrustProxy:  cfg.Server.TrustProxy,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("API listening", slog.String("addr", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		logger.Error("error starting server", slog.String("error", err.Error()))
		return err
	case <-quit:
		logger.Info("shutting down server")
	case <-ctx.Done():
		logger.Info("context cancelled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", slog.String("error", err.Error()))
		return err
	}

	logger.Info("server exited")
	return nil
}
