package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/investcalc/calculators/internal/cache"
	"github.com/investcalc/calculators/internal/config"
	"github.com/investcalc/calculators/internal/server"
	"github.com/investcalc/calculators/internal/service"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators as an HTTP JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			c, closeCache, err := newCache(ctx, a.settings.Cache, a.logger)
			if err != nil {
				return err
			}
			defer closeCache()

			svc := service.NewProjectionService(a.engine, c, a.settings.Cache.TTL, a.logger)
			return server.New(svc, a.settings.Server, a.logger).ListenAndServe(ctx)
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().String("cache", config.CacheMemory, "result cache: none, memory or redis")
	cmd.Flags().String("redis-addr", "localhost:6379", "redis address for the redis cache")
	return cmd
}

// newCache builds the configured result cache and a function releasing it.
func newCache(ctx context.Context, cfg config.CacheConfig, logger *zap.Logger) (cache.Cache, func(), error) {
	switch cfg.Backend {
	case config.CacheNone:
		return cache.NopCache{}, func() {}, nil
	case config.CacheRedis:
		rc := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := rc.Ping(ctx); err != nil {
			_ = rc.Close()
			return nil, nil, fmt.Errorf("redis cache at %s: %w", cfg.RedisAddr, err)
		}
		logger.Info("using redis cache", zap.String("addr", cfg.RedisAddr))
		return rc, func() { _ = rc.Close() }, nil
	default:
		return cache.NewMemoryCacheWithSize(cfg.MaxEntries), func() {}, nil
	}
}
