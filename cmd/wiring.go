package cmd

import (
	"context"
	"fmt"
	"time"

	"debt-planner/config"
	httpLayer "debt-planner/http"
	"debt-planner/repository"
	"debt-planner/service"

	"go.uber.org/zap"
)

// app holds the wired service and everything that must be closed with it.
type app struct {
	service *service.PlannerService
	terms   *service.TermRecommendationService
	health  map[string]httpLayer.Pinger
	closers []func() error
}

func (a *app) Close(logger *zap.SugaredLogger) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logger.Warnw("failed to close dependency", "error", err)
		}
	}
}

func newApp(ctx context.Context, cfg config.Config, logger *zap.SugaredLogger) (*app, error) {
	a := &app{health: map[string]httpLayer.Pinger{}}

	var cache repository.CacheRepository
	switch cfg.Cache.Backend {
	case "redis":
		redisCache := repository.NewRedisCache(repository.RedisOptions{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := redisCache.Ping(pingCtx)
		cancel()
		if err != nil {
			logger.Warnw("redis unreachable, comparisons will not be cached until it recovers",
				"addr", cfg.Cache.RedisAddr, "error", err)
		}
		cache = redisCache
		a.health["cache"] = redisCache
		a.closers = append(a.closers, redisCache.Close)
	default:
		cache = repository.NewMemoryCache()
	}

	var plans repository.PlanRepository
	switch cfg.Store.Driver {
	case repository.DriverPostgres, repository.DriverSQLite:
		store, err := repository.OpenSQLPlanRepository(cfg.Store.Driver, cfg.Store.DSN)
		if err != nil {
			a.Close(logger)
			return nil, fmt.Errorf("opening plan store: %w", err)
		}
		plans = store
		a.health["store"] = store
		a.closers = append(a.closers, store.Close)
	default:
		plans = repository.NewPlanRepositoryMemory()
	}

	logger.Debugw("wired dependencies", "cache", cfg.Cache.Backend, "store", cfg.Store.Driver)

	a.service = service.NewPlannerService(plans, cache, logger,
		service.WithCacheTTL(cfg.Cache.TTL.Duration),
	)
	a.terms = service.NewTermRecommendationService(a.service, logger)
	return a, nil
}
