package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/audiovibe/audiovibe/internal/cache"
	"github.com/audiovibe/audiovibe/internal/config"
	"github.com/audiovibe/audiovibe/internal/handler"
	"github.com/audiovibe/audiovibe/internal/repository"
	"github.com/audiovibe/audiovibe/internal/router"
	"github.com/audiovibe/audiovibe/internal/service"
	"github.com/audiovibe/audiovibe/seeds"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}

	recCache, err := buildCache(ctx, cfg)
	if err != nil {
		return err
	}

	svc := service.NewService(store, recCache)
	h := handler.NewHandler(svc)

	log.Printf("[server] listening on %s (storage: %s)", cfg.Addr(), cfg.StorageBackend)
	if err := http.ListenAndServe(cfg.Addr(), router.Setup(h)); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func buildStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	if cfg.StorageBackend == config.BackendMemory {
		log.Println("[server] using in-memory store with seeded catalog")
		return repository.NewMemory(seeds.Catalog()), nil
	}

	pool, err := openPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Println("[server] connected to PostgreSQL")
	return repository.NewPostgres(pool), nil
}

func buildCache(ctx context.Context, cfg *config.Config) (*cache.Cache, error) {
	if cfg.RedisURL == "" {
		log.Println("[server] recommendation cache disabled")
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	recCache := cache.NewCache(redis.NewClient(opts), cfg.CacheTTL)
	if err := recCache.Ping(ctx); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	log.Println("[server] connected to Redis")
	return recCache, nil
}

func openPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.DBPoolSize)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := waitForDB(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		log.Printf("waiting for database... (%d/30)", i+1)
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("database connection timeout after 30s")
}
