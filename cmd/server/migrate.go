package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/audiovibe/audiovibe/internal/config"
	"github.com/audiovibe/audiovibe/seeds"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate {up|down}",
	Short: "Apply or drop the database schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "up":
			return withPool(cmd.Context(), migrateUp)
		case "down":
			return withPool(cmd.Context(), migrateDown)
		default:
			return fmt.Errorf("unknown migrate direction %q", args[0])
		}
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reseed the catalog with sample audiobooks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPool(cmd.Context(), seeds.Setup)
	},
}

func withPool(ctx context.Context, fn func(context.Context, *pgxpool.Pool) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := openPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(ctx, pool)
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("migrations/create_tables.up.sql")
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	log.Println("migrations applied successfully")
	return nil
}

func migrateDown(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("migrations/create_tables.down.sql")
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	log.Println("migrations dropped successfully")
	return nil
}
