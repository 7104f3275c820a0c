package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/refashion/marketplace"
)

func main() {
	cfg, err := marketplace.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.GetDSN())
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())

	ctx := context.Background()
	if err := marketplace.CreateSchema(ctx, db); err != nil {
		log.Fatalf("create schema: %v", err)
	}

	repo := marketplace.NewRepositoryManager(db)
	if err := repo.Validate(); err != nil {
		log.Fatalf("repositories: %v", err)
	}

	if err := marketplace.SeedCategories(ctx, repo); err != nil {
		log.Fatalf("seed categories: %v", err)
	}

	provider := marketplace.NewUserProvider(repo.Users())
	auther := marketplace.NewAuthenticator(provider, repo, cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: marketplace.NewErrorHandler(nil, cfg.Debug),
	})
	app.Use(logger.New())

	marketplace.RegisterRoutes(app, repo, auther, cfg)

	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
