// Package main runs the coach MCP server over stdio (for local Cursor use).
// The same MCP server is also mounted on the main backend at /mcp over HTTP,
// so you can use either: stdio (this cmd) or the backend URL (no extra deploy).
package main

import (
	"context"
	"flag"
	"log"

	"github.com/coachbit/backend/internal/catalog"
	"github.com/coachbit/backend/internal/config"
	"github.com/coachbit/backend/internal/db"
	coachmcp "github.com/coachbit/backend/internal/mcp"
	"github.com/coachbit/backend/internal/nutrition"
	"github.com/coachbit/backend/internal/workout"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	catalogService := catalog.NewService(catalog.NewRepo(dbPool), nil)
	workoutRepo := workout.NewRepo(dbPool)
	nutritionRepo := nutrition.NewRepo(dbPool)

	server := coachmcp.NewServer(coachmcp.NewCoachService(
		coachmcp.NewPoolSchemaRepo(dbPool),
		workoutRepo,
		workout.NewService(workoutRepo, catalogService),
		nutritionRepo,
		nutrition.NewService(nutritionRepo, catalogService),
		catalogService,
	))

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
