// Package main runs the coachstats MCP server over stdio (for local editor / agent use).
// The same MCP server is also mounted on the main backend at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/2beens/coachstats/internal/coaching/mcp"
	"github.com/2beens/coachstats/internal/coaching/sources"
	"github.com/2beens/coachstats/internal/coaching/stats"
	"github.com/2beens/coachstats/internal/config"
	"github.com/2beens/coachstats/internal/db"
	"github.com/2beens/coachstats/internal/logging"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout is the MCP transport
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	log.SetLevel(logging.GetLevel(cfg.LogLevel))

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBPassword:     os.Getenv("COACHSTATS_DB_PASS"),
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	statsService := stats.NewService(stats.NewServiceParams{
		Activities: sources.NewActivityRepo(dbPool),
		CheckIns:   sources.NewCheckInRepo(dbPool),
		Foods:      sources.NewFoodRepo(dbPool, cfg.FoodCacheSizeBytes()),
		Subjects:   sources.NewSubjectRepo(dbPool),
	})
	server := mcp.NewServer(
		mcp.NewContextService(mcp.NewPoolSchemaRepo(dbPool), statsService, time.Now),
	)

	if err := server.Run(ctx, &sdkmcp.StdioTransport{}); err != nil {
		log.Error(err)
	}
}
