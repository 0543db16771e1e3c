package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/2beens/coachstats/internal/coaching/sources"
	"github.com/2beens/coachstats/internal/coaching/stats"
	"github.com/2beens/coachstats/internal/config"
	"github.com/2beens/coachstats/internal/db"
	"github.com/2beens/coachstats/internal/logging"

	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	outPath := flag.String("out", "", "output CSV file path (empty for stdout)")
	timeout := flag.Duration("timeout", 5*time.Minute, "max duration of the export")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	// stdout may carry the CSV itself, so logs go to the file or stderr
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:    cfg.LogsPath,
		LogLevel:       cfg.LogLevel,
		LogFormatJSON:  cfg.LogFormatJSON,
		Environment:    cfg.Environment,
		FallbackOutput: os.Stderr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, cfg, *outPath); err != nil {
		log.Fatalf("leaderboard export: %s", err)
	}
}

func run(ctx context.Context, cfg *config.Config, outPath string) error {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBPassword: os.Getenv("COACHSTATS_DB_PASS"),
	})
	if err != nil {
		return fmt.Errorf("new db pool: %w", err)
	}
	defer dbPool.Close()

	subjectRepo := sources.NewSubjectRepo(dbPool)
	service := stats.NewService(stats.NewServiceParams{
		Activities: sources.NewActivityRepo(dbPool),
		CheckIns:   sources.NewCheckInRepo(dbPool),
		Foods:      sources.NewFoodRepo(dbPool, cfg.FoodCacheSizeBytes()),
		Subjects:   subjectRepo,
	})

	// limit 0: every active subject
	ranked, err := service.Leaderboard(ctx, 0, time.Now())
	if err != nil {
		return fmt.Errorf("compute leaderboard: %w", err)
	}

	subjects, err := subjectRepo.ListActiveSubjects(ctx)
	if err != nil {
		return fmt.Errorf("list subjects: %w", err)
	}
	names := make(map[string]string, len(subjects))
	for _, s := range subjects {
		names[s.ID] = s.Name
	}

	var out io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Errorf("close output file: %s", err)
			}
		}()
		out = f
	}

	if err := writeLeaderboardCSV(out, ranked, names); err != nil {
		return err
	}

	log.Infof("exported %d leaderboard rows", len(ranked))
	return nil
}
