package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/de-tools/time-atlas/pkg/cache"
	cachememory "github.com/de-tools/time-atlas/pkg/cache/memory"
	cachesqlite "github.com/de-tools/time-atlas/pkg/cache/sqlite"
	"github.com/de-tools/time-atlas/pkg/runtime/terminal"
	"github.com/de-tools/time-atlas/pkg/services/config"
	"github.com/de-tools/time-atlas/pkg/services/daterange"
	"github.com/de-tools/time-atlas/pkg/services/report"
	"github.com/de-tools/time-atlas/pkg/store/file"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load(os.Getenv("TIME_ATLAS_CONFIG"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := newCacheStore(cfg.Cache)
	if err != nil {
		return fmt.Errorf("failed to create cache store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close cache store")
		}
	}()

	weekStart, err := cfg.Calendar.WeekStartDay()
	if err != nil {
		return err
	}

	providers := file.NewProvider(file.Settings{
		EntriesPath:     cfg.Sources.Entries,
		AssignmentsPath: cfg.Sources.Assignments,
		ProjectsPath:    cfg.Sources.Projects,
		PersonsPath:     cfg.Sources.Persons,
	})

	ctrl := report.NewController(report.Providers{
		TimeEntries: providers,
		Assignments: providers,
		Projects:    providers,
		Persons:     providers,
	}, store, report.Settings{
		DailyCapacityHours: cfg.Calendar.DailyCapacityHours,
	})

	var registry config.Registry
	if cfg.Credentials != "" {
		registry, err = config.NewRegistry(cfg.Credentials)
		if err != nil {
			return fmt.Errorf("failed to read credentials file: %w", err)
		}
	}

	cli := terminal.NewCLI(terminal.Options{
		Controller: ctrl,
		Navigator:  daterange.NewNavigator(weekStart),
		Registry:   registry,
		Output:     os.Stdout,
	})

	return cli.Execute()
}

func newCacheStore(cfg config.CacheConfig) (*cache.Store, error) {
	ttl := cfg.TTL()
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	switch cfg.Backend {
	case config.BackendSqlite:
		db, err := cachesqlite.NewDB(cachesqlite.Settings{DbPath: cfg.DbPath})
		if err != nil {
			return nil, err
		}
		backend, err := cachesqlite.NewBackend(db)
		if err != nil {
			return nil, err
		}
		return cache.NewStore(backend, ttl), nil
	default:
		return cache.NewStore(cachememory.NewBackend(), ttl), nil
	}
}
