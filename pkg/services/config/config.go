package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	BackendMemory = "memory"
	BackendSqlite = "sqlite"
)

type CacheConfig struct {
	// Backend selects the cache store once at startup: memory | sqlite.
	Backend    string `mapstructure:"backend"`
	DbPath     string `mapstructure:"db_path"`
	TTLSeconds int    `mapstructure:"ttl_seconds"`
}

func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type CalendarConfig struct {
	WeekStart          string  `mapstructure:"week_start"`
	DailyCapacityHours float64 `mapstructure:"daily_capacity_hours"`
}

// WeekStartDay resolves the configured week-start name to a weekday.
func (c CalendarConfig) WeekStartDay() (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(c.WeekStart, d.String()) {
			return d, nil
		}
	}
	return time.Monday, fmt.Errorf("unknown week start day %q", c.WeekStart)
}

// SourcesConfig points at exported upstream record files for offline
// runs. Live API clients are wired in by the surrounding system.
type SourcesConfig struct {
	Entries     string `mapstructure:"entries"`
	Assignments string `mapstructure:"assignments"`
	Projects    string `mapstructure:"projects"`
	Persons     string `mapstructure:"persons"`
}

type Config struct {
	Cache       CacheConfig    `mapstructure:"cache"`
	Calendar    CalendarConfig `mapstructure:"calendar"`
	Sources     SourcesConfig  `mapstructure:"sources"`
	Credentials string         `mapstructure:"credentials"`
}

// Load reads the app config file (optional) with TIME_ATLAS_* env
// overrides and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("cache.backend", BackendMemory)
	v.SetDefault("cache.db_path", "time-atlas-cache.db")
	v.SetDefault("cache.ttl_seconds", 900)
	v.SetDefault("calendar.week_start", time.Monday.String())
	v.SetDefault("calendar.daily_capacity_hours", 8.0)

	v.SetEnvPrefix("TIME_ATLAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	switch config.Cache.Backend {
	case BackendMemory, BackendSqlite:
	default:
		return nil, fmt.Errorf("unknown cache backend %q", config.Cache.Backend)
	}

	return &config, nil
}
