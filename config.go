package main

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"flightroute/navroute"
)

// defaultConfigPath is read when present; an explicit --config must exist.
const defaultConfigPath = "flightroute.toml"

// Config is the service configuration. Values come from the TOML file,
// then the environment (optionally seeded from .env), then command-line
// flags, each layer overriding the one before.
type Config struct {
	Search  SearchConfig  `toml:"search"`
	Catalog CatalogConfig `toml:"catalog"`
	Server  ServerConfig  `toml:"server"`
	Log     LogConfig     `toml:"log"`
}

// SearchConfig holds the default route search parameters, in NM.
type SearchConfig struct {
	MaxDistance float64 `toml:"max_distance"`
	MinDistance float64 `toml:"min_distance"`
	TurnPenalty float64 `toml:"turn_penalty"`
}

// CatalogConfig names where navigation points are loaded from. DatabaseURL
// takes precedence over File when both are set.
type CatalogConfig struct {
	File        string `toml:"file"`
	DatabaseURL string `toml:"database_url"`
	Table       string `toml:"table"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // rotated log file; empty logs to stderr
}

func defaultConfig() Config {
	o := navroute.DefaultOptions()
	return Config{
		Search: SearchConfig{
			MaxDistance: o.MaxDistance,
			MinDistance: o.MinDistance,
			TurnPenalty: o.TurnPenalty,
		},
		Catalog: CatalogConfig{Table: "nav_points"},
		Server:  ServerConfig{Addr: ":8080"},
		Log:     LogConfig{Level: "info"},
	}
}

// loadConfig builds a Config from defaults, the TOML file at path and the
// environment.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load config %q: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	cfg.Catalog.File = getEnv("FLIGHTROUTE_CATALOG", cfg.Catalog.File)
	cfg.Catalog.DatabaseURL = getEnv("DATABASE_URL", cfg.Catalog.DatabaseURL)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.File = getEnv("LOG_FILE", cfg.Log.File)
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Addr = ":" + port
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{"FLIGHTROUTE_MAX_DISTANCE", &cfg.Search.MaxDistance},
		{"FLIGHTROUTE_MIN_DISTANCE", &cfg.Search.MinDistance},
		{"FLIGHTROUTE_TURN_PENALTY", &cfg.Search.TurnPenalty},
	}
	for _, f := range floats {
		v := os.Getenv(f.key)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = parsed
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// validate reports every problem with cfg at once.
func (c Config) validate() error {
	var errs []error

	for _, p := range []struct {
		name string
		v    float64
	}{
		{"search.max_distance", c.Search.MaxDistance},
		{"search.min_distance", c.Search.MinDistance},
		{"search.turn_penalty", c.Search.TurnPenalty},
	} {
		if math.IsNaN(p.v) || math.IsInf(p.v, 0) || p.v < 0 {
			errs = append(errs, fmt.Errorf("%s must be a non-negative number, got %v", p.name, p.v))
		}
	}

	if c.Catalog.File == "" && c.Catalog.DatabaseURL == "" {
		errs = append(errs, errors.New("no catalog configured: set catalog.file or catalog.database_url"))
	}

	return errors.Join(errs...)
}

// searchOptions converts the search section into router options.
func (c Config) searchOptions() navroute.Options {
	return navroute.Options{
		MaxDistance: c.Search.MaxDistance,
		MinDistance: c.Search.MinDistance,
		TurnPenalty: c.Search.TurnPenalty,
	}
}
