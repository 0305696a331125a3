// Package config holds the geodserver settings. Defaults can be overridden
// from GEOD_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig
	Ellipsoid EllipsoidConfig
	Polygon   PolygonConfig
	LogLevel  slog.Level
}

type ServerConfig struct {
	Addr         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// EllipsoidConfig defaults to WGS84.
type EllipsoidConfig struct {
	Radius     float64
	Flattening float64
}

type PolygonConfig struct {
	// MaxPoints caps the vertices of one request or live session.
	MaxPoints int
}

// Load returns the default configuration with any GEOD_* environment
// overrides applied.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			Env:          "development",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Ellipsoid: EllipsoidConfig{
			Radius:     6378137,
			Flattening: 1 / 298.257223563,
		},
		Polygon: PolygonConfig{
			MaxPoints: 10000,
		},
		LogLevel: slog.LevelInfo,
	}
	if v := os.Getenv("GEOD_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("GEOD_ENV"); v != "" {
		cfg.Server.Env = v
	}
	var err error
	if cfg.Server.ReadTimeout, err = envDuration("GEOD_READ_TIMEOUT", cfg.Server.ReadTimeout); err != nil {
		return nil, err
	}
	if cfg.Server.WriteTimeout, err = envDuration("GEOD_WRITE_TIMEOUT", cfg.Server.WriteTimeout); err != nil {
		return nil, err
	}
	if cfg.Ellipsoid.Radius, err = envFloat("GEOD_A", cfg.Ellipsoid.Radius); err != nil {
		return nil, err
	}
	if cfg.Ellipsoid.Flattening, err = envFloat("GEOD_F", cfg.Ellipsoid.Flattening); err != nil {
		return nil, err
	}
	if v := os.Getenv("GEOD_MAX_POINTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("config: GEOD_MAX_POINTS %q is not a positive integer", v)
		}
		cfg.Polygon.MaxPoints = n
	}
	if v := os.Getenv("GEOD_LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("config: GEOD_LOG_LEVEL: %w", err)
		}
	}
	return cfg, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	x, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return x, nil
}
