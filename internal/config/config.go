// Package config loads server settings from defaults, an optional YAML file,
// BORUTO_ environment variables and command-line flags via viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Danik911/Boruto-server/internal/models"
	"github.com/spf13/viper"
)

const (
	DefaultAddress         = ":8080"
	DefaultShutdownTimeout = 10 * time.Second
	// DefaultCacheControl marks responses as cacheable for a year.
	DefaultCacheControl = "public, max-age=31536000, immutable"
	EnvPrefix           = "BORUTO"
	ConfigName          = "boruto-server"
)

type Config struct {
	Server  ServerConfig
	Heroes  HeroesConfig
	Logging LoggingConfig
	Metrics MetricsConfig
}

type ServerConfig struct {
	Address         string
	ShutdownTimeout time.Duration
	CacheControl    string
	ImagesDir       string
}

type HeroesConfig struct {
	PaginationMode models.PaginationMode
	DefaultLimit   int
}

type LoggingConfig struct {
	Level  string
	Pretty bool
}

type MetricsConfig struct {
	Enabled bool
}

func SetViperDefaults(v *viper.Viper) {
	v.SetDefault("server.address", DefaultAddress)
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)
	v.SetDefault("server.cache_control", DefaultCacheControl)
	v.SetDefault("server.images_dir", "")

	v.SetDefault("heroes.pagination_mode", string(models.PaginationFixed))
	v.SetDefault("heroes.default_limit", models.DefaultLimit)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.pretty", false)

	v.SetDefault("metrics.enabled", true)
}

func Default() Config {
	v := viper.New()
	SetViperDefaults(v)
	cfg, err := Load(v)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load builds a Config from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Address:         v.GetString("server.address"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
			CacheControl:    v.GetString("server.cache_control"),
			ImagesDir:       v.GetString("server.images_dir"),
		},
		Heroes: HeroesConfig{
			PaginationMode: models.PaginationMode(v.GetString("heroes.pagination_mode")),
			DefaultLimit:   v.GetInt("heroes.default_limit"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Pretty: v.GetBool("logging.pretty"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("metrics.enabled"),
		},
	}

	switch cfg.Heroes.PaginationMode {
	case models.PaginationFixed, models.PaginationLimit:
	default:
		return Config{}, fmt.Errorf("invalid heroes.pagination_mode %q: use %q or %q",
			cfg.Heroes.PaginationMode, models.PaginationFixed, models.PaginationLimit)
	}
	if cfg.Heroes.DefaultLimit < 1 {
		return Config{}, fmt.Errorf("invalid heroes.default_limit %d: must be positive", cfg.Heroes.DefaultLimit)
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("invalid server.shutdown_timeout %s: must be positive", cfg.Server.ShutdownTimeout)
	}
	return cfg, nil
}

// EnvKeyReplacer maps nested keys to variable names, so server.address is
// read from BORUTO_SERVER_ADDRESS.
var EnvKeyReplacer = strings.NewReplacer(".", "_")
