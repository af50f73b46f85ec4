// Package config loads service configuration from the environment.
//
// Variables are prefixed AFTERSCHOOL_ and nested with underscores, e.g.
// AFTERSCHOOL_SERVER_PORT or AFTERSCHOOL_MONGO_URI. A .env file, when
// present, is loaded before the environment is read.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "AFTERSCHOOL_"

// Config is the root configuration for the service.
type Config struct {
	Server ServerConfig `koanf:"server"`
	Mongo  MongoConfig  `koanf:"mongo"`
	Images ImagesConfig `koanf:"images"`
	Log    LogConfig    `koanf:"log"`
}

// ServerConfig groups HTTP server settings.
type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"readtimeout" validate:"min=1s"`
	WriteTimeout time.Duration `koanf:"writetimeout" validate:"min=1s"`
	IdleTimeout  time.Duration `koanf:"idletimeout" validate:"min=1s"`
	// CORSOrigins lists allowed origins; "*" permits any caller, which is
	// the storefront's default since the frontend is hosted elsewhere.
	CORSOrigins []string `koanf:"corsorigins" validate:"required,min=1"`
}

// MongoConfig holds document store connection parameters.
type MongoConfig struct {
	URI      string `koanf:"uri" validate:"required"`
	Database string `koanf:"database" validate:"required"`
}

// ImagesConfig locates the static lesson images on disk.
type ImagesConfig struct {
	Dir string `koanf:"dir" validate:"required"`
}

// LogConfig controls structured logging output.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// defaults mirror the original deployment: port 3000, local MongoDB, the
// afterschool database, images served from ./images.
func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "3000",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
			CORSOrigins:  []string{"*"},
		},
		Mongo: MongoConfig{
			URI:      "mongodb://localhost:27017",
			Database: "afterschool",
		},
		Images: ImagesConfig{Dir: "images"},
		Log:    LogConfig{Level: "info", Format: "json"},
	}
}

// Load reads the environment on top of the defaults and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
