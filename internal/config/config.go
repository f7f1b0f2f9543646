// Package config loads the process configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/salestracker/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StorageRedis  = "redis"
	StorageBadger = "badger"
)

// Config is the whole process configuration.
type Config struct {
	// IndexerURL is the transactions endpoint the collection address is
	// appended to.
	IndexerURL    string `envconfig:"ORAI_RPC" required:"true" validate:"required,url"`
	BotToken      string `envconfig:"BOT_TOKEN" required:"true" validate:"required"`
	ToolVersion   string `envconfig:"TOOL_VERSION" required:"true" validate:"required"`
	DiscordAPIURL string `envconfig:"DISCORD_API_URL" default:"https://discord.com/api/v10" validate:"required,url"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"redis" validate:"oneof=redis badger"`
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379" validate:"required_if=StorageDriver redis"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`
	BadgerPath    string `envconfig:"BADGER_PATH" default:"data/salestracker" validate:"required_if=StorageDriver badger"`

	StoreConnectAttempts uint `envconfig:"STORE_CONNECT_ATTEMPTS" default:"5" validate:"gte=1"`

	PageSize              int           `envconfig:"PAGE_SIZE" default:"100" validate:"gte=1"`
	MaxPages              int           `envconfig:"MAX_PAGES" default:"50" validate:"gte=1"`
	Concurrency           int           `envconfig:"CONCURRENCY" default:"1" validate:"gte=1"`
	DispatchInterval      time.Duration `envconfig:"DISPATCH_INTERVAL" default:"1s"`
	MissingMetadataPolicy string        `envconfig:"MISSING_METADATA_POLICY" default:"abort" validate:"oneof=abort skip"`

	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	HTTPRetryMax int           `envconfig:"HTTP_RETRY_MAX" default:"0" validate:"gte=0"`

	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"salestracker" validate:"required"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
