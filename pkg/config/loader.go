package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/app/configs")

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Allow common env vars without APP_ prefix for Docker/VM deploys
	viper.BindEnv("http.port", "HTTP_PORT", "APP_HTTP_PORT")
	viper.BindEnv("session.redis_url", "REDIS_URL", "APP_SESSION_REDIS_URL")
	viper.BindEnv("earnings.database_url", "DATABASE_URL", "APP_EARNINGS_DATABASE_URL")
	viper.BindEnv("queue.nats_url", "NATS_URL", "APP_QUEUE_NATS_URL")
	viper.BindEnv("queue.rabbitmq_url", "RABBITMQ_URL", "APP_QUEUE_RABBITMQ_URL")
	viper.BindEnv("app.environment", "APP_ENVIRONMENT")
	viper.BindEnv("logging.level", "LOG_LEVEL")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file: defaults plus env vars are enough for the demo.
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("app.name", "saarthi")
	viper.SetDefault("app.version", "v1.0.0")
	viper.SetDefault("app.environment", "development")

	viper.SetDefault("http.port", 8080)

	viper.SetDefault("session.backend", "memory")
	viper.SetDefault("session.ttl", 30*time.Minute)
	viper.SetDefault("session.max_sessions", 10000)
	viper.SetDefault("session.cleanup_interval", time.Minute)

	viper.SetDefault("earnings.source", "jsonfile")
	viper.SetDefault("earnings.dataset_path", "./data/earnings.json")

	viper.SetDefault("queue.enabled", false)
	viper.SetDefault("queue.driver", "nats")
	viper.SetDefault("queue.nats_url", "nats://localhost:4222")

	viper.SetDefault("assistant.default_driver_id", "driver-demo-001")

	viper.SetDefault("logging.level", "info")

	viper.SetDefault("opentelemetry.enabled", false)
	viper.SetDefault("opentelemetry.jaeger_endpoint", "http://localhost:14268/api/traces")
}
