package config

import "time"

type Config struct {
	App           App           `mapstructure:"app"`
	HTTP          HTTP          `mapstructure:"http"`
	Session       Session       `mapstructure:"session"`
	Earnings      Earnings      `mapstructure:"earnings"`
	Queue         Queue         `mapstructure:"queue"`
	Assistant     Assistant     `mapstructure:"assistant"`
	Logging       Logging       `mapstructure:"logging"`
	OpenTelemetry OpenTelemetry `mapstructure:"opentelemetry"`
}

type App struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type HTTP struct {
	Port           int           `mapstructure:"port"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
}

// Session selects the session backend and its eviction policy. Sessions are
// process-lifetime conversation state, never durable data; TTL and capacity
// exist to bound memory, not to persist anything.
type Session struct {
	Backend         string        `mapstructure:"backend"` // memory | redis
	TTL             time.Duration `mapstructure:"ttl"`
	MaxSessions     int           `mapstructure:"max_sessions"` // memory backend only, 0 = unbounded
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	RedisURL        string        `mapstructure:"redis_url"`
}

// Earnings selects where the read-only payout dataset comes from.
type Earnings struct {
	Source      string `mapstructure:"source"` // jsonfile | postgres
	DatasetPath string `mapstructure:"dataset_path"`
	DatabaseURL string `mapstructure:"database_url"`
}

type Queue struct {
	Enabled     bool   `mapstructure:"enabled"`
	Driver      string `mapstructure:"driver"` // nats | rabbitmq
	NATSURL     string `mapstructure:"nats_url"`
	RabbitMQURL string `mapstructure:"rabbitmq_url"`
}

type Assistant struct {
	DefaultDriverID string `mapstructure:"default_driver_id"`
}

type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type OpenTelemetry struct {
	Enabled        bool   `mapstructure:"enabled"`
	JaegerEndpoint string `mapstructure:"jaeger_endpoint"`
}
