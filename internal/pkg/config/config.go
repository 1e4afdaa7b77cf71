package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (timezone, timeout, etc.)
// - optional with empty default: features that are disabled when unset
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Notify    NotifyConfig
	Reconcile ReconcileConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-User-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type NotifyConfig struct {
	// Manager/operator broadcast chat. Empty disables the manager notification branch.
	BroadcastAddress string        `envconfig:"NOTIFY_BROADCAST_ADDRESS"`
	KafkaBrokers     []string      `envconfig:"NOTIFY_KAFKA_BROKERS"`
	KafkaTopic       string        `envconfig:"NOTIFY_KAFKA_TOPIC" default:"notifications.outbound"`
	RedisAddr        string        `envconfig:"NOTIFY_REDIS_ADDR"`
	RedisPassword    string        `envconfig:"NOTIFY_REDIS_PASSWORD"`
	RedisDB          int           `envconfig:"NOTIFY_REDIS_DB" default:"0"`
	DedupTTL         time.Duration `envconfig:"NOTIFY_DEDUP_TTL" default:"10m"`
}

type ReconcileConfig struct {
	Enabled    bool          `envconfig:"RECONCILE_ENABLED" default:"true"`
	Interval   time.Duration `envconfig:"RECONCILE_INTERVAL" default:"1m"`
	StaleAfter time.Duration `envconfig:"RECONCILE_STALE_AFTER" default:"2m"`
	BatchSize  int32         `envconfig:"RECONCILE_BATCH_SIZE" default:"50"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c NotifyConfig) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func (c NotifyConfig) RedisEnabled() bool {
	return c.RedisAddr != ""
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects combinations envconfig tags cannot express.
func (c Config) Validate() error {
	if c.Notify.DedupTTL <= 0 {
		return fmt.Errorf("NOTIFY_DEDUP_TTL must be positive, got %s", c.Notify.DedupTTL)
	}
	if c.Notify.KafkaEnabled() && c.Notify.KafkaTopic == "" {
		return fmt.Errorf("NOTIFY_KAFKA_TOPIC is required when NOTIFY_KAFKA_BROKERS is set")
	}
	if c.Reconcile.Enabled {
		if c.Reconcile.Interval <= 0 {
			return fmt.Errorf("RECONCILE_INTERVAL must be positive, got %s", c.Reconcile.Interval)
		}
		if c.Reconcile.BatchSize <= 0 {
			return fmt.Errorf("RECONCILE_BATCH_SIZE must be positive, got %d", c.Reconcile.BatchSize)
		}
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Notify: NotifyConfig{
			KafkaTopic: "notifications.outbound",
			DedupTTL:   time.Minute,
		},
		Reconcile: ReconcileConfig{
			Enabled:    false,
			Interval:   time.Minute,
			StaleAfter: 2 * time.Minute,
			BatchSize:  50,
		},
	}
}
