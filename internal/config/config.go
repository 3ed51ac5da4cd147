package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	Auth     AuthConfig     `json:"auth"`
	Push     PushConfig     `json:"push"`
	Contacts ContactsConfig `json:"contacts"`
	Zones    ZonesConfig    `json:"zones"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type AuthConfig struct {
	JWTSecret string `json:"-"`
	APIKey    string `json:"-"`
}

// PushConfig points at the external messaging provider. The pipeline
// only knows its call contract: POST {targetToken,title,body,data}.
type PushConfig struct {
	URL      string        `json:"url"`
	Timeout  time.Duration `json:"timeout"`
	Disabled bool          `json:"disabled"`
}

type ContactsConfig struct {
	WebhookURL string `json:"webhook_url"`
	Disabled   bool   `json:"disabled"`
}

// EmptyPolicy controls what the risk engine does when no zone is
// configured: "none" keeps the SAFE posture, "demo" substitutes a
// synthetic zone. "demo" exists for local development only.
type ZonesConfig struct {
	EmptyPolicy string        `json:"empty_policy"`
	CacheTTL    time.Duration `json:"cache_ttl"`
}

func Load() (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "safesignal_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			APIKey:    getEnv("API_KEY", ""),
		},
		Push: PushConfig{
			URL:      getEnv("PUSH_URL", ""),
			Timeout:  getEnvDuration("PUSH_TIMEOUT", 3*time.Second),
			Disabled: getEnvBool("PUSH_DISABLED", false),
		},
		Contacts: ContactsConfig{
			WebhookURL: getEnv("CONTACT_WEBHOOK_URL", ""),
			Disabled:   getEnvBool("CONTACT_WEBHOOK_DISABLED", false),
		},
		Zones: ZonesConfig{
			EmptyPolicy: getEnv("ZONE_EMPTY_POLICY", "none"),
			CacheTTL:    getEnvDuration("ZONE_CACHE_TTL", 30*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.String("zone_empty_policy", cfg.Zones.EmptyPolicy),
		slog.Bool("push_disabled", cfg.Push.Disabled))

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}
	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET required")
	}
	if c.Auth.APIKey == "" {
		return errors.New("API_KEY required")
	}
	switch c.Zones.EmptyPolicy {
	case "none", "demo":
	default:
		return fmt.Errorf("ZONE_EMPTY_POLICY must be none or demo, got %q", c.Zones.EmptyPolicy)
	}
	if !c.Push.Disabled && c.Push.URL == "" {
		return errors.New("PUSH_URL required unless PUSH_DISABLED=true")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
