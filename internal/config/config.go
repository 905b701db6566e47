package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Log      LogConfig      `envPrefix:"LOG_"`
	Postgres PostgresConfig
	Auth     AuthConfig `envPrefix:"JWT_"`
	CORS     CORSConfig `envPrefix:"CORS_"`

	GinMode        string `env:"GIN_MODE" envDefault:"release"`
	MigrateOnStart bool   `env:"MIGRATE_ON_START" envDefault:"true"`
}

type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8080"`
}

type LogConfig struct {
	Level       string `env:"LEVEL" envDefault:"info"`
	Development bool   `env:"DEVELOPMENT" envDefault:"false"`
}

// PostgresConfig 는 DATABASE_URL 이 있으면 그것을, 없으면 PG* 변수로 DSN 을 만든다.
type PostgresConfig struct {
	DatabaseURL string `env:"DATABASE_URL"`
	Host        string `env:"PGHOST" envDefault:"localhost"`
	Port        string `env:"PGPORT" envDefault:"5432"`
	User        string `env:"PGUSER"`
	Password    string `env:"PGPASSWORD"`
	Database    string `env:"PGDATABASE"`
	SSLMode     string `env:"PGSSLMODE" envDefault:"disable"`
}

type AuthConfig struct {
	Secret    string        `env:"SECRET"`
	AccessTTL time.Duration `env:"ACCESS_TTL" envDefault:"15m"`
}

// CORSConfig - 허용 Origin 이 비어 있으면 CORS 헤더를 붙이지 않는다.
type CORSConfig struct {
	AllowedOrigins   []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	AllowCredentials bool     `env:"ALLOW_CREDENTIALS" envDefault:"false"`
}

// Load 는 .env 파일(있으면)을 먼저 읽고 환경변수를 Config 로 파싱한다.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return Parse()
}

// Parse 는 현재 프로세스 환경변수만으로 Config 를 만든다.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Auth.Secret == "" {
		return Config{}, fmt.Errorf("missing required env: JWT_SECRET")
	}
	if cfg.Auth.AccessTTL < 0 {
		return Config{}, fmt.Errorf("invalid JWT_ACCESS_TTL: %s", cfg.Auth.AccessTTL)
	}
	return cfg, nil
}

func (c ServerConfig) Addr() string {
	return ":" + c.Port
}
