// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const minSecretLength = 32

type Config struct {
	Env      string `env:"APP_ENV" env-default:"development"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	HTTP     HTTPConfig
	Postgres PostgresConfig
	JWT      JWTConfig
	Password PasswordConfig
	OpenAI   OpenAIConfig
}

type HTTPConfig struct {
	Addr            string        `env:"HTTP_ADDR" env-default:"0.0.0.0:8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"90s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"30s"`
	SwaggerHost     string        `env:"SWAGGER_HOST"`
}

type PostgresConfig struct {
	Host            string        `env:"POSTGRES_HOST" env-default:"localhost"`
	Port            string        `env:"POSTGRES_PORT" env-default:"5432"`
	User            string        `env:"POSTGRES_USER" env-required:"true"`
	Password        string        `env:"POSTGRES_PASSWORD"`
	DB              string        `env:"POSTGRES_DB" env-required:"true"`
	SSLMode         string        `env:"POSTGRES_SSLMODE" env-default:"disable"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" env-default:"10"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"5m"`
	AutoMigrate     bool          `env:"AUTO_MIGRATE" env-default:"false"`
}

type JWTConfig struct {
	Secret    string        `env:"JWT_SECRET" env-required:"true"`
	Algorithm string        `env:"JWT_ALGORITHM" env-default:"HS256"`
	TTL       time.Duration `env:"JWT_TTL" env-default:"30m"`
}

type PasswordConfig struct {
	HashCost int `env:"PASSWORD_HASH_COST" env-default:"10"`
}

type OpenAIConfig struct {
	APIKey            string        `env:"OPENAI_API_KEY" env-required:"true"`
	BaseURL           string        `env:"OPENAI_BASE_URL"`
	Model             string        `env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`
	GenerationTimeout time.Duration `env:"GENERATION_TIMEOUT" env-default:"60s"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// a missing .env file is normal outside local development
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadPostgres reads only the database settings, for tools that never serve HTTP.
func LoadPostgres() (*PostgresConfig, error) {
	_ = godotenv.Load()

	var cfg PostgresConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read database configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if len(c.JWT.Secret) < minSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes", minSecretLength)
	}

	switch c.JWT.Algorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("JWT_ALGORITHM %q is not supported", c.JWT.Algorithm)
	}

	if c.JWT.TTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN builds a lib/pq connection URL.
func (p PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     net.JoinHostPort(p.Host, p.Port),
		Path:     "/" + p.DB,
		RawQuery: url.Values{"sslmode": []string{p.SSLMode}}.Encode(),
	}
	return u.String()
}
