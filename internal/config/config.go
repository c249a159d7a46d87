package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Bistro"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Storage struct {
		Driver     string `envconfig:"STORAGE_DRIVER" default:"sqlite"`
		SQLitePath string `envconfig:"SQLITE_PATH" default:"bistro.db"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"bistro"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"CORS_ORIGINS" default:"*"`
	}

	Security struct {
		AccessPIN  string        `envconfig:"ACCESS_PIN" default:"2929"`
		ConfirmPIN string        `envconfig:"CONFIRM_PIN" default:"29173456"`
		JWTSecret  string        `envconfig:"JWT_SECRET"`
		TokenTTL   time.Duration `envconfig:"TOKEN_TTL" default:"12h"`
	}

	Settings struct {
		SickAllowance int `envconfig:"DEFAULT_SICK_ALLOWANCE" default:"30"`
	}

	Export struct {
		Dir string `envconfig:"EXPORT_DIR" default:"exports"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	switch cfg.Storage.Driver {
	case DriverPostgres, DriverSQLite, DriverMemory:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	return &cfg, nil
}
