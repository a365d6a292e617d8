package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port         string        `env:"CONSOLE_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"CONSOLE_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"CONSOLE_WRITE_TIMEOUT" envDefault:"30s"`
	StaticDir    string        `env:"CONSOLE_STATIC_DIR" envDefault:"./static"`
}

// BackendConfig describes the remote REST API the console is a front for.
type BackendConfig struct {
	URL     string        `env:"CONSOLE_API_URL" envDefault:"https://systemosbackend.onrender.com"`
	Timeout time.Duration `env:"CONSOLE_API_TIMEOUT" envDefault:"20s"`
}

type RedisConfig struct {
	Address  string `env:"REDIS_ADDRESS"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type ListingConfig struct {
	// PageSize is the number of rows per list page and the fallback total
	// when the backend does not send x-total-count.
	PageSize    int           `env:"CONSOLE_PAGE_SIZE" envDefault:"5"`
	Debounce    time.Duration `env:"CONSOLE_DEBOUNCE" envDefault:"300ms"`
	ExportLimit int           `env:"CONSOLE_EXPORT_LIMIT" envDefault:"1000"`
}

type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Redis    RedisConfig
	Listing  ListingConfig
	Lang     string        `env:"CONSOLE_LANG" envDefault:"pt-BR"`
	LogLevel string        `env:"LOG_LEVEL" envDefault:"info"`
	FlashTTL time.Duration `env:"CONSOLE_FLASH_TTL" envDefault:"5m"`
}

func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using process environment only.")
	}
	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Listing.PageSize <= 0 {
		return nil, fmt.Errorf("CONSOLE_PAGE_SIZE must be positive, got %d", cfg.Listing.PageSize)
	}
	if cfg.Backend.URL == "" {
		return nil, fmt.Errorf("CONSOLE_API_URL is required")
	}
	return cfg, nil
}
