package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Server   ServerConfig
	App      AppConfig
	Riot     RiotConfig
	Identity IdentityConfig
	Auth     AuthConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Name        string `envconfig:"APP_NAME" default:"riftgate-api"`
	Environment string `envconfig:"APP_ENV" default:"development"`
	Debug       bool   `envconfig:"APP_DEBUG" default:"false"`
	Version     string `envconfig:"APP_VERSION" default:"1.0.0"`
}

// RiotConfig holds upstream game-data API settings. BaseURL and Token carry
// no defaults: the process must not come up without them.
type RiotConfig struct {
	BaseURL string        `envconfig:"RIOT_API_BASE_URL" required:"true"`
	Token   string        `envconfig:"RIOT_API_TOKEN" required:"true"`
	Timeout time.Duration `envconfig:"RIOT_API_TIMEOUT" default:"10s"`
}

// IdentityConfig holds identity-service connection settings.
type IdentityConfig struct {
	Endpoint string        `envconfig:"IDENTITY_ENDPOINT" required:"true"`
	Project  string        `envconfig:"IDENTITY_PROJECT" required:"true"`
	Key      string        `envconfig:"IDENTITY_API_KEY" required:"true"`
	Timeout  time.Duration `envconfig:"IDENTITY_TIMEOUT" default:"10s"`
}

// AuthConfig holds the static secret protecting the user-preferences routes.
type AuthConfig struct {
	Secret string `envconfig:"AUTH_SECRET" required:"true"`
}

// Address returns the server address in host:port format.
func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IsDevelopment returns true if running in development mode.
func (a *AppConfig) IsDevelopment() bool {
	return a.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (a *AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
