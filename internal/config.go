package internal

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	API       APIConfig       `mapstructure:"api"`
	DevServer DevServerConfig `mapstructure:"dev_server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type APIConfig struct {
	// BaseURL points at the remote store's /api root, without a trailing
	// slash, e.g. http://localhost:8000/api.
	BaseURL string        `mapstructure:"base_url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type DevServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

const (
	DefaultBaseURL = "http://localhost:8000/api"
	DefaultTimeout = 10 * time.Second
)

// LoadConfigFromEnv builds a Config purely from environment variables, for
// deployments where no config file is mounted.
func LoadConfigFromEnv() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: getEnv("WORKFORCE_API_BASE_URL", DefaultBaseURL),
			Token:   getEnv("WORKFORCE_API_TOKEN", ""),
			Timeout: getEnvAsDuration("WORKFORCE_API_TIMEOUT", DefaultTimeout),
		},
		DevServer: DevServerConfig{
			Port:         getEnvAsInt("WORKFORCE_DEVSERVER_PORT", 8000),
			ReadTimeout:  getEnvAsDuration("WORKFORCE_DEVSERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("WORKFORCE_DEVSERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getEnvAsDuration("WORKFORCE_DEVSERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Logging: LoggingConfig{
			Level:  getEnv("WORKFORCE_LOG_LEVEL", "info"),
			Format: getEnv("WORKFORCE_LOG_FORMAT", "text"),
		},
	}
}

func (c *Config) ApplyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = DefaultTimeout
	}
	if c.DevServer.Port <= 0 {
		c.DevServer.Port = 8000
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

func (c *Config) Validate() error {
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("api.base_url %q is not a valid URL", c.API.BaseURL)
	}
	if strings.HasSuffix(c.API.BaseURL, "/") {
		return fmt.Errorf("api.base_url must not end with a slash")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format %q must be text or json", c.Logging.Format)
	}

	if c.DevServer.Port <= 0 || c.DevServer.Port > 65535 {
		return fmt.Errorf("dev_server.port %d is out of range", c.DevServer.Port)
	}

	return nil
}

// ----------------- HELPERS -----------------

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultVal
}
