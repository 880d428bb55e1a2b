package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Storage struct {
		Driver   string `yaml:"driver" env:"STORAGE_DRIVER"`
		Host     string `yaml:"host" env:"DB_HOST"`
		Port     string `yaml:"port" env:"DB_PORT"`
		User     string `yaml:"user" env:"DB_USER"`
		Password string `yaml:"password" env:"DB_PASSWORD"`
		DBName   string `yaml:"dbname" env:"DB_NAME"`
		SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE"`
	} `yaml:"storage"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	loadFromEnv(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Storage.Driver = "memory"
	config.Storage.Host = "localhost"
	config.Storage.Port = "5432"
	config.Storage.User = "postgres"
	config.Storage.Password = "postgres"
	config.Storage.DBName = "campushub"
	config.Storage.SSLMode = "disable"

	config.JWT.AccessTokenExpiration = "24h"
	config.JWT.Issuer = "campushub.app"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) {
	config.Server.Port = GetEnv("SERVER_PORT", config.Server.Port)
	config.Server.Mode = GetEnv("SERVER_MODE", config.Server.Mode)

	config.Storage.Driver = GetEnv("STORAGE_DRIVER", config.Storage.Driver)
	config.Storage.Host = GetEnv("DB_HOST", config.Storage.Host)
	config.Storage.Port = GetEnv("DB_PORT", config.Storage.Port)
	config.Storage.User = GetEnv("DB_USER", config.Storage.User)
	config.Storage.Password = GetEnv("DB_PASSWORD", config.Storage.Password)
	config.Storage.DBName = GetEnv("DB_NAME", config.Storage.DBName)
	config.Storage.SSLMode = GetEnv("DB_SSLMODE", config.Storage.SSLMode)

	config.JWT.Secret = GetEnv("JWT_SECRET", config.JWT.Secret)
	config.JWT.AccessTokenExpiration = GetEnv("JWT_ACCESS_TOKEN_EXPIRATION", config.JWT.AccessTokenExpiration)
	config.JWT.Issuer = GetEnv("JWT_ISSUER", config.JWT.Issuer)

	config.Logging.Level = GetEnv("LOG_LEVEL", config.Logging.Level)
	config.Logging.Format = GetEnv("LOG_FORMAT", config.Logging.Format)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	driver := strings.ToLower(config.Storage.Driver)
	if driver != "memory" && driver != "postgres" {
		return fmt.Errorf("unknown storage driver %q, expected memory or postgres", config.Storage.Driver)
	}

	if driver == "postgres" && config.Storage.Host == "" {
		return fmt.Errorf("storage host is required for the postgres driver")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Storage.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Storage.User,
		c.Storage.Password,
		c.Storage.Host,
		c.Storage.Port,
		c.Storage.DBName,
		sslMode,
	)
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
