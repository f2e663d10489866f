package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port   int
	AppEnv string

	RedisConfig struct {
		Addr     string
		Password string
		DB       int
	}

	UserViewTTL     time.Duration
	SeedUsers       int
	ShutdownTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}

	cfg.Port = getEnvAsInt("PORT", 8080)
	cfg.AppEnv = getEnvOrDefault("APP_ENV", "production")

	cfg.RedisConfig.Addr = getEnvOrDefault("REDIS_ADDR", "")
	cfg.RedisConfig.Password = getEnvOrDefault("REDIS_PASSWORD", "")
	cfg.RedisConfig.DB = getEnvAsInt("REDIS_DB", 0)

	cfg.UserViewTTL = getEnvAsDuration("USER_VIEW_TTL", 5*time.Minute)
	cfg.SeedUsers = getEnvAsInt("SEED_USERS", 2)
	cfg.ShutdownTimeout = getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second)

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	if cfg.SeedUsers < 0 {
		return nil, fmt.Errorf("invalid SEED_USERS %d", cfg.SeedUsers)
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// CacheEnabled reports whether a Redis address was configured for the user
// read model.
func (c *Config) CacheEnabled() bool {
	return c.RedisConfig.Addr != ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnvOrDefault(key, strconv.Itoa(defaultValue))
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnvOrDefault(key, defaultValue.String())
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
