// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port             string `mapstructure:"PORT"`
	JWTSecret        string `mapstructure:"JWT_SECRET"`
	RedisURL         string `mapstructure:"REDIS_URL"`
	SessionTTLMin    int    `mapstructure:"SESSION_TTL_MINUTES"`
	SessionCacheSize int    `mapstructure:"SESSION_CACHE_SIZE"`
	MaxUploadMB      int    `mapstructure:"MAX_UPLOAD_MB"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`
	LogJSON          bool   `mapstructure:"LOG_JSON"`
}

// SessionTTL returns the configured session lifetime as a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMin) * time.Minute
}

// MaxUploadBytes returns the per-upload size limit in bytes.
func (c *Config) MaxUploadBytes() int {
	return c.MaxUploadMB << 20
}

// LoadConfig loads application configuration from .env, config file and
// environment variables.
func LoadConfig() *Config {
	// .env is optional; real environment variables win either way
	_ = godotenv.Load()

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if errors.As(err, &notFoundErr) {
			log.Println("Config file not found; using environment variables and defaults")
		} else {
			log.Fatalf("Error reading config file: %s", err)
		}
	}

	// Set default values
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("SESSION_TTL_MINUTES", 120)
	viper.SetDefault("SESSION_CACHE_SIZE", 1024)
	viper.SetDefault("MAX_UPLOAD_MB", 50)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_JSON", false)

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode config into struct, %v", err)
	}

	return &config
}
