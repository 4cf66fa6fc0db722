package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration, loaded from environment variables
// with sensible defaults for local development.
type Config struct {
	AppPort    string
	DBDriver   string // "sqlite" or "postgres"
	DBPath     string // sqlite database file
	DBDSN      string // postgres connection string
	SecretKey  string // signs session cookies
	SessionTTL time.Duration
}

// Load reads configuration from the environment via Viper.
func Load() *Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_PATH", "todo.db")
	viper.SetDefault("DB_DSN", "")
	viper.SetDefault("SECRET_KEY", "dev-secret-key")
	viper.SetDefault("SESSION_TTL", 24*time.Hour)
	viper.AutomaticEnv()

	return &Config{
		AppPort:    viper.GetString("APP_PORT"),
		DBDriver:   viper.GetString("DB_DRIVER"),
		DBPath:     viper.GetString("DB_PATH"),
		DBDSN:      viper.GetString("DB_DSN"),
		SecretKey:  viper.GetString("SECRET_KEY"),
		SessionTTL: viper.GetDuration("SESSION_TTL"),
	}
}
