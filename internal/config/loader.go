// File: internal/config/loader.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadConfig reads configuration from an optional yaml file plus AUTH_*
// environment variables, then pulls the signing secret straight from the
// environment. A missing secret fails startup.
func LoadConfig() (*Config, error) {
	// Local development convenience; missing .env is not an error.
	_ = godotenv.Load()

	setDefaults()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		viper.SetConfigFile(path)
	} else {
		env := strings.ToLower(os.Getenv("APP_ENV"))
		if env == "" {
			env = "development"
		}
		viper.SetConfigName(fmt.Sprintf("config.%s", env))
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("AUTH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Environment-only configuration is fine.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// The secret never lives in a config file.
	config.JWT.Secret = os.Getenv("AUTH_JWT_SECRET")
	if config.JWT.Secret == "" {
		return nil, errors.New("AUTH_JWT_SECRET is not set")
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.shutdown_timeout", "10s")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("jwt.issuer", "auth-service")
	viper.SetDefault("jwt.audience", "auth-service-clients")
	viper.SetDefault("jwt.access_ttl", "1h")
	viper.SetDefault("jwt.refresh_ttl", "168h")
	viper.SetDefault("security.password_hash.iterations", 65536)
	viper.SetDefault("security.password_hash.salt_length", 32)
	viper.SetDefault("security.password_hash.key_length", 32)
	viper.SetDefault("security.reset_token.length", 32)
	viper.SetDefault("security.reset_token.ttl", "1h")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.migrations_path", "./migrations")
}
