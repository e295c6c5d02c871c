// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Search strategy names accepted by SEARCH_STRATEGY.
const (
	SearchStrategyTrigram  = "trigram"
	SearchStrategyFulltext = "fulltext"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port           string `mapstructure:"PORT"`
	Env            string `mapstructure:"APP_ENV"`
	DBHost         string `mapstructure:"DB_HOST"`
	DBPort         string `mapstructure:"DB_PORT"`
	DBUser         string `mapstructure:"DB_USER"`
	DBPassword     string `mapstructure:"DB_PASSWORD"`
	DBName         string `mapstructure:"DB_NAME"`
	DBSSLMode      string `mapstructure:"DB_SSLMODE"`
	RedisURL       string `mapstructure:"REDIS_URL"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`

	// Blog behaviour
	PageSize            int     `mapstructure:"PAGE_SIZE"`
	SearchStrategy      string  `mapstructure:"SEARCH_STRATEGY"`
	SimilarityThreshold float64 `mapstructure:"SEARCH_SIMILARITY_THRESHOLD"`
	SearchMinRank       float64 `mapstructure:"SEARCH_MIN_RANK"`
	BaseURL             string  `mapstructure:"BASE_URL"`

	// Outgoing mail
	SMTPHost         string `mapstructure:"SMTP_HOST"`
	SMTPPort         int    `mapstructure:"SMTP_PORT"`
	SMTPUsername     string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword     string `mapstructure:"SMTP_PASSWORD"`
	DefaultFromEmail string `mapstructure:"DEFAULT_FROM_EMAIL"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// Initial read to get APP_ENV if set in base config
	// We intentionally ignore this error as the config file may not exist yet
	_ = viper.ReadInConfig()

	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	if env != "development" && env != "" {
		viper.SetConfigName("config." + env)
		if err := viper.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("required profile-specific config 'config.%s.yml' not found: %w", env, err)
		}
		log.Printf("Loaded profile-specific configuration: config.%s.yml", env)
	}

	// Set default values for development
	viper.SetDefault("PORT", "8375")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "user")
	viper.SetDefault("DB_PASSWORD", "password")
	viper.SetDefault("DB_NAME", "blog")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("PAGE_SIZE", 3)
	viper.SetDefault("SEARCH_STRATEGY", SearchStrategyTrigram)
	viper.SetDefault("SEARCH_SIMILARITY_THRESHOLD", 0.1)
	viper.SetDefault("SEARCH_MIN_RANK", 0.3)
	viper.SetDefault("BASE_URL", "http://localhost:8375")
	viper.SetDefault("SMTP_HOST", "localhost")
	viper.SetDefault("SMTP_PORT", 1025)
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("DEFAULT_FROM_EMAIL", "blog@localhost")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present and sane.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.PageSize < 1 {
		return errors.New("PAGE_SIZE must be a positive integer")
	}
	if c.SearchStrategy != SearchStrategyTrigram && c.SearchStrategy != SearchStrategyFulltext {
		return fmt.Errorf("SEARCH_STRATEGY must be %q or %q", SearchStrategyTrigram, SearchStrategyFulltext)
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold >= 1 {
		return errors.New("SEARCH_SIMILARITY_THRESHOLD must be in [0,1)")
	}
	if c.DefaultFromEmail == "" {
		return errors.New("DEFAULT_FROM_EMAIL is required")
	}
	if c.BaseURL == "" {
		return errors.New("BASE_URL is required")
	}

	isProduction := c.Env == "production" || c.Env == "prod"

	// Strict checks for production
	if isProduction {
		if c.DBPassword == "password" || c.DBPassword == "" {
			return errors.New("a strong DB_PASSWORD is required in production")
		}
		if c.DBSSLMode == "disable" || c.DBSSLMode == "" {
			log.Println("WARNING: DB_SSLMODE is 'disable' in production. It is highly recommended to use SSL for database connections.")
		}
		if c.SMTPHost == "localhost" {
			log.Println("WARNING: SMTP_HOST is 'localhost' in production. Shared posts will not leave the machine.")
		}
		if c.AllowedOrigins == "*" {
			log.Println("WARNING: ALLOWED_ORIGINS is set to '*' in production. This is insecure.")
		}
	}

	return nil
}
