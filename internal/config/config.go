package config

import (
	"os"
	"strconv"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Mailer   MailerConfig
	Message  MessageConfig
	Database DatabaseConfig
	Preview  PreviewConfig
	Delivery DeliveryConfig
}

// MailerConfig holds Brevo transactional email settings
type MailerConfig struct {
	APIKey      string
	SenderEmail string
	SenderName  string
}

// MessageConfig holds the knobs for rendered notifications
type MessageConfig struct {
	Subject   string
	Budget    string
	EventName string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// PreviewConfig holds the local preview server settings
type PreviewConfig struct {
	Addr string
}

// DeliveryConfig holds delivery fan-out settings
type DeliveryConfig struct {
	Concurrency int
}

// Load reads configuration from environment variables. Nothing is hard
// required here: a dry run needs no mailer key and no database, so the
// stricter checks live in ValidateForDelivery and ValidateForDatabase.
func Load() (*Config, error) {
	config := &Config{
		Mailer: MailerConfig{
			APIKey:      os.Getenv("BREVO_API_KEY"),
			SenderEmail: getEnvOrDefault("SENDER_EMAIL", "noreply@yourdomain.com"),
			SenderName:  getEnvOrDefault("SENDER_NAME", "BSCS 2-1N Gift Exchange"),
		},
		Message: MessageConfig{
			Subject:   getEnvOrDefault("EMAIL_SUBJECT", "Your Secret Santa Assignment!"),
			Budget:    getEnvOrDefault("GIFT_BUDGET", "₱50"),
			EventName: getEnvOrDefault("EVENT_NAME", "BSCS 2-1N Gift Exchange"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Preview: PreviewConfig{
			Addr: getEnvOrDefault("PREVIEW_ADDR", ":8080"),
		},
		Delivery: DeliveryConfig{
			Concurrency: getEnvIntOrDefault("SEND_CONCURRENCY", 4),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// ValidateForDelivery checks the settings real sends need.
func (c *Config) ValidateForDelivery() error {
	if c.Mailer.APIKey == "" {
		return errors.ConfigInvalid("BREVO_API_KEY is required for sending emails")
	}
	if c.Mailer.SenderEmail == "" {
		return errors.ConfigInvalid("SENDER_EMAIL must not be empty")
	}
	return nil
}

// ValidateForDatabase checks the settings the postgres roster source needs.
func (c *Config) ValidateForDatabase() error {
	if c.Database.URL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required for the database roster source")
	}
	return nil
}

func validateConfig(config *Config) error {
	if config.Delivery.Concurrency < 1 {
		return errors.ConfigInvalid("SEND_CONCURRENCY must be at least 1")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
