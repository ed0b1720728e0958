package config

import (
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

type Config struct {
	// Database
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// Server
	Port           string
	TrustedProxies []string

	// Uploaded media
	UploadsDir string

	// Reminder sweeper
	ReminderInterval time.Duration
	ReminderAge      time.Duration
}

func Load() *Config {
	cfg := &Config{
		DBUser:           getEnv("DB_USER", "root"),
		DBPassword:       getEnv("DB_PASSWORD", "password"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "3306"),
		DBName:           getEnv("DB_NAME", "green_justice"),
		Port:             getEnv("PORT", "3000"),
		UploadsDir:       getEnv("UPLOADS_DIR", "uploads"),
		ReminderInterval: getDuration("REMINDER_INTERVAL", time.Hour),
		ReminderAge:      getDuration("REMINDER_AGE", 7*24*time.Hour),
	}

	// Handle trusted proxies
	trustedProxies := os.Getenv("TRUSTED_PROXIES")
	if trustedProxies != "" {
		cfg.TrustedProxies = strings.Split(trustedProxies, ",")
		for i, proxy := range cfg.TrustedProxies {
			cfg.TrustedProxies[i] = strings.TrimSpace(proxy)
		}
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Warnf("Invalid duration %q for %s, using default %v", value, key, defaultValue)
		return defaultValue
	}
	return d
}
