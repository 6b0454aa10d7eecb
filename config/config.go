package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	// TrustedProxies may set X-Forwarded-For; empty trusts none.
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES"`

	// MongoDB configuration.
	DatabaseURL          string `mapstructure:"DATABASE_URL"`
	DatabaseName         string `mapstructure:"DATABASE_NAME"`
	MongoConnectAttempts int    `mapstructure:"MONGO_CONNECT_ATTEMPTS"`

	// Token configuration.
	JWTSecret string        `mapstructure:"JWT_SECRET"`
	JWTExpiry time.Duration `mapstructure:"JWT_EXPIRY"`

	// Redis configuration.
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int           `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int           `mapstructure:"REDIS_QUEUE_DB"`
	RoleCacheTTL  time.Duration `mapstructure:"ROLE_CACHE_TTL"`

	// Email configuration.
	SendGridAPIKey         string `mapstructure:"SENDGRID_API_KEY"`
	EmailSender            string `mapstructure:"EMAIL_SENDER"`
	EmailSenderName        string `mapstructure:"EMAIL_SENDER_NAME"`
	EmailQueueEnabled      bool   `mapstructure:"EMAIL_QUEUE_ENABLED"`
	EmailWorkerConcurrency int    `mapstructure:"EMAIL_WORKER_CONCURRENCY"`

	// DefaultAvailabilityDate is used by GET /available when no date is given.
	DefaultAvailabilityDate string        `mapstructure:"DEFAULT_AVAILABILITY_DATE"`
	AdminEmails             []string      `mapstructure:"ADMIN_EMAILS"`
	HealthInterval          time.Duration `mapstructure:"HEALTH_INTERVAL"`
}

var AppConfig Config

// LoadConfig reads config.yaml (current or ./config directory), then the
// environment, falling back to defaults.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	AppConfig = cfg
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "5000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("TRUSTED_PROXIES", []string{})

	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "doctors_portal")
	v.SetDefault("MONGO_CONNECT_ATTEMPTS", 5)

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY", "1h")

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_QUEUE_DB", 1)
	v.SetDefault("ROLE_CACHE_TTL", "5m")

	v.SetDefault("SENDGRID_API_KEY", "")
	v.SetDefault("EMAIL_SENDER", "")
	v.SetDefault("EMAIL_SENDER_NAME", "Doctors Portal")
	v.SetDefault("EMAIL_QUEUE_ENABLED", false)
	v.SetDefault("EMAIL_WORKER_CONCURRENCY", 5)

	// Kept for compatibility with existing clients; not derived from today.
	v.SetDefault("DEFAULT_AVAILABILITY_DATE", "Dec 4, 2022")
	v.SetDefault("ADMIN_EMAILS", []string{})
	v.SetDefault("HEALTH_INTERVAL", "60s")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
