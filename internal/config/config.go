package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Snapshot backends.
const (
	SnapshotMemory    = "memory"
	SnapshotFile      = "file"
	SnapshotRedis     = "redis"
	SnapshotFirestore = "firestore"
)

// Payment providers.
const (
	PaymentSimulated = "simulated"
	PaymentStripe    = "stripe"
)

// Config holds all configuration for the application.
type Config struct {
	Port      string `mapstructure:"PORT"`
	GinMode   string `mapstructure:"GIN_MODE"`
	ClientURL string `mapstructure:"CLIENT_URL"`

	JWTSecret string        `mapstructure:"JWT_SECRET"`
	JWTIssuer string        `mapstructure:"JWT_ISSUER"`
	JWTTTL    time.Duration `mapstructure:"JWT_TTL"`

	SnapshotBackend string `mapstructure:"SNAPSHOT_BACKEND"`
	SnapshotDir     string `mapstructure:"SNAPSHOT_DIR"`

	RedisAddress  string `mapstructure:"REDIS_ADDRESS"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	FirebaseProjectID            string `mapstructure:"FIREBASE_PROJECT_ID"`
	GoogleApplicationCredentials string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`

	PaymentProvider string `mapstructure:"PAYMENT_PROVIDER"`
	StripeSecretKey string `mapstructure:"STRIPE_SECRET_KEY"`
}

// LoadConfig loads configuration from the environment using Viper. A .env
// file is honored when present.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("JWT_ISSUER", "budokan")
	v.SetDefault("JWT_TTL", 24*time.Hour)
	v.SetDefault("SNAPSHOT_BACKEND", SnapshotMemory)
	v.SetDefault("SNAPSHOT_DIR", "./data")
	v.SetDefault("REDIS_ADDRESS", "localhost:6379")
	v.SetDefault("PAYMENT_PROVIDER", PaymentSimulated)

	for _, key := range []string{
		"PORT", "GIN_MODE", "CLIENT_URL",
		"JWT_SECRET", "JWT_ISSUER", "JWT_TTL",
		"SNAPSHOT_BACKEND", "SNAPSHOT_DIR",
		"REDIS_ADDRESS", "REDIS_PASSWORD", "REDIS_DB",
		"FIREBASE_PROJECT_ID", "GOOGLE_APPLICATION_CREDENTIALS",
		"PAYMENT_PROVIDER", "STRIPE_SECRET_KEY",
	} {
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.New("failed to unmarshal config: " + err.Error())
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	switch cfg.SnapshotBackend {
	case SnapshotMemory, SnapshotFile, SnapshotRedis:
	case SnapshotFirestore:
		if cfg.FirebaseProjectID == "" {
			return nil, errors.New("FIREBASE_PROJECT_ID is required for the firestore snapshot backend")
		}
	default:
		return nil, errors.New("unknown SNAPSHOT_BACKEND: " + cfg.SnapshotBackend)
	}
	switch cfg.PaymentProvider {
	case PaymentSimulated:
	case PaymentStripe:
		if cfg.StripeSecretKey == "" {
			return nil, errors.New("STRIPE_SECRET_KEY is required for the stripe payment provider")
		}
	default:
		return nil, errors.New("unknown PAYMENT_PROVIDER: " + cfg.PaymentProvider)
	}

	return &cfg, nil
}
