package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	StorePath    string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Per-type posting ceilings, in the smallest currency unit.
	DepositLimit    int64
	WithdrawalLimit int64
	PaymentLimit    int64

	// Number of transactions shown on the dashboard.
	RecentTransactions int
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("STORE_PATH", "data/acmebank.json")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "acmebank")
	viper.SetDefault("DEPOSIT_LIMIT", int64(50_000_000))
	viper.SetDefault("WITHDRAWAL_LIMIT", int64(2_000_000))
	viper.SetDefault("PAYMENT_LIMIT", int64(5_000_000))
	viper.SetDefault("RECENT_TRANSACTIONS", 5)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.StorePath = viper.GetString("STORE_PATH")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.DepositLimit = viper.GetInt64("DEPOSIT_LIMIT")
	cfg.WithdrawalLimit = viper.GetInt64("WITHDRAWAL_LIMIT")
	cfg.PaymentLimit = viper.GetInt64("PAYMENT_LIMIT")
	if cfg.DepositLimit <= 0 || cfg.WithdrawalLimit <= 0 || cfg.PaymentLimit <= 0 {
		log.Println("Warning: posting limits must be positive; falling back to defaults.")
		cfg.DepositLimit = 50_000_000
		cfg.WithdrawalLimit = 2_000_000
		cfg.PaymentLimit = 5_000_000
	}

	cfg.RecentTransactions = viper.GetInt("RECENT_TRANSACTIONS")
	if cfg.RecentTransactions <= 0 {
		cfg.RecentTransactions = 5
	}

	return cfg, nil
}
