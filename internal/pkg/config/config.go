package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/piresc/parkspot/internal/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// InitConfig loads configPath into the environment when running locally and
// builds the application config from environment variables.
func InitConfig(configPath string) (*models.Config, error) {
	if GetEnv("APP_ENV", "local") == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "parkspot")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_VERSION", "dev")

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", 10)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 10)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)
	v.SetDefault("REDIS_SPOT_TTL", "5m")

	v.SetDefault("NATS_URL", "nats://localhost:4222")
	v.SetDefault("NATS_QUEUE_GROUP", "parkspot-notifier")

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("RESERVATION_DEFAULT_TIMEOUT_MINUTES", 15)
	v.SetDefault("RESERVATION_LATE_PENALTY", "10.00")
	v.SetDefault("RESERVATION_SWEEP_INTERVAL", "60s")
	v.SetDefault("RESERVATION_SWEEP_TIMEOUT", "30s")

	v.SetDefault("WALLET_INITIAL_BALANCE", "100.00")

	v.SetDefault("NOTIFICATION_PROVIDER", "http")
	v.SetDefault("NOTIFICATION_API_URL", "https://api.sendgrid.com/v3/mail/send")
	v.SetDefault("NOTIFICATION_FROM_EMAIL", "no-reply@parkspot.local")
	v.SetDefault("NOTIFICATION_FROM_NAME", "ParkSpot")
	v.SetDefault("NOTIFICATION_SIMULATION_MODE", true)
	v.SetDefault("NOTIFICATION_RETRY_ATTEMPTS", 3)
	v.SetDefault("NOTIFICATION_RETRY_BACKOFF", "500ms")
}

func loadConfig(v *viper.Viper) (*models.Config, error) {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")
	configs.Redis.SpotTTL = v.GetDuration("REDIS_SPOT_TTL")

	// NATS config
	configs.NATS.URL = v.GetString("NATS_URL")
	configs.NATS.QueueGroup = v.GetString("NATS_QUEUE_GROUP")

	// NewRelic config
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	// Reservation config
	configs.Reservation.DefaultTimeoutMinutes = v.GetInt("RESERVATION_DEFAULT_TIMEOUT_MINUTES")
	configs.Reservation.SweepInterval = v.GetDuration("RESERVATION_SWEEP_INTERVAL")
	configs.Reservation.SweepTimeout = v.GetDuration("RESERVATION_SWEEP_TIMEOUT")
	penalty, err := getDecimal(v, "RESERVATION_LATE_PENALTY")
	if err != nil {
		return nil, err
	}
	configs.Reservation.LateCancellationPenalty = penalty

	// Wallet config
	initialBalance, err := getDecimal(v, "WALLET_INITIAL_BALANCE")
	if err != nil {
		return nil, err
	}
	configs.Wallet.InitialBalance = initialBalance

	// Notification config
	configs.Notification.Provider = strings.ToLower(v.GetString("NOTIFICATION_PROVIDER"))
	configs.Notification.APIKey = v.GetString("NOTIFICATION_API_KEY")
	configs.Notification.APIURL = v.GetString("NOTIFICATION_API_URL")
	configs.Notification.FromEmail = v.GetString("NOTIFICATION_FROM_EMAIL")
	configs.Notification.FromName = v.GetString("NOTIFICATION_FROM_NAME")
	configs.Notification.SimulationMode = v.GetBool("NOTIFICATION_SIMULATION_MODE")
	configs.Notification.RetryAttempts = v.GetInt("NOTIFICATION_RETRY_ATTEMPTS")
	configs.Notification.RetryBackoff = v.GetDuration("NOTIFICATION_RETRY_BACKOFF")

	// Internal API keys
	configs.APIKeys = map[string]string{}
	if key := v.GetString("SCHEDULER_API_KEY"); key != "" {
		configs.APIKeys["scheduler"] = key
	}

	if err := validate(configs); err != nil {
		return nil, err
	}

	return configs, nil
}

func validate(configs *models.Config) error {
	if t := configs.Reservation.DefaultTimeoutMinutes; t < 1 || t > 60 {
		return fmt.Errorf("RESERVATION_DEFAULT_TIMEOUT_MINUTES must be between 1 and 60, got %d", t)
	}
	if !configs.Reservation.LateCancellationPenalty.IsPositive() {
		return fmt.Errorf("RESERVATION_LATE_PENALTY must be positive")
	}
	if configs.Reservation.SweepInterval <= 0 {
		return fmt.Errorf("RESERVATION_SWEEP_INTERVAL must be positive")
	}
	if configs.Wallet.InitialBalance.IsNegative() {
		return fmt.Errorf("WALLET_INITIAL_BALANCE must not be negative")
	}
	return nil
}

func getDecimal(v *viper.Viper, key string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v.GetString(key))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal value for %s: %w", key, err)
	}
	return d, nil
}

// GetEnv returns the environment value for key, or defaultValue when unset
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
