package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config represents application configuration
type Config struct {
	App          AppConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	NATS         NATSConfig
	NewRelic     NewRelicConfig
	Logger       LoggerConfig
	Reservation  ReservationConfig
	Wallet       WalletConfig
	Notification NotificationConfig
	APIKeys      map[string]string
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
	SpotTTL  time.Duration
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL        string
	QueueGroup string
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// ReservationConfig holds reservation lifecycle settings
type ReservationConfig struct {
	DefaultTimeoutMinutes   int
	LateCancellationPenalty decimal.Decimal
	SweepInterval           time.Duration
	SweepTimeout            time.Duration
}

// WalletConfig holds wallet settings
type WalletConfig struct {
	InitialBalance decimal.Decimal
}

// NotificationConfig holds outbound notification settings
type NotificationConfig struct {
	Provider       string // mailersend, http
	APIKey         string
	APIURL         string
	FromEmail      string
	FromName       string
	SimulationMode bool
	RetryAttempts  int
	RetryBackoff   time.Duration
}
