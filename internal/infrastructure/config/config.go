package config

import (
	"fmt"
	"time"

	"github.com/amirhossein-jamali/greeting-rewards-bot/internal/domain/entity"
)

// Bot run modes
const (
	ModeWebhook = "webhook"
	ModePolling = "polling"
)

// Store drivers
const (
	DriverMemory   = "memory"
	DriverFirebase = "firebase"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the bot
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Telegram    TelegramConfig `mapstructure:"telegram"`
	Store       StoreConfig    `mapstructure:"store"`
	Ledger      LedgerConfig   `mapstructure:"ledger"`
	Bot         BotConfig      `mapstructure:"bot"`
	Rewards     RewardsConfig  `mapstructure:"rewards"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Metrics     MetricsConfig  `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// Addr is the listen address for net/http
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// TelegramConfig contains chat platform settings
type TelegramConfig struct {
	Token             string `mapstructure:"token"`
	Mode              string `mapstructure:"mode"`
	WebhookSecret     string `mapstructure:"webhookSecret"` // path segment of the webhook route, defaults to the token
	PublicURL         string `mapstructure:"publicURL"`     // https base URL; empty means use the request host
	APIEndpoint       string `mapstructure:"apiEndpoint"`
	PollTimeout       int    `mapstructure:"pollTimeout"` // seconds
	SetWebhookOnStart bool   `mapstructure:"setWebhookOnStart"`
	Debug             bool   `mapstructure:"debug"`
}

// Secret returns the webhook path segment
func (t TelegramConfig) Secret() string {
	if t.WebhookSecret != "" {
		return t.WebhookSecret
	}
	return t.Token
}

// StoreConfig selects and configures the account store
type StoreConfig struct {
	Driver   string         `mapstructure:"driver"`
	Timeout  time.Duration  `mapstructure:"timeout"` // milliseconds, per store call
	Firebase FirebaseConfig `mapstructure:"firebase"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Database DatabaseConfig `mapstructure:"database"`
}

// FirebaseConfig contains Realtime Database settings
type FirebaseConfig struct {
	DatabaseURL     string `mapstructure:"databaseURL"`
	CredentialsFile string `mapstructure:"credentialsFile"`
	RootPath        string `mapstructure:"rootPath"`
}

// RedisConfig contains redis connection settings
type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"keyPrefix"`
}

// DatabaseConfig contains SQL connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	Path            string        `mapstructure:"path"` // sqlite file, ":memory:" allowed
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	LogLevel        string        `mapstructure:"logLevel"`
}

// LedgerConfig contains points ledger settings
type LedgerConfig struct {
	StrictWrites bool `mapstructure:"strictWrites"`
}

// BotConfig contains message handling settings
type BotConfig struct {
	Greetings     []string      `mapstructure:"greetings"`
	RandomSeed    int64         `mapstructure:"randomSeed"` // 0 seeds from the clock
	QueueSize     int           `mapstructure:"queueSize"`
	UpdateTimeout time.Duration `mapstructure:"updateTimeout"` // seconds
}

// RewardsConfig overrides the built-in reward table when non-empty
type RewardsConfig struct {
	Thresholds []entity.RewardThreshold `mapstructure:"thresholds"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// MetricsConfig contains Prometheus settings
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}
